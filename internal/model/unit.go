package model

import (
	"github.com/shopspring/decimal"
)

// Unit is a weight denomination for precious metals.
type Unit string

const (
	Chi      Unit = "chi"
	Luong    Unit = "luong"
	Kilogram Unit = "kg"
)

var unitList = []Unit{Chi, Luong, Kilogram}

// Weight of one unit expressed in chỉ. 1 lượng = 10 chỉ, 1 kg = 266.7 chỉ
// (so 1 kg = 26.67 lượng).
var unitInChi = map[Unit]decimal.Decimal{
	Chi:      decimal.NewFromInt(1),
	Luong:    decimal.NewFromInt(10),
	Kilogram: decimal.RequireFromString("266.7"),
}

func ToUnit(s string) (Unit, error) {
	for _, u := range unitList {
		if Unit(s) == u {
			return u, nil
		}
	}
	return "", &ConfigError{Field: "unit", Value: s}
}

func (u Unit) Valid() bool {
	_, err := ToUnit(string(u))
	return err == nil
}

func UnitList() []Unit {
	return unitList
}

// Convert converts a quantity between weight units.
func Convert(qty decimal.Decimal, from, to Unit) (decimal.Decimal, error) {
	ff, ok := unitInChi[from]
	if !ok {
		return decimal.Zero, &ConfigError{Field: "unit", Value: string(from)}
	}
	tf, ok := unitInChi[to]
	if !ok {
		return decimal.Zero, &ConfigError{Field: "unit", Value: string(to)}
	}
	return qty.Mul(ff).Div(tf), nil
}

// ConvertPrice converts a per-unit price between weight units. A price
// quoted per chỉ becomes ten times larger per lượng, the inverse of how
// quantities convert.
func ConvertPrice(price decimal.Decimal, from, to Unit) (decimal.Decimal, error) {
	ff, ok := unitInChi[from]
	if !ok {
		return decimal.Zero, &ConfigError{Field: "unit", Value: string(from)}
	}
	tf, ok := unitInChi[to]
	if !ok {
		return decimal.Zero, &ConfigError{Field: "unit", Value: string(to)}
	}
	return price.Mul(tf).Div(ff), nil
}
