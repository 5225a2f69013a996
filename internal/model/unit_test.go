package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {

	one := decimal.NewFromInt(1)

	t.Run("luong to chi", func(t *testing.T) {
		got, err := Convert(one, Luong, Chi)
		assert.NoError(t, err)
		assert.True(t, got.Equal(decimal.NewFromInt(10)), got.String())
	})

	t.Run("kg to luong", func(t *testing.T) {
		got, err := Convert(one, Kilogram, Luong)
		assert.NoError(t, err)
		assert.True(t, got.Equal(decimal.RequireFromString("26.67")), got.String())
	})

	t.Run("kg to chi", func(t *testing.T) {
		got, err := Convert(one, Kilogram, Chi)
		assert.NoError(t, err)
		assert.True(t, got.Equal(decimal.RequireFromString("266.7")), got.String())
	})

	t.Run("unknown unit", func(t *testing.T) {
		_, err := Convert(one, Unit("gram"), Chi)
		var ce *ConfigError
		assert.ErrorAs(t, err, &ce)
	})
}

func TestConvertRoundTrip(t *testing.T) {

	const epsilon = 1e-9
	qty := decimal.RequireFromString("3.5")

	for _, from := range UnitList() {
		for _, to := range UnitList() {
			there, err := Convert(qty, from, to)
			assert.NoError(t, err)
			back, err := Convert(there, to, from)
			assert.NoError(t, err)

			diff := back.Sub(qty).Abs().InexactFloat64()
			assert.Less(t, diff, epsilon, "%s -> %s -> %s: got %s", from, to, from, back)
		}
	}
}

func TestConvertPrice(t *testing.T) {

	// 15,000,000 VND per chi is 150,000,000 VND per luong.
	perChi := decimal.NewFromInt(15_000_000)

	got, err := ConvertPrice(perChi, Chi, Luong)
	assert.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(150_000_000)), got.String())

	// And back.
	back, err := ConvertPrice(got, Luong, Chi)
	assert.NoError(t, err)
	assert.True(t, back.Equal(perChi), back.String())
}

func TestToUnit(t *testing.T) {
	u, err := ToUnit("luong")
	assert.NoError(t, err)
	assert.Equal(t, Luong, u)

	_, err = ToUnit("oz")
	assert.Error(t, err)
}
