package metalfolio

import (
	"fmt"

	m "metalfolio/internal/model"

	"github.com/kr/pretty"
)

type StorageMock struct {
	assets map[m.Category][]m.Asset
	err    error
}

func NewStorageMock(assets ...m.Asset) *StorageMock {
	mock := &StorageMock{assets: make(map[m.Category][]m.Asset)}
	for _, a := range assets {
		mock.assets[a.Category] = append(mock.assets[a.Category], a)
	}
	return mock
}

func (mock *StorageMock) RetrieveAssets(category m.Category) ([]m.Asset, error) {
	if mock.err != nil {
		return nil, mock.err
	}
	return mock.assets[category], nil
}

func (mock *StorageMock) SaveAssets(category m.Category, assets []m.Asset) error {
	if mock.err != nil {
		return mock.err
	}
	mock.assets[category] = assets
	return nil
}

func (mock *StorageMock) AddAsset(asset m.Asset) error {
	if mock.err != nil {
		return mock.err
	}
	mock.assets[asset.Category] = append(mock.assets[asset.Category], asset)
	return nil
}

func (mock *StorageMock) UpdateAsset(asset m.Asset) error {
	if mock.err != nil {
		return mock.err
	}
	for i, a := range mock.assets[asset.Category] {
		if a.ID == asset.ID {
			mock.assets[asset.Category][i] = asset
			return nil
		}
	}
	return fmt.Errorf("asset not found: %s", asset.ID)
}

func (mock *StorageMock) DeleteAsset(category m.Category, id string) error {
	if mock.err != nil {
		return mock.err
	}
	for i, a := range mock.assets[category] {
		if a.ID == id {
			mock.assets[category] = append(mock.assets[category][:i], mock.assets[category][i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("asset not found: %s", id)
}

func (mock *StorageMock) prettyPrint() {
	fmt.Printf("%# v\n", pretty.Formatter(mock.assets))
}
