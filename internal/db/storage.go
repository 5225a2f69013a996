package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	m "metalfolio/internal/model"

	"github.com/rs/zerolog"
)

const (
	existingFile   = "existing_assets.json"
	investmentFile = "investment_assets.json"
)

// ErrAssetNotFound is returned by update/delete when no record carries
// the given id.
var ErrAssetNotFound = errors.New("asset not found")

// Storage persists the asset lists as one JSON file per category.
// Writes replace the whole file via temp-file + rename, so a crash
// mid-write never leaves a half-written portfolio behind. There is no
// cross-process locking; this assumes the single-instance deployment.
type Storage struct {
	dir string
	lg  zerolog.Logger
}

func NewStorage(dir string) (*Storage, error) {

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &m.StorageError{Op: "mkdir", Path: dir, Err: err}
	}

	return &Storage{
		dir: dir,
		lg:  zerolog.New(os.Stdout).With().Str("Module", "Storage").Timestamp().Logger(),
	}, nil
}

func (s *Storage) fileFor(category m.Category) (string, error) {
	switch category {
	case m.Existing:
		return filepath.Join(s.dir, existingFile), nil
	case m.Investment:
		return filepath.Join(s.dir, investmentFile), nil
	}
	return "", &m.ConfigError{Field: "category", Value: string(category)}
}

// RetrieveAssets loads every asset of a category, in file order. A
// missing file is an empty portfolio; a malformed or invalid record
// fails the whole load with a StorageError.
func (s *Storage) RetrieveAssets(category m.Category) ([]m.Asset, error) {

	path, err := s.fileFor(category)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []m.Asset{}, nil
	}
	if err != nil {
		return nil, &m.StorageError{Op: "read", Path: path, Err: err}
	}

	var assets []m.Asset
	if err := json.Unmarshal(raw, &assets); err != nil {
		return nil, &m.StorageError{Op: "decode", Path: path, Err: err}
	}

	// Records written by hand may lack ids; assign and persist them once.
	needsSave := false
	for i := range assets {
		if assets[i].ID == "" {
			assets[i].ID = m.NewAssetID()
			needsSave = true
		}
		if assets[i].Category == "" {
			assets[i].Category = category
			needsSave = true
		}
		if err := assets[i].Validate(); err != nil {
			return nil, &m.StorageError{Op: "validate", Path: path, Err: err}
		}
	}
	if needsSave {
		if err := s.SaveAssets(category, assets); err != nil {
			s.lg.Warn().Err(err).Msg("could not persist generated asset ids")
		}
	}

	return assets, nil
}

// SaveAssets overwrites the category file with the given list.
func (s *Storage) SaveAssets(category m.Category, assets []m.Asset) error {

	path, err := s.fileFor(category)
	if err != nil {
		return err
	}

	for _, a := range assets {
		if err := a.Validate(); err != nil {
			return &m.StorageError{Op: "validate", Path: path, Err: err}
		}
	}

	raw, err := json.MarshalIndent(assets, "", "  ")
	if err != nil {
		return &m.StorageError{Op: "encode", Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp-")
	if err != nil {
		return &m.StorageError{Op: "write", Path: path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return &m.StorageError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &m.StorageError{Op: "write", Path: path, Err: err}
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return &m.StorageError{Op: "rename", Path: path, Err: err}
	}

	s.lg.Debug().Str("file", path).Int("assets", len(assets)).Msg("portfolio saved")
	return nil
}

// AddAsset appends one asset to its category file. Read-modify-write
// over the full file; last writer wins.
func (s *Storage) AddAsset(asset m.Asset) error {

	if err := asset.Validate(); err != nil {
		return err
	}

	assets, err := s.RetrieveAssets(asset.Category)
	if err != nil {
		return err
	}

	return s.SaveAssets(asset.Category, append(assets, asset))
}

// UpdateAsset replaces the stored record carrying the same id.
func (s *Storage) UpdateAsset(asset m.Asset) error {

	if err := asset.Validate(); err != nil {
		return err
	}

	assets, err := s.RetrieveAssets(asset.Category)
	if err != nil {
		return err
	}

	for i := range assets {
		if assets[i].ID == asset.ID {
			assets[i] = asset
			return s.SaveAssets(asset.Category, assets)
		}
	}

	return fmt.Errorf("%w: %s", ErrAssetNotFound, asset.ID)
}

// DeleteAsset removes the record with the given id from a category file.
func (s *Storage) DeleteAsset(category m.Category, id string) error {

	assets, err := s.RetrieveAssets(category)
	if err != nil {
		return err
	}

	kept := assets[:0]
	for _, a := range assets {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(assets) {
		return fmt.Errorf("%w: %s", ErrAssetNotFound, id)
	}

	return s.SaveAssets(category, kept)
}
