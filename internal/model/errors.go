package model

import "fmt"

// ConfigError reports a value that does not resolve to anything the
// application knows about: an unknown unit, metal, category or source id.
type ConfigError struct {
	Field string
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Field, e.Value)
}

// ScrapeError reports a failed price fetch for a single source. One
// source's ScrapeError never aborts a refresh; the aggregator records the
// source as unavailable instead.
type ScrapeError struct {
	Source string
	Err    error
}

func (e *ScrapeError) Error() string {
	return fmt.Sprintf("scrape %s: %v", e.Source, e.Err)
}

func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// StorageError reports a failed read or write of a portfolio file, or a
// persisted record that fails validation.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
