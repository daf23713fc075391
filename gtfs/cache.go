package gtfs

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// SaveIndex encodes an Index to w using gob encoding
func SaveIndex(index *Index, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(index); err != nil {
		return fmt.Errorf("failed to encode gtfs index: %w", err)
	}
	return nil
}

// LoadIndexFrom decodes an Index written by SaveIndex
func LoadIndexFrom(r io.Reader) (*Index, error) {
	var index Index
	if err := gob.NewDecoder(r).Decode(&index); err != nil {
		return nil, fmt.Errorf("failed to decode gtfs index: %w", err)
	}
	return &index, nil
}

// SaveIndexFile writes an Index to a cache file. The file is replaced
// atomically, so a failed write leaves any previous cache untouched.
//
// Example:
//
//	index, _ := gtfs.LoadIndexFromZip("feed.zip")
//	if err := gtfs.SaveIndexFile(index, "/cache/feed.gob"); err != nil {
//	    // handle error
//	}
func SaveIndexFile(index *Index, filename string) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := SaveIndex(index, tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("failed to replace cache file: %w", err)
	}
	return nil
}

// LoadIndexFile reads an Index from a cache file written by SaveIndexFile.
func LoadIndexFile(filename string) (*Index, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	defer f.Close()
	return LoadIndexFrom(f)
}
