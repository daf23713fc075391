package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// maxFeedSize caps a downloaded GTFS archive
const maxFeedSize = 1 << 30

var (
	errNotZip       = errors.New("not a zip archive")
	errFeedTooLarge = errors.New("gtfs feed exceeds size limit")
)

var zipMagic = []byte("PK\x03\x04")

// feedFetcher loads a GTFS zip from an http(s) URL or a local path and
// rejects payloads that are not zip archives.
type feedFetcher struct {
	httpClient *http.Client
	maxSize    int64
}

func newFeedFetcher() *feedFetcher {
	return &feedFetcher{
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		maxSize:    maxFeedSize,
	}
}

func (f *feedFetcher) fetch(location string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		data, err = f.download(location)
	} else {
		data, err = f.readFile(location)
	}
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(data, zipMagic) {
		return nil, fmt.Errorf("%s: %w", location, errNotZip)
	}
	return data, nil
}

func (f *feedFetcher) readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > f.maxSize {
		return nil, fmt.Errorf("%s: %w", path, errFeedTooLarge)
	}
	return os.ReadFile(path)
}

func (f *feedFetcher) download(url string) ([]byte, error) {
	resp, err := f.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("download gtfs feed %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download gtfs feed: HTTP %d from %s", resp.StatusCode, url)
	}
	if resp.ContentLength > f.maxSize {
		return nil, fmt.Errorf("%s: %w", url, errFeedTooLarge)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read gtfs feed %s: %w", url, err)
	}
	if int64(len(data)) > f.maxSize {
		return nil, fmt.Errorf("%s: %w", url, errFeedTooLarge)
	}
	return data, nil
}
