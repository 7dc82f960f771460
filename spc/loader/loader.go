// Package loader reads .spc files from disk, unpacking the archive formats
// SPC sets are usually distributed in.
package loader

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bodgit/sevenzip"
)

// ErrNoSPC is returned for archives without a .spc entry.
var ErrNoSPC = errors.New("archive contains no .spc file")

// Entry is one file read from disk or from an archive.
type Entry struct {
	Name string
	Data []byte
}

// Load reads path and returns the first .spc it holds. Plain files are
// returned as is.
func Load(path string) (Entry, error) {
	entries, err := LoadAll(path)
	if err != nil {
		return Entry{}, err
	}
	return entries[0], nil
}

// LoadAll reads path and returns every .spc it holds, sorted by name. gzip,
// zip and 7z are unpacked based on the extension.
func LoadAll(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".spcz":
		entries, err = readGzip(path, data)
	case ".zip":
		entries, err = readZip(data)
	case ".7z":
		entries, err = read7z(data)
	default:
		return []Entry{{Name: filepath.Base(path), Data: data}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unpacking %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoSPC)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	slog.Debug("Loaded archive", "path", path, "entries", len(entries))
	return entries, nil
}

func readGzip(path string, data []byte) ([]Entry, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	name := r.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".spc"
	}
	return []Entry{{Name: name, Data: out}}, nil
}

func readZip(data []byte) ([]Entry, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, f := range r.File {
		if !isSPC(f.Name) {
			continue
		}
		e, err := readEntry(f.Name, f.Open)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func read7z(data []byte) ([]Entry, error) {
	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, f := range r.File {
		if !isSPC(f.Name) {
			continue
		}
		e, err := readEntry(f.Name, f.Open)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func readEntry(name string, open func() (io.ReadCloser, error)) (Entry, error) {
	rc, err := open()
	if err != nil {
		return Entry{}, fmt.Errorf("opening %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return Entry{}, fmt.Errorf("reading %s: %w", name, err)
	}
	return Entry{Name: filepath.Base(name), Data: data}, nil
}

func isSPC(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".spc")
}
