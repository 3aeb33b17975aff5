// Package fileutil provides the file primitives the durable store is built
// on: atomic replace-style writes, gzip-transparent reads, and filename
// splitting.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// AtomicWrite writes data to path so that the result is either the complete
// new content or the untouched previous file, never a partial write. The
// data goes to a temp file in the same directory, is flushed to stable
// storage, and is then renamed over the target. A path ending in .gz is
// written gzip-compressed.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("fileutil: mkdir: %w", err)
	}

	_, base, suffix := SplitName(path)
	tmp, err := os.CreateTemp(dir, "."+base+"-*")
	if err != nil {
		return fmt.Errorf("fileutil: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if gzipped(suffix) {
		zw := gzip.NewWriter(tmp)
		if _, err := zw.Write(data); err != nil {
			return fmt.Errorf("fileutil: write temp: %w", err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("fileutil: close gzip: %w", err)
		}
	} else if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("fileutil: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("fileutil: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("fileutil: close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("fileutil: rename: %w", err)
	}
	success = true
	return nil
}

// ReadFile returns the contents of path, transparently decompressing files
// with a .gz suffix. A missing file is reported with an error satisfying
// errors.Is(err, os.ErrNotExist).
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	_, _, suffix := SplitName(path)
	if gzipped(suffix) {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("fileutil: gzip open %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fileutil: read %s: %w", path, err)
	}
	return data, nil
}

// SplitName splits a filename into its directory, base name, and suffix.
// The suffix is everything after the first dot of the last path element, so
// "data/db.json.gz" yields ("data/", "db", "json.gz"). The directory keeps
// a trailing separator and a leading one when the input was absolute.
func SplitName(path string) (dir, base, suffix string) {
	parts := strings.Split(path, "/")
	elems := parts[:0]
	for _, p := range parts {
		if p != "" {
			elems = append(elems, p)
		}
	}
	if len(elems) == 0 {
		return "", "", ""
	}
	if len(elems) > 1 {
		dir = strings.Join(elems[:len(elems)-1], "/") + "/"
		if strings.HasPrefix(path, "/") {
			dir = "/" + dir
		}
	}
	name := strings.Split(elems[len(elems)-1], ".")
	base = name[0]
	if len(name) > 1 {
		suffix = strings.Join(name[1:], ".")
	}
	return dir, base, suffix
}

func gzipped(suffix string) bool {
	return suffix == "gz" || strings.HasSuffix(suffix, ".gz")
}
