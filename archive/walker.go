// Package archive builds a Walk abstraction for document archives.
package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/encoding"
)

// WalkFunc is the type of the function called for each file in the archive
// visited by Walk. name is the entry name after optional code page decoding;
// the file argument is the zip.File for the matched entry. If an error is
// returned, processing stops.
type WalkFunc func(archive, name string, file *zip.File) error

// Walk visits all files in the archive matching the prefix and suffix,
// calling walkFn for each. The zip "standard" does not define file name
// encoding, so names not flagged UTF-8 are decoded with cp when provided.
// Entries with path traversal components ("..") or absolute paths fail the
// walk to prevent Zip Slip attacks.
func Walk(archive, prefix, suffix string, cp encoding.Encoding, walkFn WalkFunc) error {

	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.FileHeader.Name
		if f.NonUTF8 && cp != nil {
			if decoded, err := cp.NewDecoder().String(name); err == nil {
				name = decoded
			}
		}
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() {
			continue
		}
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
			continue
		}
		if err := walkFn(archive, name, f); err != nil {
			return err
		}
	}
	return nil
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
