// Package fs provides the file system adapters that locate view definitions.
package fs

import (
	"io/fs"
	"iter"
	"path"
	"strings"
)

// Walker provides file walking functionality over an fs.FS.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields the paths of all regular files below root with the given
// extension. Hidden directories are skipped. A walk error is yielded once and
// ends the iteration.
func (w *Walker) WalkFiles(root fs.FS, ext string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := fs.WalkDir(root, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if p != "." && strings.HasPrefix(d.Name(), ".") {
					return fs.SkipDir
				}
				return nil
			}

			if path.Ext(p) != ext {
				return nil
			}

			if !yield(p, nil) {
				return fs.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}
