package fs

import (
	"io"
	"io/fs"
	"slices"
	"strings"

	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResourceLocator = (*Locator)(nil)

// Locator implements ports.ResourceLocator over an fs.FS. The view "trade/offer"
// lives at "trade/offer.yaml".
type Locator struct {
	root   fs.FS
	walker *Walker
}

// NewLocator creates a Locator for the view definitions in root.
func NewLocator(root fs.FS, walker *Walker) *Locator {
	return &Locator{root: root, walker: walker}
}

// Locate resolves id to the definition file. It returns domain.ErrResourceNotFound
// when no regular file exists for id.
func (l *Locator) Locate(id domain.ViewID) (domain.Resource, error) {
	if id.IsZero() {
		return domain.Resource{}, zerr.Wrap(domain.ErrResourceNotFound, domain.ErrInvalidViewID.Error())
	}

	p := id.String() + domain.ViewFileExt
	if !fs.ValidPath(p) {
		return domain.Resource{}, zerr.With(zerr.Wrap(domain.ErrResourceNotFound, domain.ErrInvalidViewID.Error()), "view", id.String())
	}

	info, err := fs.Stat(l.root, p)
	if err != nil || !info.Mode().IsRegular() {
		return domain.Resource{}, zerr.With(zerr.Wrap(domain.ErrResourceNotFound, "failed to locate view"), "view", id.String())
	}

	return domain.Resource{ID: id, Path: p}, nil
}

// Open returns a reader for res.
func (l *Locator) Open(res domain.Resource) (io.ReadCloser, error) {
	f, err := l.root.Open(res.Path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open view resource"), "path", res.Path)
	}
	return f, nil
}

// List returns the identifiers of all view definitions, sorted.
func (l *Locator) List() ([]domain.ViewID, error) {
	var ids []domain.ViewID
	for p, err := range l.walker.WalkFiles(l.root, domain.ViewFileExt) {
		if err != nil {
			return nil, zerr.Wrap(domain.ErrResourceListFailed, err.Error())
		}
		ids = append(ids, domain.NewViewID(strings.TrimSuffix(p, domain.ViewFileExt)))
	}

	slices.SortFunc(ids, func(a, b domain.ViewID) int {
		return strings.Compare(a.String(), b.String())
	})
	return ids, nil
}
