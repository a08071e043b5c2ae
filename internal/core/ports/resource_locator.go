package ports

import (
	"io"

	"go.trai.ch/desk/internal/core/domain"
)

// ResourceLocator maps view identifiers to view definition resources.
//
//go:generate mockgen -source=resource_locator.go -destination=mocks/mock_resource_locator.go -package=mocks
type ResourceLocator interface {
	// Locate resolves the identifier to a resource.
	// It returns domain.ErrResourceNotFound if nothing can be loaded for it.
	Locate(id domain.ViewID) (domain.Resource, error)

	// Open returns a reader for a previously located resource.
	Open(res domain.Resource) (io.ReadCloser, error)

	// List returns the identifiers of all available view definitions, sorted.
	List() ([]domain.ViewID, error)
}
