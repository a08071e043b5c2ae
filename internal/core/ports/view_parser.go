package ports

import (
	"io"

	"go.trai.ch/desk/internal/core/domain"
)

// ViewParser builds a view from a definition.
//
//go:generate mockgen -source=view_parser.go -destination=mocks/mock_view_parser.go -package=mocks
type ViewParser interface {
	// Parse reads the definition of res from r.
	Parse(r io.Reader, res domain.Resource) (*domain.View, error)
}
