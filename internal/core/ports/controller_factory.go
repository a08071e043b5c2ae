package ports

import (
	"context"

	"go.trai.ch/desk/internal/core/domain"
)

// ControllerFactory instantiates view controllers.
//
//go:generate mockgen -source=controller_factory.go -destination=mocks/mock_controller_factory.go -package=mocks
type ControllerFactory interface {
	// Resolve returns a controller instance for the given type.
	Resolve(ctx context.Context, typ domain.ControllerType) (any, error)
}
