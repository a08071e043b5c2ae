// Package controllers resolves view controllers from the graft graph.
package controllers

import (
	"context"
	"slices"

	"github.com/grindlemire/graft"
	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ControllerFactory = (*Factory)(nil)

// Binding associates a controller type with the function producing it.
type Binding struct {
	Type    domain.ControllerType
	resolve func(ctx context.Context) (any, error)
}

// Bind binds typ to the graft node whose output type is T. Every resolution
// executes the node and its dependencies; cacheable dependencies are shared.
func Bind[T any](typ domain.ControllerType, opts ...graft.Option) Binding {
	return Binding{
		Type: typ,
		resolve: func(ctx context.Context) (any, error) {
			controller, _, err := graft.ExecuteFor[T](ctx, opts...)
			if err != nil {
				return nil, err
			}
			return controller, nil
		},
	}
}

// BindFunc binds typ to fn.
func BindFunc(typ domain.ControllerType, fn func(ctx context.Context) (any, error)) Binding {
	return Binding{Type: typ, resolve: fn}
}

// Factory implements ports.ControllerFactory over a fixed set of bindings.
type Factory struct {
	bindings map[domain.ControllerType]Binding
}

// NewFactory creates a Factory. Later bindings replace earlier ones of the same type.
func NewFactory(bindings ...Binding) *Factory {
	f := &Factory{bindings: make(map[domain.ControllerType]Binding, len(bindings))}
	for _, b := range bindings {
		f.bindings[b.Type] = b
	}
	return f
}

// Resolve returns a new controller instance for typ.
func (f *Factory) Resolve(ctx context.Context, typ domain.ControllerType) (any, error) {
	binding, ok := f.bindings[typ]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrControllerNotRegistered, "failed to resolve controller"), "controller", string(typ))
	}

	controller, err := binding.resolve(ctx)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(joinResolveErr(err), "failed to resolve controller"), "controller", string(typ))
	}
	return controller, nil
}

// Types returns the bound controller types, sorted.
func (f *Factory) Types() []domain.ControllerType {
	types := make([]domain.ControllerType, 0, len(f.bindings))
	for typ := range f.bindings {
		types = append(types, typ)
	}
	slices.Sort(types)
	return types
}
