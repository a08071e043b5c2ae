package domain

import (
	"io/fs"
	"strings"
	"unique"

	"go.trai.ch/zerr"
)

// ViewID identifies a view definition. It wraps a unique.Handle[string] so that
// identifiers are cheap to compare and to use as map keys.
type ViewID struct {
	h unique.Handle[string]
}

// NewViewID creates a ViewID from its logical name, e.g. "trade/offer".
// Leading and trailing slashes are dropped.
func NewViewID(name string) ViewID {
	return ViewID{h: unique.Make(strings.Trim(name, "/"))}
}

// ParseViewID creates a ViewID and rejects names that cannot address a resource.
func ParseViewID(name string) (ViewID, error) {
	id := NewViewID(name)
	if id.IsZero() || !fs.ValidPath(id.String()) {
		return ViewID{}, zerr.With(zerr.Wrap(ErrInvalidViewID, "failed to parse view id"), "view", name)
	}
	return id, nil
}

// String returns the logical name.
func (id ViewID) String() string {
	if id.IsZero() {
		return ""
	}
	return id.h.Value()
}

// IsZero reports whether the identifier is empty.
func (id ViewID) IsZero() bool {
	return id == ViewID{} || id.h.Value() == ""
}

// MarshalText implements encoding.TextMarshaler.
func (id ViewID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ViewID) UnmarshalText(text []byte) error {
	*id = NewViewID(string(text))
	return nil
}
