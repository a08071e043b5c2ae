package ports

// Localizer supplies locale-appropriate messages.
//
//go:generate mockgen -source=localizer.go -destination=mocks/mock_localizer.go -package=mocks
type Localizer interface {
	// Localize returns the message for key formatted with args.
	// Unknown keys are returned as-is.
	Localize(key string, args ...any) string

	// Has reports whether a message exists for key.
	Has(key string) bool

	// Locale returns the BCP 47 tag of the active bundle.
	Locale() string
}
