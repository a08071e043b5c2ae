package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidViewID is returned when a view identifier is empty or cannot address a resource.
	ErrInvalidViewID = zerr.New("invalid view id")

	// ErrResourceNotFound is returned when a view identifier does not resolve to a loadable resource.
	ErrResourceNotFound = zerr.New("view resource not found")

	// ErrViewLoadFailed is returned when a resolved view resource cannot be read, parsed or bound.
	ErrViewLoadFailed = zerr.New("failed to load view")

	// ErrViewParseFailed is returned when a view definition is malformed.
	ErrViewParseFailed = zerr.New("failed to parse view definition")

	// ErrViewNotLoaded is returned when the controller is requested before the view was loaded.
	ErrViewNotLoaded = zerr.New("view has not been loaded")

	// ErrControllerType is returned when a controller does not have the requested type.
	ErrControllerType = zerr.New("controller has unexpected type")

	// ErrControllerNotRegistered is returned when no binding exists for a controller type.
	ErrControllerNotRegistered = zerr.New("controller type not registered")

	// ErrControllerResolveFailed is returned when the dependency graph cannot produce a controller.
	ErrControllerResolveFailed = zerr.New("failed to resolve controller")

	// ErrControllerBindFailed is returned when a controller cannot find the elements it drives.
	ErrControllerBindFailed = zerr.New("controller cannot bind to view")

	// ErrResourceListFailed is returned when the view resources cannot be enumerated.
	ErrResourceListFailed = zerr.New("failed to list view resources")

	// ErrUnknownNetwork is returned when the configured network has no preset.
	ErrUnknownNetwork = zerr.New("unknown network")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidLogLevel is returned when the configured log level is unknown.
	ErrInvalidLogLevel = zerr.New("invalid log level, expected 'debug', 'info', 'warn' or 'error'")

	// ErrInvalidLocale is returned when the configured locale is not a valid language tag.
	ErrInvalidLocale = zerr.New("invalid locale")

	// ErrViewsDirNotFound is returned when the configured views directory does not exist.
	ErrViewsDirNotFound = zerr.New("views directory not found")

	// ErrBundleLoadFailed is returned when a message bundle cannot be loaded.
	ErrBundleLoadFailed = zerr.New("failed to load message bundle")

	// ErrNoViewsSpecified is returned when a command needs at least one view.
	ErrNoViewsSpecified = zerr.New("no views specified")

	// ErrInvalidAmount is returned by the validate command when an input is rejected.
	ErrInvalidAmount = zerr.New("invalid amount")
)
