package domain

const (
	// ConfigFileName is the name of the configuration file looked up in the working directory.
	ConfigFileName = "desk.yaml"

	// DefaultLocale is used when no locale is configured.
	DefaultLocale = "en"

	// DefaultNetwork is used when no network is configured.
	DefaultNetwork = "mainnet"

	// DefaultLogLevel is used when no log level is configured.
	DefaultLogLevel = "info"

	// MainViewName is the view shown when the application starts.
	MainViewName = "main"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)
