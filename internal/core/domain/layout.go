package domain

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "kiln.yaml"

	// DefaultOutputExecutable is the executable name used when none is configured.
	DefaultOutputExecutable = "a.out"

	// DirPerm is the permission used when creating the output folder (rwxr-xr-x).
	DirPerm = 0o755
)
