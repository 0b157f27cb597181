package ports

// FileSystem abstracts the filesystem operations used by the planner and the cleaner.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether path exists, whatever its type.
	Exists(path string) bool
	// Mkdir creates a single directory level.
	Mkdir(path string) error
	// Remove deletes a file or an empty directory.
	Remove(path string) error
	// ReadDir lists the entry names of a directory.
	ReadDir(path string) ([]string, error)
}
