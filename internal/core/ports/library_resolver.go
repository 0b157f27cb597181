package ports

import "context"

// LibraryResolver turns library names into compiler and linker flags.
//
//go:generate mockgen -source=library_resolver.go -destination=mocks/mock_library_resolver.go -package=mocks
type LibraryResolver interface {
	// Flags returns the combined compiler and linker flags for libs.
	// An empty libs slice returns an empty string without consulting any external tool.
	Flags(ctx context.Context, libs []string) (string, error)
}
