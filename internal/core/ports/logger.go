package ports

// Logger defines the interface for console output.
// Info, Success and Error are the three message categories shown to the user;
// Warn is used for non-fatal notices.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Success(msg string)
	Warn(msg string)
	Error(err error)
}
