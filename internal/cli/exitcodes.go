package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/lyqlplay/internal/configloader"
	"github.com/yaklabco/lyqlplay/pkg/fsutil"
)

// Exit codes for lyqlplay.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitParseFailed indicates the parser rejected the input.
	ExitParseFailed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrParseFailed):
		return ExitParseFailed
	case errors.Is(err, ErrNotTerminal):
		return ExitInvalidUsage
	case errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission), errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
