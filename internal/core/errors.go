package core

import "errors"

// Startup failure classes. Frontends and loaders wrap their errors with one
// of these so the command can pick the process exit code.
var (
	ErrPlatformInit = errors.New("platform init failure")
	ErrAssetLoad    = errors.New("asset load failure")
)

// Exit codes for fatal startup failures.
const (
	ExitAssetLoad    = 1
	ExitUsage        = 2
	ExitPlatformInit = 3
)

// ExitCode maps an error returned from startup to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrPlatformInit):
		return ExitPlatformInit
	case errors.Is(err, ErrAssetLoad):
		return ExitAssetLoad
	default:
		return ExitUsage
	}
}
