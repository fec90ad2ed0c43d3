package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, 0},
		{"platform", fmt.Errorf("window: create: %w", ErrPlatformInit), ExitPlatformInit},
		{"asset", fmt.Errorf("font: %w: %w", ErrAssetLoad, errors.New("bad ttf")), ExitAssetLoad},
		{"other", errors.New("unknown flag"), ExitUsage},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExitCode(tc.err); got != tc.expected {
				t.Errorf("ExitCode() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestExitCodesDistinct(t *testing.T) {
	if ExitPlatformInit == ExitAssetLoad {
		t.Error("platform and asset failures must exit with different codes")
	}
}
