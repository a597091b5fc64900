//go:build !windows

package terminal_test

import (
	"os"
	"testing"
)

func osPipe(t *testing.T) (*os.File, *os.File, error) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	return r, w, err
}
