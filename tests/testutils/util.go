// Package testutils provides test infrastructure for tonegate integration tests.
package testutils

import (
	"path/filepath"
	"runtime"
)

// Binary returns the path of the tonegate binary built under bin/ at the
// project root.
func Binary() string {
	_, thisFile, _, _ := runtime.Caller(0) //nolint:dogsled // runtime.Caller returns 4 values, only file is needed
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))

	return filepath.Join(projectRoot, "bin", "tonegate")
}
