package project

import (
	"path/filepath"

	"github.com/fluxcd/pkg/lockedfile"
)

// Lock takes an exclusive file lock on the project descriptor in dir.
// Callers hold it across load, register and save so concurrent runs against
// the same project do not lose registrations.
func Lock(dir string) (unlock func(), err error) {
	lockFile := filepath.Join(dir, DescriptorFileName+".lock")
	mutex := lockedfile.MutexAt(lockFile)
	return mutex.Lock()
}
