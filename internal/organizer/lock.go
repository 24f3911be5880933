package organizer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// lockPath returns the lock file guarding root. It lives outside root so the
// pass never lists or moves it.
func lockPath(dir, root string) string {
	if dir == "" {
		dir = os.TempDir()
	}
	sum := sha256.Sum256([]byte(root))
	return filepath.Join(dir, "fileorg-"+hex.EncodeToString(sum[:8])+".lock")
}

// acquireLock takes the run lock for root and returns its release function.
func acquireLock(dir, root string) (func(), error) {
	path := lockPath(dir, root)
	lock := flock.New(path)

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s (lock %s)", ErrLocked, root, path)
	}
	return func() {
		_ = lock.Unlock()
	}, nil
}
