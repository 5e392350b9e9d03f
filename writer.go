package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// lockSuffix is appended to the report path to name its lock file.
const lockSuffix = ".lock"

// WriteReport writes data to path while holding an exclusive lock on
// path+".lock", so concurrent runs targeting the same report never
// interleave. The write goes through a temporary file in the same directory
// and a rename, so readers never see a partial report. The lock file is left
// in place: unlinking it after unlock would let a waiter hold a lock on an
// orphaned inode while a newcomer locks a fresh file at the same path.
func WriteReport(path string, data []byte) error {
	lockPath := path + lockSuffix
	lock := flock.New(lockPath)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", lockPath, err)
	}
	defer func() { _ = lock.Unlock() }()

	return atomicWrite(path, data)
}

// atomicWrite writes data to a temp file beside path and renames it over path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	defer func() {
		if tempFile != nil {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	tempFile = nil
	return nil
}
