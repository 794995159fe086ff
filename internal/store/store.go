// Package store implements blight's content-addressed file store: inputs
// and outputs an action wants preserved are copied in, named by their
// SHA-256 hash so that repeated builds never duplicate identical content.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Put copies src into dir under a content-addressed name
// (<basename>-<sha256hex>, or just <basename> when appendHash is false),
// skipping the copy entirely if the destination already exists. It
// returns the destination path and the hex-encoded hash of src's content.
func Put(dir, src string, appendHash bool) (dest, hash string, err error) {
	hash, err = hashFile(src)
	if err != nil {
		return "", "", err
	}
	name := filepath.Base(src)
	if appendHash {
		name = fmt.Sprintf("%s-%s", name, hash)
	}
	dest = filepath.Join(dir, name)

	lock := flock.New(dest + ".lock")
	if err := lock.Lock(); err != nil {
		return "", "", fmt.Errorf("store: lock %s: %w", dest, err)
	}
	defer lock.Unlock()

	if _, err := os.Stat(dest); err == nil {
		return dest, hash, nil
	}
	if err := copyFile(src, dest); err != nil {
		return "", "", err
	}
	return dest, hash, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	tmp := dest + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tmp)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, dest)
}
