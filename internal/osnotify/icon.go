package osnotify

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	_ "embed"
)

//go:embed icon.png
var iconPNG []byte

var (
	pngOnce sync.Once
	pngPath string
	pngErr  error
)

// ensurePNGPath writes the embedded icon to disk once per process. Notifiers
// only accept icons by path.
func ensurePNGPath() (string, error) {
	pngOnce.Do(func() {
		pngPath, pngErr = writeCachedPNG()
		if pngErr != nil {
			pngPath, pngErr = writeTempPNG()
		}
	})
	return pngPath, pngErr
}

// writeCachedPNG keeps the icon at a stable path in the user cache dir so
// toasts that outlive the process still resolve it.
func writeCachedPNG() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, DefaultAppID, "icon.png")
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, iconPNG) {
		return path, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, iconPNG, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func writeTempPNG() (string, error) {
	f, err := os.CreateTemp("", DefaultAppID+"-icon-*.png")
	if err != nil {
		return "", err
	}

	if _, err := f.Write(iconPNG); err != nil {
		f.Close()
		return "", err
	}

	if err := f.Close(); err != nil {
		return "", err
	}

	path, err := filepath.Abs(f.Name())
	if err != nil {
		path = f.Name()
	}

	return path, nil
}
