// Package imageio reads screenshots and writes rendered images.
package imageio

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	// Registered decoders for Load.
	_ "golang.org/x/image/webp"
)

const (
	// DirPerm is the permission for created output directories.
	DirPerm = 0o755

	// FilePerm is the permission for written images.
	FilePerm = 0o644

	// JPEGQuality is used for destinations ending in .jpg or .jpeg.
	JPEGQuality = 95
)

// Load decodes the image at path. PNG, JPEG and WebP are supported.
// A missing file yields an error matching fs.ErrNotExist.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the batch configuration
	if err != nil {
		return nil, fmt.Errorf("imageio: open: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}
	return img, nil
}

// Encode writes img to a buffer in the format implied by path.
func Encode(path string, img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality})
	default:
		err = png.Encode(&buf, img)
	}
	if err != nil {
		return nil, fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	return buf.Bytes(), nil
}

// Save encodes img and writes it to path atomically, creating parent
// directories as needed. It returns the number of bytes written.
func Save(path string, img image.Image) (int64, error) {
	data, err := Encode(path, img)
	if err != nil {
		return 0, err
	}
	if err := AtomicWrite(path, data); err != nil {
		return 0, fmt.Errorf("imageio: write %s: %w", path, err)
	}
	return int64(len(data)), nil
}

// AtomicWrite writes data to a temporary file next to path and renames it
// into place, so readers never see a partial image.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
