package tools

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultImagesDir = "generated_images"

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// ImageResult is returned by the tools that draw an image.
type ImageResult struct {
	Base64Image string `json:"base64_image"`
	SavedPath   string `json:"saved_path"`
}

// ImageStore writes generated images into a single directory. It does no
// locking; one writer at a time.
type ImageStore struct {
	dir string
	now func() time.Time
}

func NewImageStore(dir string) *ImageStore {
	if dir == "" {
		dir = DefaultImagesDir
	}
	return &ImageStore{dir: dir, now: time.Now}
}

func (s *ImageStore) Dir() string {
	return s.dir
}

// Save writes png under a name built from prefix and the current time and
// returns the file path.
func (s *ImageStore) Save(prefix string, png []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create images dir: %w", err)
	}
	name := fmt.Sprintf("%s_%s_%s.png", prefix, s.now().Format("20060102_150405"), uuid.NewString()[:8])
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return path, nil
}

// SaveResult saves png and returns it together with its base64 encoding.
func (s *ImageStore) SaveResult(prefix string, png []byte) (ImageResult, error) {
	path, err := s.Save(prefix, png)
	if err != nil {
		return ImageResult{}, err
	}
	return ImageResult{
		Base64Image: base64.StdEncoding.EncodeToString(png),
		SavedPath:   path,
	}, nil
}

// List returns the paths of all images in the directory, sorted by name.
// A missing directory yields an empty list.
func (s *ImageStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	paths := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !isImage(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(s.dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Clear deletes every image in the directory and returns how many were removed.
func (s *ImageStore) Clear() (int, error) {
	paths, err := s.List()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			return count, fmt.Errorf("delete image: %w", err)
		}
		count++
	}
	return count, nil
}

func isImage(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}
