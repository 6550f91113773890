package infra

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"formflow/pkg/utils"
)

// FileStore accepts a binary blob and returns where it lives. The service
// layer never touches the filesystem directly so tests can swap in a fake.
type FileStore interface {
	Store(fieldID, originalName string, r io.Reader) (StoredObject, error)
}

type StoredObject struct {
	Path string
	URL  string
}

// DiskFileStore writes uploads under a base directory and serves them from a
// base URL. Object names are random so uploads can never collide or be
// guessed.
type DiskFileStore struct {
	BaseDir string
	BaseURL string
}

func NewDiskFileStore() *DiskFileStore {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "./uploads"
	}
	base := strings.TrimSuffix(os.Getenv("UPLOAD_BASE_URL"), "/")
	if base == "" {
		base = "/uploads"
	}
	return &DiskFileStore{BaseDir: dir, BaseURL: base}
}

func (s *DiskFileStore) Store(fieldID, originalName string, r io.Reader) (StoredObject, error) {
	token, err := utils.GenerateSecureToken(16)
	if err != nil {
		return StoredObject{}, err
	}

	name := fmt.Sprintf("%s_%s%s", fieldID, token, filepath.Ext(originalName))
	if err := os.MkdirAll(s.BaseDir, 0o755); err != nil {
		return StoredObject{}, err
	}

	path := filepath.Join(s.BaseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return StoredObject{}, err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return StoredObject{}, err
	}

	return StoredObject{
		Path: path,
		URL:  s.BaseURL + "/" + name,
	}, nil
}
