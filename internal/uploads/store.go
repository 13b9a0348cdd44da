package uploads

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/melroseheights/portfolio-backend/internal/utils"
)

// PublicPrefix is the URL prefix persisted into documents. It is fixed so
// the storage root can move on disk without invalidating stored URLs.
const PublicPrefix = "/api/uploads"

const (
	imagesDir = "images"
	videosDir = "videos"
	thumbsDir = "thumbnails"
)

// Store maps between on-disk locations under a single upload root and the
// public /api/uploads/... URLs that get persisted into documents. The two
// directions are exact inverses for every path produced by ingestion.
type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	s := &Store{root: abs}
	for _, dir := range []string{"", imagesDir, videosDir, thumbsDir} {
		if _, err := s.EnsureDir(dir); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) Root() string { return s.root }

func (s *Store) ThumbnailDir() string { return filepath.Join(s.root, thumbsDir) }

// EnsureDir creates (idempotently) and returns a directory under the root.
func (s *Store) EnsureDir(parts ...string) (string, error) {
	dir := filepath.Join(append([]string{s.root}, parts...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// PublicURL converts an absolute path under the root to its public URL.
func (s *Store) PublicURL(absPath string) (string, error) {
	const op = "Store.PublicURL"

	rel, err := filepath.Rel(s.root, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", utils.E(utils.CodeInvalidArgument, op, "path is outside the upload root", err)
	}
	return PublicPrefix + "/" + filepath.ToSlash(rel), nil
}

// FilePath converts a public URL back to the absolute on-disk path by
// substituting the public prefix for the storage root.
func (s *Store) FilePath(url string) (string, error) {
	const op = "Store.FilePath"

	if !strings.HasPrefix(url, PublicPrefix+"/") {
		return "", utils.E(utils.CodeInvalidArgument, op, "url is not under the public upload prefix", nil)
	}
	rel := path.Clean(strings.TrimPrefix(url, PublicPrefix+"/"))
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", utils.E(utils.CodeInvalidArgument, op, "url escapes the upload root", nil)
	}
	return filepath.Join(s.root, filepath.FromSlash(rel)), nil
}
