package uploads

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreCreatesSubroots(t *testing.T) {
	root := t.TempDir()
	_, err := NewStore(root)
	require.NoError(t, err)

	for _, dir := range []string{"images", "videos", "thumbnails"} {
		st, err := os.Stat(filepath.Join(root, dir))
		require.NoError(t, err)
		require.True(t, st.IsDir())
	}
}

func TestEnsureDirIdempotent(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	first, err := s.EnsureDir("images", "fashion")
	require.NoError(t, err)
	second, err := s.EnsureDir("images", "fashion")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestPublicURLFilePathAreInverses(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	abs := filepath.Join(s.Root(), "images", "fashion", "a1b2.png")
	url, err := s.PublicURL(abs)
	require.NoError(t, err)
	require.Equal(t, "/api/uploads/images/fashion/a1b2.png", url)

	back, err := s.FilePath(url)
	require.NoError(t, err)
	require.Equal(t, abs, back)

	// And back again.
	again, err := s.PublicURL(back)
	require.NoError(t, err)
	require.Equal(t, url, again)
}

func TestPublicURLRejectsOutsideRoot(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.PublicURL("/etc/passwd")
	require.Error(t, err)
}

func TestFilePathRejectsForeignURLs(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.FilePath("https://example.com/image.png")
	require.Error(t, err)

	_, err = s.FilePath("/static/image.png")
	require.Error(t, err)
}

func TestFilePathRejectsTraversal(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.FilePath("/api/uploads/../../etc/passwd")
	require.Error(t, err)
}
