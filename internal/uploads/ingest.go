package uploads

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/draw"

	"github.com/melroseheights/portfolio-backend/internal/utils"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

const (
	thumbnailMaxSide = 300
	thumbnailQuality = 85

	optimizeMaxWidth = 1920
	optimizeQuality  = 85
)

// DeleteResult reports what happened to a best-effort file deletion.
// Failures are logged but never escalated to the caller.
type DeleteResult int

const (
	FileDeleted DeleteResult = iota
	FileNotPresent
	FileDeleteFailed
)

// Removed reports the caller-facing boolean view: only an actual deletion
// counts, so a false result is not proof the file never existed.
func (r DeleteResult) Removed() bool { return r == FileDeleted }

// Ingestor persists uploaded media under the store's root and derives image
// thumbnails.
type Ingestor struct {
	store *Store
	log   *logrus.Logger
}

func NewIngestor(store *Store, log *logrus.Logger) *Ingestor {
	return &Ingestor{store: store, log: log}
}

// GenerateFilename returns a name unique for the process's lifetime. Only
// the extension of the caller-supplied name survives, lower-cased, so any
// path traversal in the original filename is stripped.
func GenerateFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(original)))
	return uuid.NewString() + ext
}

// categoryDir validates a caller-supplied category as a single directory
// name. Separators and dot segments are rejected so a category can never
// address anything outside its kind's subtree. Empty is allowed; files then
// land directly under the kind's directory.
func categoryDir(op, category string) (string, error) {
	if category == "" {
		return "", nil
	}
	if strings.ContainsAny(category, `/\`) || category == "." || category == ".." {
		return "", utils.E(utils.CodeInvalidArgument, op, "category must be a plain directory name", nil)
	}
	return category, nil
}

// SaveImage validates, stores the original bytes and derives a bounded
// thumbnail. If the thumbnail cannot be produced for any reason the stored
// original doubles as its own thumbnail; every stored image therefore has a
// thumbnail path.
func (g *Ingestor) SaveImage(r io.Reader, originalName, contentType string, size int64, category string) (imagePath, thumbPath string, err error) {
	const op = "Ingestor.SaveImage"

	if err := Validate(contentType, size, KindImage); err != nil {
		return "", "", err
	}

	category, err = categoryDir(op, category)
	if err != nil {
		return "", "", err
	}

	filename := GenerateFilename(originalName)
	dir, err := g.store.EnsureDir(imagesDir, category)
	if err != nil {
		return "", "", utils.E(utils.CodeInternal, op, "failed to create image directory", err)
	}

	imagePath = filepath.Join(dir, filename)
	if err := writeFile(imagePath, r, MaxImageSize); err != nil {
		return "", "", utils.E(utils.CodeInternal, op, "failed to store image", err)
	}

	thumbPath = filepath.Join(g.store.ThumbnailDir(), "thumb_"+filename)
	if terr := renderThumbnail(imagePath, thumbPath, thumbnailMaxSide); terr != nil {
		g.log.WithError(terr).WithField("image", imagePath).Warn("thumbnail generation failed, using original")
		thumbPath = imagePath
	}

	return imagePath, thumbPath, nil
}

// SaveVideo validates and stores the original bytes. Thumbnails and
// durations for videos are produced by out-of-band post-processing.
func (g *Ingestor) SaveVideo(r io.Reader, originalName, contentType string, size int64, category string) (string, error) {
	const op = "Ingestor.SaveVideo"

	if err := Validate(contentType, size, KindVideo); err != nil {
		return "", err
	}

	category, err := categoryDir(op, category)
	if err != nil {
		return "", err
	}

	filename := GenerateFilename(originalName)
	dir, err := g.store.EnsureDir(videosDir, category)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to create video directory", err)
	}

	videoPath := filepath.Join(dir, filename)
	if err := writeFile(videoPath, r, MaxVideoSize); err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to store video", err)
	}
	return videoPath, nil
}

// DeleteFile removes a stored file best-effort. Absence is a no-op, and any
// other OS-level failure is logged and reported, never returned as an error.
func (g *Ingestor) DeleteFile(path string) DeleteResult {
	err := os.Remove(path)
	switch {
	case err == nil:
		return FileDeleted
	case errors.Is(err, fs.ErrNotExist):
		g.log.WithField("path", path).Debug("file already absent")
		return FileNotPresent
	default:
		g.log.WithError(err).WithField("path", path).Warn("file delete failed (ignored)")
		return FileDeleteFailed
	}
}

// OptimizeImage re-encodes an image in place, downscaling to a maximum
// width. The rewrite goes through a temp file and a rename, so on any
// failure the original file is byte-for-byte untouched. Safe to run
// repeatedly.
func (g *Ingestor) OptimizeImage(path string) error {
	const op = "Ingestor.OptimizeImage"

	img, err := decodeImageFile(path)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to decode image", err)
	}

	b := img.Bounds()
	if b.Dx() > optimizeMaxWidth {
		h := b.Dy() * optimizeMaxWidth / b.Dx()
		img = scaleRGBA(img, optimizeMaxWidth, h)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".optimize-*")
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to create temp file", err)
	}
	if err := jpeg.Encode(tmp, img, &jpeg.Options{Quality: optimizeQuality}); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return utils.E(utils.CodeInternal, op, "failed to encode image", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return utils.E(utils.CodeInternal, op, "failed to flush temp file", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return utils.E(utils.CodeInternal, op, "failed to replace image", err)
	}
	return nil
}

// writeFile streams the payload to disk, enforcing the byte ceiling for
// uploads whose declared size was unknown at validation time. A truncated
// file from a crash mid-write is not recovered here.
func writeFile(path string, r io.Reader, maxSize int64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	written, err := io.Copy(f, io.LimitReader(r, maxSize+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return err
	}
	if written > maxSize {
		os.Remove(path)
		return fmt.Errorf("payload exceeds %d bytes", maxSize)
	}
	return nil
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

func scaleRGBA(img image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// renderThumbnail bounds the longest side at maxSide preserving aspect
// ratio. Images already within bounds are re-encoded at their own size.
// Drawing onto RGBA also converts color models JPEG cannot encode directly.
func renderThumbnail(src, dst string, maxSide int) error {
	img, err := decodeImageFile(src)
	if err != nil {
		return err
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("image has empty bounds %v", b)
	}

	tw, th := w, h
	if w > maxSide || h > maxSide {
		if w >= h {
			tw = maxSide
			th = h * maxSide / w
		} else {
			th = maxSide
			tw = w * maxSide / h
		}
		if tw < 1 {
			tw = 1
		}
		if th < 1 {
			th = 1
		}
	}

	out := scaleRGBA(img, tw, th)

	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, out, &jpeg.Options{Quality: thumbnailQuality}); err != nil {
		f.Close()
		os.Remove(dst)
		return err
	}
	return f.Close()
}
