package uploads

import (
	"fmt"
	"sort"
	"strings"

	"github.com/melroseheights/portfolio-backend/internal/utils"
)

type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

const (
	MaxImageSize = 50 << 20   // 50MB
	MaxVideoSize = 1000 << 20 // 1000MB (1GB)
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var allowedVideoTypes = map[string]bool{
	"video/mp4":  true,
	"video/avi":  true,
	"video/mov":  true,
	"video/wmv":  true,
	"video/flv":  true,
	"video/webm": true,
}

func allowedList(set map[string]bool) string {
	types := make([]string, 0, len(set))
	for t := range set {
		types = append(types, t)
	}
	sort.Strings(types)
	return strings.Join(types, ", ")
}

// Validate checks the declared content type and size for an upload kind.
// A size of zero or less means the size is unknown at validation time; the
// check is skipped and the ceiling is enforced by bytes-written accounting
// downstream. The content type is taken at face value, never sniffed.
func Validate(contentType string, size int64, kind Kind) error {
	const op = "uploads.Validate"

	switch kind {
	case KindImage:
		if !allowedImageTypes[contentType] {
			return utils.E(utils.CodeUnsupportedMedia, op,
				fmt.Sprintf("invalid image type. Allowed types: %s", allowedList(allowedImageTypes)), nil)
		}
		if size > 0 && size > MaxImageSize {
			return utils.E(utils.CodeTooLarge, op,
				fmt.Sprintf("image too large. Maximum size: %dMB", MaxImageSize/(1<<20)), nil)
		}
	case KindVideo:
		if !allowedVideoTypes[contentType] {
			return utils.E(utils.CodeUnsupportedMedia, op,
				fmt.Sprintf("invalid video type. Allowed types: %s", allowedList(allowedVideoTypes)), nil)
		}
		if size > 0 && size > MaxVideoSize {
			return utils.E(utils.CodeTooLarge, op,
				fmt.Sprintf("video too large. Maximum size: %dMB", MaxVideoSize/(1<<20)), nil)
		}
	default:
		return utils.E(utils.CodeInvalidArgument, op, fmt.Sprintf("unknown upload kind %q", kind), nil)
	}

	return nil
}
