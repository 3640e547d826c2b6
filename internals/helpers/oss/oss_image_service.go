package oss

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	xwebp "golang.org/x/image/webp"
)

const (
	maxImageUploadSize = int64(5 * 1024 * 1024)
	imageMaxDimension  = 1600
	webpQuality        = 80
)

// UploadImageAsWebP re-encodes a cover image (jpeg/png/webp) to bounded
// WebP and uploads it under images/<slug>/.
func (s *OSSService) UploadImageAsWebP(ctx context.Context, dirSlug string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "image file missing")
	}
	if fh.Size > maxImageUploadSize {
		return "", fiber.NewError(fiber.StatusRequestEntityTooLarge, "image exceeds 5 MB limit")
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	img, err := decodeImage(all)
	if err != nil {
		return "", fiber.NewError(fiber.StatusUnsupportedMediaType, err.Error())
	}

	if b := img.Bounds(); b.Dx() > imageMaxDimension || b.Dy() > imageMaxDimension {
		img = imaging.Fit(img, imageMaxDimension, imageMaxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("webp encode: %w", err)
	}

	name := strings.TrimSuffix(safePart(fh.Filename), ".webp") + ".webp"
	key := s.buildObjectKey(joinParts("images", safePart(dirSlug)), name)
	if err := s.UploadStream(ctx, key, bytes.NewReader(buf.Bytes()), "image/webp"); err != nil {
		return "", fmt.Errorf("oss put %s: %w", key, err)
	}
	return s.PublicURL(key), nil
}

func decodeImage(all []byte) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty image payload")
	}
	ct := http.DetectContentType(all)
	switch {
	case strings.HasPrefix(ct, "image/webp"):
		return xwebp.Decode(bytes.NewReader(all))
	case strings.HasPrefix(ct, "image/jpeg"), strings.HasPrefix(ct, "image/png"):
		img, _, err := image.Decode(bytes.NewReader(all))
		return img, err
	default:
		return nil, fmt.Errorf("unsupported image type: %s", ct)
	}
}
