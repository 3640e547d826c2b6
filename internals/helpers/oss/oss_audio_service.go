package oss

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const maxAudioUploadSize = int64(300 * 1024 * 1024)

var audioContentTypes = map[string]string{
	".mp3": "audio/mpeg",
	".m4a": "audio/mp4",
	".aac": "audio/aac",
	".ogg": "audio/ogg",
	".wav": "audio/wav",
}

// UploadResult is what the lecture admin controller persists.
type UploadResult struct {
	URL       string `json:"url"`
	ObjectKey string `json:"object_key"`
	Size      int64  `json:"size"`
}

// UploadAudio streams a multipart audio file into the bucket under
// audio/<slug>/ and returns its public URL, key and size.
func (s *OSSService) UploadAudio(ctx context.Context, dirSlug string, fh *multipart.FileHeader) (*UploadResult, error) {
	if fh == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "audio file missing")
	}
	if fh.Size > maxAudioUploadSize {
		return nil, fiber.NewError(fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("audio exceeds %d MB limit", maxAudioUploadSize/(1024*1024)))
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	ct, ok := audioContentTypes[ext]
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnsupportedMediaType,
			"unsupported audio format: "+ext)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	key := s.buildObjectKey(joinParts("audio", safePart(dirSlug)), fh.Filename)
	if err := s.UploadStream(ctx, key, src, ct); err != nil {
		return nil, fmt.Errorf("oss put %s: %w", key, err)
	}

	return &UploadResult{
		URL:       s.PublicURL(key),
		ObjectKey: key,
		Size:      fh.Size,
	}, nil
}
