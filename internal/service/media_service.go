package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"

	"github.com/blabla/messaging-backend/internal/common"
	"github.com/blabla/messaging-backend/internal/domain"
	pkglogger "github.com/blabla/messaging-backend/pkg/logger"
	"github.com/blabla/messaging-backend/pkg/storage"
)

// maxAttachmentWidth caps inline DM images; anything wider is downscaled
const maxAttachmentWidth = 1600

// MediaService handles DM attachment uploads. Messaging tables only ever
// store the URL/type this service returns; the bytes live in object storage.
type MediaService struct {
	s3           *storage.S3Client
	maxImageSize int64
	maxVideoSize int64
}

// NewMediaService creates a new MediaService
func NewMediaService(s3Client *storage.S3Client) *MediaService {
	return &MediaService{
		s3:           s3Client,
		maxImageSize: 20 * 1024 * 1024,  // 20MB
		maxVideoSize: 200 * 1024 * 1024, // 200MB
	}
}

// MediaUploadResult is what the client passes on to POST /messages/send
type MediaUploadResult struct {
	URL       string `json:"url"`
	MediaType string `json:"media_type"`
	Size      int64  `json:"size"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
}

// Upload stores an image or video attachment and returns its URL and type.
// Rejected input wraps a validation sentinel; anything else is a storage fault.
func (s *MediaService) Upload(ctx context.Context, file *multipart.FileHeader) (*MediaUploadResult, error) {
	ext := strings.ToLower(path.Ext(file.Filename))
	switch {
	case isImageExt(ext):
		if file.Size > s.maxImageSize {
			return nil, fmt.Errorf("%w: image exceeds %dMB", common.ErrInvalidInput, s.maxImageSize/(1024*1024))
		}
		if s.s3 == nil {
			return nil, fmt.Errorf("media storage is not configured")
		}
		return s.uploadImage(ctx, file, ext)
	case isVideoExt(ext):
		if file.Size > s.maxVideoSize {
			return nil, fmt.Errorf("%w: video exceeds %dMB", common.ErrInvalidInput, s.maxVideoSize/(1024*1024))
		}
		if s.s3 == nil {
			return nil, fmt.Errorf("media storage is not configured")
		}
		return s.uploadVideo(ctx, file, ext)
	default:
		return nil, fmt.Errorf("%w: unsupported attachment format %q", common.ErrBadMediaType, ext)
	}
}

func (s *MediaService) uploadImage(ctx context.Context, file *multipart.FileHeader, ext string) (*MediaUploadResult, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	contentType := http.DetectContentType(data)
	var reader io.Reader = bytes.NewReader(data)
	size := int64(len(data))
	var width, height int

	// Decode and downscale raster images; GIFs pass through to keep animation
	if ext != ".gif" {
		img, format, decErr := image.Decode(bytes.NewReader(data))
		if decErr == nil {
			bounds := img.Bounds()
			width = bounds.Dx()
			height = bounds.Dy()

			if width > maxAttachmentWidth {
				img = resizeImage(img, maxAttachmentWidth)
				bounds = img.Bounds()
				width = bounds.Dx()
				height = bounds.Dy()
			}

			var buf bytes.Buffer
			switch format {
			case "png":
				if err := png.Encode(&buf, img); err == nil {
					reader = &buf
					size = int64(buf.Len())
					contentType = "image/png"
					ext = ".png"
				}
			default:
				if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err == nil {
					reader = &buf
					size = int64(buf.Len())
					contentType = "image/jpeg"
					ext = ".jpg"
				}
			}
		}
	}

	key := storage.GenerateKey("dm/images", "attachment"+ext)
	result, err := s.s3.Upload(ctx, key, reader, contentType, size)
	if err != nil {
		return nil, err
	}

	pkglogger.GetLogger().Info().
		Str("key", result.Key).
		Int64("size", size).
		Msg("dm image uploaded")

	return &MediaUploadResult{
		URL:       result.URL,
		MediaType: domain.MediaTypeImage,
		Size:      size,
		Width:     width,
		Height:    height,
	}, nil
}

func (s *MediaService) uploadVideo(ctx context.Context, file *multipart.FileHeader, ext string) (*MediaUploadResult, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	contentType := "video/" + strings.TrimPrefix(ext, ".")
	if ext == ".mov" {
		contentType = "video/quicktime"
	}

	key := storage.GenerateKey("dm/videos", "attachment"+ext)
	result, err := s.s3.Upload(ctx, key, src, contentType, file.Size)
	if err != nil {
		return nil, err
	}

	pkglogger.GetLogger().Info().
		Str("key", result.Key).
		Int64("size", file.Size).
		Msg("dm video uploaded")

	return &MediaUploadResult{
		URL:       result.URL,
		MediaType: domain.MediaTypeVideo,
		Size:      file.Size,
	}, nil
}

func isImageExt(ext string) bool {
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return true
	}
	return false
}

func isVideoExt(ext string) bool {
	switch ext {
	case ".mp4", ".webm", ".mov":
		return true
	}
	return false
}

// resizeImage resizes an image to the given max width, preserving aspect ratio
func resizeImage(img image.Image, maxWidth int) image.Image {
	bounds := img.Bounds()
	origWidth := bounds.Dx()
	origHeight := bounds.Dy()

	if origWidth <= maxWidth {
		return img
	}

	newWidth := maxWidth
	newHeight := origHeight * newWidth / origWidth

	// Simple nearest-neighbor resize (good enough for chat attachments)
	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	for y := 0; y < newHeight; y++ {
		for x := 0; x < newWidth; x++ {
			srcX := x * origWidth / newWidth
			srcY := y * origHeight / newHeight
			dst.Set(x, y, img.At(bounds.Min.X+srcX, bounds.Min.Y+srcY))
		}
	}

	return dst
}
