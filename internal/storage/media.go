package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrUnsupportedType = errors.New("unsupported media type")
	ErrTooLarge        = errors.New("file is too large")
	ErrEmptyFile       = errors.New("file is empty")
)

// AllowedExtensions is what the upload form offers. The backend decides what
// it actually accepts.
var AllowedExtensions = []string{".png", ".jpg", ".jpeg", ".mp4", ".avi", ".mov", ".mkv", ".webm"}

var extensionTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".mp4":  "video/mp4",
	".avi":  "video/x-msvideo",
	".mov":  "video/quicktime",
	".mkv":  "video/x-matroska",
	".webm": "video/webm",
}

type Media struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

func IsAllowedExtension(fileName string) bool {
	return slices.Contains(AllowedExtensions, strings.ToLower(filepath.Ext(fileName)))
}

// LoadMedia reads a local file for upload. maxSize <= 0 disables the size check.
func LoadMedia(path string, maxSize int64) (*Media, error) {
	path = strings.TrimSpace(path)
	fileName := filepath.Base(path)

	if !IsAllowedExtension(fileName) {
		return nil, fmt.Errorf("%w: %s (allowed: %s)", ErrUnsupportedType, fileName, strings.Join(AllowedExtensions, ", "))
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, fileName)
	}
	if maxSize > 0 && info.Size() > maxSize {
		return nil, fmt.Errorf("%w: %s is %s (max %s)", ErrTooLarge, fileName,
			humanize.IBytes(uint64(info.Size())), humanize.IBytes(uint64(maxSize)))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	return &Media{
		Name:        fileName,
		ContentType: detectContentType(fileName, data),
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}

func detectContentType(fileName string, data []byte) string {
	detected := mimetype.Detect(data)
	if detected.Is("application/octet-stream") || detected.Is("text/plain") {
		if byExt, ok := extensionTypes[strings.ToLower(filepath.Ext(fileName))]; ok {
			return byExt
		}
		return "application/octet-stream"
	}
	return detected.String()
}
