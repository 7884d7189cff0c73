// Package storage persists uploaded media and maps it to public URLs.
package storage

import (
	"bytes"
	"context"
	"io"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

const (
	fallbackBase    = "asset"
	octetStream     = "application/octet-stream"
	sniffHeaderSize = 3072
)

var (
	unsafeBaseChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	unsafeExtChars  = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// Upload describes a stored file.
type Upload struct {
	URL      string
	Filename string
	Size     int64
	MimeType string
}

// Store saves and removes uploaded files. Implementations must treat deleting an
// already-missing file as success.
type Store interface {
	Save(ctx context.Context, r io.Reader, originalName, contentType string) (Upload, error)
	Delete(ctx context.Context, url string) error
	Owns(url string) bool
}

// Filename builds the stored name for an upload: the sanitized original basename, a
// millisecond timestamp and the extension, all lower-cased. When the original name has no
// extension one is inferred from contentType.
func Filename(originalName, contentType string, now time.Time) string {
	name := path.Base(strings.ReplaceAll(originalName, `\`, "/"))
	if name == "." || name == "/" {
		name = ""
	}
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	ext = unsafeExtChars.ReplaceAllString(strings.TrimPrefix(ext, "."), "")
	if ext == "" {
		ext = extensionFor(contentType)
	}

	base = unsafeBaseChars.ReplaceAllString(base, "")
	if base == "" {
		base = fallbackBase
	}

	filename := base + "-" + strconv.FormatInt(now.UnixMilli(), 10)
	if ext != "" {
		filename += "." + ext
	}
	return strings.ToLower(filename)
}

func extensionFor(contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")
	mediaType = strings.TrimSpace(mediaType)
	if mediaType == "" || mediaType == octetStream {
		return ""
	}
	if known := mimetype.Lookup(mediaType); known != nil && known.Extension() != "" {
		return strings.TrimPrefix(known.Extension(), ".")
	}
	_, subtype, ok := strings.Cut(mediaType, "/")
	if !ok {
		return ""
	}
	return unsafeExtChars.ReplaceAllString(subtype, "")
}

// DetectContentType returns declared unless it is empty or generic, in which case the
// type is sniffed from the first bytes of r. The returned reader yields the full content.
func DetectContentType(r io.Reader, declared string) (string, io.Reader, error) {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != octetStream {
		return declared, r, nil
	}

	header := make([]byte, sniffHeaderSize)
	n, err := io.ReadFull(r, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", nil, err
	}
	header = header[:n]

	detected := mimetype.Detect(header).String()
	mediaType, _, _ := strings.Cut(detected, ";")
	return mediaType, io.MultiReader(bytes.NewReader(header), r), nil
}
