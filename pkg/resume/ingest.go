package resume

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
)

const (
	MediaTypePDF  = "application/pdf"
	MediaTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypeText = "text/plain"
)

// DefaultMaxBytes limits how much of an upload is read into memory.
const DefaultMaxBytes int64 = 15 << 20 // 15MB

var allowedMediaTypes = map[string]struct{}{
	MediaTypePDF:  {},
	MediaTypeDOCX: {},
	MediaTypeText: {},
}

var extMediaTypes = map[string]string{
	".pdf":  MediaTypePDF,
	".docx": MediaTypeDOCX,
	".txt":  MediaTypeText,
}

// AllowedMediaTypes returns the allow-list in a stable order.
func AllowedMediaTypes() []string {
	return []string{MediaTypePDF, MediaTypeDOCX, MediaTypeText}
}

// NormalizeMediaType lowercases the type and drops parameters like "; charset=utf-8".
func NormalizeMediaType(mediaType string) string {
	mt := strings.TrimSpace(mediaType)
	if parsed, _, err := mime.ParseMediaType(mt); err == nil {
		return parsed
	}
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	return strings.ToLower(strings.TrimSpace(mt))
}

// MediaTypeFromFilename maps a file extension to an allow-listed media type.
// Unknown extensions fall back to the system mime table, which the allow-list will reject.
func MediaTypeFromFilename(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if mt, ok := extMediaTypes[ext]; ok {
		return mt
	}
	if mt := mime.TypeByExtension(ext); mt != "" {
		return NormalizeMediaType(mt)
	}
	return "application/octet-stream"
}

// Ingestor validates uploads against the allow-list and encodes them.
type Ingestor struct {
	maxBytes int64
}

func NewIngestor(maxBytes int64) *Ingestor {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Ingestor{maxBytes: maxBytes}
}

// MaxBytes reports the read limit.
func (i *Ingestor) MaxBytes() int64 { return i.maxBytes }

// Accept checks the declared media type. It never touches file contents.
func (i *Ingestor) Accept(mediaType string) error {
	mt := NormalizeMediaType(mediaType)
	if _, ok := allowedMediaTypes[mt]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedType, mediaType)
	}
	return nil
}

// Read checks the media type, reads the whole upload and base64-encodes it.
func (i *Ingestor) Read(ctx context.Context, u Upload) (Document, error) {
	if err := i.Accept(u.MediaType); err != nil {
		return Document{}, err
	}
	if u.Reader == nil {
		return Document{}, fmt.Errorf("%w: no content", ErrReadFailed)
	}
	if err := ctx.Err(); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	data, err := readAtMost(u.Reader, i.maxBytes)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	return Document{
		Filename:  u.Filename,
		MediaType: NormalizeMediaType(u.MediaType),
		Base64:    Encode(data),
		Size:      int64(len(data)),
	}, nil
}

// Encode is the deterministic payload encoding used for documents.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func readAtMost(r io.Reader, max int64) ([]byte, error) {
	limited := io.LimitReader(r, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
