// Package document models the source training document handed to the
// generation pipeline. Text extraction and summarization live upstream;
// this package only carries bytes, sniffs the MIME type, and enforces the
// size guards the pipeline checks before spending a model call.
package document

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultMaxBytes is the ceiling on source document size. Documents above
// it are rejected before any model call.
const DefaultMaxBytes = 50 << 20 // 50 MB

// ErrEmpty indicates a zero-byte source document.
var ErrEmpty = errors.New("document is empty")

// ErrTooLarge indicates the document exceeds the configured byte ceiling.
var ErrTooLarge = errors.New("document exceeds size limit")

// Source is an in-memory training document.
type Source struct {
	Name     string
	Data     []byte
	MIMEType string
}

// ReadFile loads a document from disk, sniffing its MIME type from content.
func ReadFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return New(filepath.Base(path), data)
}

// New builds a Source from raw bytes, applying the default size guards.
func New(name string, data []byte) (*Source, error) {
	src := &Source{
		Name:     name,
		Data:     data,
		MIMEType: mimetype.Detect(data).String(),
	}
	if err := src.CheckSize(DefaultMaxBytes); err != nil {
		return nil, err
	}
	return src, nil
}

// CheckSize validates the document against the given byte ceiling.
func (s *Source) CheckSize(maxBytes int) error {
	if len(s.Data) == 0 {
		return ErrEmpty
	}
	if maxBytes > 0 && len(s.Data) > maxBytes {
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrTooLarge, len(s.Data), maxBytes)
	}
	return nil
}

// Key derives the stable cache identity for this document: a hex SHA-256
// over content plus MIME type. Byte-identical documents with the same MIME
// type always produce the same key.
func (s *Source) Key() string {
	h := sha256.New()
	h.Write(s.Data)
	h.Write([]byte(s.MIMEType))
	return hex.EncodeToString(h.Sum(nil))
}
