// Package ingestion reads resume documents from disk and turns HTML into plain text.
//
// Binary containers such as PDF and DOCX are decoded by external tools; this
// package rejects them with an UnsupportedFormatError.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies how a document's bytes are turned into text.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

var formatsByExtension = map[string]Format{
	".txt":      FormatText,
	".text":     FormatText,
	".md":       FormatText,
	".markdown": FormatText,
	".html":     FormatHTML,
	".htm":      FormatHTML,
}

// Document is the cleaned text of one input file.
type Document struct {
	Path     string
	Text     string
	Metadata *Metadata
}

// UnsupportedFormatError is returned for files whose extension has no text decoder.
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	ext := e.Extension
	if ext == "" {
		ext = "(none)"
	}
	return fmt.Sprintf("unsupported file format %s for %s: convert PDF or DOCX documents to text first", ext, e.Path)
}

// ReadError wraps I/O and decoding failures.
type ReadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("read error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("read error for %s: %s", e.Path, e.Message)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

// DetectFormat returns the format for path based on its extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := formatsByExtension[ext]
	if !ok {
		return "", &UnsupportedFormatError{Path: path, Extension: ext}
	}
	return format, nil
}

// ReadDocument reads path, decodes it according to its extension and returns
// the cleaned text with metadata.
func ReadDocument(path string) (*Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ReadError{Path: path, Message: "file not found", Cause: err}
		}
		return nil, &ReadError{Path: path, Message: "failed to read file", Cause: err}
	}

	text, err := Decode(string(content), format)
	if err != nil {
		return nil, &ReadError{Path: path, Message: "failed to decode document", Cause: err}
	}

	return &Document{
		Path:     path,
		Text:     text,
		Metadata: NewMetadata(text, path, format, len(content)),
	}, nil
}

// Decode turns raw content of the given format into cleaned text.
func Decode(content string, format Format) (string, error) {
	switch format {
	case FormatHTML:
		text, err := HTMLToText(content)
		if err != nil {
			return "", err
		}
		return CleanText(text), nil
	case FormatText:
		return CleanText(content), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
