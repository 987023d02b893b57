package parser

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docoutline/internal/heading"
	"github.com/dgallion1/docoutline/internal/outline"
)

// Parser extracts a heading outline from raw document bytes.
type Parser interface {
	Parse(ctx context.Context, r io.Reader, filename string) (*outline.Result, error)
}

// SupportedExtensions lists file extensions this service can handle.
// PDF goes through the geometry analysis pipeline; the other formats carry
// explicit heading structure and map to an outline directly.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".docx":     true,
	".html":     true,
	".htm":      true,
	".md":       true,
	".markdown": true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string, opts heading.Options) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFParser{Opts: opts}, nil
	case ".docx":
		return &DOCXParser{Opts: opts}, nil
	case ".html", ".htm":
		return &HTMLParser{Opts: opts}, nil
	case ".md", ".markdown":
		return &MarkdownParser{Opts: opts}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
