package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Document is a parsed file reduced to normalized analysis text. Headings
// appear as leading-# lines at their original depth so the section extractor
// sees one canonical format regardless of the source file type.
type Document struct {
	Title string
	Text  string
}

// Parser converts raw document bytes into normalized analysis text.
type Parser interface {
	Parse(r io.Reader, filename string) (*Document, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// writer accumulates normalized analysis text.
type writer struct {
	buf strings.Builder
}

// Heading emits a #-marked heading line at the given level.
func (w *writer) Heading(level int, title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	if w.buf.Len() > 0 {
		w.buf.WriteString("\n\n")
	}
	w.buf.WriteString(strings.Repeat("#", level))
	w.buf.WriteByte(' ')
	w.buf.WriteString(title)
}

// Paragraph emits a body paragraph.
func (w *writer) Paragraph(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if w.buf.Len() > 0 {
		w.buf.WriteString("\n\n")
	}
	w.buf.WriteString(text)
}

func (w *writer) String() string {
	return w.buf.String()
}

func titleFromFilename(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
