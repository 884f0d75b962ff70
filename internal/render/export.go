package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format selects an export writer.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
	FormatText Format = "text"
)

// ParseFormat accepts pdf, html or text (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPDF, FormatHTML, FormatText:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Extension is the file extension for f, dot included.
func (f Format) Extension() string {
	switch f {
	case FormatPDF:
		return ".pdf"
	case FormatHTML:
		return ".html"
	}
	return ".txt"
}

// Write renders v in format f.
func Write(w io.Writer, f Format, title string, v View) error {
	switch f {
	case FormatPDF:
		return WritePDF(w, title, v)
	case FormatHTML:
		return WriteHTML(w, title, v)
	case FormatText:
		return WriteText(w, v)
	}
	return fmt.Errorf("unknown export format %q", f)
}

// WriteFile renders v into path, creating parent directories.
func WriteFile(path string, f Format, title string, v View) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	if err := Write(file, f, title, v); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close export: %w", err)
	}
	return nil
}
