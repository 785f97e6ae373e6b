// Package format detects the encoding of documents handed to the dochub
// command.
package format

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents an input encoding.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// YAML indicates a YAML document fixture.
	YAML
	// JSON indicates a JSON document fixture.
	JSON
	// DOCX indicates a Word (.docx) package. Packages are recognized so the
	// command can reject them with a clear message; they are not read.
	DOCX
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case YAML:
		return "YAML"
	case JSON:
		return "JSON"
	case DOCX:
		return "DOCX"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case YAML:
		return ".yaml"
	case JSON:
		return ".json"
	case DOCX:
		return ".docx"
	default:
		return ""
	}
}

// IsFixture reports whether the format is a readable document fixture.
func (f Format) IsFixture() bool {
	return f == YAML || f == JSON
}

// Detect determines the format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML
	case ".json":
		return JSON
	case ".docx", ".docm", ".dotx":
		return DOCX
	default:
		return Unknown
	}
}

// zipMagic starts every ZIP archive, and so every Word package.
var zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}

// DetectFromMagic determines the format from leading bytes. ZIP archives
// are reported as Unknown; use DetectFromReader to look inside them.
func DetectFromMagic(data []byte) Format {
	if bytes.HasPrefix(data, zipMagic) {
		return Unknown
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return Unknown
	}
	switch trimmed[0] {
	case '{', '[':
		return JSON
	}
	if looksLikeYAML(trimmed) {
		return YAML
	}
	return Unknown
}

// looksLikeYAML accepts a document start marker, a comment or a top-level
// "key:" line.
func looksLikeYAML(data []byte) bool {
	line, _, _ := bytes.Cut(data, []byte("\n"))
	s := strings.TrimSpace(string(line))
	switch {
	case strings.HasPrefix(s, "---"), strings.HasPrefix(s, "#"):
		return true
	}
	key, _, ok := strings.Cut(s, ":")
	return ok && key != "" && !strings.ContainsAny(key, " \t<>{}")
}

// DetectFromReader inspects the content to determine the format. It can
// tell a Word package from other ZIP archives.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 512)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if bytes.HasPrefix(magic, zipMagic) {
		return detectZIPFormat(r, size)
	}
	return DetectFromMagic(magic), nil
}

// detectZIPFormat reports DOCX when the archive holds a word/ part.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "word/") {
			return DOCX, nil
		}
	}
	return Unknown, nil
}
