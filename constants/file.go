package constants

import (
	"path/filepath"
	"strings"
)

// Document formats accepted by the text extractor.
const (
	PDF  = "PDF"
	DOCX = "DOCX"
)

// AllowedExtensions maps a normalized resume extension to its format.
var AllowedExtensions = map[string]string{
	"pdf":  PDF,
	"docx": DOCX,
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat returns "" for extensions we cannot read.
func MapExtToFormat(ext string) string {
	return AllowedExtensions[NormalizeExt(ext)]
}

// FormatOf is MapExtToFormat applied to a path.
func FormatOf(path string) string {
	return MapExtToFormat(filepath.Ext(path))
}
