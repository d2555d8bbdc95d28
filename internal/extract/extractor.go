package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joseph-ayodele/onboarding-agent/constants"
	"github.com/joseph-ayodele/onboarding-agent/internal/common"
)

// Extractor reads resume documents from disk.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract picks a strategy based on file extension. Unknown extensions fail
// with *common.UnsupportedFormatError without touching the file.
func (e *Extractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	format := constants.MapExtToFormat(ext)
	if format == "" {
		e.logger.Error("extract.unsupported_extension", "path", path, "extension", ext)
		return TextExtractionResult{}, &common.UnsupportedFormatError{Path: path, Ext: filepath.Ext(path)}
	}
	if err := ctx.Err(); err != nil {
		return TextExtractionResult{}, err
	}
	if _, err := os.Stat(path); err != nil {
		return TextExtractionResult{}, err
	}

	e.logger.Debug("extract.start", "path", path, "format", format)

	res := TextExtractionResult{SourceType: format}
	switch format {
	case constants.PDF:
		text, pages, warns, err := pdfToText(path)
		if err != nil {
			return res, err
		}
		res.Text, res.Pages, res.Warnings, res.Method = text, pages, warns, "pdf-text"
	case constants.DOCX:
		text, err := docxToText(path)
		if err != nil {
			return res, err
		}
		res.Text, res.Method = text, "docx-xml"
	default:
		return res, fmt.Errorf("no extractor for format %s", format)
	}

	res.Text = strings.TrimSpace(res.Text)
	res.Duration = time.Since(start)
	e.logger.Info("extract.ok",
		"path", path,
		"format", format,
		"pages", res.Pages,
		"chars", len(res.Text),
		"warnings", len(res.Warnings),
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
