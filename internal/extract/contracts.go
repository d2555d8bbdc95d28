package extract

import (
	"context"
	"time"
)

// TextExtractor is Stage 1: file -> text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      int    // 0 when the format has no page notion (DOCX)
	SourceType string // constants.PDF | constants.DOCX
	Method     string // "pdf-text" | "docx-xml"
	Duration   time.Duration
	Warnings   []string
}
