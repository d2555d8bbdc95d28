package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfToText concatenates the plain text of every page.
func pdfToText(path string) (text string, pages int, warnings []string, err error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, nil, fmt.Errorf("failed to read pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	pages = r.NumPage()
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		t, err := page.GetPlainText(nil)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("page %d: %v", i, err))
			continue
		}
		b.WriteString(t)
		b.WriteString("\n")
	}
	return b.String(), pages, warnings, nil
}
