// Package extractor pulls plain text out of PDF statements. Bank PDFs vary
// wildly in internal structure, so extraction cascades through several
// methods and keeps the first result that reads as real statement text.
package extractor

import (
	"fmt"
	"io"
	"math"
	"os/exec"
	"sort"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// StatementText extracts the full text of a PDF statement, pages joined by
// blank lines. Returns an error when no method yields readable text, which
// usually means a scanned or custom-font PDF.
func StatementText(filePath string) (string, error) {
	text, libErr := extractWithLibrary(filePath)
	if libErr == nil && readable(text) {
		return text, nil
	}

	text, popplerErr := extractWithPdftotext(filePath)
	if popplerErr == nil && readable(text) {
		return text, nil
	}

	if libErr != nil {
		return "", fmt.Errorf("StatementText: extracting pdf text: %w", libErr)
	}
	return "", fmt.Errorf("StatementText: no readable text extracted; the PDF may be scanned or use undecodable font encodings")
}

// extractWithLibrary walks the ledongthuc/pdf extraction methods from best
// layout preservation to crudest, keeping the first readable result.
func extractWithLibrary(filePath string) (text string, err error) {
	// The library panics on some malformed PDFs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf library panicked: %v", r)
		}
	}()

	f, r, openErr := pdf.Open(filePath)
	if openErr != nil {
		return "", openErr
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return "", fmt.Errorf("pdf has no pages")
	}

	if text := joinPages(extractByRow(r, numPages)); readable(text) {
		return text, nil
	}
	if text := joinPages(extractByCoordinates(r, numPages)); readable(text) {
		return text, nil
	}
	if text := joinPages(extractByPageText(r, numPages)); readable(text) {
		return text, nil
	}
	return extractWholeDocument(r), nil
}

// extractByRow uses GetTextByRow, which preserves table layout best.
func extractByRow(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var words []string
			for _, word := range row.Content {
				words = append(words, word.S)
			}
			if line := strings.TrimSpace(strings.Join(words, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages
}

// extractByCoordinates reconstructs rows from raw text objects: group by
// rounded Y, sort rows top-to-bottom (PDF Y grows upward), sort items in a
// row left-to-right, and widen large X gaps into column separators.
func extractByCoordinates(r *pdf.Reader, numPages int) []string {
	type item struct {
		x float64
		s string
	}

	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		if len(content.Text) == 0 {
			continue
		}

		rows := make(map[int][]item)
		for _, t := range content.Text {
			if strings.TrimSpace(t.S) == "" {
				continue
			}
			y := int(math.Round(t.Y))
			rows[y] = append(rows[y], item{x: t.X, s: t.S})
		}

		ys := make([]int, 0, len(rows))
		for y := range rows {
			ys = append(ys, y)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(ys)))

		var lines []string
		for _, y := range ys {
			items := rows[y]
			sort.Slice(items, func(a, b int) bool { return items[a].x < items[b].x })

			var b strings.Builder
			var prevX float64
			for j, it := range items {
				if j > 0 && it.x-prevX > 15 {
					b.WriteString("  ")
				}
				b.WriteString(it.s)
				prevX = it.x
			}
			if line := strings.TrimSpace(b.String()); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages
}

// extractByPageText uses per-page GetPlainText with the page's font map.
func extractByPageText(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		fonts := make(map[string]*pdf.Font)
		for _, name := range page.Fonts() {
			f := page.Font(name)
			fonts[name] = &f
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}
	return pages
}

// extractWholeDocument uses Reader.GetPlainText, which takes a different
// decoding path and sometimes succeeds where per-page extraction fails.
func extractWholeDocument(r *pdf.Reader) string {
	reader, err := r.GetPlainText()
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// extractWithPdftotext shells out to poppler-utils as a last resort for PDFs
// the Go library cannot decode.
func extractWithPdftotext(filePath string) (string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return "", fmt.Errorf("pdftotext not available: %w", err)
	}
	out, err := exec.Command("pdftotext", "-layout", filePath, "-").Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext failed: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

func joinPages(pages []string) string {
	return strings.TrimSpace(strings.Join(pages, "\n\n"))
}

// statementWords are terms virtually every bank statement contains in some
// form. Extracted text containing none of them is treated as garbage.
var statementWords = []string{
	"account", "balance", "statement", "date", "amount", "payment",
	"transaction", "credit", "debit", "total", "bank", "card",
	"opening", "closing", "period", "page", "number",
}

// readable reports whether extracted text looks like decoded statement text
// rather than binary garbage: enough length, a high share of plain ASCII
// characters, and at least one expected statement word.
func readable(text string) bool {
	if len(strings.TrimSpace(text)) <= 50 {
		return false
	}
	if asciiRatio(text) <= 0.6 {
		return false
	}
	lower := strings.ToLower(text)
	for _, word := range statementWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// asciiRatio measures readable ASCII density. Strict by intent:
// unicode.IsLetter accepts the accented garbage identity-encoded fonts
// produce.
func asciiRatio(text string) float64 {
	total, ok := 0, 0
	for _, r := range text {
		total++
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			ok++
		case unicode.IsSpace(r):
			ok++
		case strings.ContainsRune(`.,-/:;()'"$%&@#!?+=*`, r), r == '£', r == '€':
			ok++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(ok) / float64(total)
}
