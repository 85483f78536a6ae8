package detect

import "strings"

// headerWindowLines is how much of a statement counts as "header" for
// identity extraction. Statements put account info up top, but some issuers
// repeat the card name near the cardholder agreement, so the window extends
// to cover that section when it sits further down.
const (
	headerWindowLines       = 300
	agreementLinesBefore    = 50
	agreementLinesAfter     = 150
	sectionSplitThreshold   = 2
	transactionTableMinCols = 3
)

// containsColumnWord reports whether the line contains keyword as a
// standalone column word (exact line, or space-delimited inside it).
func containsColumnWord(line, keyword string) bool {
	if !strings.Contains(line, keyword) {
		return false
	}
	return line == keyword ||
		strings.HasPrefix(line, keyword+" ") ||
		strings.HasSuffix(line, " "+keyword) ||
		strings.Contains(line, " "+keyword+" ")
}

// splitSections divides statement text into a header section (everything
// before the transaction table) and a transaction section (the table and
// after). A line naming 2+ transaction columns marks the table start.
func splitSections(text string) (header, transactions string) {
	if text == "" {
		return "", ""
	}

	var headerLines, txLines []string
	inTransactions := false
	for _, line := range strings.Split(text, "\n") {
		if !inTransactions {
			lower := strings.ToLower(strings.TrimSpace(line))
			cols := 0
			for _, kw := range transactionColumnKeywords {
				if containsColumnWord(lower, kw) {
					cols++
				}
			}
			if cols >= sectionSplitThreshold {
				inTransactions = true
			}
		}
		if inTransactions {
			txLines = append(txLines, line)
		} else {
			headerLines = append(headerLines, line)
		}
	}
	return strings.TrimSpace(strings.Join(headerLines, "\n")),
		strings.TrimSpace(strings.Join(txLines, "\n"))
}

// IsTransactionTableHeaders reports whether a header row describes
// transaction data rather than account metadata. Three or more recognized
// transaction columns qualify.
func IsTransactionTableHeaders(headers []string) bool {
	if len(headers) == 0 {
		return false
	}

	cols := 0
	for _, kw := range tableColumnKeywords {
		for _, h := range headers {
			lower := strings.ToLower(strings.TrimSpace(h))
			if containsColumnWord(lower, kw) {
				cols++
				break
			}
		}
	}
	return cols >= transactionTableMinCols
}

// headerWindow extracts the header portion of PDF text: the first 300 lines,
// extended through the service/cardholder agreement section when one appears
// (50 lines before the section heading to 150 after).
func headerWindow(pdfText string) string {
	if pdfText == "" {
		return ""
	}

	lines := strings.Split(pdfText, "\n")
	defaultLines := headerWindowLines
	if len(lines) < defaultLines {
		defaultLines = len(lines)
	}

	var b strings.Builder
	b.WriteString(strings.Join(lines[:defaultLines], "\n"))

	sectionStart := -1
	for i, line := range lines {
		lower := strings.ToLower(strings.TrimSpace(line))
		for _, kw := range agreementSectionKeywords {
			if strings.Contains(lower, kw) {
				sectionStart = i
				break
			}
		}
		if sectionStart >= 0 {
			break
		}
	}

	if sectionStart >= 0 {
		from := sectionStart - agreementLinesBefore
		if from < 0 {
			from = 0
		}
		to := sectionStart + agreementLinesAfter
		if to > len(lines) {
			to = len(lines)
		}
		if from > defaultLines {
			b.WriteString("\n\n")
			b.WriteString(strings.Join(lines[from:to], "\n"))
		} else if to > defaultLines {
			b.WriteString("\n\n")
			b.WriteString(strings.Join(lines[defaultLines:to], "\n"))
		}
	}

	return b.String()
}
