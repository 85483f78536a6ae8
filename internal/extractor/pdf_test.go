package extractor

import (
	"strings"
	"testing"
)

func TestReadable(t *testing.T) {
	statement := strings.Repeat("Date Description Amount Balance ", 4)

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"statement text", statement, true},
		{"too short", "Balance", false},
		{"no statement vocabulary", strings.Repeat("lorem ipsum dolor sit amet ", 4), false},
		{"mostly binary", strings.Repeat("\x01\x02\x03\x04", 40) + " balance", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readable(tt.text); got != tt.want {
				t.Errorf("readable(%q...) = %v, want %v", tt.text[:min(20, len(tt.text))], got, tt.want)
			}
		})
	}
}

func TestJoinPages(t *testing.T) {
	if got := joinPages([]string{"page one", "page two"}); got != "page one\n\npage two" {
		t.Errorf("joinPages = %q", got)
	}
	if got := joinPages(nil); got != "" {
		t.Errorf("joinPages(nil) = %q, want empty", got)
	}
}

func TestStatementText_MissingFile(t *testing.T) {
	if _, err := StatementText("/nonexistent/statement.pdf"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
