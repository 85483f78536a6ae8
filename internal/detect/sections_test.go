package detect

import (
	"strings"
	"testing"
)

func TestSplitSections(t *testing.T) {
	text := strings.Join([]string{
		"Wells Fargo Everyday Checking",
		"Account Number: 9876",
		"Date Description Amount",
		"01/02 COFFEE SHOP 4.50",
	}, "\n")

	header, transactions := splitSections(text)

	if !strings.Contains(header, "Wells Fargo") {
		t.Errorf("header missing institution line: %q", header)
	}
	if strings.Contains(header, "COFFEE SHOP") {
		t.Errorf("header contains transaction row: %q", header)
	}
	if !strings.HasPrefix(transactions, "Date Description Amount") {
		t.Errorf("transactions should start at the column line: %q", transactions)
	}
}

func TestSplitSections_NoTable(t *testing.T) {
	header, transactions := splitSections("Chase Sapphire Reserve\nAccount Number: 4421")
	if transactions != "" {
		t.Errorf("transactions = %q, want empty", transactions)
	}
	if !strings.Contains(header, "Sapphire") {
		t.Errorf("header = %q", header)
	}
}

func TestSplitSections_SingleColumnWordStaysHeader(t *testing.T) {
	// One column keyword is not enough to open the transaction section.
	header, transactions := splitSections("Statement date January 2024\nChase Freedom")
	if transactions != "" {
		t.Errorf("transactions = %q, want empty", transactions)
	}
	if !strings.Contains(header, "Chase Freedom") {
		t.Errorf("header = %q", header)
	}
}

func TestIsTransactionTableHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    bool
	}{
		{"classic table", []string{"Date", "Description", "Amount", "Balance", "Type"}, true},
		{"three columns", []string{"Posting Date", "Amount", "Description"}, true},
		{"metadata headers", []string{"Account Name: My Checking", "Account Number: 1234"}, false},
		{"two columns only", []string{"Date", "Amount"}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransactionTableHeaders(tt.headers); got != tt.want {
				t.Errorf("IsTransactionTableHeaders(%v) = %v, want %v", tt.headers, got, tt.want)
			}
		})
	}
}

func TestHeaderWindow_ExtendsToAgreementSection(t *testing.T) {
	var lines []string
	for i := 0; i < 400; i++ {
		lines = append(lines, "filler line")
	}
	lines = append(lines, "Cardmember Agreement")
	lines = append(lines, "Chase Sapphire Reserve")
	text := strings.Join(lines, "\n")

	window := headerWindow(text)
	if !strings.Contains(window, "Chase Sapphire Reserve") {
		t.Error("header window should extend through the agreement section")
	}
}

func TestHeaderWindow_Truncates(t *testing.T) {
	var lines []string
	for i := 0; i < 400; i++ {
		lines = append(lines, "filler")
	}
	lines = append(lines, "TRAILING CONTENT")
	window := headerWindow(strings.Join(lines, "\n"))
	if strings.Contains(window, "TRAILING CONTENT") {
		t.Error("header window should stop at the default line count")
	}
}
