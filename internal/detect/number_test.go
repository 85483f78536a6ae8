package detect

import "testing"

func TestExtractAccountNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"labeled with separator", "Account Number ending in: 8-41007", "1007"},
		{"plain label", "Account Number: 1234", "1234"},
		{"masked card", "Card Number: **** **** **** 4421", "4421"},
		{"acct shorthand", "Acct No. 987654", "7654"},
		{"last four label", "Last 4 digits: 5566", "5566"},
		{"card ending", "Card ending in 9921", "9921"},
		{"spaced groups", "Account number: 1234 5678 9012 3456", "3456"},
		{"no label", "statement for January 2024", ""},
		{"too few digits", "Account Number: 12", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractAccountNumber(tt.text); got != tt.want {
				t.Errorf("extractAccountNumber(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractCardNumber(t *testing.T) {
	if got := extractCardNumber("Card ending in **** 7788"); got != "7788" {
		t.Errorf("extractCardNumber = %q, want %q", got, "7788")
	}
	// The card pattern must not fire on plain account labels.
	if got := extractCardNumber("Account Number: 1234"); got != "" {
		t.Errorf("extractCardNumber = %q, want empty", got)
	}
}

func TestNormalizeNumberForMatching(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"8-41007", "1007"},
		{"841007", "1007"},
		{"8 41007", "1007"},
		{"1234", "1234"},
		{"12", "12"},
		{"", ""},
		{"   ", ""},
		{"abc", ""},
	}
	for _, tt := range tests {
		if got := normalizeNumberForMatching(tt.in); got != tt.want {
			t.Errorf("normalizeNumberForMatching(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
