package detect

import (
	"strings"
	"testing"
)

func TestExtractHolderName_DirectLabel(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"card member", "Card Member: JOHN DOE", "JOHN DOE"},
		{"account holder", "Account Holder: Jane Smith", "Jane Smith"},
		{"name label", "Name: Robert Brown Jr.", "Robert Brown Jr."},
		{"beneficiary", "Beneficiary: MARIA GARCIA", "MARIA GARCIA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractHolderName(tt.text); got != tt.want {
				t.Errorf("extractHolderName(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractHolderName_AddressBlock(t *testing.T) {
	text := "JOHN DOE\n123 MAIN ST\nSEATTLE WA 98101"
	if got := extractHolderName(text); got != "JOHN DOE" {
		t.Errorf("extractHolderName = %q, want %q", got, "JOHN DOE")
	}
}

func TestExtractHolderName_NeverInstitution(t *testing.T) {
	// The line above the account number is an institution name; it must not
	// be taken as the holder.
	text := "Chase Bank\nAccount Number: 4421"
	if got := extractHolderName(text); got != "" {
		t.Errorf("extractHolderName = %q, want empty", got)
	}
}

func TestExtractHolderName_NeverAddressLine(t *testing.T) {
	// A state abbreviation marks the candidate as an address fragment.
	text := "Card Member: SEATTLE WA"
	if got := extractHolderName(text); got != "" {
		t.Errorf("extractHolderName = %q, want empty", got)
	}
}

func TestExtractHolderName_DirectBeatsContextual(t *testing.T) {
	text := strings.Join([]string{
		"JANE ROE",
		"456 OAK AVENUE",
		"PORTLAND OR 97201",
		"Card Member: JOHN DOE",
	}, "\n")
	if got := extractHolderName(text); got != "JOHN DOE" {
		t.Errorf("extractHolderName = %q, want %q", got, "JOHN DOE")
	}
}

func TestExtractHolderName_Empty(t *testing.T) {
	for _, text := range []string{"", "Statement Period 01/01 - 01/31", "Date Description Amount"} {
		if got := extractHolderName(text); got != "" {
			t.Errorf("extractHolderName(%q) = %q, want empty", text, got)
		}
	}
}

func TestExtractHolderName_ScanBound(t *testing.T) {
	filler := strings.Repeat("lorem ipsum dolor sit amet\n", 500)

	if got := extractHolderName(filler + "Card Member: JOHN DOE"); got != "" {
		t.Errorf("extractHolderName = %q, want empty for a label beyond the scan bound", got)
	}
	if got := extractHolderName("Card Member: JOHN DOE\n" + filler); got != "JOHN DOE" {
		t.Errorf("extractHolderName = %q, want %q", got, "JOHN DOE")
	}
}

func TestValidateHolderName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "John Doe", "John Doe"},
		{"all caps", "JOHN DOE", "JOHN DOE"},
		{"suffix keeps period", "John Doe Jr.", "John Doe Jr."},
		{"trailing punct stripped", "Jane Smith,", "Jane Smith"},
		{"cut at context marker", "JOHN DOE Account Number 1234", "JOHN DOE"},
		{"too short", "J", ""},
		{"date rejected", "01/15/2024", ""},
		{"phone rejected", "1-800-555-1234", ""},
		{"column header rejected", "Description Amount", ""},
		{"lowercase word rejected", "john statement holder", ""},
		{"url rejected", "www.example.com", ""},
		{"slash rejected", "JOHN/DOE", ""},
		{"too many words", "A B C D E F G", ""},
		{"agreement rejected", "Cardmember Agreement for details", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validateHolderName(tt.in); got != tt.want {
				t.Errorf("validateHolderName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
