package detect

import (
	"strings"
	"testing"
)

func TestExtractProductName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "sapphire reserve line",
			text: "Chase Sapphire Reserve\nAccount Number: **** 4421",
			want: "Chase Sapphire Reserve",
		},
		{
			name: "prime visa phrasing",
			text: "Thank you for choosing your prime visa",
			want: "Prime Visa",
		},
		{
			name: "amazon prime visa phrasing",
			text: "amazon prime visa card",
			want: "Amazon Prime Visa",
		},
		{
			name: "thank you phrasing",
			text: "Thank you for using your Citi Double Cash card",
			want: "Citi Double Cash",
		},
		{
			name: "no product",
			text: "Statement Period 01/01 - 01/31",
			want: "",
		},
		{
			name: "empty",
			text: "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractProductName(tt.text); got != tt.want {
				t.Errorf("extractProductName(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractProductName_SkipsContactLines(t *testing.T) {
	// Institution mentions inside contact blocks are boilerplate, not
	// product names.
	text := strings.Join([]string{
		"Write us at Chase Card Services",
		"P.O. Box 15298 Wilmington DE 19850",
		"Chase Sapphire Preferred",
	}, "\n")
	got := extractProductName(text)
	if !strings.Contains(got, "Sapphire Preferred") {
		t.Errorf("extractProductName = %q, want the Sapphire Preferred line", got)
	}
	if strings.Contains(got, "Write us") || strings.Contains(got, "Box") {
		t.Errorf("extractProductName picked a contact line: %q", got)
	}
}

func TestExtractProductName_RewardPhrase(t *testing.T) {
	text := "Reward your routine everywhere you shop with your Freedom Unlimited card."
	if got := extractProductName(text); got != "Freedom Unlimited" {
		t.Errorf("extractProductName = %q, want %q", got, "Freedom Unlimited")
	}

	// The capture must carry card product vocabulary; marketing filler that
	// happens to follow the same phrasing does not count.
	noCard := "Reward your routine everywhere you shop with your statement credits."
	if got := extractProductName(noCard); got != "" {
		t.Errorf("extractProductName = %q, want empty", got)
	}
}

func TestExtractProductName_ScanBound(t *testing.T) {
	filler := strings.Repeat("lorem ipsum dolor sit amet\n", 500)

	if got := extractProductName(filler + "Chase Sapphire Reserve"); got != "" {
		t.Errorf("extractProductName = %q, want empty for a line beyond the scan bound", got)
	}
	if got := extractProductName("Chase Sapphire Reserve\n" + filler); got != "Chase Sapphire Reserve" {
		t.Errorf("extractProductName = %q, want %q", got, "Chase Sapphire Reserve")
	}
}

func TestExtractProductName_SkipsURLLines(t *testing.T) {
	text := "Visit www.chase.com to activate your card"
	if got := extractProductName(text); got != "" {
		t.Errorf("extractProductName = %q, want empty", got)
	}
}

func TestPickRankedProduct_PrefersSpecific(t *testing.T) {
	candidates := []productCandidate{
		{name: "Chase Platinum Services", indicator: "platinum"},
		{name: "Chase Sapphire Reserve", indicator: "sapphire reserve"},
	}
	if got := pickRankedProduct(candidates); got != "Chase Sapphire Reserve" {
		t.Errorf("pickRankedProduct = %q, want %q", got, "Chase Sapphire Reserve")
	}
}

func TestCapitalizeCardName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"prime visa", "Prime Visa"},
		{"amazon prime visa", "Amazon Prime Visa"},
		{"prime rewards visa", "Prime Rewards Visa"},
		{"prime visa signature", "Prime Visa Signature"},
		{"double cash card", "Double Cash Card"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := capitalizeCardName(tt.in); got != tt.want {
			t.Errorf("capitalizeCardName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsValidCardProductName(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Freedom Unlimited", true},
		{"Prime Visa", true},
		{"Cash Back", true},
		{"statement credits", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isValidCardProductName(tt.in); got != tt.want {
			t.Errorf("isValidCardProductName(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsValidProductName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"valid", "Chase Freedom Unlimited", true},
		{"lowercase product words allowed", "Sapphire reserve", true},
		{"too short", "ab", false},
		{"too many words", "One Two Three Four Five Six Seven Eight", false},
		{"boilerplate phrase", "Please see your statement", false},
		{"zip code", "Wilmington DE 19850", false},
		{"email", "support@chase.com", false},
		{"phone", "1-800-555-1234", false},
		{"lowercase sentence", "activate your benefits today", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isValidProductName(tt.in); got != tt.want {
				t.Errorf("isValidProductName(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
