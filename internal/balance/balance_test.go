package balance

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func newTestExtractor() *Extractor {
	return NewExtractor(zerolog.Nop())
}

func assertBalance(t *testing.T, got *decimal.Decimal, want string) {
	t.Helper()
	if got == nil {
		t.Fatalf("balance = nil, want %s", want)
	}
	if w := decimal.RequireFromString(want); !got.Equal(w) {
		t.Errorf("balance = %s, want %s", got, w)
	}
}

func TestExtractCreditCardBalance(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"discover first amount", "New Balance: 1,234.56 see reverse for details", "1234.56"},
		{"dollar amount", "New Balance: $1,234.56", "1234.56"},
		{"parenthesized negative", "New Balance: ($50.00)", "-50"},
		{"amount due label", "Amount Due: 300.00 Statement Balance: 200.00", "300"},
		{"spanish label", "Saldo Actual: 1.234,56", "1234.56"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertBalance(t, newTestExtractor().ExtractCreditCardBalance(tt.text), tt.want)
		})
	}
}

func TestExtractCreditCardBalance_None(t *testing.T) {
	e := newTestExtractor()
	for _, text := range []string{
		"",
		"Transactions for January",
		"New Balance: 9999999999999.99",
	} {
		if got := e.ExtractCreditCardBalance(text); got != nil {
			t.Errorf("ExtractCreditCardBalance(%q) = %s, want nil", text, got)
		}
	}
}

func TestExtractDepositoryBalance(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"available balance", "Available Balance: $2,500.00", "2500"},
		{"indian grouping", "Balance: 12,34,567.89", "1234567.89"},
		{"plain balance", "Balance 750.25", "750.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertBalance(t, newTestExtractor().ExtractDepositoryBalance(tt.text), tt.want)
		})
	}
}

func TestExtractDepositoryBalance_SearchWindow(t *testing.T) {
	// Depository labels only count near the top of the statement.
	text := strings.Repeat("x ", 1200) + "Available Balance: $5.00"
	if got := newTestExtractor().ExtractDepositoryBalance(text); got != nil {
		t.Errorf("ExtractDepositoryBalance = %s, want nil", got)
	}
}

func TestExtractFromHeaders(t *testing.T) {
	e := newTestExtractor()

	assertBalance(t, e.ExtractFromHeaders([]string{"New Balance: $100.00"}, "credit"), "100")
	assertBalance(t, e.ExtractFromHeaders([]string{"Available Balance: $2,500.00"}, "depository"), "2500")

	// Unknown type tries credit labels first, then depository.
	assertBalance(t, e.ExtractFromHeaders([]string{"New Balance: $100.00"}, ""), "100")
	assertBalance(t, e.ExtractFromHeaders([]string{"Ledger Balance: 42.00"}, ""), "42")

	if got := e.ExtractFromHeaders(nil, "credit"); got != nil {
		t.Errorf("ExtractFromHeaders(nil) = %s, want nil", got)
	}
}

func TestExtractFromTransactionValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "1,000.00", "1000"},
		{"parens negative", "(1,000.00)", "-1000"},
		{"credit suffix", "500.00 CR", "500"},
		{"debit suffix", "500.00 DR", "-500"},
		{"leading minus", "-250.00", "-250"},
		{"currency symbol", "$99.95", "99.95"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertBalance(t, newTestExtractor().ExtractFromTransactionValue(tt.in), tt.want)
		})
	}
}

func TestExtractFromTransactionValue_Invalid(t *testing.T) {
	e := newTestExtractor()
	for _, in := range []string{"", "   ", "pending"} {
		if got := e.ExtractFromTransactionValue(in); got != nil {
			t.Errorf("ExtractFromTransactionValue(%q) = %s, want nil", in, got)
		}
	}
}

func TestNormalizeNumberFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1234", "1234"},
		{"1,234.56", "1234.56"},
		{"1.234,56", "1234.56"},
		{"1,234", "1234"},
		{"1,23", "1.23"},
		{"12,34,567.89", "1234567.89"},
		{"1.234.567", "1234567"},
		{"123.45", "123.45"},
		{"1 234,56", "1234.56"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeNumberFormat(tt.in); got != tt.want {
			t.Errorf("normalizeNumberFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAccountTypePredicates(t *testing.T) {
	for _, in := range []string{"credit", "creditcard", "credit_card", "credit card"} {
		if !isCreditCardType(in) {
			t.Errorf("isCreditCardType(%q) = false, want true", in)
		}
	}
	for _, in := range []string{"checking", "savings", "depository", "money_market"} {
		if !isDepositoryType(in) {
			t.Errorf("isDepositoryType(%q) = false, want true", in)
		}
	}
	if isCreditCardType("checking") || isDepositoryType("credit") {
		t.Error("type predicates overlap")
	}
}
