package detect

import (
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Account types used across the detection pipeline. Subtypes use a small
// closed vocabulary ("checking", "savings", "credit card").
const (
	TypeDepository = "depository"
	TypeCredit     = "credit"
	TypeLoan       = "loan"
	TypeInvestment = "investment"

	SubtypeChecking   = "checking"
	SubtypeSavings    = "savings"
	SubtypeCreditCard = "credit card"
)

// DetectedAccount holds the identity metadata inferred from one input
// (filename, PDF text, or header row). Empty string fields mean the signal
// was absent; numeric fields hold at most the last 4 digits.
type DetectedAccount struct {
	AccountNumber     string `json:"account_number,omitempty"`
	InstitutionName   string `json:"institution_name,omitempty"`
	AccountName       string `json:"account_name,omitempty"`
	AccountType       string `json:"account_type,omitempty"`
	AccountSubtype    string `json:"account_subtype,omitempty"`
	CardNumber        string `json:"card_number,omitempty"`
	MatchedAccountID  string `json:"matched_account_id,omitempty"`
	AccountHolderName string `json:"account_holder_name,omitempty"`

	Balance     *decimal.Decimal `json:"balance,omitempty"`
	BalanceDate *civil.Date      `json:"balance_date,omitempty"`
}

// AccountDisplayName builds a human-readable account name from the detected
// parts: institution, then subtype (or type when no subtype), then the last 4
// digits. Returns "Unknown Account" when every part is empty.
func AccountDisplayName(institution, accountType, subtype, accountNumber string) string {
	var parts []string
	if institution != "" {
		parts = append(parts, institution)
	}
	if subtype != "" {
		parts = append(parts, subtype)
	} else if accountType != "" {
		parts = append(parts, accountType)
	}
	if accountNumber != "" {
		parts = append(parts, accountNumber)
	}
	name := strings.TrimSpace(strings.Join(parts, " "))
	if name == "" {
		return "Unknown Account"
	}
	return name
}
