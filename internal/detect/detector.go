package detect

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// BalanceParser extracts a statement balance from header lines. The account
// type steers which label catalog applies; nil result means no balance found.
type BalanceParser interface {
	ExtractFromHeaders(headers []string, accountType string) *decimal.Decimal
}

// Detector infers account identity from filenames, PDF statement text, and
// CSV/Excel header rows. Detection is pure and deterministic; the same input
// always yields the same result.
type Detector struct {
	log     zerolog.Logger
	balance BalanceParser
}

// New builds a Detector. balance may be nil, in which case balance extraction
// is skipped.
func New(log zerolog.Logger, balance BalanceParser) *Detector {
	return &Detector{log: log, balance: balance}
}

// FromFilename infers account identity from a statement filename alone.
// Returns nil when the filename carries no usable signal.
func (d *Detector) FromFilename(filename string) *DetectedAccount {
	detected := fromFilename(filename)
	if detected == nil {
		d.log.Debug().Str("filename", filename).Msg("filename carries no account signal")
		return nil
	}
	d.log.Debug().
		Str("filename", filename).
		Str("institution", detected.InstitutionName).
		Str("account_type", detected.AccountType).
		Str("account_number", detected.AccountNumber).
		Msg("detected account from filename")
	return detected
}

// FromPDFContent infers account identity from extracted PDF statement text.
// Falls back to filename detection when the text is empty. Identity signals
// are read from the header window only; transaction rows never override them.
func (d *Detector) FromPDFContent(pdfText, filename string) *DetectedAccount {
	if pdfText == "" {
		return d.FromFilename(filename)
	}

	detected := &DetectedAccount{}
	header := headerWindow(pdfText)
	lowerHeader := strings.ToLower(header)

	if institution := detectInstitution(header); institution != "" {
		detected.InstitutionName = institution
	} else if fromName := fromFilename(filename); fromName != nil {
		detected.InstitutionName = fromName.InstitutionName
	}

	detected.AccountNumber = extractAccountNumber(header)

	if card := extractCardNumber(header); card != "" {
		detected.CardNumber = card
		if detected.AccountNumber == "" {
			detected.AccountNumber = card
		}
	}

	switch {
	case looksLikeCreditCard(lowerHeader):
		detected.AccountType = TypeCredit
		detected.AccountSubtype = SubtypeCreditCard
	case strings.Contains(lowerHeader, "checking"):
		detected.AccountType = TypeDepository
		detected.AccountSubtype = SubtypeChecking
	case strings.Contains(lowerHeader, "savings"):
		detected.AccountType = TypeDepository
		detected.AccountSubtype = SubtypeSavings
	case strings.Contains(lowerHeader, "loan"), strings.Contains(lowerHeader, "mortgage"):
		detected.AccountType = TypeLoan
	}

	if d.balance != nil {
		detected.Balance = d.balance.ExtractFromHeaders(strings.Split(header, "\n"), detected.AccountType)
	}

	if product := extractProductName(header); product != "" {
		detected.AccountName = product
	} else if detected.InstitutionName != "" && detected.AccountType != "" {
		detected.AccountName = AccountDisplayName(
			detected.InstitutionName, detected.AccountType,
			detected.AccountSubtype, detected.AccountNumber)
	}

	detected.AccountHolderName = extractHolderName(header)

	d.log.Debug().
		Str("institution", detected.InstitutionName).
		Str("account_type", detected.AccountType).
		Str("account_number", detected.AccountNumber).
		Str("account_name", detected.AccountName).
		Str("holder", detected.AccountHolderName).
		Msg("detected account from pdf content")
	return detected
}

// FromHeaders infers account identity from CSV/Excel header rows. Transaction
// table headers ("Date", "Amount", ...) carry no identity, so for those the
// filename wins; metadata headers ("Account Name: Chase Checking") are mined
// for label values.
func (d *Detector) FromHeaders(headers []string, filename string) *DetectedAccount {
	if len(headers) == 0 {
		return d.FromFilename(filename)
	}

	detected := &DetectedAccount{}
	isTable := IsTransactionTableHeaders(headers)
	joined := strings.Join(headers, " ")

	// The number pattern needs its label context, so it runs over the full
	// joined header text even for transaction tables.
	detected.AccountNumber = extractAccountNumber(joined)

	if idx, ok := findColumn(headers, accountNameColumnKeywords); ok {
		if value := accountNameLabelValue(headers[idx]); value != "" {
			detected.AccountName = value
		}
	}

	// Dedicated number and type columns carry their values in the data rows,
	// not in the header itself; note them for the importer and move on.
	if idx, ok := findColumn(headers, accountNumberColumnKeywords); ok {
		d.log.Debug().Str("column", headers[idx]).Msg("account number column found; value comes from data rows")
	}
	if !isTable {
		if idx, ok := findColumn(headers, accountTypeColumnKeywords); ok {
			d.log.Debug().Str("column", headers[idx]).Msg("account type column found; value comes from data rows")
		}
	}

	// A bare institution or product label means the column exists but its
	// value arrives with the data rows; remember that so the filename cannot
	// preempt it during the merge.
	productIdx, hasProduct := findColumn(headers, productNameColumnKeywords)
	institutionIdx, hasInstitution := findColumn(headers, institutionColumnKeywords)
	institutionFromRows := false
	if hasProduct {
		if value := institutionLabelValue(headers[productIdx]); value != "" {
			detected.InstitutionName = value
		} else {
			institutionFromRows = true
		}
	} else if hasInstitution {
		if value := institutionLabelValue(headers[institutionIdx]); value != "" {
			detected.InstitutionName = value
		} else {
			institutionFromRows = true
		}
	}

	// "Type" columns in transaction tables mean transaction type, so account
	// type only comes from metadata headers.
	if !isTable {
		detected.AccountType = classifyAccountType(joined)
	}

	if !isTable && len(headers) > 1 && len(strings.TrimSpace(joined)) > 10 {
		if institution := detectInstitution(joined); institution != "" {
			detected.InstitutionName = institution
		}
	}

	if d.balance != nil {
		detected.Balance = d.balance.ExtractFromHeaders(headers, detected.AccountType)
	}

	d.mergeFilename(detected, filename, isTable, institutionFromRows)

	d.log.Debug().
		Bool("transaction_table", isTable).
		Str("institution", detected.InstitutionName).
		Str("account_type", detected.AccountType).
		Str("account_number", detected.AccountNumber).
		Msg("detected account from headers")
	return detected
}

// mergeFilename folds filename-derived identity into a header-derived result.
// For transaction tables the filename overrides (headers have no identity);
// otherwise it only fills gaps. institutionFromRows blocks the institution
// fill: the column exists and its value is coming from the data rows.
func (d *Detector) mergeFilename(detected *DetectedAccount, filename string, isTable, institutionFromRows bool) {
	fromName := fromFilename(filename)
	if fromName == nil {
		return
	}

	if isTable {
		if fromName.InstitutionName != "" {
			detected.InstitutionName = fromName.InstitutionName
		}
		if fromName.AccountType != "" {
			detected.AccountType = fromName.AccountType
			detected.AccountSubtype = fromName.AccountSubtype
		}
		if fromName.AccountNumber != "" {
			detected.AccountNumber = fromName.AccountNumber
		}
		return
	}

	if detected.InstitutionName == "" && !institutionFromRows && fromName.InstitutionName != "" {
		detected.InstitutionName = fromName.InstitutionName
	}
	if detected.AccountType == "" && fromName.AccountType != "" {
		detected.AccountType = fromName.AccountType
		detected.AccountSubtype = fromName.AccountSubtype
	}
	if detected.AccountNumber == "" && fromName.AccountNumber != "" {
		detected.AccountNumber = fromName.AccountNumber
	}
}

// findColumn locates the first header matching a keyword, either exactly
// ("Account Name") or as a label prefix ("Account Name: My Checking").
func findColumn(headers []string, keywords []string) (int, bool) {
	for _, kw := range keywords {
		for i, h := range headers {
			lower := strings.ToLower(strings.TrimSpace(h))
			if lower == kw ||
				strings.HasPrefix(lower, kw+":") || strings.HasPrefix(lower, kw+"：") ||
				strings.HasPrefix(lower, kw+" :") {
				return i, true
			}
		}
	}
	return 0, false
}

// accountNameLabelValue extracts the value part of an "Account Name: Chase
// Checking" header. Returns "" when the header is only a label; the value
// then comes from data rows.
func accountNameLabelValue(header string) string {
	value := strings.TrimSpace(header)
	if value == "" {
		return ""
	}
	if _, rest, ok := splitLabelValue(value); ok {
		return rest
	}
	lower := strings.ToLower(value)
	if strings.Contains(lower, "account name") || strings.Contains(lower, "accountname") ||
		(strings.Contains(lower, "account") && !strings.Contains(lower, "number")) {
		return ""
	}
	return value
}

// institutionLabelValue extracts and normalizes the value part of an
// "Institution: chase" header. A bare label yields "".
func institutionLabelValue(header string) string {
	value := strings.TrimSpace(header)
	if value == "" {
		return ""
	}
	if _, rest, ok := splitLabelValue(value); ok {
		if rest == "" {
			return ""
		}
		return NormalizeInstitutionName(rest)
	}
	lower := strings.ToLower(value)
	if strings.Contains(lower, "institution") || strings.Contains(lower, "bank") ||
		strings.Contains(lower, "product name") || strings.Contains(lower, "productname") {
		return ""
	}
	return NormalizeInstitutionName(value)
}

// splitLabelValue splits "Label: value" on an ASCII or fullwidth colon.
func splitLabelValue(s string) (label, value string, ok bool) {
	for _, sep := range []string{":", "："} {
		if i := strings.Index(s, sep); i >= 0 {
			return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+len(sep):]), true
		}
	}
	return "", "", false
}
