// Package balance extracts statement balances from header text and
// transaction values. Label catalogs cover English plus the common
// international statement vocabularies; amounts survive US, European, and
// Indian digit grouping, currency symbols, parentheses negatives, and CR/DR
// suffixes.
package balance

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Balances outside these bounds are parsing artifacts (dates, account
// numbers), never real money.
var (
	maxReasonableBalance = decimal.RequireFromString("999999999999.99")
	minReasonableBalance = decimal.RequireFromString("-999999999999.99")
)

// depositorySearchChars limits depository balance scans to the top of the
// statement, where summary boxes live.
const depositorySearchChars = 2000

var creditCardBalanceLabels = []string{
	"new balance", "newbalance", "newbal", "current balance", "balance due",
	"total balance", "outstanding balance", "unpaid balance", "amount due",
	"statement balance", "closing balance", "ending balance", "final balance",
	"cash back rewards balance", "cash back balance", "rewards balance",
	"cashback rewards balance", "cashback balance",
	"nuevo saldo", "saldo nuevo", "saldo actual", "saldo pendiente", "saldo total",
	"saldo vencido", "saldo al cierre", "saldo final",
	"nouveau solde", "solde nouveau", "solde actuel", "solde dû", "solde total",
	"solde impayé", "solde de clôture", "solde final",
	"neuer saldo", "saldo neu", "aktueller saldo", "ausstehender saldo", "gesamtsaldo",
	"abschluss saldo", "endsaldo", "schluss saldo",
	"nuovo saldo", "saldo corrente", "saldo dovuto", "saldo totale",
	"saldo di chiusura",
	"novo saldo", "saldo novo", "saldo atual", "saldo devido",
	"saldo de fechamento",
	"atarashii zandaka", "zandaka", "tsuki zandaka", "shūryō zandaka",
	"xin yue", "yue", "dangqian yue", "yingfu yue",
	"naya shesh", "shesh", "vartamaan shesh", "baki raashi",
}

var depositoryBalanceLabels = []string{
	"balance", "current balance", "available balance", "ledger balance", "account balance",
	"closing balance", "ending balance", "final balance", "statement balance", "balance forward",
	"saldo", "saldo actual", "saldo disponible", "saldo contable", "saldo de cuenta",
	"saldo al cierre", "saldo final",
	"solde", "solde actuel", "solde disponible", "solde comptable", "solde de compte",
	"solde de clôture", "solde final",
	"aktueller saldo", "verfügbarer saldo", "buchsaldo", "kontostand",
	"abschluss saldo", "endsaldo",
	"saldo corrente", "saldo disponibile", "saldo contabile", "saldo conto",
	"saldo finale",
	"saldo atual", "saldo disponível", "saldo contábil", "saldo da conta",
	"zandaka", "genzai zandaka", "riyō kanō zandaka", "zandaka meisai",
	"yue", "dangqian yue", "keyong yue", "zhanghu yue",
	"shesh", "vartamaan shesh", "upalabdh shesh", "khata shesh",
}

var currencySymbols = []string{
	"$", "€", "£", "¥", "₹", "₽", "₩", "R$", "A$", "NZ$", "C$", "CHF",
	"kr", "Kč", "zł", "Ft", "lei", "лв", "ден", "kn", "din", "KM",
}

var creditIndicators = []string{
	"cr", "credit", "crédit", "crédito", "guthaben", "credito", "krediet", "kredit",
}

var debitIndicators = []string{
	"dr", "debit", "débit", "débito", "schuld", "debito", "debet",
}

// Discover statements put the amount right after "New Balance:" and then
// repeat the keywords further down; only the first amount counts.
var discoverBalanceRe = regexp.MustCompile(`(?i)new\s+balance\s*[:：]\s*((?:\([$€£¥₹]?\s*)?[\d,]+(?:\.\d{1,2})?(?:\s*[$€£¥₹]?\))?)([,;]|\s|$)`)

var englishBalanceLabelRe = regexp.MustCompile(`(?i)^(new )?balance$`)

const amountCapture = `((?:\([$€£¥₹]?\s*)?[\d\s,.$€£¥₹+-]+(?:\s*[$€£¥₹]?\))?)`

// labelPatterns holds the two compiled extraction patterns for one label:
// with an optional currency symbol before the amount, and without.
type labelPatterns struct {
	label    string
	patterns [2]*regexp.Regexp
}

func compileLabelPatterns(labels []string) []labelPatterns {
	compiled := make([]labelPatterns, 0, len(labels))
	for _, label := range labels {
		quoted := regexp.QuoteMeta(label)
		compiled = append(compiled, labelPatterns{
			label: label,
			patterns: [2]*regexp.Regexp{
				regexp.MustCompile(`(?i)` + quoted + `[:：\s]+[$€£¥₹]?\s*` + amountCapture),
				regexp.MustCompile(`(?i)` + quoted + `[:：\s]+` + amountCapture),
			},
		})
	}
	return compiled
}

var (
	creditCardLabelPatterns = compileLabelPatterns(creditCardBalanceLabels)
	depositoryLabelPatterns = compileLabelPatterns(depositoryBalanceLabels)
)

// Extractor implements balance extraction over statement text.
type Extractor struct {
	log zerolog.Logger
}

func NewExtractor(log zerolog.Logger) *Extractor {
	return &Extractor{log: log}
}

// ExtractFromHeaders finds a balance in header lines. The account type picks
// the label catalog; without one, credit-card labels are tried first.
func (e *Extractor) ExtractFromHeaders(headers []string, accountType string) *decimal.Decimal {
	if len(headers) == 0 {
		return nil
	}
	text := strings.Join(headers, " ")

	if isCreditCardType(accountType) {
		return e.ExtractCreditCardBalance(text)
	}
	if isDepositoryType(accountType) {
		return e.ExtractDepositoryBalance(text)
	}

	if balance := e.ExtractCreditCardBalance(text); balance != nil {
		return balance
	}
	return e.ExtractDepositoryBalance(text)
}

// ExtractCreditCardBalance finds a credit card statement balance. The
// Discover first-amount rule runs before the general label catalog.
func (e *Extractor) ExtractCreditCardBalance(text string) *decimal.Decimal {
	if text == "" {
		return nil
	}

	if balance := extractDiscoverBalance(text); balance != nil {
		e.log.Debug().Str("balance", balance.String()).Msg("extracted discover credit card balance")
		return balance
	}

	best := bestLabelMatch(text, creditCardLabelPatterns)
	if best == nil {
		return nil
	}
	e.log.Debug().Str("balance", best.balance.String()).Str("label", best.label).Msg("extracted credit card balance")
	return &best.balance
}

// ExtractDepositoryBalance finds a checking/savings balance near the top of
// the statement.
func (e *Extractor) ExtractDepositoryBalance(text string) *decimal.Decimal {
	if text == "" {
		return nil
	}
	if len(text) > depositorySearchChars {
		text = text[:depositorySearchChars]
	}

	best := bestLabelMatch(text, depositoryLabelPatterns)
	if best == nil {
		return nil
	}
	e.log.Debug().Str("balance", best.balance.String()).Str("label", best.label).Msg("extracted depository balance")
	return &best.balance
}

// ExtractFromTransactionValue parses a balance-column cell, honoring CR/DR
// suffixes and parentheses negatives.
func (e *Extractor) ExtractFromTransactionValue(value string) *decimal.Decimal {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return nil
	}

	upper := strings.ToUpper(cleaned)
	isCredit, isDebit := false, false
	for _, ind := range creditIndicators {
		if strings.Contains(upper, strings.ToUpper(ind)) {
			isCredit = true
			cleaned = strings.TrimSpace(stripIndicator(cleaned, ind))
			break
		}
	}
	for _, ind := range debitIndicators {
		if strings.Contains(strings.ToUpper(cleaned), strings.ToUpper(ind)) {
			isDebit = true
			cleaned = strings.TrimSpace(stripIndicator(cleaned, ind))
			break
		}
	}

	negParens := strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")")
	if negParens {
		cleaned = strings.TrimSpace(cleaned[1 : len(cleaned)-1])
	}
	amount := parseAmount(cleaned, negParens)
	if amount == nil {
		return nil
	}

	// CR keeps a non-negative amount positive; DR negates it.
	if isCredit && !amount.IsNegative() {
		return amount
	}
	if isDebit && !amount.IsNegative() {
		negated := amount.Neg()
		return &negated
	}
	return amount
}

func stripIndicator(s, indicator string) string {
	return regexp.MustCompile(`(?i)`+regexp.QuoteMeta(indicator)).ReplaceAllString(s, "")
}

type balanceMatch struct {
	balance  decimal.Decimal
	label    string
	position int
}

// bestLabelMatch collects the first valid amount per label and prefers the
// earliest match, breaking position ties toward plain English labels.
func bestLabelMatch(text string, labels []labelPatterns) *balanceMatch {
	var best *balanceMatch
	for _, lp := range labels {
		m := firstLabelMatch(text, lp)
		if m == nil {
			continue
		}
		if best == nil || m.position < best.position ||
			(m.position == best.position &&
				englishBalanceLabelRe.MatchString(m.label) && !englishBalanceLabelRe.MatchString(best.label)) {
			best = m
		}
	}
	return best
}

func firstLabelMatch(text string, lp labelPatterns) *balanceMatch {
	for _, re := range lp.patterns {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			raw := strings.TrimSpace(text[loc[2]:loc[3]])
			if raw == "" {
				continue
			}
			negParens := strings.HasPrefix(raw, "(") && strings.HasSuffix(raw, ")")
			if negParens {
				raw = strings.TrimSpace(raw[1 : len(raw)-1])
			}
			amount := parseAmount(raw, negParens)
			if amount != nil && isValidBalance(*amount) {
				return &balanceMatch{balance: *amount, label: lp.label, position: loc[0]}
			}
		}
	}
	return nil
}

func extractDiscoverBalance(text string) *decimal.Decimal {
	m := discoverBalanceRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	raw := strings.TrimSpace(m[1])
	if raw == "" {
		return nil
	}
	negParens := strings.HasPrefix(raw, "(") && strings.HasSuffix(raw, ")")
	if negParens {
		raw = strings.TrimSpace(raw[1 : len(raw)-1])
	}
	amount := parseAmount(raw, negParens)
	if amount == nil || !isValidBalance(*amount) {
		return nil
	}
	return amount
}

// parseAmount converts an amount string to a decimal, stripping currency
// symbols and normalizing the digit-grouping format.
func parseAmount(amountStr string, negative bool) *decimal.Decimal {
	cleaned := strings.TrimSpace(amountStr)
	if cleaned == "" {
		return nil
	}

	for _, symbol := range currencySymbols {
		cleaned = strings.TrimSpace(strings.ReplaceAll(cleaned, symbol, ""))
	}

	if strings.HasPrefix(cleaned, "-") {
		negative = true
		cleaned = strings.TrimSpace(cleaned[1:])
	} else if strings.HasPrefix(cleaned, "+") {
		cleaned = strings.TrimSpace(cleaned[1:])
	}

	cleaned = normalizeNumberFormat(cleaned)
	if cleaned == "" {
		return nil
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	if negative {
		amount = amount.Neg()
	}
	return &amount
}

var allWhitespaceRe = regexp.MustCompile(`\s+`)

// normalizeNumberFormat rewrites European (1.234,56) and Indian
// (12,34,567.89) groupings into plain period-decimal form. A lone separator
// within the last 3 characters reads as a decimal point, otherwise as
// grouping.
func normalizeNumberFormat(numberStr string) string {
	cleaned := allWhitespaceRe.ReplaceAllString(strings.TrimSpace(numberStr), "")
	if cleaned == "" {
		return ""
	}

	hasComma := strings.Contains(cleaned, ",")
	hasPeriod := strings.Contains(cleaned, ".")

	switch {
	case !hasComma && !hasPeriod:
		return cleaned
	case hasComma && !hasPeriod:
		if last := strings.LastIndex(cleaned, ","); len(cleaned)-last <= 3 {
			return strings.ReplaceAll(cleaned, ",", ".")
		}
		return strings.ReplaceAll(cleaned, ",", "")
	case !hasComma && hasPeriod:
		if last := strings.LastIndex(cleaned, "."); last >= len(cleaned)-3 {
			return cleaned
		}
		return strings.ReplaceAll(cleaned, ".", "")
	}

	if strings.LastIndex(cleaned, ",") > strings.LastIndex(cleaned, ".") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		return strings.ReplaceAll(cleaned, ",", ".")
	}
	return strings.ReplaceAll(cleaned, ",", "")
}

func isValidBalance(balance decimal.Decimal) bool {
	return balance.GreaterThanOrEqual(minReasonableBalance) &&
		balance.LessThanOrEqual(maxReasonableBalance)
}

func isCreditCardType(accountType string) bool {
	lower := strings.ToLower(accountType)
	return lower == "creditcard" || lower == "credit_card" ||
		lower == "credit" || strings.Contains(lower, "card")
}

func isDepositoryType(accountType string) bool {
	lower := strings.ToLower(accountType)
	return lower == "checking" || lower == "savings" ||
		lower == "moneymarket" || lower == "money_market" ||
		lower == "depository" || lower == "bank"
}
