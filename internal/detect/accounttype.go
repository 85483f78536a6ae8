package detect

import "strings"

// filenameCreditCardMarkers get priority during filename classification so a
// "credit_card" filename never matches "checking" or "credit" generics first.
var filenameCreditCardMarkers = []string{"credit card", "creditcard", "card"}

// classifyAccountType returns the account type for the first catalog keyword
// contained in the text, or "" when none matches.
func classifyAccountType(text string) string {
	if text == "" {
		return ""
	}
	lower := strings.ToLower(text)
	for _, tk := range accountTypeKeywords {
		if strings.Contains(lower, tk.keyword) {
			return tk.accountType
		}
	}
	return ""
}

// classifyTypeFromFilename classifies a filename fragment. Underscores and
// hyphens count as spaces, and credit-card markers win before the general
// catalog runs.
func classifyTypeFromFilename(name string) string {
	if name == "" {
		return ""
	}
	if len(name) > maxFilenameChars {
		name = name[:maxFilenameChars]
	}
	lower := underscoreHyphenRe.ReplaceAllString(strings.ToLower(name), " ")

	for _, marker := range filenameCreditCardMarkers {
		if strings.Contains(lower, marker) {
			return TypeCredit
		}
	}
	for _, tk := range accountTypeKeywords {
		key := underscoreHyphenRe.ReplaceAllString(tk.keyword, " ")
		if strings.Contains(lower, key) {
			return tk.accountType
		}
	}
	return ""
}

// depositorySubtype picks checking/savings from text already known to be a
// depository account. Returns "" when neither word appears.
func depositorySubtype(lower string) string {
	if strings.Contains(lower, "checking") || strings.Contains(lower, "check") {
		return SubtypeChecking
	}
	if strings.Contains(lower, "savings") || strings.Contains(lower, "saving") {
		return SubtypeSavings
	}
	return ""
}

// looksLikeCreditCard reports whether header text reads as a credit card
// statement: either an issuer-independent indicator phrase, or any
// institution mention combined with card product vocabulary.
func looksLikeCreditCard(lowerHeader string) bool {
	for _, indicator := range creditCardIndicators {
		if strings.Contains(lowerHeader, indicator) {
			return true
		}
	}

	hasInstitution := false
	for _, kw := range institutionKeywords {
		if strings.Contains(lowerHeader, kw) {
			hasInstitution = true
			break
		}
	}
	if !hasInstitution {
		return false
	}
	for _, kw := range cardProductKeywords {
		if strings.Contains(lowerHeader, kw) {
			return true
		}
	}
	return false
}
