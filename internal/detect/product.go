package detect

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	maxProductNameChars = 100
	minProductNameChars = 3
	maxProductNameWords = 7
	maxProductLineChars = 150
)

var productWordPunctRe = regexp.MustCompile(`[.,;:®™©]+`)

// productCandidate pairs a candidate line with the indicator keyword that
// qualified it, used for ranked selection.
type productCandidate struct {
	name      string
	indicator string
}

// extractProductName pulls a card product name ("Citi Double Cash® Card",
// "Prime Visa") out of statement header text. Fixed phrasing patterns run
// first, then a line scan keyed on institution mentions with heavy
// boilerplate filtering, then a bare "Institution Product Card" regex.
func extractProductName(headerText string) string {
	if headerText == "" {
		return ""
	}
	headerText = truncateForScan(headerText)

	if m := primeVisaRe.FindStringSubmatch(headerText); m != nil {
		name := capitalizeCardName(whitespaceRe.ReplaceAllString(strings.TrimSpace(m[1]), " "))
		if len(name) > minProductNameChars && len(name) < maxProductNameChars {
			return name
		}
	}

	if m := thankYouRe.FindStringSubmatch(headerText); m != nil {
		name := whitespaceRe.ReplaceAllString(strings.TrimSpace(m[1]), " ")
		if len(name) > minProductNameChars && len(name) < maxProductNameChars {
			return name
		}
	}

	if m := rewardRe.FindStringSubmatch(headerText); m != nil {
		name := whitespaceRe.ReplaceAllString(strings.TrimSpace(m[1]), " ")
		if isValidCardProductName(name) {
			name = capitalizeCardName(name)
			if len(name) > minProductNameChars && len(name) < maxProductNameChars {
				return name
			}
		}
	}

	candidates := collectProductCandidates(headerText)
	if len(candidates) > 0 {
		return pickRankedProduct(candidates)
	}

	if m := productSecondaryRe.FindString(headerText); m != "" {
		return whitespaceRe.ReplaceAllString(strings.TrimSpace(m), " ")
	}
	return ""
}

// collectProductCandidates scans header lines for institution mentions with
// product vocabulary, filtering out URLs, contact blocks, and instruction
// lines.
func collectProductCandidates(headerText string) []productCandidate {
	var candidates []productCandidate

	for _, line := range strings.Split(headerText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)

		hasInstitution := false
		for _, kw := range institutionKeywords {
			if wordPattern(kw).MatchString(lower) {
				hasInstitution = true
				break
			}
		}
		if !hasInstitution {
			continue
		}

		// Longest indicator wins so "marriott bonvoy premier" beats
		// "marriott".
		indicator := ""
		for _, ind := range productSpecificIndicators {
			if strings.Contains(lower, ind) && len(ind) > len(indicator) {
				indicator = ind
			}
		}

		hasURL := productURLRe.MatchString(lower) || productDomainRe.MatchString(lower)
		strong := indicator != "" && hasStrongIndicator(indicator)

		generic := false
		for _, term := range productGenericSkipTerms {
			if strings.Contains(lower, term) {
				if indicator == "" || !strong {
					generic = true
				}
				break
			}
		}

		if hasURL && !strong {
			continue
		}

		action := false
		for _, phrase := range productActionPhrases {
			if strings.Contains(lower, phrase) {
				action = true
				break
			}
		}
		if action && hasURL {
			continue
		}

		if productLineBlacklisted(trimmed, lower) {
			continue
		}

		if strings.Contains(lower, "online") {
			if indicator == "" {
				generic = true
			} else if hasURL && !productCardRe.MatchString(lower) {
				generic = true
			}
		}

		if indicator == "" || generic || len(trimmed) >= maxProductLineChars {
			continue
		}

		name := whitespaceRe.ReplaceAllString(trimmed, " ")
		if !isValidProductName(name) {
			continue
		}
		candidates = append(candidates, productCandidate{name: name, indicator: indicator})
	}
	return candidates
}

func hasStrongIndicator(indicator string) bool {
	lower := strings.ToLower(indicator)
	for _, strong := range productStrongIndicators {
		if strings.Contains(lower, strong) {
			return true
		}
	}
	return false
}

func productLineBlacklisted(trimmed, lower string) bool {
	for _, phrase := range productLineBlacklistPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	for _, re := range productBlacklistRes {
		if re.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// pickRankedProduct selects the best candidate: first by ranked card name
// against the matched indicator or candidate text, then candidate text only,
// then the first candidate that still validates.
func pickRankedProduct(candidates []productCandidate) string {
	for _, ranked := range productRankedNames {
		for _, c := range candidates {
			if strings.Contains(strings.ToLower(c.indicator), ranked) ||
				strings.Contains(strings.ToLower(c.name), ranked) {
				return c.name
			}
		}
	}
	for _, ranked := range productRankedNames {
		for _, c := range candidates {
			if strings.Contains(strings.ToLower(c.name), ranked) {
				return c.name
			}
		}
	}
	for _, c := range candidates {
		if isValidProductName(c.name) {
			return c.name
		}
	}
	return ""
}

// capitalizeCardName title-cases a card name, with fixed renderings for the
// Prime Visa family.
func capitalizeCardName(cardName string) string {
	if cardName == "" {
		return cardName
	}

	lower := strings.ToLower(cardName)
	if strings.Contains(lower, "prime visa") {
		switch {
		case strings.HasPrefix(lower, "amazon"):
			return "Amazon Prime Visa"
		case strings.Contains(lower, "rewards"):
			return "Prime Rewards Visa"
		case strings.Contains(lower, "signature"):
			return "Prime Visa Signature"
		default:
			return "Prime Visa"
		}
	}

	words := strings.Fields(lower)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// isValidCardProductName requires at least one card vocabulary word.
func isValidCardProductName(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return false
	}
	for _, kw := range productValidationKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// isValidProductName rejects candidates that read like boilerplate rather
// than a product name: wrong length or word count, all-lowercase words
// outside the card vocabulary, blacklist phrases, addresses, emails, phones.
func isValidProductName(productName string) bool {
	trimmed := strings.TrimSpace(productName)
	if len(trimmed) < minProductNameChars || len(trimmed) > maxProductNameChars {
		return false
	}

	words := strings.Fields(trimmed)
	if len(words) > maxProductNameWords {
		return false
	}

	hasCapitalized := false
	for _, word := range words {
		clean := strings.TrimSpace(productWordPunctRe.ReplaceAllString(word, ""))
		if clean == "" {
			continue
		}
		first := []rune(clean)[0]
		if unicode.IsUpper(first) {
			hasCapitalized = true
			continue
		}
		lowerClean := strings.ToLower(clean)
		if productSmallWords[lowerClean] {
			continue
		}
		if clean == lowerClean && len(clean) > 4 && !productLowercaseAllowed[lowerClean] {
			return false
		}
	}
	if !hasCapitalized && len(words) > 1 {
		return false
	}

	lower := strings.ToLower(trimmed)
	for _, phrase := range productBlacklistPhrases {
		if strings.Contains(lower, phrase) {
			return false
		}
	}

	if zipCodeRe.MatchString(trimmed) || stateZipRe.MatchString(trimmed) {
		return false
	}
	if strings.Contains(trimmed, "@") || namePhoneRe.MatchString(trimmed) {
		return false
	}
	return true
}
