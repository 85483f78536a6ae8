package detect

import (
	"strings"
	"unicode"
)

const (
	minHolderNameChars = 2
	maxHolderNameChars = 100
	maxHolderNameWords = 6
)

// holderSkipPhrases disqualify a whole line from direct-pattern matching:
// section headings, column headers, boilerplate that happens to contain
// "name" or "holder".
var holderSkipPhrases = []string{
	"statement period", "account summary", "transaction summary",
	"payment history", "transaction history", "account information",
	"your name", "and account number", "if you have", "balance",
	"card member agreement", "card member information", "card member benefits",
	"card member services", "card member service",
	"cardmember service", "cardmember agreement", "cardmember information",
	"cardmember benefits", "cardmember services", "cardmember support",
	"cardmember rewards",
	"account holder agreement", "account holder information",
	"account holder benefits", "account holder services",
	"account holder service", "account holder support", "account holder rewards",
	"passenger name", "account name", "person name", "card name",
	"minimum payment", "alternate payment",
}

// extractHolderName finds the account holder or cardholder name in statement
// header text. Direct labels ("Card Member: JOHN DOE") rank highest;
// contextual inference (the line above an address or account number) fills in
// when labels are absent. All candidates are collected, merged, filtered, and
// picked by composite score.
func extractHolderName(headerText string) string {
	if headerText == "" {
		return ""
	}
	headerText = truncateForScan(headerText)

	lines := strings.Split(strings.ReplaceAll(headerText, "\r\n", "\n"), "\n")
	candidates := newCandidateSet()

	collectDirectNames(lines, candidates)
	collectContextualNames(lines, candidates)
	collectSameLineNames(lines, candidates)

	best := pickHolderName(candidates)
	if best == nil {
		return ""
	}
	return best.name
}

func collectDirectNames(lines []string, candidates *candidateSet) {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if skipHolderLine(strings.ToLower(trimmed)) {
			continue
		}

		for i, re := range holderDirectRes {
			m := re.FindStringSubmatch(trimmed)
			if m == nil {
				continue
			}
			raw := lineBreakRe.ReplaceAllString(strings.TrimSpace(m[1]), " ")
			raw = strings.TrimSpace(splitAtContextMarker(raw))
			raw = strings.TrimSpace(holderPrefixStripRe.ReplaceAllString(raw, ""))

			if name := validateHolderName(raw); name != "" {
				candidates.add(name, priorityDirect, directPatternType(i), isAllCapsName(name), false)
			}
		}
	}
}

func directPatternType(i int) string {
	types := []string{
		"card_member", "name_label", "account_holder", "primary_account_holder",
		"primary_cardholder", "account_owner", "beneficial_owner", "beneficiary",
	}
	return types[i]
}

func skipHolderLine(lower string) bool {
	for _, phrase := range holderSkipPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	if columnHeaderLineRe.MatchString(lower) || transactionDateLineRe.MatchString(lower) {
		return true
	}
	return strings.Contains(lower, "date") && strings.Contains(lower, "amount")
}

// collectContextualNames infers names from line pairs: the previous non-empty
// line before an address, a "member since" note, or an account/card number
// line. Same-line name-before-number patterns are collected here too.
func collectContextualNames(lines []string, candidates *candidateSet) {
	for i := 1; i < len(lines); i++ {
		current := strings.TrimSpace(lines[i])
		if current == "" {
			continue
		}

		previous := ""
		for j := i - 1; j >= 0; j-- {
			if p := strings.TrimSpace(lines[j]); p != "" {
				previous = p
				break
			}
		}
		if previous == "" {
			continue
		}

		lower := strings.ToLower(current)

		isAddress := addressKeywordRe.MatchString(lower) ||
			zipCodeRe.MatchString(lower) ||
			streetStartRe.MatchString(lower)

		// Three-line block: name, street, city + ZIP. The ZIP on the next
		// line confirms the current line really is a street address.
		threeLine := false
		if i+1 < len(lines) {
			next := strings.ToLower(strings.TrimSpace(lines[i+1]))
			if next != "" && (zipCodeRe.MatchString(next) || zipSpacedRe.MatchString(next)) {
				if streetStartRe.MatchString(lower) || streetKeywordRe.MatchString(lower) {
					isAddress = true
					threeLine = true
				}
			}
		}

		if isAddress {
			if name := validateHolderName(previous); name != "" {
				priority, patternType := priorityAddress, "address"
				if threeLine {
					priority, patternType = priorityThreeLineAddress, "3_line_address"
				}
				candidates.add(name, priority, patternType, isAllCapsName(name), true)
			}
		}

		if memberSinceRe.MatchString(lower) {
			if name := validateHolderName(previous); name != "" {
				candidates.add(name, priorityMemberSince, "member_since", isAllCapsName(name), true)
			}
		}

		if accountContextRe.MatchString(lower) {
			if name := validateHolderName(previous); name != "" {
				candidates.add(name, priorityNumberNextLine, "account_number", isAllCapsName(name), true)
			}
		}

		if cardContextRe.MatchString(lower) {
			if name := validateHolderName(previous); name != "" {
				candidates.add(name, priorityNumberNextLine, "card_number", isAllCapsName(name), true)
			}
		}

		addSameLineCandidates(current, candidates, "same_line_account", "same_line_card")
	}
}

// collectSameLineNames runs the name-before-number patterns over every line,
// covering the first line which the pairwise pass never visits.
func collectSameLineNames(lines []string, candidates *candidateSet) {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		addSameLineCandidates(trimmed, candidates, "same_line_account_all", "same_line_card_all")
	}
}

func addSameLineCandidates(line string, candidates *candidateSet, accountType, cardType string) {
	if m := nameBeforeAccountRe.FindStringSubmatch(line); m != nil {
		if name := validateHolderName(strings.TrimSpace(m[1])); name != "" {
			candidates.add(name, prioritySameLine, accountType, isAllCapsName(name), false)
		}
	}
	if m := nameBeforeCardRe.FindStringSubmatch(line); m != nil {
		if name := validateHolderName(strings.TrimSpace(m[1])); name != "" {
			candidates.add(name, prioritySameLine, cardType, isAllCapsName(name), false)
		}
	}
}

// pickHolderName filters out institution names and address fragments, then
// selects the top candidate by composite score.
func pickHolderName(candidates *candidateSet) *nameCandidate {
	filtered := newCandidateSet()
	for _, c := range candidates.byName {
		if holderNameIsInstitution(c.name) || containsStateAbbreviation(c.name) {
			continue
		}
		filtered.byName[strings.ToLower(c.name)] = c
	}
	return filtered.best()
}

// holderNameIsInstitution rejects candidates containing an institution
// keyword as a whole word, so "Chase Bank" never becomes a holder name while
// "O'Brien" survives the "bri" substring.
func holderNameIsInstitution(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range institutionKeywords {
		if wordPattern(kw).MatchString(lower) {
			return true
		}
	}
	return false
}

// containsStateAbbreviation reports whether any token is a two-letter US
// state code, which marks the candidate as an address line.
func containsStateAbbreviation(name string) bool {
	for _, word := range strings.Fields(name) {
		clean := strings.ToUpper(strings.TrimSpace(trailingPunctRe.ReplaceAllString(word, "")))
		if usStateAbbreviations[clean] {
			return true
		}
	}
	return false
}

func splitAtContextMarker(s string) string {
	if loc := holderContextMarkerRe.FindStringIndex(s); loc != nil {
		return s[:loc[0]]
	}
	return s
}

func isAllCapsName(name string) bool {
	return name == strings.ToUpper(name) && strings.ContainsFunc(name, unicode.IsUpper)
}

// validateHolderName cleans a raw candidate and applies every rejection rule.
// Returns "" when the candidate cannot be a person's name.
func validateHolderName(candidate string) string {
	if strings.TrimSpace(candidate) == "" {
		return ""
	}

	// First line only, cut at account/card number markers.
	name := strings.TrimSpace(strings.SplitN(candidate, "\n", 2)[0])
	name = strings.TrimSpace(strings.SplitN(name, "\r", 2)[0])
	name = strings.TrimSpace(splitAtContextMarker(name))
	name = whitespaceRe.ReplaceAllString(name, " ")

	lower := strings.ToLower(name)
	if holderPhraseExcluded(lower) {
		return ""
	}

	if !nameSuffixRe.MatchString(name) {
		name = strings.TrimSpace(trailingPunctRe.ReplaceAllString(name, ""))
		lower = strings.ToLower(name)
	}

	if len(name) < minHolderNameChars || len(name) > maxHolderNameChars {
		return ""
	}
	if !hasLetterRe.MatchString(name) {
		return ""
	}
	if !startsWithLetterRe.MatchString(name) && !nameTitleStartRe.MatchString(name) {
		return ""
	}

	for _, word := range holderExcludedWords {
		if wordPattern(word).MatchString(lower) {
			return ""
		}
	}

	if nameDateRe.MatchString(name) {
		return ""
	}
	if namePhoneRe.MatchString(name) || namePhoneParenRe.MatchString(name) {
		return ""
	}
	if nameBadEndingRe.MatchString(name) {
		return ""
	}

	words := strings.Fields(name)
	if len(words) > maxHolderNameWords {
		return ""
	}
	for _, word := range words {
		noPunct := wordPunctRe.ReplaceAllString(word, "")
		if len(noPunct) > 4 && word == strings.ToLower(word) && strings.ContainsFunc(word, isASCIILower) {
			return ""
		}
	}

	if strings.ContainsAny(name, `/\`) || strings.Contains(lower, "www.") {
		return ""
	}

	return name
}

// holderPhraseExcluded rejects boilerplate that pattern captures pick up:
// instruction sentences, agreement references, statement footers.
func holderPhraseExcluded(lower string) bool {
	switch {
	case strings.Contains(lower, "and account number"),
		strings.Contains(lower, "your name and"),
		strings.Contains(lower, "account information"),
		strings.Contains(lower, "autopay"),
		strings.Contains(lower, "interest"),
		strings.Contains(lower, "p.o."),
		accountNumberPhraseRe.MatchString(lower),
		cardNumberPhraseRe.MatchString(lower),
		strings.HasPrefix(lower, "your name"),
		strings.Contains(lower, "general inquiries"),
		strings.HasPrefix(lower, "send ") && strings.Contains(lower, "inquir"):
		return true
	case strings.Contains(lower, "agreement for details"),
		strings.Contains(lower, "cardmember agreement"),
		strings.Contains(lower, "cardholder agreement"),
		strings.Contains(lower, "cardmember service"),
		strings.Contains(lower, "account holder service"),
		lower == "agreement",
		lower == "details",
		lower == "continued",
		strings.Contains(lower, "agreement") && strings.Contains(lower, "details"):
		return true
	}
	return false
}
