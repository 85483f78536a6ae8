package detect

import (
	"math"
	"strings"
)

// Scoring weights for institution detection. Header hits dominate; mentions
// inside the transaction table (merchant names, payment memos) barely count.
const (
	headerSectionWeight      = 1.0
	transactionSectionWeight = 0.3
	headerWebsiteBonus       = 2.0
	transactionWebsiteBonus  = 0.5
	specificityBonusFactor   = 0.2
)

// institutionMatch accumulates scoring evidence for one normalized
// institution across both statement sections.
type institutionMatch struct {
	normalizedName       string
	totalScore           float64
	headerFrequency      int
	transactionFrequency int
	hasWebsiteMatch      bool
	keywordSpecificity   int
	order                int
}

// NormalizeInstitutionName maps a matched keyword to its display name:
// canonical entries for common aliases ("bofa" becomes "Bank of America"),
// otherwise the keyword with its first letter upcased.
func NormalizeInstitutionName(keyword string) string {
	if keyword == "" {
		return ""
	}
	if canonical, ok := canonicalInstitutionNames[strings.ToLower(keyword)]; ok {
		return canonical
	}
	return strings.ToUpper(keyword[:1]) + keyword[1:]
}

// keywordSpecificity grades how identifying a keyword is: 2 for full names
// (2+ words or >10 chars), 1 for medium single words (5..10 chars), 0 for
// abbreviations.
func keywordSpecificity(keyword string) int {
	if len(strings.Fields(keyword)) >= 2 || len(keyword) > 10 {
		return 2
	}
	if len(keyword) >= 5 {
		return 1
	}
	return 0
}

// detectInstitution finds the best-supported institution in statement text.
// Whole-word keyword matches are counted per section with log-damped
// frequency scoring plus website-pattern bonuses; returns "" when no keyword
// scores above zero.
func detectInstitution(text string) string {
	if text == "" {
		return ""
	}
	text = truncateForScan(text)

	header, transactions := splitSections(text)

	matches := map[string]*institutionMatch{}
	scoreSection(header, matches, headerSectionWeight, true)
	scoreSection(transactions, matches, transactionSectionWeight, false)

	return bestInstitution(matches)
}

func scoreSection(section string, matches map[string]*institutionMatch, baseScore float64, isHeader bool) {
	if section == "" {
		return
	}
	lower := strings.ToLower(section)

	for _, keyword := range institutionKeywords {
		frequency := len(wordPattern(keyword).FindAllStringIndex(lower, -1))
		website := websitePattern(keyword).MatchString(lower)
		if frequency == 0 && !website {
			continue
		}

		normalized := NormalizeInstitutionName(keyword)
		match, ok := matches[normalized]
		if !ok {
			match = &institutionMatch{normalizedName: normalized, order: len(matches)}
			matches[normalized] = match
		}

		if frequency > 0 {
			if isHeader {
				match.headerFrequency += frequency
			} else {
				match.transactionFrequency += frequency
			}
			match.totalScore += baseScore * math.Log1p(float64(frequency))
		}

		if website {
			match.hasWebsiteMatch = true
			if isHeader {
				match.totalScore += headerWebsiteBonus
			} else {
				match.totalScore += transactionWebsiteBonus
			}
		}

		if s := keywordSpecificity(keyword); s > match.keywordSpecificity {
			match.keywordSpecificity = s
		}
	}
}

// bestInstitution ranks candidates by total score, then header frequency,
// then fewer transaction-section hits, then specificity, then website
// evidence. Ties after all of that resolve by first-seen order so results
// stay deterministic.
func bestInstitution(matches map[string]*institutionMatch) string {
	var best *institutionMatch
	for _, m := range matches {
		m.totalScore += float64(m.keywordSpecificity) * specificityBonusFactor
		if best == nil || better(m, best) {
			best = m
		}
	}
	if best == nil || best.totalScore <= 0 {
		return ""
	}
	return best.normalizedName
}

func better(a, b *institutionMatch) bool {
	if a.totalScore != b.totalScore {
		return a.totalScore > b.totalScore
	}
	if a.headerFrequency != b.headerFrequency {
		return a.headerFrequency > b.headerFrequency
	}
	if a.transactionFrequency != b.transactionFrequency {
		return a.transactionFrequency < b.transactionFrequency
	}
	if a.keywordSpecificity != b.keywordSpecificity {
		return a.keywordSpecificity > b.keywordSpecificity
	}
	if a.hasWebsiteMatch != b.hasWebsiteMatch {
		return a.hasWebsiteMatch
	}
	return a.order < b.order
}
