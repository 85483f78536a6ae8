package detect

import (
	"regexp"
	"strings"
	"sync"
)

// Account and card number extraction. The capture group tolerates mask runs
// ("****", "xxxx") up to 24 chars and separator-riddled digit groups like
// "8-41007" or "1234 5678 9012 3456".
var (
	accountNumberRe = regexp.MustCompile(`(?i)(?:` +
		`(?:(?:account|acct|card|credit\s*card|debit\s*card|savings\s*account|checking\s*account|investment\s*account|brokerage\s*account|loan\s*account|mortgage\s*account|auto\s*loan|personal\s*loan)\s*(?:number|#|no\.?)?\s*(?:ending\s*(?:in|with)?\s*:?\s*|with\s*(?:last\s*)?(?:4\s*|four\s*)?(?:digits?|numbers?)\s*:?\s*))` +
		`|(?:last\s*(?:4\s*|four\s*)?(?:digits?|numbers?)\s*:?\s*)` +
		`|(?:(?:account|acct|card|credit\s*card|debit\s*card|savings|checking|investment|brokerage|loan|mortgage)\s*(?:number|#|no\.?)\s*:?\s*)` +
		`)([*xX\s-]{0,24}(?:\d[\s-]*){3,19}\d)`)

	// Card-only fallback: the label part is laxer (everything after "card"
	// is optional), so it catches masked card numbers the general pattern
	// misses.
	cardNumberRe = regexp.MustCompile(`(?i)(?:(?:card|credit\s*card|debit\s*card)\s*(?:number|#)?\s*(?:ending\s*(?:in|with)?\s*:?\s*|with\s*(?:last\s*)?(?:4\s*|four\s*)?(?:digits?|numbers?)\s*:?\s*)?)([*xX\s-]{0,24}(?:\d[\s-]*){3,19}\d)`)

	maskAndSeparatorRe = regexp.MustCompile(`[*xX\s-]`)
	nonDigitRe         = regexp.MustCompile(`[^0-9]`)
)

// Filename analysis.
var (
	filenameExtensionRe   = regexp.MustCompile(`\.(?:csv|xlsx|xls|pdf)$`)
	uuidFilenameRe        = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.(?:csv|xlsx|xls|pdf)$`)
	filenameDigitsAfterRe = regexp.MustCompile(`(?i)([a-z]+)(\d{4})(?:_|\s|$)`)
	filenameDigitsAloneRe = regexp.MustCompile(`(?:^|_|\s)(\d{4})(?:$|_|\s)`)
	underscoreHyphenRe    = regexp.MustCompile(`[_\-]`)
)

// Holder-name extraction.
var (
	holderDirectRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)card\s*member\s*:?\s*(.+)`),
		regexp.MustCompile(`(?i)(?:name|user|cardholder|holder)\s*:?\s*(.+)`),
		regexp.MustCompile(`(?i)account\s*holder\s*:?\s*(.+)`),
		regexp.MustCompile(`(?i)primary\s+account\s+holder\s*:?\s*(.+)`),
		regexp.MustCompile(`(?i)primary\s+cardholder\s*:?\s*(.+)`),
		regexp.MustCompile(`(?i)account\s+owner\s*:?\s*(.+)`),
		regexp.MustCompile(`(?i)beneficial\s+owner\s*:?\s*(.+)`),
		regexp.MustCompile(`(?i)beneficiary\s*:?\s*(.+)`),
	}

	holderPrefixStripRe   = regexp.MustCompile(`(?i)^(?:name|user|cardholder|holder|card\s*member)\s*:?\s*`)
	holderContextMarkerRe = regexp.MustCompile(`(?:Account|Card)\s+(?:Number|Ending)`)

	addressKeywordRe = regexp.MustCompile(`(?i)\b(?:address|street|city|state|zip|po\s+box|p\.o\.\s+box|apt\.?|apartment)\b`)
	streetKeywordRe  = regexp.MustCompile(`(?i)\b(?:street|avenue|road)\b`)
	streetStartRe    = regexp.MustCompile(`^\d+\s+`)
	zipCodeRe        = regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`)
	zipSpacedRe      = regexp.MustCompile(`\b\d{5}\s+\d{4}\b`)
	memberSinceRe    = regexp.MustCompile(`(?i)\b(?:member|customer)\s+since\b`)

	accountContextRe = regexp.MustCompile(`(?i)\baccount\s+(?:number|ending(?:\s+in)?|#)|\baccount\s+\*{0,4}\d{4,}|\bclosing\s+date`)
	cardContextRe    = regexp.MustCompile(`(?i)\bcard\s+(?:number|ending(?:\s+in)?|#)|\bcard\s+\*{0,4}\d{4,}|\b\d{4}\s+\d{4}\s+\d{4}\s+\d{4}`)

	nameBeforeAccountRe = regexp.MustCompile(`(?i)^(.+?)\s+(?:account\s+(?:number|ending(?:\s+in)?|#)|account\s+\*{0,4}\d{4,}|\d{1,9}\s*-\s*\d{4,6})`)
	nameBeforeCardRe    = regexp.MustCompile(`(?i)^(.+?)\s+(?:card\s+(?:number|ending(?:\s+in)?|#)|card\s+\*{0,4}\d{4,}|\d{4}\s+\d{4}\s+\d{4}\s+\d{4})`)

	columnHeaderLineRe    = regexp.MustCompile(`\bdate\s+description\s+amount`)
	transactionDateLineRe = regexp.MustCompile(`\btransaction\s+date`)
	accountNumberPhraseRe = regexp.MustCompile(`\baccount\s+number\b`)
	cardNumberPhraseRe    = regexp.MustCompile(`\bcard\s+number\b`)

	nameDateRe        = regexp.MustCompile(`\d{1,2}[/-]\d{1,2}(?:[/-]\d{2,4})?`)
	namePhoneRe       = regexp.MustCompile(`\d{1,3}[-.]?\d{3}[-.]?\d{3}[-.]?\d{4}`)
	namePhoneParenRe  = regexp.MustCompile(`\(\s*\d{1,3}\s*[-)]?\s*\d{3}`)
	nameSuffixRe      = regexp.MustCompile(`\s+(?:Jr|Sr|II|III|IV|V|VI|VII|VIII|IX|X)\.?$`)
	trailingPunctRe   = regexp.MustCompile(`[.,;:]+$`)
	nameBadEndingRe   = regexp.MustCompile(`[^a-zA-Z\s\-.,']$`)
	nameTitleStartRe  = regexp.MustCompile(`^[A-Za-z]{1,3}\.\s+`)
	hasLetterRe       = regexp.MustCompile(`[a-zA-Z]`)
	startsWithLetterRe = regexp.MustCompile(`^[A-Za-z]`)
	wordPunctRe       = regexp.MustCompile(`[.,;:']`)
	whitespaceRe      = regexp.MustCompile(`\s+`)
	lineBreakRe       = regexp.MustCompile(`[\r\n]+`)
)

// Product-name extraction.
var (
	primeVisaRe = regexp.MustCompile(`(?i)(?:your\s+)?(prime\s+visa|amazon\s+prime\s+visa|prime\s+rewards\s+visa|prime\s+visa\s+signature)(?:\s+points|\s+card|\s*®|\s*™)?`)
	thankYouRe  = regexp.MustCompile(`(?i)thank\s+you\s+for\s+using\s+your\s+([a-z0-9\s®™©]+?)\s*(?:credit\s*)?card`)

	// Marketing tagline: "Reward your routine everywhere you shop with your
	// Freedom Unlimited card." The capture is loose, so the caller validates
	// it against the card product vocabulary.
	rewardRe = regexp.MustCompile(`(?i)reward\s+(?:your\s+)?(?:routine|everywhere)\b.*?with\s+your\s+([a-z0-9\s®™©]+?)\s*(?:credit\s*card\b|card\b|®|™|\.|$)`)

	productURLRe    = regexp.MustCompile(`(?i)(?:www\.|https?://|\.[a-z]{2,}\b)`)
	productDomainRe = regexp.MustCompile(`(?i)\b(?:chase|wells\s*fargo|bankofamerica|citibank|americanexpress|amex)\s*\.\s*com\b`)
	productCardRe   = regexp.MustCompile(`(?i)\b(?:visa|mastercard|amex|discover)\b`)

	stateZipRe = regexp.MustCompile(`\b[A-Z]{2}\s+\d{5}\b`)
	emailRe    = regexp.MustCompile(`(?i)\b[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}\b`)

	// Structured blacklist patterns; plain phrase checks live in
	// productBlacklistPhrases.
	productBlacklistRes = compileAll(
		`\b(?:street|avenue|road|boulevard|drive|lane|suite|apt|apartment|unit)\b`,
		`\d{5}(?:-\d{4})?`,
		`\d{5}\s+\d{4}`,
		`\d{1,3}[-.]?\d{3}[-.]?\d{3}[-.]?\d{4}`,
		`\(\s*\d{1,3}\s*[-)]?\s*\d{3}`,
	)

	// "Institution Product Card" fallback, built from the institution
	// catalog once at startup.
	productSecondaryRe = buildProductSecondaryRe()
)

func compileAll(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		res = append(res, regexp.MustCompile(`(?i)`+p))
	}
	return res
}

func buildProductSecondaryRe() *regexp.Regexp {
	quoted := make([]string, 0, len(institutionKeywords))
	for _, kw := range institutionKeywords {
		quoted = append(quoted, regexp.QuoteMeta(kw))
	}
	return regexp.MustCompile(`(?i)(?:` + strings.Join(quoted, "|") + `)\s+([A-Za-z][A-Za-z0-9\s®™©]+?)\s*(?:card|®|™)`)
}

// Compiled-pattern caches for institution keywords. Patterns compile lazily
// on first use and are shared across calls; the maps only grow.
var (
	patternCacheMu  sync.RWMutex
	wordPatterns    = make(map[string]*regexp.Regexp)
	websitePatterns = make(map[string]*regexp.Regexp)
)

// wordPattern returns a cached whole-word matcher for the keyword.
func wordPattern(keyword string) *regexp.Regexp {
	patternCacheMu.RLock()
	re, ok := wordPatterns[keyword]
	patternCacheMu.RUnlock()
	if ok {
		return re
	}
	re = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
	patternCacheMu.Lock()
	wordPatterns[keyword] = re
	patternCacheMu.Unlock()
	return re
}

// websitePattern returns a cached matcher for the keyword's web domain:
// "bank of america" matches www.bankofamerica.com, bankofamerica.co.uk, etc.
func websitePattern(keyword string) *regexp.Regexp {
	patternCacheMu.RLock()
	re, ok := websitePatterns[keyword]
	patternCacheMu.RUnlock()
	if ok {
		return re
	}
	slug := strings.ToLower(keyword)
	slug = strings.ReplaceAll(slug, "&", "and")
	slug = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, slug)
	re = regexp.MustCompile(`(?i)(?:www\.)?` + regexp.QuoteMeta(slug) + `\.(?:com|net|org|co\.uk|co\.jp|co\.kr|co\.za|com\.au|com\.sg|com\.my|com\.in)`)
	patternCacheMu.Lock()
	websitePatterns[keyword] = re
	patternCacheMu.Unlock()
	return re
}
