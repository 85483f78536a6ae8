package detect

import "strings"

// maxFilenameChars bounds keyword scans over filenames.
const maxFilenameChars = 1000

// fromFilename infers account identity from a statement filename, e.g.
// "chase_checking_1234.csv". Returns nil for empty, generated, or UUID
// filenames that carry no signal.
func fromFilename(filename string) *DetectedAccount {
	if strings.TrimSpace(filename) == "" {
		return nil
	}

	lower := strings.ToLower(filename)
	if strings.HasPrefix(lower, "unknown") ||
		strings.HasPrefix(lower, "import_") ||
		uuidFilenameRe.MatchString(lower) {
		return nil
	}

	name := filenameExtensionRe.ReplaceAllString(lower, "")
	detected := &DetectedAccount{}

	detected.InstitutionName = institutionFromFilename(name)

	if accountType := classifyTypeFromFilename(name); accountType != "" {
		detected.AccountType = accountType
		switch accountType {
		case TypeDepository:
			detected.AccountSubtype = depositorySubtype(name)
		case TypeCredit:
			detected.AccountSubtype = SubtypeCreditCard
		}
	}

	if m := filenameDigitsAfterRe.FindStringSubmatch(name); m != nil {
		detected.AccountNumber = m[2]
	} else if m := filenameDigitsAloneRe.FindStringSubmatch(name); m != nil {
		detected.AccountNumber = m[1]
	}

	if detected.InstitutionName != "" && detected.AccountType != "" {
		detected.AccountName = AccountDisplayName(
			detected.InstitutionName, detected.AccountType,
			detected.AccountSubtype, detected.AccountNumber)
	}

	return detected
}

// institutionFromFilename matches institution keywords as substrings, with
// underscores and hyphens normalized to spaces so "wells_fargo" hits the
// "wells fargo" keyword.
func institutionFromFilename(name string) string {
	if name == "" {
		return ""
	}
	if len(name) > maxFilenameChars {
		name = name[:maxFilenameChars]
	}
	normalized := underscoreHyphenRe.ReplaceAllString(strings.ToLower(name), " ")

	for _, keyword := range institutionKeywords {
		key := underscoreHyphenRe.ReplaceAllString(keyword, " ")
		if strings.Contains(normalized, key) {
			return NormalizeInstitutionName(keyword)
		}
	}
	return ""
}
