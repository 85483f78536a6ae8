package detect

import "strings"

// maxScanChars bounds regex scans over statement text.
const maxScanChars = 10000

func truncateForScan(text string) string {
	if len(text) > maxScanChars {
		return text[:maxScanChars]
	}
	return text
}

// lastFourFromMatch strips masks and separators from a raw capture and keeps
// the last 4 digits. Returns "" when fewer than 4 digits remain.
func lastFourFromMatch(raw string) string {
	cleaned := maskAndSeparatorRe.ReplaceAllString(raw, "")
	if len(cleaned) < 4 {
		return ""
	}
	return cleaned[len(cleaned)-4:]
}

// extractAccountNumber finds the last 4 digits of an account or card number
// in statement text. The general labeled pattern runs first; a laxer
// card-only pattern picks up masked card numbers it misses.
func extractAccountNumber(text string) string {
	if text == "" {
		return ""
	}
	text = truncateForScan(text)

	if m := accountNumberRe.FindStringSubmatch(text); m != nil {
		if n := lastFourFromMatch(m[1]); n != "" {
			return n
		}
	}
	if m := cardNumberRe.FindStringSubmatch(text); m != nil {
		if n := lastFourFromMatch(m[1]); n != "" {
			return n
		}
	}
	return ""
}

// extractCardNumber applies only the card-specific pattern. Used to tell a
// card number apart from a plain account number on credit statements.
func extractCardNumber(text string) string {
	if text == "" {
		return ""
	}
	text = truncateForScan(text)

	if m := cardNumberRe.FindStringSubmatch(text); m != nil {
		return lastFourFromMatch(m[1])
	}
	return ""
}

// normalizeNumberForMatching reduces any account number format to its last 4
// digits ("8-41007", "841007" and "8 41007" all become "1007").
func normalizeNumberForMatching(accountNumber string) string {
	if strings.TrimSpace(accountNumber) == "" {
		return ""
	}
	digits := nonDigitRe.ReplaceAllString(accountNumber, "")
	if digits == "" {
		return ""
	}
	if len(digits) > 4 {
		return digits[len(digits)-4:]
	}
	return digits
}
