package detect

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/moneymap/account-detect/internal/store"
)

// Matcher reconciles detected accounts against a user's persisted accounts.
type Matcher struct {
	store store.AccountStore
	log   zerolog.Logger
}

func NewMatcher(st store.AccountStore, log zerolog.Logger) *Matcher {
	return &Matcher{store: st, log: log}
}

// MatchExisting finds the persisted account a detection refers to, trying
// number+institution, then number alone (exact, then normalized), then
// institution+type. A store error in one strategy logs and falls through to
// the next; "" means no match.
func (m *Matcher) MatchExisting(ctx context.Context, userID string, detected *DetectedAccount) (string, error) {
	if userID == "" || detected == nil {
		return "", nil
	}

	if detected.AccountNumber != "" && detected.InstitutionName != "" {
		account, err := m.store.FindByNumberAndInstitution(ctx, userID, detected.AccountNumber, detected.InstitutionName)
		if err != nil {
			m.log.Warn().Err(err).Msg("match by number and institution failed")
		} else if account != nil {
			m.log.Info().Str("account_id", account.ID).Msg("matched account by number and institution")
			return account.ID, nil
		}
	}

	if strings.TrimSpace(detected.AccountNumber) != "" {
		if id := m.matchByNumber(ctx, userID, detected.AccountNumber); id != "" {
			return id, nil
		}
	}

	if detected.InstitutionName != "" && detected.AccountType != "" {
		if id := m.matchByInstitutionAndType(ctx, userID, detected); id != "" {
			return id, nil
		}
	}

	m.log.Info().Str("account_name", detected.AccountName).Msg("no existing account match found")
	return "", nil
}

func (m *Matcher) matchByNumber(ctx context.Context, userID, accountNumber string) string {
	account, err := m.store.FindByNumber(ctx, userID, accountNumber)
	if err != nil {
		m.log.Warn().Err(err).Msg("match by number failed")
		return ""
	}
	if account != nil {
		m.log.Info().Str("account_id", account.ID).Msg("matched account by number")
		return account.ID
	}

	// Stored numbers may carry separators the detected one lacks; compare
	// normalized last-4 forms.
	normalized := normalizeNumberForMatching(accountNumber)
	if normalized == "" {
		return ""
	}
	accounts, err := m.store.ListByUser(ctx, userID)
	if err != nil {
		m.log.Warn().Err(err).Msg("listing accounts for normalized number match failed")
		return ""
	}
	for _, account := range accounts {
		if account.AccountNumber != "" && normalizeNumberForMatching(account.AccountNumber) == normalized {
			m.log.Info().Str("account_id", account.ID).Msg("matched account by normalized number")
			return account.ID
		}
	}
	return ""
}

func (m *Matcher) matchByInstitutionAndType(ctx context.Context, userID string, detected *DetectedAccount) string {
	accounts, err := m.store.ListByUser(ctx, userID)
	if err != nil {
		m.log.Warn().Err(err).Msg("listing accounts for institution and type match failed")
		return ""
	}

	for _, account := range accounts {
		if account.InstitutionName == "" ||
			!strings.EqualFold(detected.InstitutionName, account.InstitutionName) ||
			detected.AccountType != account.AccountType {
			continue
		}

		// A detected number must agree; without one, institution and type
		// suffice.
		if strings.TrimSpace(detected.AccountNumber) != "" {
			if normalizeNumberForMatching(detected.AccountNumber) != normalizeNumberForMatching(account.AccountNumber) {
				continue
			}
		}

		m.log.Info().Str("account_id", account.ID).Msg("matched account by institution and type")
		return account.ID
	}
	return ""
}
