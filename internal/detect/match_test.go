package detect

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/moneymap/account-detect/internal/store"
	"github.com/moneymap/account-detect/internal/store/inmemory"
)

func seedAccount(t *testing.T, st *inmemory.Store, account *store.Account) *store.Account {
	t.Helper()
	saved, err := st.Upsert(context.Background(), account)
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	return saved
}

func TestMatchExisting_ByNumberAndInstitution(t *testing.T) {
	st := inmemory.New()
	saved := seedAccount(t, st, &store.Account{
		UserID:          "u1",
		Name:            "Chase Sapphire Reserve",
		InstitutionName: "Chase",
		AccountType:     TypeCredit,
		AccountNumber:   "4421",
	})
	m := NewMatcher(st, zerolog.Nop())

	id, err := m.MatchExisting(context.Background(), "u1", &DetectedAccount{
		AccountNumber:   "4421",
		InstitutionName: "chase",
	})
	if err != nil {
		t.Fatalf("MatchExisting: %v", err)
	}
	if id != saved.ID {
		t.Errorf("matched ID = %q, want %q", id, saved.ID)
	}
}

func TestMatchExisting_ByNumberAlone(t *testing.T) {
	st := inmemory.New()
	saved := seedAccount(t, st, &store.Account{
		UserID:        "u1",
		Name:          "Savings",
		AccountNumber: "2210",
	})
	m := NewMatcher(st, zerolog.Nop())

	id, err := m.MatchExisting(context.Background(), "u1", &DetectedAccount{AccountNumber: "2210"})
	if err != nil {
		t.Fatalf("MatchExisting: %v", err)
	}
	if id != saved.ID {
		t.Errorf("matched ID = %q, want %q", id, saved.ID)
	}
}

func TestMatchExisting_ByNormalizedNumber(t *testing.T) {
	st := inmemory.New()
	saved := seedAccount(t, st, &store.Account{
		UserID:        "u1",
		Name:          "Checking",
		AccountNumber: "8-41007",
	})
	m := NewMatcher(st, zerolog.Nop())

	id, err := m.MatchExisting(context.Background(), "u1", &DetectedAccount{AccountNumber: "1007"})
	if err != nil {
		t.Fatalf("MatchExisting: %v", err)
	}
	if id != saved.ID {
		t.Errorf("matched ID = %q, want %q", id, saved.ID)
	}
}

func TestMatchExisting_ByInstitutionAndType(t *testing.T) {
	st := inmemory.New()
	saved := seedAccount(t, st, &store.Account{
		UserID:          "u1",
		Name:            "Monzo Current",
		InstitutionName: "Monzo",
		AccountType:     TypeDepository,
	})
	m := NewMatcher(st, zerolog.Nop())

	id, err := m.MatchExisting(context.Background(), "u1", &DetectedAccount{
		InstitutionName: "monzo",
		AccountType:     TypeDepository,
	})
	if err != nil {
		t.Fatalf("MatchExisting: %v", err)
	}
	if id != saved.ID {
		t.Errorf("matched ID = %q, want %q", id, saved.ID)
	}
}

func TestMatchExisting_NumberMustAgree(t *testing.T) {
	st := inmemory.New()
	seedAccount(t, st, &store.Account{
		UserID:          "u1",
		Name:            "Chase Card",
		InstitutionName: "Chase",
		AccountType:     TypeCredit,
		AccountNumber:   "4421",
	})
	m := NewMatcher(st, zerolog.Nop())

	// Same institution and type, but a conflicting number blocks the match.
	id, err := m.MatchExisting(context.Background(), "u1", &DetectedAccount{
		InstitutionName: "Chase",
		AccountType:     TypeCredit,
		AccountNumber:   "9999",
	})
	if err != nil {
		t.Fatalf("MatchExisting: %v", err)
	}
	if id != "" {
		t.Errorf("matched ID = %q, want no match", id)
	}
}

func TestMatchExisting_NoMatch(t *testing.T) {
	st := inmemory.New()
	m := NewMatcher(st, zerolog.Nop())

	id, err := m.MatchExisting(context.Background(), "u1", &DetectedAccount{
		AccountNumber:   "4421",
		InstitutionName: "Chase",
		AccountType:     TypeCredit,
	})
	if err != nil {
		t.Fatalf("MatchExisting: %v", err)
	}
	if id != "" {
		t.Errorf("matched ID = %q, want no match", id)
	}
}

func TestMatchExisting_EmptyInputs(t *testing.T) {
	m := NewMatcher(inmemory.New(), zerolog.Nop())

	if id, _ := m.MatchExisting(context.Background(), "", &DetectedAccount{AccountNumber: "4421"}); id != "" {
		t.Errorf("empty user: matched ID = %q, want no match", id)
	}
	if id, _ := m.MatchExisting(context.Background(), "u1", nil); id != "" {
		t.Errorf("nil detection: matched ID = %q, want no match", id)
	}
}
