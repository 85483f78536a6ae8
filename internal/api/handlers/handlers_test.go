package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/moneymap/account-detect/internal/balance"
	"github.com/moneymap/account-detect/internal/detect"
	"github.com/moneymap/account-detect/internal/store"
	"github.com/moneymap/account-detect/internal/store/inmemory"
)

func newDetectHandler() *DetectHandler {
	log := zerolog.Nop()
	return NewDetectHandler(detect.New(log, balance.NewExtractor(log)), log)
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func decodeDetection(t *testing.T, rr *httptest.ResponseRecorder) (bool, *detect.DetectedAccount) {
	t.Helper()
	var resp struct {
		Detected bool                    `json:"detected"`
		Account  *detect.DetectedAccount `json:"account"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp.Detected, resp.Account
}

func TestDetectFilename(t *testing.T) {
	h := newDetectHandler()

	rr := postJSON(t, h.DetectFilename, `{"filename": "chase_checking_1234.csv"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	detected, account := decodeDetection(t, rr)
	if !detected || account == nil {
		t.Fatalf("response = %s, want a detection", rr.Body.String())
	}
	if account.InstitutionName != "Chase" || account.AccountNumber != "1234" {
		t.Errorf("account = %+v, want Chase/1234", account)
	}
}

func TestDetectFilename_NoSignal(t *testing.T) {
	rr := postJSON(t, newDetectHandler().DetectFilename, `{"filename": "unknown.csv"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if detected, _ := decodeDetection(t, rr); detected {
		t.Errorf("response = %s, want no detection", rr.Body.String())
	}
}

func TestDetectFilename_BadRequest(t *testing.T) {
	h := newDetectHandler()

	if rr := postJSON(t, h.DetectFilename, `{`); rr.Code != http.StatusBadRequest {
		t.Errorf("malformed body: status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if rr := postJSON(t, h.DetectFilename, `{}`); rr.Code != http.StatusBadRequest {
		t.Errorf("missing filename: status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestDetectPDF(t *testing.T) {
	body := `{"text": "Chase Sapphire Reserve\nAccount Number: **** 4421\nNew Balance: $1,234.56", "filename": "statement.pdf"}`
	rr := postJSON(t, newDetectHandler().DetectPDF, body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	detected, account := decodeDetection(t, rr)
	if !detected || account == nil {
		t.Fatalf("response = %s, want a detection", rr.Body.String())
	}
	if account.AccountName != "Chase Sapphire Reserve" || account.AccountNumber != "4421" {
		t.Errorf("account = %+v", account)
	}
}

func TestDetectHeaders(t *testing.T) {
	body := `{"headers": ["Account Name: My Chase Checking", "Account Number: 1234"], "filename": "export.csv"}`
	rr := postJSON(t, newDetectHandler().DetectHeaders, body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	_, account := decodeDetection(t, rr)
	if account == nil || account.AccountName != "My Chase Checking" {
		t.Errorf("account = %+v, want AccountName %q", account, "My Chase Checking")
	}
}

func TestMatchAccount(t *testing.T) {
	st := inmemory.New()
	saved, err := st.Upsert(context.Background(), &store.Account{
		UserID:          "u1",
		Name:            "Chase Card",
		InstitutionName: "Chase",
		AccountNumber:   "4421",
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	h := NewAccountsHandler(detect.NewMatcher(st, zerolog.Nop()), zerolog.Nop())

	rr := postJSON(t, h.MatchAccount, `{"user_id": "u1", "account": {"account_number": "4421", "institution_name": "Chase"}}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp struct {
		Matched   bool   `json:"matched"`
		AccountID string `json:"account_id"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Matched || resp.AccountID != saved.ID {
		t.Errorf("response = %+v, want match on %q", resp, saved.ID)
	}
}

func TestMatchAccount_BadRequest(t *testing.T) {
	h := NewAccountsHandler(detect.NewMatcher(inmemory.New(), zerolog.Nop()), zerolog.Nop())

	if rr := postJSON(t, h.MatchAccount, `{"account": {"account_number": "4421"}}`); rr.Code != http.StatusBadRequest {
		t.Errorf("missing user_id: status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
