// Package handlers exposes account detection over HTTP.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/moneymap/account-detect/internal/api/middleware"
	"github.com/moneymap/account-detect/internal/detect"
)

// DetectHandler handles detection endpoints.
type DetectHandler struct {
	detector *detect.Detector
	log      zerolog.Logger
}

// NewDetectHandler creates a new detection handler.
func NewDetectHandler(detector *detect.Detector, log zerolog.Logger) *DetectHandler {
	return &DetectHandler{detector: detector, log: log}
}

// DetectFilename handles POST /api/detect/filename
func (h *DetectHandler) DetectFilename(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Filename string `json:"filename"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Filename == "" {
		middleware.WriteError(w, http.StatusBadRequest, "filename is required")
		return
	}

	writeDetection(w, h.detector.FromFilename(req.Filename))
}

// DetectPDF handles POST /api/detect/pdf
func (h *DetectHandler) DetectPDF(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text     string `json:"text"`
		Filename string `json:"filename"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Text == "" && req.Filename == "" {
		middleware.WriteError(w, http.StatusBadRequest, "text or filename is required")
		return
	}

	writeDetection(w, h.detector.FromPDFContent(req.Text, req.Filename))
}

// DetectHeaders handles POST /api/detect/headers
func (h *DetectHandler) DetectHeaders(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Headers  []string `json:"headers"`
		Filename string   `json:"filename"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Headers) == 0 && req.Filename == "" {
		middleware.WriteError(w, http.StatusBadRequest, "headers or filename is required")
		return
	}

	writeDetection(w, h.detector.FromHeaders(req.Headers, req.Filename))
}

func writeDetection(w http.ResponseWriter, detected *detect.DetectedAccount) {
	if detected == nil {
		middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"detected": false,
		})
		return
	}
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"detected": true,
		"account":  detected,
	})
}

// AccountsHandler handles account matching endpoints.
type AccountsHandler struct {
	matcher *detect.Matcher
	log     zerolog.Logger
}

// NewAccountsHandler creates a new accounts handler.
func NewAccountsHandler(matcher *detect.Matcher, log zerolog.Logger) *AccountsHandler {
	return &AccountsHandler{matcher: matcher, log: log}
}

// MatchAccount handles POST /api/accounts/match
func (h *AccountsHandler) MatchAccount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID  string                  `json:"user_id"`
		Account *detect.DetectedAccount `json:"account"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" || req.Account == nil {
		middleware.WriteError(w, http.StatusBadRequest, "user_id and account are required")
		return
	}

	accountID, err := h.matcher.MatchExisting(r.Context(), req.UserID, req.Account)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to match account")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to match account")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"matched":    accountID != "",
		"account_id": accountID,
	})
}
