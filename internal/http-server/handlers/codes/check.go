package codes

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/nglmq/upc-validator/internal/auth"
	"github.com/nglmq/upc-validator/internal/cache"
	"github.com/nglmq/upc-validator/internal/metrics"
	"github.com/nglmq/upc-validator/internal/storage/postgres"
	"github.com/nglmq/upc-validator/internal/validation"
)

type CheckResult struct {
	Code  string `json:"code"`
	Valid bool   `json:"valid"`
}

type CheckSaver interface {
	SaveCheck(ctx context.Context, login, code string, valid bool) (postgres.Check, error)
}

// CheckCodeHandle validates a UPC-A code sent as a plain-text body,
// records the verdict for the authenticated user and returns it.
// Both cache and metrics may be nil.
func CheckCodeHandle(checkSaver CheckSaver, verdicts *cache.Cache, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "User not authorized", http.StatusUnauthorized)
			return
		}

		login := auth.GetUserID(authHeader)
		if login == "" {
			http.Error(w, "User not authorized", http.StatusUnauthorized)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Error reading request body", http.StatusBadRequest)
			return
		}
		codeString := strings.TrimSpace(string(body))
		if codeString == "" {
			http.Error(w, "No code provided", http.StatusBadRequest)
			return
		}

		code, err := validation.ParseCode(codeString)
		if err != nil {
			http.Error(w, "Code must be 12 digits", http.StatusUnprocessableEntity)
			return
		}

		valid, hit := verdicts.GetVerdict(r.Context(), codeString)
		if hit {
			m.ObserveCacheHit()
		} else {
			valid, err = code.Validate()
			if err != nil {
				if errors.Is(err, validation.ErrSequenceOverflow) {
					http.Error(w, "Code digits must be 0-9", http.StatusUnprocessableEntity)
					return
				}
				if errors.Is(err, validation.ErrCheckDigitOverflow) {
					http.Error(w, "Check digit must be 0-9", http.StatusUnprocessableEntity)
					return
				}

				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}

			verdicts.SetVerdict(r.Context(), codeString, valid)
		}

		m.ObserveCheck(valid)

		if _, err := checkSaver.SaveCheck(r.Context(), login, codeString, valid); err != nil {
			slog.Info("failed to save check", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		response, err := json.Marshal(CheckResult{Code: codeString, Valid: valid})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(response)
	}
}
