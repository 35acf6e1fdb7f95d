package codes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nglmq/upc-validator/internal/auth"
	"github.com/nglmq/upc-validator/internal/storage"
	"github.com/nglmq/upc-validator/internal/storage/postgres"
)

type CheckGetter interface {
	GetChecks(ctx context.Context, login string) ([]postgres.Check, error)
}

func GetChecksHandle(checkGetter CheckGetter) http.HandlerFunc {
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

		checks, err := checkGetter.GetChecks(r.Context(), login)
		if err != nil {
			if errors.Is(err, storage.ErrNoChecks) {
				http.Error(w, "No checks found", http.StatusNoContent)
				return
			}

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		response, err := json.Marshal(checks)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(response)
	}
}
