package user_auth

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/nglmq/upc-validator/internal/auth"
	"github.com/nglmq/upc-validator/internal/storage"
)

type LoginData struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserGetter interface {
	GetUser(ctx context.Context, login, password string) (string, error)
}

func LoginHandle(userGetter UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var data LoginData

		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			slog.Info("invalid login request", "error", err)

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := validator.New().Struct(data); err != nil {
			slog.Info("invalid validation for login", "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		_, err := userGetter.GetUser(r.Context(), data.Login, data.Password)
		if errors.Is(err, storage.ErrIncorrectPassword) {
			slog.Info("password is incorrect")

			http.Error(w, "password is incorrect", http.StatusUnauthorized)
			return
		}
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				slog.Info("user not found")

				http.Error(w, "user not found", http.StatusUnauthorized)
				return
			}
			slog.Info("failed to get user while login", "error", err)

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		tokenString, err := auth.BuildJWTString(data.Login)
		if err != nil {
			slog.Info("failed to create JWT token", "error", err)
			http.Error(w, "failed to create JWT token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Authorization", tokenString)
		http.SetCookie(w, &http.Cookie{
			Name:     "User",
			Value:    tokenString,
			Path:     "/",
			HttpOnly: true,
			Secure:   true,
		})

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(data.Login))
	}
}
