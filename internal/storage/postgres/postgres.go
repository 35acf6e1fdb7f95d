package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/nglmq/upc-validator/internal/config"
	"github.com/nglmq/upc-validator/internal/storage"
	"github.com/nglmq/upc-validator/internal/validation"
)

type Storage struct {
	db *sql.DB
}

type Check struct {
	ID        string    `json:"id" db:"id"`
	Code      string    `json:"code" db:"code"`
	Valid     bool      `json:"valid" db:"valid"`
	CheckedAt time.Time `json:"checked_at" db:"checked_at"`
}

func New() (*Storage, error) {
	db, err := sql.Open("pgx", config.DataBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	_, err = db.Exec(`
	CREATE TABLE IF NOT EXISTS users(
    	id SERIAL PRIMARY KEY,
    	login TEXT NOT NULL UNIQUE,
    	password TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP);
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create users table: %w", err)
	}

	_, err = db.Exec(`
	CREATE TABLE IF NOT EXISTS upc_checks(
	    id UUID PRIMARY KEY,
    	user_login TEXT NOT NULL,
    	code TEXT NOT NULL,
    	valid BOOLEAN NOT NULL,
    	checked_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	    FOREIGN KEY (user_login) REFERENCES users (login));
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create upc_checks table: %w", err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) SaveUser(ctx context.Context, login, password string) error {
	var exists bool

	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE login = $1)", login).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check user existence: %w", err)
	}
	if exists {
		return fmt.Errorf("%w", storage.ErrLoginAlreadyExists)
	}

	password, err = validation.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	stmt, err := s.db.PrepareContext(ctx, `INSERT INTO users(login, password) VALUES ($1, $2)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, login, password)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (s *Storage) GetUser(ctx context.Context, login, password string) (string, error) {
	var correctPassword string

	err := s.db.QueryRowContext(ctx, `SELECT password FROM users WHERE login = $1`, login).Scan(&correctPassword)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to query user: %w", err)
	}

	if !validation.CheckPassword(password, correctPassword) {
		return "", storage.ErrIncorrectPassword
	}

	return login, nil
}

func (s *Storage) SaveCheck(ctx context.Context, login, code string, valid bool) (Check, error) {
	check := Check{
		ID:        uuid.NewString(),
		Code:      code,
		Valid:     valid,
		CheckedAt: time.Now(),
	}

	stmt, err := s.db.PrepareContext(ctx, `INSERT INTO upc_checks(id, user_login, code, valid, checked_at) VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		return Check{}, fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, check.ID, login, check.Code, check.Valid, check.CheckedAt)
	if err != nil {
		return Check{}, fmt.Errorf("failed to insert check: %w", err)
	}

	return check, nil
}

func (s *Storage) GetChecks(ctx context.Context, login string) ([]Check, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, code, valid, checked_at FROM upc_checks WHERE user_login = $1 ORDER BY checked_at ASC", login)
	if err != nil {
		return []Check{}, fmt.Errorf("failed to query checks: %w", err)
	}
	defer rows.Close()

	var checks []Check

	for rows.Next() {
		var check Check

		if err := rows.Scan(&check.ID, &check.Code, &check.Valid, &check.CheckedAt); err != nil {
			return []Check{}, fmt.Errorf("failed to scan check: %w", err)
		}

		checks = append(checks, check)
	}

	if err := rows.Err(); err != nil {
		return []Check{}, fmt.Errorf("error occurred during row iteration: %w", err)
	}

	if len(checks) == 0 {
		return []Check{}, storage.ErrNoChecks
	}

	return checks, nil
}

func (s *Storage) CountChecks(ctx context.Context) (int64, error) {
	var count int64

	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM upc_checks").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count checks: %w", err)
	}

	return count, nil
}
