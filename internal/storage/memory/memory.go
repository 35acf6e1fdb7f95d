package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nglmq/upc-validator/internal/storage"
	"github.com/nglmq/upc-validator/internal/storage/postgres"
	"github.com/nglmq/upc-validator/internal/validation"
)

// Storage is an in-memory mirror of the postgres store, used in
// handler tests.
type Storage struct {
	mu     sync.Mutex
	users  map[string]string
	checks map[string][]postgres.Check
}

func New() *Storage {
	return &Storage{
		users:  make(map[string]string),
		checks: make(map[string][]postgres.Check),
	}
}

func (s *Storage) SaveUser(ctx context.Context, login, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[login]; ok {
		return storage.ErrLoginAlreadyExists
	}

	hash, err := validation.HashPassword(password)
	if err != nil {
		return err
	}

	s.users[login] = hash
	return nil
}

func (s *Storage) GetUser(ctx context.Context, login, password string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash, ok := s.users[login]
	if !ok {
		return "", storage.ErrUserNotFound
	}
	if !validation.CheckPassword(password, hash) {
		return "", storage.ErrIncorrectPassword
	}

	return login, nil
}

func (s *Storage) SaveCheck(ctx context.Context, login, code string, valid bool) (postgres.Check, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	check := postgres.Check{
		ID:        uuid.NewString(),
		Code:      code,
		Valid:     valid,
		CheckedAt: time.Now(),
	}

	s.checks[login] = append(s.checks[login], check)
	return check, nil
}

func (s *Storage) GetChecks(ctx context.Context, login string) ([]postgres.Check, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	checks := s.checks[login]
	if len(checks) == 0 {
		return []postgres.Check{}, storage.ErrNoChecks
	}

	out := make([]postgres.Check, len(checks))
	copy(out, checks)
	return out, nil
}

func (s *Storage) CountChecks(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, checks := range s.checks {
		count += int64(len(checks))
	}

	return count, nil
}
