package admin

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Admin struct {
	ID    string
	Email string
	Hash  []byte
}

// Store holds back-office accounts. Accounts are seeded from configuration
// at startup; there is no self-service registration.
type Store struct {
	mu      sync.RWMutex
	byEmail map[string]Admin
}

func NewStore() *Store {
	return &Store{byEmail: make(map[string]Admin)}
}

func (s *Store) Seed(id, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byEmail[email] = Admin{ID: id, Email: email, Hash: hash}
	return nil
}

func (s *Store) Verify(email, password string) (Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.RLock()
	a, ok := s.byEmail[email]
	s.mu.RUnlock()

	if !ok {
		return Admin{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(a.Hash, []byte(password)); err != nil {
		return Admin{}, ErrInvalidCredentials
	}

	return a, nil
}
