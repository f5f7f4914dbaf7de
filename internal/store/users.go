package store

import (
	"errors"
	"sync"

	"github.com/mdSHash/SleekSell/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// CredentialStore keeps operator accounts in memory. Only the bcrypt hash of
// a password is ever stored.
type CredentialStore struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewCredentialStore() *CredentialStore {
	return &CredentialStore{users: make(map[string]model.User)}
}

// Register creates or overwrites the account for username. Registering an
// existing username replaces it entirely — there is no merge.
func (s *CredentialStore) Register(username, password string, role model.Role) error {
	if username == "" || password == "" {
		return errors.New("username and password are required")
	}
	if !role.Valid() {
		return errors.New("unknown role " + string(role))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = model.User{Username: username, PasswordHash: string(hash), Role: role}
	return nil
}

// Authenticate reports whether username exists and password matches its
// stored hash. A mismatch or unknown username is a normal false, not an
// error.
func (s *CredentialStore) Authenticate(username, password string) bool {
	s.mu.RLock()
	u, ok := s.users[username]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Find returns the stored account for username.
func (s *CredentialStore) Find(username string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[username]
	return u, ok
}
