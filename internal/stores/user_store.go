package stores

import (
	"sync"
	"time"

	"cardlet-server/internal/schemas"
)

// UserStore holds the registered accounts. Email and username uniqueness is
// checked under the same lock as the insert, so two concurrent registrations
// can never both claim the same key.
type UserStore struct {
	mu         sync.RWMutex
	users      map[int64]*schemas.User
	byEmail    map[string]int64
	byUsername map[string]int64
	nextID     int64
}

func NewUserStore() *UserStore {
	return &UserStore{
		users:      make(map[int64]*schemas.User),
		byEmail:    make(map[string]int64),
		byUsername: make(map[string]int64),
		nextID:     1,
	}
}

// Register stores a new account with the given password hash and returns it
// with a fresh sequential id. It fails with ErrEmailTaken or ErrUsernameTaken
// when the respective key is already claimed.
func (s *UserStore) Register(username, email, passwordHash string) (schemas.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[email]; taken {
		return schemas.User{}, ErrEmailTaken
	}
	if _, taken := s.byUsername[username]; taken {
		return schemas.User{}, ErrUsernameTaken
	}

	user := &schemas.User{
		ID:        s.nextID,
		Username:  username,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: time.Now().UTC(),
	}
	s.users[user.ID] = user
	s.byEmail[email] = user.ID
	s.byUsername[username] = user.ID
	s.nextID++

	return *user, nil
}

// FindByEmail returns the account registered under the given email.
func (s *UserStore) FindByEmail(email string) (schemas.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return schemas.User{}, false
	}
	return *s.users[id], true
}

// FindByID returns the account with the given id.
func (s *UserStore) FindByID(id int64) (schemas.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return schemas.User{}, false
	}
	return *user, true
}
