package service_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/lib/pq"

	"medical-directory/internal/apperror"
	"medical-directory/internal/model"
)

// memoryUsers : users table with the same unique constraints as the schema
type memoryUsers struct {
	mu    sync.Mutex
	users map[string]model.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[string]model.User{}}
}

func (m *memoryUsers) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == user.Email {
			return nil, &pq.Error{Code: "23505", Constraint: "users_email_key"}
		}
		if existing.Phone == user.Phone {
			return nil, &pq.Error{Code: "23505", Constraint: "users_phone_key"}
		}
	}

	created := *user
	created.CreatedAt = time.Now()
	m.users[created.ID] = created
	return &created, nil
}

func (m *memoryUsers) FindByID(_ context.Context, id string) (*model.User, error) {
	return m.find(func(u model.User) bool { return u.ID == id })
}

func (m *memoryUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	return m.find(func(u model.User) bool { return u.Email == email })
}

func (m *memoryUsers) FindByPhone(_ context.Context, phone string) (*model.User, error) {
	return m.find(func(u model.User) bool { return u.Phone == phone })
}

func (m *memoryUsers) FindByEmailOrPhone(_ context.Context, email, phone string) (*model.User, error) {
	return m.find(func(u model.User) bool {
		return (email != "" && u.Email == email) || (phone != "" && u.Phone == phone)
	})
}

func (m *memoryUsers) UpdatePassword(_ context.Context, id, newPasswordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return apperror.ErrNotFound
	}
	user.PasswordHash = newPasswordHash
	m.users[id] = user
	return nil
}

func (m *memoryUsers) delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
}

func (m *memoryUsers) find(match func(model.User) bool) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var found []model.User
	for _, u := range m.users {
		if match(u) {
			found = append(found, u)
		}
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("memory: %w", apperror.ErrNotFound)
	}
	sort.Slice(found, func(i, j int) bool { return found[i].CreatedAt.Before(found[j].CreatedAt) })
	return &found[0], nil
}

// memoryTokens : refresh_tokens table
type memoryTokens struct {
	mu   sync.Mutex
	rows map[string]model.RefreshToken
}

func newMemoryTokens() *memoryTokens {
	return &memoryTokens{rows: map[string]model.RefreshToken{}}
}

func (m *memoryTokens) ReplaceForUser(_ context.Context, refreshToken *model.RefreshToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for token, row := range m.rows {
		if row.UserID == refreshToken.UserID {
			delete(m.rows, token)
		}
	}
	row := *refreshToken
	row.CreatedAt = time.Now()
	m.rows[row.Token] = row
	return nil
}

func (m *memoryTokens) Consume(_ context.Context, token string) (*model.RefreshToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.rows[token]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	delete(m.rows, token)
	return &row, nil
}

func (m *memoryTokens) DeleteByToken(_ context.Context, token string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[token]; !ok {
		return 0, nil
	}
	delete(m.rows, token)
	return 1, nil
}

func (m *memoryTokens) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64
	for token, row := range m.rows {
		if row.ExpiresAt.Before(now) {
			delete(m.rows, token)
			deleted++
		}
	}
	return deleted, nil
}

func (m *memoryTokens) expire(token string, at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row := m.rows[token]
	row.ExpiresAt = at
	m.rows[token] = row
}

func (m *memoryTokens) has(token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.rows[token]
	return ok
}
