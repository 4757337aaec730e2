package repository

import (
	"fmt"
	"strings"
	"sync"

	"service-motorizado/internal/apperr"
	"service-motorizado/internal/domain"
)

// CourierStore holds couriers and the credentials used to sign in as them.
type CourierStore struct {
	mu          sync.RWMutex
	couriers    map[string]domain.Courier
	credentials map[string]domain.Credential
}

// NewCourierStore creates an empty CourierStore.
func NewCourierStore() *CourierStore {
	return &CourierStore{
		couriers:    make(map[string]domain.Courier),
		credentials: make(map[string]domain.Credential),
	}
}

// Get returns the courier by id.
func (r *CourierStore) Get(id string) (domain.Courier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.couriers[id]
	if !ok {
		return domain.Courier{}, fmt.Errorf("courier %q: %w", id, apperr.ErrNotFound)
	}
	return c, nil
}

// Put creates or replaces a courier.
func (r *CourierStore) Put(c domain.Courier) error {
	if c.ID == "" {
		return fmt.Errorf("put courier: %w: id is required", apperr.ErrValidation)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.couriers[c.ID] = c
	return nil
}

// AddCredential registers a sign-in identity. Emails are unique, compared case-insensitively.
func (r *CourierStore) AddCredential(c domain.Credential) error {
	key := emailKey(c.Email)
	if key == "" || c.CourierID == "" {
		return fmt.Errorf("add credential: %w: email and courier are required", apperr.ErrValidation)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.credentials[key]; ok {
		return fmt.Errorf("add credential %q: %w", c.Email, apperr.ErrConflict)
	}
	r.credentials[key] = c
	return nil
}

// CredentialByEmail returns the identity registered for email.
func (r *CourierStore) CredentialByEmail(email string) (domain.Credential, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.credentials[emailKey(email)]
	return c, ok
}

// Update runs mutation on a copy of the courier and stores the result.
func (r *CourierStore) Update(id string, mutation func(*domain.Courier)) (domain.Courier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.couriers[id]
	if !ok {
		return domain.Courier{}, fmt.Errorf("courier %q: %w", id, apperr.ErrNotFound)
	}
	mutation(&c)
	c.ID = id
	r.couriers[id] = c
	return c, nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
