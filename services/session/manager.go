package session

import (
	"context"
	"encoding/json"
	"fmt"

	"vaxbook/models"
)

// Manager reads and writes the session through a Store.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Store exposes the underlying storage.
func (m *Manager) Store() Store {
	return m.store
}

// Save persists the token and the user fields decoded from it.
func (m *Manager) Save(ctx context.Context, s models.Session) error {
	if s.Token == "" {
		return fmt.Errorf("refusing to store an empty token")
	}
	return m.store.MultiSet(ctx, map[string]string{
		KeyToken:     s.Token,
		KeyUserID:    s.Claims.UserID,
		KeyUserEmail: s.Claims.Email,
		KeyUserName:  s.Claims.Name,
		KeyUserRole:  s.Claims.Role,
	})
}

// Token returns the stored token, or "" when logged out.
func (m *Manager) Token(ctx context.Context) (string, error) {
	return m.store.Get(ctx, KeyToken)
}

// Current returns the stored session or ErrNoSession.
func (m *Manager) Current(ctx context.Context) (*models.Session, error) {
	token, err := m.store.Get(ctx, KeyToken)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNoSession
	}
	s := &models.Session{Token: token}
	fields := []struct {
		key string
		dst *string
	}{
		{KeyUserID, &s.Claims.UserID},
		{KeyUserEmail, &s.Claims.Email},
		{KeyUserName, &s.Claims.Name},
		{KeyUserRole, &s.Claims.Role},
	}
	for _, f := range fields {
		v, err := m.store.Get(ctx, f.key)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}
	return s, nil
}

// Logout wipes everything the client persisted, draft included.
func (m *Manager) Logout(ctx context.Context) error {
	return m.store.Clear(ctx)
}

// SaveChildDraft keeps an unsent child profile on the device.
func (m *Manager) SaveChildDraft(ctx context.Context, draft models.NewChild) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return m.store.MultiSet(ctx, map[string]string{KeyChildProfile: string(data)})
}

// ChildDraft returns the saved draft, or nil when there is none.
func (m *Manager) ChildDraft(ctx context.Context) (*models.NewChild, error) {
	raw, err := m.store.Get(ctx, KeyChildProfile)
	if err != nil || raw == "" {
		return nil, err
	}
	var draft models.NewChild
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, fmt.Errorf("failed to decode child draft: %w", err)
	}
	return &draft, nil
}

// ClearChildDraft drops the saved draft once it has been sent.
func (m *Manager) ClearChildDraft(ctx context.Context) error {
	return m.store.Remove(ctx, KeyChildProfile)
}
