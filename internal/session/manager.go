// Package session tracks which single account, if any, is currently
// authenticated, and keeps that fact in durable storage so it survives
// process restarts.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/valencire/account/internal/account"
	"github.com/valencire/account/internal/common"
	"github.com/valencire/account/internal/kvstore"
)

// SessionKey is the fixed storage key holding the serialized session.
const SessionKey = "valencire_session"

// timeNow is a test seam for the clock.
var timeNow = time.Now

// Session records who is logged in and since when. The email is a key
// into the account store, never a copy of the record.
type Session struct {
	Email     string    `json:"email"`
	LoginTime time.Time `json:"loginTime"`
}

// Manager owns the zero-or-one active session. Begin overwrites, End is
// idempotent, and Resume re-validates the referenced account so a session
// left behind by a deleted record is discarded rather than trusted.
type Manager struct {
	kv       kvstore.Store
	accounts *account.Store
	current  *Session
}

func NewManager(kv kvstore.Store, accounts *account.Store) *Manager {
	return &Manager{kv: kv, accounts: accounts}
}

// Begin writes a session for email, replacing any previous session.
func (m *Manager) Begin(ctx context.Context, email string) error {
	session := &Session{Email: email, LoginTime: timeNow()}

	blob, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := m.kv.Set(ctx, SessionKey, string(blob)); err != nil {
		return fmt.Errorf("%w: writing session: %v", common.ErrorPersistence, err)
	}

	m.current = session
	return nil
}

// End deletes the session. Ending when no session exists is a no-op.
func (m *Manager) End(ctx context.Context) error {
	if err := m.kv.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("%w: deleting session: %v", common.ErrorPersistence, err)
	}
	m.current = nil
	return nil
}

// Resume restores the authenticated state on startup. It returns the
// record the session resolves to, or nil when logged out. A session whose
// email no longer resolves is stale: the key is deleted and the caller
// sees the logged-out state.
func (m *Manager) Resume(ctx context.Context) (*account.UserRecord, error) {
	blob, err := m.kv.Get(ctx, SessionKey)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			m.current = nil
			return nil, nil
		}
		return nil, fmt.Errorf("%w: reading session: %v", common.ErrorPersistence, err)
	}

	session := &Session{}
	if err := json.Unmarshal([]byte(blob), session); err != nil {
		return nil, fmt.Errorf("decoding session blob: %w", err)
	}

	record, err := m.accounts.Get(session.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// stale session referencing a deleted account
			if err := m.End(ctx); err != nil {
				return nil, err
			}
			return nil, nil
		}
		return nil, err
	}

	m.current = session
	return record, nil
}

// Current returns the active session, or nil when logged out.
func (m *Manager) Current() *Session {
	return m.current
}
