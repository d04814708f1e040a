// Package account owns the mapping from email address to user record:
// creation, authentication, activity logging and order/address mutations,
// all written through to the key-value store as one JSON blob.
package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/valencire/account/internal/common"
	"github.com/valencire/account/internal/config"
	"github.com/valencire/account/internal/kvstore"
)

// UsersKey is the fixed storage key holding the serialized user mapping.
const UsersKey = "valencire_users"

// timeNow is a test seam for the clock.
var timeNow = time.Now

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError is a user-facing signup rejection. It matches
// common.ErrorValidation under errors.Is while carrying the exact message
// to display.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func (e *ValidationError) Is(target error) bool { return target == common.ErrorValidation }

func newValidationError(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// Store owns all user records. Every mutation follows the same shape:
// clone the record, apply the change, write the whole mapping through to
// storage, and only then swap the clone into the in-memory map. A failed
// write therefore leaves memory and storage both at the previous state,
// and the operation can be retried as-is.
type Store struct {
	mu             sync.Mutex
	kv             kvstore.Store
	minPasswordLen int
	users          map[string]*UserRecord
}

func NewStore(kv kvstore.Store, cfg *config.Config) *Store {
	return &Store{
		kv:             kv,
		minPasswordLen: cfg.MinPasswordLen,
		users:          make(map[string]*UserRecord),
	}
}

// Load reads the users blob from storage and replaces the in-memory
// mapping. An absent key means a fresh store and is not an error.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := s.kv.Get(ctx, UsersKey)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.users = make(map[string]*UserRecord)
			return nil
		}
		return fmt.Errorf("%w: reading users: %v", common.ErrorPersistence, err)
	}

	users := make(map[string]*UserRecord)
	if err := json.Unmarshal([]byte(blob), &users); err != nil {
		return fmt.Errorf("decoding users blob: %w", err)
	}
	s.users = users
	return nil
}

// persistLocked serializes the mapping as it would look with record in
// place and writes it through. The in-memory map is untouched on failure.
// Caller must hold s.mu.
func (s *Store) persistLocked(ctx context.Context, email string, record *UserRecord) error {
	updated := make(map[string]*UserRecord, len(s.users)+1)
	for k, v := range s.users {
		updated[k] = v
	}
	updated[email] = record

	blob, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("encoding users blob: %w", err)
	}

	if err := s.kv.Set(ctx, UsersKey, string(blob)); err != nil {
		return fmt.Errorf("%w: writing users: %v", common.ErrorPersistence, err)
	}

	s.users[email] = record
	return nil
}

// Create validates the signup fields and registers a new record with empty
// orders and addresses, default preferences, and a single account_created
// activity event. The confirmation-field check belongs to the caller.
func (s *Store) Create(ctx context.Context, firstName, lastName, email, password string) (*UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if firstName == "" || lastName == "" || email == "" || password == "" {
		return nil, newValidationError("All fields are required!")
	}
	if !emailRe.MatchString(email) {
		return nil, newValidationError("Please enter a valid email address!")
	}
	if len(password) < s.minPasswordLen {
		return nil, newValidationError("Password must be at least %d characters!", s.minPasswordLen)
	}
	if _, exists := s.users[email]; exists {
		return nil, common.ErrorEmailExists
	}

	record := &UserRecord{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		CreatedAt: timeNow(),
		Orders:    []Order{},
		Addresses: []Address{},
		Preferences: Preferences{
			Notifications: true,
			Newsletter:    false,
		},
	}
	prependActivity(record, ActivityAccountCreated, "Account created")

	if err := s.persistLocked(ctx, email, record); err != nil {
		return nil, err
	}
	return record.Clone(), nil
}

// Authenticate checks the stored password with exact string equality and,
// on success, logs a login event.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.users[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if current.Password != password {
		return nil, common.ErrorInvalidCredentials
	}

	record := current.Clone()
	prependActivity(record, ActivityLogin, "Signed in to account")

	if err := s.persistLocked(ctx, email, record); err != nil {
		return nil, err
	}
	return record.Clone(), nil
}

// RecordLogout logs a logout event for the user.
func (s *Store) RecordLogout(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.users[email]
	if !ok {
		return common.ErrorNotFound
	}

	record := current.Clone()
	prependActivity(record, ActivityLogout, "Signed out of account")

	return s.persistLocked(ctx, email, record)
}

// AppendOrder prepends the order and its order_placed activity event in a
// single write-through.
func (s *Store) AppendOrder(ctx context.Context, email string, order Order) (*UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.users[email]
	if !ok {
		return nil, common.ErrorNotFound
	}

	record := current.Clone()
	record.Orders = append([]Order{order}, record.Orders...)
	prependActivity(record, ActivityOrderPlaced, fmt.Sprintf("Order placed - %s", order.ID))

	if err := s.persistLocked(ctx, email, record); err != nil {
		return nil, err
	}
	return record.Clone(), nil
}

// AddAddress appends a shipping address to the user's address book.
func (s *Store) AddAddress(ctx context.Context, email string, address Address) (*UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.users[email]
	if !ok {
		return nil, common.ErrorNotFound
	}

	record := current.Clone()
	record.Addresses = append(record.Addresses, address)

	if err := s.persistLocked(ctx, email, record); err != nil {
		return nil, err
	}
	return record.Clone(), nil
}

// Get returns the current projection of the user, re-resolved by email.
func (s *Store) Get(email string) (*UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return record.Clone(), nil
}

// Count reports how many records the store holds.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// SampleOrder builds the demo order the dashboard's "add sample" action
// places: one AMETHYST NOIR™ in size M at 1800.
func SampleOrder() Order {
	return Order{
		ID:   newOrderID(),
		Date: timeNow(),
		Items: []OrderItem{
			{Name: "AMETHYST NOIR™", Size: "M", Quantity: 1, Price: 1800},
		},
		Total:           1800,
		Status:          "Processing",
		ShippingAddress: "123 Fashion Street, Mumbai, MH 400001",
	}
}

// newOrderID returns an "ORD-" id with a uuid-derived suffix. Wall-clock
// suffixes collide when two orders land within the same tick.
func newOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
	return "ORD-" + suffix
}
