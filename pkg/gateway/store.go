package gateway

import (
	"fmt"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

// CredentialStore persists the session credential across runtime restarts.
// The gateway Client is the only component allowed to touch it.
type CredentialStore interface {
	// Token returns the stored credential, or "" if none is held.
	Token() (string, error)

	// SetToken stores the credential.
	SetToken(token string) error

	// Clear removes the credential.
	Clear() error
}

const (
	bucketAuth = "auth"
	keyToken   = "token"
)

// BoltStore is a CredentialStore backed by a bbolt database file.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (creating if necessary) the database at path and ensures
// the auth bucket exists.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketAuth))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize credential store: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Token implements CredentialStore.
func (s *BoltStore) Token() (string, error) {
	var token string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketAuth))
		if v := b.Get([]byte(keyToken)); v != nil {
			token = string(v)
		}
		return nil
	})
	return token, err
}

// SetToken implements CredentialStore.
func (s *BoltStore) SetToken(token string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketAuth))
		return b.Put([]byte(keyToken), []byte(token))
	})
}

// Clear implements CredentialStore.
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketAuth))
		return b.Delete([]byte(keyToken))
	})
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// MemoryStore is an in-memory CredentialStore for tests and ephemeral runs.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Token implements CredentialStore.
func (s *MemoryStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

// SetToken implements CredentialStore.
func (s *MemoryStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Clear implements CredentialStore.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
