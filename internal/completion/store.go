// Package completion persists the set of training modules a learner has
// marked complete.
package completion

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
)

// Key is the entry name the set is stored under, scoped per learner.
const Key = "completedModules"

// KV is the persistence API the store needs.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Store reads and rewrites a learner's completion set. Each mutation is a
// read-modify-write of the whole array.
type Store struct {
	kv KV
	mu sync.Mutex
}

// NewStore creates a Store backed by kv.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

func key(user string) string {
	if user == "" {
		return Key
	}
	return Key + ":" + user
}

// Load returns the learner's set. An absent entry is an empty set, and so is
// a malformed one: the bad value is logged and left to be overwritten on the
// next toggle.
func (s *Store) Load(ctx context.Context, user string) (Set, error) {
	raw, ok, err := s.kv.Get(ctx, key(user))
	if err != nil {
		return Set{}, fmt.Errorf("loading completion set: %w", err)
	}
	if !ok {
		return Set{}, nil
	}

	var ids []int
	if err := json.Unmarshal(raw, &ids); err != nil {
		log.Printf("completion: ignoring malformed set for %q: %v", user, err)
		return Set{}, nil
	}
	return NewSet(ids...), nil
}

// Contains reports whether the learner completed module id.
func (s *Store) Contains(ctx context.Context, user string, id int) (bool, error) {
	set, err := s.Load(ctx, user)
	if err != nil {
		return false, err
	}
	return set.Contains(id), nil
}

// Add marks module id complete.
func (s *Store) Add(ctx context.Context, user string, id int) (Set, error) {
	return s.update(ctx, user, func(set Set) Set { return set.Add(id) })
}

// Remove marks module id not complete.
func (s *Store) Remove(ctx context.Context, user string, id int) (Set, error) {
	return s.update(ctx, user, func(set Set) Set { return set.Remove(id) })
}

// Toggle flips module id and returns its new membership.
func (s *Store) Toggle(ctx context.Context, user string, id int) (bool, error) {
	set, err := s.update(ctx, user, func(set Set) Set { return set.Toggle(id) })
	if err != nil {
		return false, err
	}
	return set.Contains(id), nil
}

// Users lists the learners with a stored set, sorted.
func (s *Store) Users(ctx context.Context) ([]string, error) {
	prefix := Key + ":"
	keys, err := s.kv.Keys(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("listing learners: %w", err)
	}
	users := make([]string, 0, len(keys))
	for _, k := range keys {
		users = append(users, strings.TrimPrefix(k, prefix))
	}
	return users, nil
}

// Reset forgets the learner's set. Resetting an unknown learner is not an error.
func (s *Store) Reset(ctx context.Context, user string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, key(user)); err != nil {
		return fmt.Errorf("resetting completion set: %w", err)
	}
	return nil
}

func (s *Store) update(ctx context.Context, user string, fn func(Set) Set) (Set, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.Load(ctx, user)
	if err != nil {
		return Set{}, err
	}
	set = fn(set)

	data, err := json.Marshal(set.IDs())
	if err != nil {
		return Set{}, fmt.Errorf("marshalling completion set: %w", err)
	}
	if err := s.kv.Put(ctx, key(user), data); err != nil {
		return Set{}, fmt.Errorf("saving completion set: %w", err)
	}
	return set, nil
}
