// Package grants persists the application tokens the holder approved, so a
// host can list which applications were given a signing session.
package grants

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
)

type Grant struct {
	Token        uint32    `json:"token"`
	Approvals    int       `json:"approvals"`
	LastSession  uint8     `json:"lastSession"`
	LastApproved time.Time `json:"lastApproved"`
}

type Store struct {
	mu     sync.Mutex
	path   string
	values map[string]*Grant
}

func key(token uint32) string {
	return fmt.Sprintf("0x%08x", token)
}

// NewStore opens the store at path. A missing file starts an empty store,
// an empty path keeps the store in memory only.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path, values: map[string]*Grant{}}
	if path == "" {
		return s, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		if err = os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return nil, err
		}
		return s, nil
	}

	if err = json.Unmarshal(b, &s.values); err != nil {
		return nil, errors.Wrap(err, "failed to parse grants")
	}
	return s, nil
}

func (s *Store) save() error {
	if s.path == "" {
		return nil
	}
	b, err := json.Marshal(s.values)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0640)
}

// Record notes one more approval of token for session.
func (s *Store) Record(token uint32, session uint8, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.values[key(token)]
	if !ok {
		g = &Grant{Token: token}
		s.values[key(token)] = g
	}
	g.Approvals++
	g.LastSession = session
	g.LastApproved = at
	return s.save()
}

func (s *Store) Get(token uint32) *Grant {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.values[key(token)]
	if !ok {
		return nil
	}
	c := *g
	return &c
}

// List returns all grants ordered by token.
func (s *Store) List() []Grant {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]Grant, 0, len(s.values))
	for _, g := range s.values {
		list = append(list, *g)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Token < list[j].Token })
	return list
}

func (s *Store) Delete(token uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key(token))
	return s.save()
}
