package score

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// document is the on-disk layout: identities by profile plus one shared board.
type document struct {
	Identities  map[string]Identity `json:"identities"`
	Leaderboard Leaderboard         `json:"leaderboard"`
}

// FileStore keeps identities and the leaderboard in a single JSON file.
// It is safe for concurrent use; every call re-reads the file so several
// processes (SSH server, web page) see each other's writes.
type FileStore struct {
	path   string
	logger *log.Logger
	mu     sync.Mutex
}

// NewFileStore creates a store backed by the file at path. The file and its
// directory are created on first write.
func NewFileStore(path string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = log.Default()
	}
	return &FileStore{
		path:   path,
		logger: logger.WithPrefix("store"),
	}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Profile returns a view of the store for one player profile. Identities are
// per profile; the leaderboard is shared.
func (s *FileStore) Profile(name string) *Profile {
	return &Profile{store: s, name: name}
}

// Leaderboard returns the current board.
func (s *FileStore) Leaderboard() Leaderboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().Leaderboard
}

// load reads the document. Missing or malformed data yields an empty document.
func (s *FileStore) load() document {
	doc := document{Identities: map[string]Identity{}}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("read failed, starting empty", "path", s.path, "err", err)
		}
		return doc
	}

	var raw document
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("malformed data ignored", "path", s.path, "err", err)
		return doc
	}

	for name, id := range raw.Identities {
		if id.Valid() {
			doc.Identities[name] = id
		}
	}
	doc.Leaderboard = raw.Leaderboard.sanitize()
	return doc
}

// save writes the document atomically.
func (s *FileStore) save(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".meteordodge-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Profile is one player's view of a FileStore.
type Profile struct {
	store *FileStore
	name  string
}

// LoadIdentity returns the stored identity for this profile, if any.
func (p *Profile) LoadIdentity() (Identity, bool) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	id, ok := p.store.load().Identities[p.name]
	return id, ok
}

// SaveIdentity stores the identity for this profile.
func (p *Profile) SaveIdentity(id Identity) error {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	doc := p.store.load()
	doc.Identities[p.name] = id
	return p.store.save(doc)
}

// LoadLeaderboard returns the shared board.
func (p *Profile) LoadLeaderboard() Leaderboard {
	return p.store.Leaderboard()
}

// RecordResult upserts the wave reached by id into the shared board.
func (p *Profile) RecordResult(id Identity, wave int) error {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	doc := p.store.load()
	doc.Leaderboard = doc.Leaderboard.Record(id, wave)
	return p.store.save(doc)
}

// MemoryStore is an in-process store for one profile.
type MemoryStore struct {
	mu          sync.Mutex
	identity    *Identity
	leaderboard Leaderboard
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// LoadIdentity returns the saved identity, if any.
func (m *MemoryStore) LoadIdentity() (Identity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.identity == nil {
		return Identity{}, false
	}
	return *m.identity, true
}

// SaveIdentity remembers the identity.
func (m *MemoryStore) SaveIdentity(id Identity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identity = &id
	return nil
}

// LoadLeaderboard returns a copy of the board.
func (m *MemoryStore) LoadLeaderboard() Leaderboard {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append(Leaderboard(nil), m.leaderboard...)
}

// RecordResult upserts the wave reached by id.
func (m *MemoryStore) RecordResult(id Identity, wave int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leaderboard = m.leaderboard.Record(id, wave)
	return nil
}
