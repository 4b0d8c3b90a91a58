package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/Ibrakam/Sales-Machine/internal/entity"
)

// Store persiste o par de tokens entre sessões (o "localStorage" do cliente).
// Lido no startup para restaurar a sessão; limpo no logout ou quando o
// restore é rejeitado pelo backend.
type Store struct {
	path string

	mu   sync.Mutex
	pair entity.TokenPair
}

func NewStore(path string) *Store {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		path = filepath.Join(home, ".sales-machine", "session.json")
	}
	return &Store{path: path}
}

// Load carrega os tokens do disco. Arquivo ausente = sessão vazia, sem erro.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.pair = entity.TokenPair{}
			return nil
		}
		return err
	}

	var pair entity.TokenPair
	if err := json.Unmarshal(raw, &pair); err != nil {
		// Arquivo corrompido: descarta, não derruba o startup
		s.pair = entity.TokenPair{}
		return nil
	}

	s.pair = pair
	return nil
}

func (s *Store) Save(pair entity.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pair = pair

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(pair, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pair = entity.TokenPair{}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) Tokens() entity.TokenPair {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pair
}

// AccessToken implementa salesapi.TokenSource
func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pair.AccessToken
}
