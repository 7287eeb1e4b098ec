package session

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
)

// fileMarkers is the on-disk shape of the session markers.
type fileMarkers struct {
	AuthToken string `json:"authToken"`
	UserEmail string `json:"userEmail"`
}

// FileStore persists session markers as a small JSON file, the server-side
// counterpart of the browser's localStorage markers.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a FileStore at the given path.
func NewFileStore(path string) *FileStore {
	if path == "" {
		panic("session.NewFileStore requires a non-empty path")
	}
	return &FileStore{path: path}
}

// Load reads the markers. A missing file means no session and is not an
// error; a corrupt file is treated the same way so a damaged marker file
// can never lock the admin out of logging in again.
func (s *FileStore) Load() (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", "", nil
		}
		return "", "", err
	}

	var markers fileMarkers
	if err := json.Unmarshal(raw, &markers); err != nil {
		return "", "", nil
	}
	return markers.AuthToken, markers.UserEmail, nil
}

// Save writes the markers with owner-only permissions.
func (s *FileStore) Save(token, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(fileMarkers{AuthToken: token, UserEmail: email})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// Clear removes the marker file. Clearing an absent file is a no-op.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
