package blogstore

import (
	"os"
	"path/filepath"
	"sync"
)

// Storage persists the serialized store document. Load reports found=false
// when nothing has been saved yet.
type Storage interface {
	Load() (data []byte, found bool, err error)
	Save(data []byte) error
}

// FileStorage keeps the store document in a single file under the data
// directory, written atomically.
type FileStorage struct {
	path string
}

func NewFileStorage(dataDir string) *FileStorage {
	return &FileStorage{path: filepath.Join(dataDir, "blog-store.json")}
}

func (s *FileStorage) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (s *FileStorage) Save(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// MemoryStorage holds the document in memory, for tests and ephemeral runs.
type MemoryStorage struct {
	mu   sync.Mutex
	data []byte
	set  bool
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load() ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return nil, false, nil
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, true, nil
}

func (s *MemoryStorage) Save(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.set = true
	return nil
}
