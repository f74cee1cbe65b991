package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// JSONStore хранит один JSON-документ целиком в файле.
// Документ читается один раз при старте и перезаписывается после каждой мутации.
type JSONStore struct {
	path string
	lock *flock.Flock
}

func NewJSONStore(path string) (*JSONStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage dir: %w", err)
	}
	return &JSONStore{
		path: path,
		lock: flock.New(path + ".lock"),
	}, nil
}

func (s *JSONStore) Path() string {
	return s.path
}

// Load читает документ в v. Отсутствующий или пустой файл — не ошибка,
// v остаётся нетронутым.
func (s *JSONStore) Load(v interface{}) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", s.path, err)
	}
	return nil
}

// Save перезаписывает документ целиком: сначала во временный файл,
// затем rename, чтобы падение посреди записи не оставило битый JSON.
func (s *JSONStore) Save(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", s.path, err)
	}
	defer s.lock.Unlock()

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	return os.Rename(tmp, s.path)
}
