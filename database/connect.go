package database

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"park_manager/config"
)

// Store is the persistence gateway. Each collection lives in one
// pretty-printed JSON file under the data directory, read fully at startup
// and rewritten wholesale on every save.
type Store struct {
	dir string
}

var DB *Store

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// LoadAll decodes a collection into out, a pointer to a slice (or to a
// struct for single-record collections such as statistics). A missing file
// is a first run and loads as empty; a file that exists but does not decode
// is an error, never coerced to an empty collection.
func (s *Store) LoadAll(collection string, out any) error {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

// SaveAll rewrites the whole collection file. The encode goes to a temp file
// first and is renamed into place, so a crash mid-write leaves the previous
// file intact.
func (s *Store) SaveAll(collection string, records any) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	tmp := s.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	if err := os.Rename(tmp, s.path(collection)); err != nil {
		return fmt.Errorf("rename %s: %w", collection, err)
	}
	return nil
}

func ConnectDB() {
	dir := config.ConfigDefault("DATA_DIR", "data")

	var err error
	DB, err = NewStore(dir)
	if err != nil {
		panic("failed to open data directory: " + err.Error())
	}
	log.Println("Data directory ready:", dir)
}
