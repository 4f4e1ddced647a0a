package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charleslimjh/tp/internal/domain"
)

// jsonDocument is the on-disk layout of the JSON store.
type jsonDocument struct {
	Eateries []eateryRow `json:"eateries"`
}

// JSONFileRepo stores the guide as a single JSON document. Writes go to a
// temporary file that is renamed over the target, so readers never see a
// partial document.
type JSONFileRepo struct {
	path string
	mu   sync.Mutex
}

// NewJSONFileRepo returns a repo backed by the file at path. The file and its
// directory are created on the first Save.
func NewJSONFileRepo(path string) *JSONFileRepo {
	return &JSONFileRepo{path: path}
}

func (r *JSONFileRepo) Load(ctx context.Context) ([]*domain.Eatery, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []*domain.Eatery{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("repo.JSONFileRepo.Load: %w", err)
	}

	var doc jsonDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("repo.JSONFileRepo.Load: decode %s: %w", r.path, err)
	}

	eateries, err := toEateries(doc.Eateries)
	if err != nil {
		return nil, fmt.Errorf("repo.JSONFileRepo.Load: %w", err)
	}
	return eateries, nil
}

func (r *JSONFileRepo) Save(ctx context.Context, eateries []*domain.Eatery) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := jsonDocument{Eateries: make([]eateryRow, 0, len(eateries))}
	for _, e := range eateries {
		doc.Eateries = append(doc.Eateries, toRow(e))
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("repo.JSONFileRepo.Save: encode: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("repo.JSONFileRepo.Save: create dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("repo.JSONFileRepo.Save: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(append(b, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("repo.JSONFileRepo.Save: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("repo.JSONFileRepo.Save: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("repo.JSONFileRepo.Save: rename: %w", err)
	}
	return nil
}

// Close is a no-op; the file is only open during Load and Save.
func (r *JSONFileRepo) Close() error { return nil }
