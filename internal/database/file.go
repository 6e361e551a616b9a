package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/nexcard/nexcard/internal/domain"
	"github.com/spf13/afero"
)

const cardFileExt = ".json"

// FileCardRepository stores one JSON document per card in a directory of an
// afero filesystem. Cards survive restarts when backed by the OS filesystem.
type FileCardRepository struct {
	mu  sync.RWMutex
	fs  afero.Fs
	dir string
}

// NewFileCardRepository creates the directory if needed.
func NewFileCardRepository(fsys afero.Fs, dir string) (*FileCardRepository, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, storeErr("create card directory", dir, err)
	}
	return &FileCardRepository{fs: fsys, dir: dir}, nil
}

// SeedIfEmpty writes cards when the directory holds no card yet. It reports
// whether anything was written.
func (r *FileCardRepository) SeedIfEmpty(ctx context.Context, cards []domain.Card) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.readAll()
	if err != nil {
		return false, storeErr("seed cards", "", err)
	}
	if len(existing) > 0 {
		return false, nil
	}
	for i := range cards {
		if err := ctx.Err(); err != nil {
			return false, storeErr("seed cards", "", err)
		}
		if err := r.write(&cards[i]); err != nil {
			return false, storeErr("seed cards", cards[i].ID, err)
		}
	}
	return true, nil
}

// filename maps an id to its document path, refusing ids that would escape
// the directory.
func (r *FileCardRepository) filename(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return "", fmt.Errorf("unsafe card id: %w", domain.ErrInvalidInput)
	}
	return path.Join(r.dir, id+cardFileExt), nil
}

func (r *FileCardRepository) read(id string) (*domain.Card, error) {
	name, err := r.filename(id)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(r.fs, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var card domain.Card
	if err := json.Unmarshal(data, &card); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return &card, nil
}

func (r *FileCardRepository) write(card *domain.Card) error {
	name, err := r.filename(card.ID)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(card, "", "  ")
	if err != nil {
		return err
	}
	return afero.WriteFile(r.fs, name, data, 0o644)
}

func (r *FileCardRepository) exists(id string) (bool, error) {
	name, err := r.filename(id)
	if err != nil {
		return false, err
	}
	return afero.Exists(r.fs, name)
}

// readAll loads every card document ordered by creation time.
func (r *FileCardRepository) readAll() ([]domain.Card, error) {
	entries, err := afero.ReadDir(r.fs, r.dir)
	if err != nil {
		return nil, err
	}
	cards := make([]domain.Card, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), cardFileExt) {
			continue
		}
		card, err := r.read(strings.TrimSuffix(e.Name(), cardFileExt))
		if err != nil {
			return nil, err
		}
		cards = append(cards, *card)
	}
	slices.SortStableFunc(cards, func(a, b domain.Card) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return cards, nil
}

func (r *FileCardRepository) List(ctx context.Context, userID string) ([]domain.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr("list cards", "", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	all, err := r.readAll()
	if err != nil {
		return nil, storeErr("list cards", "", err)
	}
	return slices.DeleteFunc(all, func(c domain.Card) bool { return c.UserID != userID }), nil
}

func (r *FileCardRepository) Get(ctx context.Context, id string) (*domain.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr("get card", id, err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	card, err := r.read(id)
	if err != nil {
		return nil, storeErr("get card", id, err)
	}
	return card, nil
}

func (r *FileCardRepository) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	if card == nil || card.ID == "" {
		return nil, storeErr("create card", "", domain.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return nil, storeErr("create card", card.ID, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	found, err := r.exists(card.ID)
	if err != nil {
		return nil, storeErr("create card", card.ID, err)
	}
	if found {
		return nil, storeErr("create card", card.ID, domain.ErrAlreadyExists)
	}
	if err := r.write(card); err != nil {
		return nil, storeErr("create card", card.ID, err)
	}
	c := *card
	return &c, nil
}

func (r *FileCardRepository) Update(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	if card == nil || card.ID == "" {
		return nil, storeErr("update card", "", domain.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return nil, storeErr("update card", card.ID, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	found, err := r.exists(card.ID)
	if err != nil {
		return nil, storeErr("update card", card.ID, err)
	}
	if !found {
		return nil, storeErr("update card", card.ID, domain.ErrNotFound)
	}
	if err := r.write(card); err != nil {
		return nil, storeErr("update card", card.ID, err)
	}
	c := *card
	return &c, nil
}

func (r *FileCardRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return storeErr("delete card", id, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	name, err := r.filename(id)
	if err != nil {
		return storeErr("delete card", id, err)
	}
	if err := r.fs.Remove(name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return storeErr("delete card", id, domain.ErrNotFound)
		}
		return storeErr("delete card", id, err)
	}
	return nil
}
