package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/fellipesaraiva88/aupet-ai-connect-sub003/internal/domain/catalog"
)

type catalogRepo struct {
	mu   sync.RWMutex
	byID map[string]catalog.Item
}

func NewCatalogRepo() catalog.Repository {
	return &catalogRepo{
		byID: make(map[string]catalog.Item),
	}
}

func (r *catalogRepo) Create(ctx context.Context, it catalog.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(it.ID) == "" {
		return errors.New("item id required")
	}
	if _, exists := r.byID[it.ID]; exists {
		return errors.New("item already exists")
	}
	r.byID[it.ID] = it
	return nil
}

func (r *catalogRepo) Update(ctx context.Context, it catalog.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[it.ID]; !exists {
		return ErrNotFound
	}
	r.byID[it.ID] = it
	return nil
}

func (r *catalogRepo) GetByID(ctx context.Context, id string) (catalog.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.byID[id]
	if !ok {
		return catalog.Item{}, ErrNotFound
	}
	return it, nil
}

func (r *catalogRepo) List(ctx context.Context, filter catalog.ListFilter) ([]catalog.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make([]catalog.Item, 0)
	for _, it := range r.byID {
		if filter.Kind != "" && it.Kind != filter.Kind {
			continue
		}
		if filter.OnlyActive && !it.Active {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(it.Name), q) {
			continue
		}
		out = append(out, it)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}
