package memory

import (
	"context"
	"sort"
	"sync"

	"dog-years/internal/domain/settings"
)

type settingRepo struct {
	mu     sync.RWMutex
	nextID int64
	byKey  map[string]settings.Setting
}

func NewSettingRepo() settings.Repository {
	return &settingRepo{
		byKey: make(map[string]settings.Setting),
	}
}

func (r *settingRepo) Upsert(ctx context.Context, s settings.Setting) (settings.Setting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byKey[s.Key]; ok {
		s.ID = existing.ID
		s.CreatedAt = existing.CreatedAt
	} else {
		r.nextID++
		s.ID = r.nextID
	}
	r.byKey[s.Key] = s
	return s, nil
}

func (r *settingRepo) GetByKey(ctx context.Context, key string) (settings.Setting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byKey[key]
	if !ok {
		return settings.Setting{}, settings.ErrNotFound
	}
	return s, nil
}

func (r *settingRepo) List(ctx context.Context, group settings.Group) ([]settings.Setting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]settings.Setting, 0, len(r.byKey))
	for _, s := range r.byKey {
		if group != "" && s.Group != group {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}
