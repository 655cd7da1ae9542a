package settings

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidValue = errors.New("value does not match setting type")
	ErrNotFound     = errors.New("setting not found")
)

var keyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_.-]*$`)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type SetInput struct {
	Key   string
	Value string
	Type  Type
	Group Group
}

// Set crea o reemplaza el setting con esa key.
// Type y Group vacíos conservan los del setting existente (o text/general si es nuevo).
func (s *Service) Set(ctx context.Context, in SetInput) (Setting, error) {
	key := strings.ToLower(strings.TrimSpace(in.Key))
	if !keyPattern.MatchString(key) {
		return Setting{}, ErrInvalidInput
	}

	typ, group := in.Type, in.Group
	existing, err := s.repo.GetByKey(ctx, key)
	switch {
	case err == nil:
		if typ == "" {
			typ = existing.Type
		}
		if group == "" {
			group = existing.Group
		}
	case errors.Is(err, ErrNotFound):
		if typ == "" {
			typ = TypeText
		}
		if group == "" {
			group = GroupGeneral
		}
	default:
		return Setting{}, err
	}

	if !typ.Valid() || !group.Valid() {
		return Setting{}, ErrInvalidInput
	}
	value, err := normalizeValue(typ, in.Value)
	if err != nil {
		return Setting{}, err
	}

	now := s.now()
	return s.repo.Upsert(ctx, Setting{
		Key:       key,
		Value:     value,
		Type:      typ,
		Group:     group,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *Service) Get(ctx context.Context, key string) (Setting, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return Setting{}, ErrNotFound
	}
	return s.repo.GetByKey(ctx, key)
}

func (s *Service) List(ctx context.Context, group Group) ([]Setting, error) {
	if group != "" && !group.Valid() {
		return nil, ErrInvalidInput
	}
	return s.repo.List(ctx, group)
}

func normalizeValue(t Type, v string) (string, error) {
	switch t {
	case TypeBoolean:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return "", ErrInvalidValue
		}
		return strconv.FormatBool(b), nil
	case TypeNumber:
		v = strings.TrimSpace(v)
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return "", ErrInvalidValue
		}
		return v, nil
	case TypeJSON:
		if !json.Valid([]byte(v)) {
			return "", ErrInvalidValue
		}
		return v, nil
	default:
		return v, nil
	}
}
