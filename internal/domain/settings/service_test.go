package settings

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	next  int64
	byKey map[string]Setting
}

func (r *testRepo) Upsert(ctx context.Context, s Setting) (Setting, error) {
	if old, ok := r.byKey[s.Key]; ok {
		s.ID = old.ID
		s.CreatedAt = old.CreatedAt
	} else {
		r.next++
		s.ID = r.next
	}
	r.byKey[s.Key] = s
	return s, nil
}

func (r *testRepo) GetByKey(ctx context.Context, key string) (Setting, error) {
	s, ok := r.byKey[key]
	if !ok {
		return Setting{}, ErrNotFound
	}
	return s, nil
}

func (r *testRepo) List(ctx context.Context, g Group) ([]Setting, error) {
	out := make([]Setting, 0)
	for _, s := range r.byKey {
		if g == "" || s.Group == g {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func newTestService() (*Service, *time.Time) {
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	svc := NewService(&testRepo{byKey: map[string]Setting{}})
	svc.now = func() time.Time { return now }
	return svc, &now
}

func TestSet_DefaultsAndUpsert(t *testing.T) {
	svc, now := newTestService()
	ctx := context.Background()

	s, err := svc.Set(ctx, SetInput{Key: " Site_Title ", Value: "Dog Years"})
	require.NoError(t, err)
	assert.Equal(t, "site_title", s.Key)
	assert.Equal(t, TypeText, s.Type)
	assert.Equal(t, GroupGeneral, s.Group)
	created := s.CreatedAt

	*now = now.Add(time.Hour)
	s2, err := svc.Set(ctx, SetInput{Key: "site_title", Value: "Dog Years Calculator"})
	require.NoError(t, err)
	assert.Equal(t, s.ID, s2.ID)
	assert.Equal(t, created, s2.CreatedAt)
	assert.Equal(t, *now, s2.UpdatedAt)
	assert.Equal(t, "Dog Years Calculator", s2.Value)
}

func TestSet_KeepsExistingTypeAndGroup(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Set(ctx, SetInput{Key: "show_banner", Value: "true", Type: TypeBoolean, Group: GroupAppearance})
	require.NoError(t, err)

	s, err := svc.Set(ctx, SetInput{Key: "show_banner", Value: "0"})
	require.NoError(t, err)
	assert.Equal(t, TypeBoolean, s.Type)
	assert.Equal(t, GroupAppearance, s.Group)
	assert.Equal(t, "false", s.Value)

	_, err = svc.Set(ctx, SetInput{Key: "show_banner", Value: "maybe"})
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestSet_ValidatesValueByType(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cases := []struct {
		typ   Type
		value string
		ok    bool
	}{
		{TypeNumber, "12.5", true},
		{TypeNumber, "doce", false},
		{TypeJSON, `{"a":[1,2]}`, true},
		{TypeJSON, `{"a":`, false},
		{TypeBoolean, "TRUE", true},
		{TypeText, "", true},
	}
	for i, tc := range cases {
		_, err := svc.Set(ctx, SetInput{Key: "k" + string(rune('a'+i)), Value: tc.value, Type: tc.typ})
		if tc.ok {
			assert.NoError(t, err, "type=%s value=%q", tc.typ, tc.value)
		} else {
			assert.ErrorIs(t, err, ErrInvalidValue, "type=%s value=%q", tc.typ, tc.value)
		}
	}

	_, err := svc.Set(ctx, SetInput{Key: "x", Value: "v", Type: "yaml"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Set(ctx, SetInput{Key: "x", Value: "v", Group: "footer"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Set(ctx, SetInput{Key: "bad key!", Value: "v"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetAndList(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Set(ctx, SetInput{Key: "meta_title", Value: "Dog Years", Group: GroupSEO})
	require.NoError(t, err)
	_, err = svc.Set(ctx, SetInput{Key: "contact_email", Value: "hi@dogyears.com"})
	require.NoError(t, err)

	s, err := svc.Get(ctx, "META_TITLE")
	require.NoError(t, err)
	assert.Equal(t, GroupSEO, s.Group)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	seo, err := svc.List(ctx, GroupSEO)
	require.NoError(t, err)
	require.Len(t, seo, 1)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "contact_email", all[0].Key)

	_, err = svc.List(ctx, "nope")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
