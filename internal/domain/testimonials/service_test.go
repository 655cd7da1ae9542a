package testimonials

import (
	"context"
	"sort"
	"testing"
	"time"

	"dog-years/internal/domain/dogage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	next int64
	byID map[int64]Testimonial
}

func (r *testRepo) Create(ctx context.Context, t Testimonial) (Testimonial, error) {
	r.next++
	t.ID = r.next
	r.byID[t.ID] = t
	return t, nil
}

func (r *testRepo) Update(ctx context.Context, t Testimonial) error {
	if _, ok := r.byID[t.ID]; !ok {
		return ErrNotFound
	}
	r.byID[t.ID] = t
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Testimonial, error) {
	t, ok := r.byID[id]
	if !ok {
		return Testimonial{}, ErrNotFound
	}
	return t, nil
}

func (r *testRepo) List(ctx context.Context, activeOnly bool) ([]Testimonial, error) {
	out := make([]Testimonial, 0)
	for _, t := range r.byID {
		if activeOnly && !t.IsActive {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func newTestService() (*Service, *time.Time) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	svc := NewService(&testRepo{byID: map[int64]Testimonial{}})
	svc.now = func() time.Time { return now }
	return svc, &now
}

func TestStatusFromDogAge(t *testing.T) {
	cases := map[string]string{
		"8 years":      dogage.StageSenior,
		"1 year old":   dogage.StageYoungAdult,
		"4.5 yrs":      dogage.StageAdult,
		"0.3 years":    dogage.StageNewborn,
		" 12 Years ":   dogage.StageSenior,
		"6 months":     "",
		"about 3":      "",
		"":             "",
		"3 yearsold":   "",
		"2 yr, active": dogage.StageYoungAdult,
	}
	for in, want := range cases {
		assert.Equal(t, want, StatusFromDogAge(in), "dogAge=%q", in)
	}
}

func TestCreate_DerivesStatusAndDefaultsActive(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	tm, err := svc.Create(ctx, CreateInput{
		Name:    "Laura",
		DogName: "Toby",
		DogAge:  "9 years",
		Quote:   "Me encantó",
	})
	require.NoError(t, err)
	assert.Equal(t, dogage.StageSenior, tm.Status)
	assert.True(t, tm.IsActive)

	// status explícito no se pisa
	tm, err = svc.Create(ctx, CreateInput{
		Name:    "Ana",
		DogName: "Luna",
		DogAge:  "9 years",
		Status:  "Golden",
		Quote:   "Genial",
	})
	require.NoError(t, err)
	assert.Equal(t, "Golden", tm.Status)

	_, err = svc.Create(ctx, CreateInput{Name: "x", DogName: "", Quote: "q"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_PartialAndRederivesStatus(t *testing.T) {
	svc, now := newTestService()
	ctx := context.Background()

	tm, err := svc.Create(ctx, CreateInput{Name: "Laura", DogName: "Toby", DogAge: "2 years", Quote: "q"})
	require.NoError(t, err)
	require.Equal(t, dogage.StageYoungAdult, tm.Status)

	*now = now.Add(time.Hour)
	empty, age := "", "5 years"
	tm, err = svc.Update(ctx, tm.ID, UpdateInput{Status: &empty, DogAge: &age})
	require.NoError(t, err)
	assert.Equal(t, dogage.StageAdult, tm.Status)
	assert.Equal(t, "Laura", tm.Name)
	assert.Equal(t, *now, tm.UpdatedAt)

	blank := "  "
	_, err = svc.Update(ctx, tm.ID, UpdateInput{Quote: &blank})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(ctx, 42, UpdateInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListActive_Ordering(t *testing.T) {
	svc, now := newTestService()
	ctx := context.Background()
	inactive := false

	mk := func(name string, order int, active *bool) {
		_, err := svc.Create(ctx, CreateInput{Name: name, DogName: "d", Quote: "q", Order: order, IsActive: active})
		require.NoError(t, err)
		*now = now.Add(time.Minute)
	}
	mk("b-old", 1, nil)
	mk("a", 0, nil)
	mk("hidden", 0, &inactive)
	mk("b-new", 1, nil)

	items, err := svc.ListActive(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"a", "b-new", "b-old"}, names)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
