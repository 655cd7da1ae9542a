package calcapi

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"dog-years/internal/domain/dogage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	dogage.RegisterRoutes(r, dogage.NewService(nil))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestCalculate_MatchesLocalEngine(t *testing.T) {
	srv := newServer(t)
	c, err := NewClient(Config{BaseURL: srv.URL, Timeout: time.Second})
	require.NoError(t, err)

	age := 5.0
	got, err := c.Calculate(context.Background(), dogage.Input{DogAge: &age, Size: "large"})
	require.NoError(t, err)

	want, err := dogage.Calculate(5, dogage.SizeLarge)
	require.NoError(t, err)
	assert.Equal(t, want, got.Result)
	assert.Equal(t, dogage.SizeLarge, got.Size)
	assert.Equal(t, 5.0, got.DogAge)
}

func TestCalculate_BadInput(t *testing.T) {
	srv := newServer(t)
	c, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.Calculate(context.Background(), dogage.Input{Size: "giant"})
	assert.ErrorIs(t, err, ErrBadInput)
	assert.Contains(t, err.Error(), dogage.ErrInvalidSize.Error())
}

func TestCalculate_Upstream(t *testing.T) {
	c, err := NewClient(Config{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})
	require.NoError(t, err)

	_, err = c.Calculate(context.Background(), dogage.Input{Size: "small"})
	assert.ErrorIs(t, err, ErrUpstream)
}
