package calcapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"dog-years/internal/domain/dogage"
	"dog-years/internal/platform/httpclient"
)

var (
	ErrBadInput = errors.New("calculator rejected the input")
	ErrUpstream = errors.New("calculator upstream error")
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client llama a POST /api/calculate de un servidor dog-years remoto.
type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	hc, err := httpclient.New(cfg.BaseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

type request struct {
	DogAge   *float64 `json:"dogAge,omitempty"`
	Birthday string   `json:"birthday,omitempty"`
	Size     string   `json:"size"`
}

type response struct {
	HumanAge    int     `json:"humanAge"`
	Description string  `json:"description"`
	LifeStage   string  `json:"lifeStage"`
	DogAge      float64 `json:"dogAge"`
	Size        string  `json:"size"`
}

// Calculate devuelve lo mismo que dogage.Service.Calculate pero calculado en el servidor.
func (c *Client) Calculate(ctx context.Context, in dogage.Input) (dogage.Calculation, error) {
	var out response
	err := c.http.DoJSON(ctx, http.MethodPost, "/api/calculate", nil, request{
		DogAge:   in.DogAge,
		Birthday: in.Birthday,
		Size:     in.Size,
	}, &out)
	if err != nil {
		var he *httpclient.HTTPError
		if errors.As(err, &he) && he.StatusCode == http.StatusBadRequest {
			return dogage.Calculation{}, fmt.Errorf("%w: %s", ErrBadInput, he.Message)
		}
		return dogage.Calculation{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return dogage.Calculation{
		DogAge: out.DogAge,
		Size:   dogage.Size(out.Size),
		Result: dogage.Result{
			HumanAge:    out.HumanAge,
			Description: out.Description,
			LifeStage:   out.LifeStage,
		},
	}, nil
}
