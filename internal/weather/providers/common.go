package providers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

var (
	errServerError  = errors.New("server error")
	errCircuitOpen  = errors.New("circuit breaker open")
	errNoHTTPClient = errors.New("http client not configured")
)

// response is a fully read upstream reply.
type response struct {
	Status int
	Body   []byte
}

func (r *response) ok() bool {
	return r.Status >= 200 && r.Status < 300
}

// newBreaker returns the circuit breaker shared by every call of one provider.
func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
}

// doRequest executes the request once through the circuit breaker and reads the
// whole body. Transport failures and 5xx replies count against the breaker; the
// reply is still returned alongside errServerError so callers can forward it.
// Nothing is retried.
func doRequest(
	ctx context.Context,
	client *http.Client,
	cb *gobreaker.CircuitBreaker,
	buildRequest func() (*http.Request, error),
) (*response, error) {
	if client == nil {
		return nil, errNoHTTPClient
	}

	req, err := buildRequest()
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		defer resp.Body.Close()

		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, readErr
		}

		out := &response{Status: resp.StatusCode, Body: body}
		if resp.StatusCode >= 500 {
			return out, errServerError
		}
		return out, nil
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
	}

	resp, _ := result.(*response)
	if err != nil && !errors.Is(err, errServerError) {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return resp, nil
}
