// Package gateway is the REST client for the backend booking API. It is the
// only place that knows the wire paths and error body shape; the views above
// it work purely in domain terms.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"futmanager/internal/domain"
	"futmanager/internal/logger"
)

// API is the set of booking API operations the views depend on.
type API interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	CreateClient(ctx context.Context, payload domain.NewClientPayload) error
	DeleteClient(ctx context.Context, id int64) error
	ListRentals(ctx context.Context) ([]domain.Rental, error)
	CreateRental(ctx context.Context, payload domain.RentalPayload) error
	UpdateRental(ctx context.Context, id int64, payload domain.RentalPayload) error
	DeleteRental(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]domain.Client, []domain.Rental, error)
}

// APIError is a non-2xx response from the booking API. Mensagem carries the
// optional user-facing message from the error body, verbatim.
type APIError struct {
	StatusCode int
	Mensagem   string
}

func (e *APIError) Error() string {
	if e.Mensagem != "" {
		return e.Mensagem
	}
	return fmt.Sprintf("booking API returned status %d", e.StatusCode)
}

// MessageOr returns the server-provided message carried by err when there is
// one, and the fallback otherwise.
func MessageOr(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Mensagem != "" {
		return apiErr.Mensagem
	}
	return fallback
}

// Client talks to the booking API over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a booking API client. baseURL may be empty for same-origin
// requests (the wasm build goes through the serving origin's proxy).
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// ListClients fetches all registered clients.
func (c *Client) ListClients(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	if err := c.do(ctx, http.MethodGet, "/cliente", nil, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// CreateClient registers a new client.
func (c *Client) CreateClient(ctx context.Context, payload domain.NewClientPayload) error {
	return c.do(ctx, http.MethodPost, "/cliente", payload, nil)
}

// DeleteClient removes a client. The backend rejects the delete when rentals
// still reference the client; that surfaces here as an *APIError.
func (c *Client) DeleteClient(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/cliente/%d", id), nil, nil)
}

// ListRentals fetches all active rentals.
func (c *Client) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	var rentals []domain.Rental
	if err := c.do(ctx, http.MethodGet, "/Aluguel", nil, &rentals); err != nil {
		return nil, err
	}
	return rentals, nil
}

// CreateRental books a court.
func (c *Client) CreateRental(ctx context.Context, payload domain.RentalPayload) error {
	return c.do(ctx, http.MethodPost, "/Aluguel", payload, nil)
}

// UpdateRental rewrites an existing rental.
func (c *Client) UpdateRental(ctx context.Context, id int64, payload domain.RentalPayload) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/Aluguel/%d", id), payload, nil)
}

// DeleteRental cancels a rental.
func (c *Client) DeleteRental(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/Aluguel/%d", id), nil, nil)
}

// ListAll fetches clients and rentals in parallel. Both lists are returned
// together or not at all: any failure discards whatever the other fetch
// produced.
func (c *Client) ListAll(ctx context.Context) ([]domain.Client, []domain.Rental, error) {
	var (
		clients []domain.Client
		rentals []domain.Rental
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clients, err = c.ListClients(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		rentals, err = c.ListRentals(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return clients, rentals, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	logger.APICall(method, path, "request_id", requestID)
	resp, err := c.http.Do(req)
	if err != nil {
		logger.APIResult(method, path, err, "request_id", requestID)
		return fmt.Errorf("booking API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Mensagem string `json:"mensagem"`
		}
		if raw, readErr := io.ReadAll(resp.Body); readErr == nil {
			if json.Unmarshal(raw, &errBody) == nil {
				apiErr.Mensagem = errBody.Mensagem
			}
		}
		logger.APIResult(method, path, apiErr, "request_id", requestID, "status", resp.StatusCode)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			logger.APIResult(method, path, err, "request_id", requestID)
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	logger.APIResult(method, path, nil, "request_id", requestID, "status", resp.StatusCode)
	return nil
}
