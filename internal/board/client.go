package board

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/model"
)

// Client is the HTTP implementation of PartyStore against the roster
// API. Successful responses carry {"data": ...}; failures carry RFC 9457
// problem details, which map onto the store sentinels by status code.
type Client struct {
	baseURL string
	http    *http.Client
}

// ClientOption customizes a Client
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// NewClient creates a store client for the API at baseURL, e.g.
// "http://localhost:8080/v1".
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// dataEnvelope matches the API's success wrapper
type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// problem matches the API's RFC 9457 error body
type problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// Parties lists all parties of one activity type
func (c *Client) Parties(ctx context.Context, partyType model.PartyType) ([]model.Party, error) {
	var withMembers []model.PartyWithMembers
	query := url.Values{"type": {string(partyType)}}
	if err := c.get(ctx, "/parties?"+query.Encode(), &withMembers); err != nil {
		return nil, err
	}
	parties := make([]model.Party, 0, len(withMembers))
	for i := range withMembers {
		parties = append(parties, withMembers[i].Party)
	}
	return parties, nil
}

// Members lists the full roster
func (c *Client) Members(ctx context.Context) ([]model.Member, error) {
	var members []model.Member
	if err := c.get(ctx, "/members", &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Assign seats a member in a slot
func (c *Client) Assign(ctx context.Context, req *model.AssignMemberRequest) error {
	return c.post(ctx, "/parties/assign", req)
}

// Remove vacates a member's slot
func (c *Client) Remove(ctx context.Context, req *model.RemoveMemberRequest) error {
	return c.post(ctx, "/parties/remove", req)
}

// Swap exchanges two members' slots
func (c *Client) Swap(ctx context.Context, req *model.SwapMembersRequest) error {
	return c.post(ctx, "/parties/swap", req)
}

// ClearAll empties every slot
func (c *Client) ClearAll(ctx context.Context, req *model.ClearPartiesRequest) error {
	return c.post(ctx, "/parties/clear", req)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= 400 {
		return statusError(resp.StatusCode, body)
	}
	if out == nil {
		return nil
	}

	var envelope dataEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("%w: malformed response: %v", ErrUnavailable, err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%w: malformed response data: %v", ErrUnavailable, err)
	}
	return nil
}

// statusError maps an HTTP failure onto the store sentinels
func statusError(status int, body []byte) error {
	detail := ""
	var p problem
	if err := json.Unmarshal(body, &p); err == nil {
		detail = p.Detail
		if detail == "" {
			detail = p.Title
		}
	}
	if detail == "" {
		detail = http.StatusText(status)
	}

	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case status == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, detail)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrValidation, detail)
	default:
		return fmt.Errorf("%w: %s (status %d)", ErrUnavailable, detail, status)
	}
}
