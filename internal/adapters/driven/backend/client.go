package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/legalbrief/brief-cli/internal/core/domain"
	"github.com/legalbrief/brief-cli/internal/core/ports/driven"
	"github.com/legalbrief/brief-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.BackendClient = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8000/api/v1"
	DefaultTimeout = 120 * time.Second

	userAgent = "brief-cli"

	// maxErrorDetail bounds how much of an error body ends up in a
	// TransportError message.
	maxErrorDetail = 300
)

// Config holds configuration for the backend client.
type Config struct {
	// BaseURL is the backend base endpoint including the API prefix
	// (default: http://localhost:8000/api/v1).
	BaseURL string

	// Timeout is the per-request timeout (default: 120s). Query synthesis
	// can take a while; there is no retry policy on top.
	Timeout time.Duration
}

// Client talks to the LegalBriefAI backend.
type Client struct {
	http *http.Client

	mu      sync.RWMutex
	baseURL string
}

// NewClient creates a backend client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// BaseURL returns the configured base endpoint.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetBaseURL swaps the base endpoint. Used when the configured endpoint
// changes while a long-running session is open.
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = strings.TrimRight(baseURL, "/")
}

// Query submits a question for retrieval-augmented synthesis.
func (c *Client) Query(ctx context.Context, text string) (domain.Answer, error) {
	var resp queryResponse
	err := c.doJSON(ctx, http.MethodPost, "/query", queryRequest{Query: text, Synthesize: true}, &resp)
	if err != nil {
		return domain.Answer{}, err
	}

	// Backend order is the evidence ranking; keep it.
	sources := make([]domain.Citation, len(resp.Sources))
	for i, s := range resp.Sources {
		sources[i] = domain.Citation{
			Filename:   s.Filename,
			PageNumber: s.PageNumber,
			Snippet:    s.Text,
		}
	}
	return domain.Answer{
		Text:     resp.Answer,
		Sources:  sources,
		MemoryID: resp.CreatedMemoryID,
	}, nil
}

// Timeline fetches dated events in backend sort order.
func (c *Client) Timeline(ctx context.Context) ([]domain.TimelineEvent, error) {
	var resp []timelineEvent
	if err := c.doJSON(ctx, http.MethodGet, "/timeline", nil, &resp); err != nil {
		return nil, err
	}

	events := make([]domain.TimelineEvent, len(resp))
	for i, e := range resp {
		events[i] = domain.TimelineEvent{Date: e.Date, Source: e.Source, Event: e.Event}
	}
	return events, nil
}

// SemanticGraph fetches the raw, untyped graph payload.
func (c *Client) SemanticGraph(ctx context.Context) ([]domain.GraphElement, error) {
	var resp []graphElement
	if err := c.doJSON(ctx, http.MethodGet, "/semantic_graph", nil, &resp); err != nil {
		return nil, err
	}

	elements := make([]domain.GraphElement, len(resp))
	for i, el := range resp {
		elements[i] = domain.GraphElement{
			ID:     el.Data.ID,
			Label:  el.Data.Label,
			Source: el.Data.Source,
			Target: el.Data.Target,
		}
	}
	return elements, nil
}

// Consolidate runs a memory consolidation job.
func (c *Client) Consolidate(ctx context.Context, threshold float64) (domain.ConsolidationResult, error) {
	var resp consolidateResponse
	err := c.doJSON(ctx, http.MethodPost, "/consolidate", consolidateRequest{Threshold: threshold}, &resp)
	if err != nil {
		return domain.ConsolidationResult{}, err
	}

	groups := make([]domain.ConsolidatedGroup, len(resp.ConsolidatedGroups))
	for i, g := range resp.ConsolidatedGroups {
		groups[i] = domain.ConsolidatedGroup{
			ID:          g.ID,
			Source:      g.Source,
			Summary:     g.Summary,
			MemberCount: g.MemberCount,
		}
	}
	return domain.ConsolidationResult{Message: resp.Message, Groups: groups}, nil
}

// Upload streams a PDF to the ingestion endpoint as multipart form data.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finalise form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL()+"/upload", &buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("User-Agent", userAgent)

	var resp uploadResponse
	if err := c.send(req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Feedback records a vote on an answer's interaction memory.
func (c *Client) Feedback(ctx context.Context, memoryID string, vote domain.Vote) error {
	return c.doJSON(ctx, http.MethodPost, "/feedback", feedbackRequest{
		MemoryID: memoryID,
		Vote:     string(vote),
	}, nil)
}

// doJSON issues a JSON request against the base endpoint and decodes the
// response into out (when non-nil).
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL()+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	return c.send(req, out)
}

// send executes a prepared request and decodes the response. Any network
// failure or non-2xx status becomes a *domain.TransportError.
func (c *Client) send(req *http.Request, out any) error {
	logger.Debug("%s %s", req.Method, req.URL.Path)

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.TransportError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.TransportError{Status: resp.StatusCode, Message: "read response: " + err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.TransportError{Status: resp.StatusCode, Message: errorDetail(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.TransportError{Status: resp.StatusCode, Message: "decode response: " + err.Error()}
	}
	return nil
}

// errorDetail extracts the FastAPI error detail from a failure body,
// falling back to the raw body.
func errorDetail(raw []byte) string {
	var e errorBody
	if err := json.Unmarshal(raw, &e); err == nil && e.Detail != "" {
		return e.Detail
	}
	detail := strings.TrimSpace(string(raw))
	if len(detail) > maxErrorDetail {
		detail = detail[:maxErrorDetail]
	}
	if detail == "" {
		detail = "no error detail"
	}
	return detail
}
