// Package client is the typed Go client for the atrium API. It also houses
// the search index builder: a fixed-interval poller that pulls all four
// collections into one snapshot for the interactive search.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"atrium/internal/domain/models"
	"atrium/internal/repository"
	"atrium/internal/service"
)

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api error %d: %s (%s)", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client talks to one atrium server.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
}

type Option func(*Client)

// WithToken sets the static bearer token sent on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Health checks server liveness.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// --- documents ---

func (c *Client) ListDocuments(ctx context.Context) ([]models.Document, error) {
	var env struct {
		Documents []models.Document `json:"documents"`
	}
	if err := c.do(ctx, http.MethodGet, "/documents", nil, &env); err != nil {
		return nil, err
	}
	return env.Documents, nil
}

func (c *Client) CreateDocument(ctx context.Context, req *service.CreateDocumentRequest) (*models.Document, error) {
	var env struct {
		Document models.Document `json:"document"`
	}
	if err := c.do(ctx, http.MethodPost, "/documents", req, &env); err != nil {
		return nil, err
	}
	return &env.Document, nil
}

func (c *Client) UpdateDocument(ctx context.Context, id string, patch *models.DocumentUpdate) (*models.Document, error) {
	var env struct {
		Document models.Document `json:"document"`
	}
	if err := c.do(ctx, http.MethodPut, "/documents/"+id, patch, &env); err != nil {
		return nil, err
	}
	return &env.Document, nil
}

func (c *Client) DeleteDocument(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/documents/"+id, nil, nil)
}

// --- project structure ---

func (c *Client) GetStructure(ctx context.Context, section repository.Section) ([]models.FolderInfo, error) {
	var env struct {
		Structure []models.FolderInfo `json:"structure"`
	}
	if err := c.do(ctx, http.MethodGet, "/structure/"+string(section), nil, &env); err != nil {
		return nil, err
	}
	return env.Structure, nil
}

// ReplaceStructure overwrites the whole section. Every local edit — add,
// rename, reorder, delete — saves through this one call.
func (c *Client) ReplaceStructure(ctx context.Context, section repository.Section, folders []models.FolderInfo) error {
	body := struct {
		Structure []models.FolderInfo `json:"structure"`
	}{Structure: folders}
	return c.do(ctx, http.MethodPost, "/structure/"+string(section), body, nil)
}

// --- community ---

func (c *Client) ListPosts(ctx context.Context) ([]models.Post, error) {
	var env struct {
		Posts []models.Post `json:"posts"`
	}
	if err := c.do(ctx, http.MethodGet, "/community/posts", nil, &env); err != nil {
		return nil, err
	}
	return env.Posts, nil
}

func (c *Client) CreatePost(ctx context.Context, req *service.CreatePostRequest) (*models.Post, error) {
	var env struct {
		Post models.Post `json:"post"`
	}
	if err := c.do(ctx, http.MethodPost, "/community/posts", req, &env); err != nil {
		return nil, err
	}
	return &env.Post, nil
}

func (c *Client) AddComment(ctx context.Context, postID string, req *service.CreateCommentRequest) (*models.Comment, error) {
	var env struct {
		Comment models.Comment `json:"comment"`
	}
	if err := c.do(ctx, http.MethodPost, "/community/posts/"+postID+"/comments", req, &env); err != nil {
		return nil, err
	}
	return &env.Comment, nil
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/community/posts/"+id, nil, nil)
}

func (c *Client) DeleteComment(ctx context.Context, postID, commentID string) error {
	return c.do(ctx, http.MethodDelete, "/community/posts/"+postID+"/comments/"+commentID, nil, nil)
}

// do sends one request and decodes either the success envelope into out or
// the error envelope into an APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var envelope struct {
			Error   string `json:"error"`
			Details string `json:"details"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil && envelope.Error != "" {
			apiErr.Message = envelope.Error
			apiErr.Details = envelope.Details
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
