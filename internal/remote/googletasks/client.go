// Package googletasks implements remote.Service using the Google Tasks API.
package googletasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"todo/internal/config"
	"todo/internal/remote"
)

const (
	// DefaultListID is the special ID for the default list.
	DefaultListID = "@default"

	// PageSize is the number of tasks fetched per request.
	PageSize = 100

	// APITimeout bounds every API call.
	APITimeout = 5 * time.Second

	// Scope is the OAuth scope for Google Tasks.
	Scope = tasks.TasksScope
)

// Client implements remote.Service using Google Tasks API.
type Client struct {
	svc *tasks.Service
}

// OAuthConfig reads the OAuth client credentials from the config dir.
func OAuthConfig(cfg *config.Config) (*oauth2.Config, error) {
	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", config.OAuthClientFile, err)
	}
	oauthConfig, err := google.ConfigFromJSON(clientJSON, Scope)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.OAuthClientFile, err)
	}
	return oauthConfig, nil
}

// ReadToken loads the stored OAuth token.
func ReadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// WriteToken saves an OAuth token with mode 0600.
func WriteToken(path string, token *oauth2.Token) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// New creates a client from the credentials in the config dir.
// Failures are wrapped with remote.ErrAuth.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	oauthConfig, err := OAuthConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", remote.ErrAuth, err)
	}

	token, err := ReadToken(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", remote.ErrAuth, config.TokenFile, err)
	}

	// Refreshes the access token as needed.
	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, token))
	return NewWithHTTPClient(ctx, httpClient)
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create tasks service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// DefaultList returns the user's default task list.
func (c *Client) DefaultList(ctx context.Context) (remote.TaskList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	list, err := c.svc.Tasklists.Get(DefaultListID).Context(ctx).Do()
	if err != nil {
		return remote.TaskList{}, wrapError(err)
	}
	return remote.TaskList{ID: DefaultListID, Title: list.Title, IsDefault: true}, nil
}

// ResolveList finds a list by name (case-insensitive, trimmed).
func (c *Client) ResolveList(ctx context.Context, name string) (remote.TaskList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	want := strings.ToLower(strings.TrimSpace(name))

	var matches []remote.TaskList
	err := c.svc.Tasklists.List().MaxResults(PageSize).Pages(ctx, func(resp *tasks.TaskLists) error {
		for _, list := range resp.Items {
			if strings.ToLower(strings.TrimSpace(list.Title)) == want {
				matches = append(matches, remote.TaskList{ID: list.Id, Title: list.Title})
			}
		}
		return nil
	})
	if err != nil {
		return remote.TaskList{}, wrapError(err)
	}

	switch len(matches) {
	case 0:
		return remote.TaskList{}, fmt.Errorf("list %q: %w", strings.TrimSpace(name), remote.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return remote.TaskList{}, fmt.Errorf("list %q: %w", strings.TrimSpace(name), remote.ErrAmbiguous)
	}
}

// ListOpenTasks returns every open task in a list, following page tokens.
func (c *Client) ListOpenTasks(ctx context.Context, listID string) ([]remote.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var result []remote.Task
	err := c.svc.Tasks.List(listID).
		MaxResults(PageSize).
		ShowCompleted(false).
		ShowDeleted(false).
		ShowHidden(false).
		Pages(ctx, func(resp *tasks.Tasks) error {
			for _, t := range resp.Items {
				result = append(result, remote.Task{ID: t.Id, Title: t.Title, Status: t.Status})
			}
			return nil
		})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// CreateTask inserts a task, marked completed when done is set.
func (c *Client) CreateTask(ctx context.Context, listID, title string, done bool) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	task := &tasks.Task{Title: title, Status: remote.StatusOpen}
	if done {
		task.Status = remote.StatusCompleted
	}
	if _, err := c.svc.Tasks.Insert(listID, task).Context(ctx).Do(); err != nil {
		return wrapError(err)
	}
	return nil
}

// wrapError maps API errors onto remote sentinels.
func wrapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.New("request timed out")
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: token expired or revoked (run: todo login)", remote.ErrAuth)
		case http.StatusNotFound:
			return remote.ErrNotFound
		}
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return fmt.Errorf("%w: %v", remote.ErrAuth, retrieveErr)
	}
	return err
}

// Connect returns a client after checking that credentials are present.
func Connect(ctx context.Context, cfg *config.Config) (remote.Service, error) {
	if !cfg.HasOAuthClient() {
		return nil, fmt.Errorf("%w: %s not found in %s (run: todo login)", remote.ErrAuth, config.OAuthClientFile, cfg.Dir)
	}
	if !cfg.HasToken() {
		return nil, fmt.Errorf("%w: not logged in (run: todo login)", remote.ErrAuth)
	}
	client, err := New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}
