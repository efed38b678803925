// Package confluence implements the wiki content source against the
// Confluence REST API.
package confluence

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wikilens/wikilens"
)

// Compile-time interface verification.
var _ wikilens.ContentSource = (*Client)(nil)

// DefaultTimeout bounds a single REST call.
const DefaultTimeout = 10 * time.Second

// Client talks to a Confluence instance using basic auth.
type Client struct {
	baseURL    string
	email      string
	apiKey     string
	httpClient *http.Client
	log        *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a Client for the instance at baseURL.
func NewClient(baseURL, email, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		email:      email,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type contentList struct {
	Results []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	} `json:"results"`
}

// Pages lists pages in a space, up to limit.
func (c *Client) Pages(ctx context.Context, spaceKey string, limit int) ([]wikilens.Page, error) {
	q := url.Values{}
	q.Set("spaceKey", spaceKey)
	q.Set("type", "page")
	q.Set("start", "0")
	q.Set("limit", strconv.Itoa(limit))

	var list contentList
	if err := c.get(ctx, "/rest/api/content?"+q.Encode(), &list); err != nil {
		return nil, &wikilens.FetchError{Op: "pages", ID: spaceKey, Err: err}
	}

	pages := make([]wikilens.Page, 0, len(list.Results))
	for _, r := range list.Results {
		pages = append(pages, wikilens.Page{ID: r.ID, Title: r.Title})
	}
	c.log.Debug("fetched pages", zap.String("space", spaceKey), zap.Int("count", len(pages)))
	return pages, nil
}

type pageBody struct {
	Body struct {
		Storage struct {
			Value string `json:"value"`
		} `json:"storage"`
	} `json:"body"`
}

// Body returns the storage-format body of a page.
func (c *Client) Body(ctx context.Context, pageID string) (string, error) {
	var page pageBody
	path := "/rest/api/content/" + url.PathEscape(pageID) + "?expand=body.storage"
	if err := c.get(ctx, path, &page); err != nil {
		return "", &wikilens.FetchError{Op: "body", ID: pageID, Err: err}
	}
	return page.Body.Storage.Value, nil
}

type attachmentList struct {
	Results []struct {
		Title    string `json:"title"`
		Metadata struct {
			MediaType string `json:"mediaType"`
		} `json:"metadata"`
		Links struct {
			Download string `json:"download"`
		} `json:"_links"`
	} `json:"results"`
}

// Attachments lists files attached to a page.
func (c *Client) Attachments(ctx context.Context, pageID string) ([]wikilens.Attachment, error) {
	var list attachmentList
	path := "/rest/api/content/" + url.PathEscape(pageID) + "/child/attachment?limit=50"
	if err := c.get(ctx, path, &list); err != nil {
		return nil, &wikilens.FetchError{Op: "attachments", ID: pageID, Err: err}
	}

	atts := make([]wikilens.Attachment, 0, len(list.Results))
	for _, r := range list.Results {
		atts = append(atts, wikilens.Attachment{
			PageID:       pageID,
			Title:        strings.TrimSpace(r.Title),
			DownloadPath: r.Links.Download,
			MediaType:    r.Metadata.MediaType,
		})
	}
	return atts, nil
}

// Download retrieves the raw bytes of an attachment.
func (c *Client) Download(ctx context.Context, att wikilens.Attachment) ([]byte, error) {
	req, err := c.newRequest(ctx, att.DownloadPath)
	if err != nil {
		return nil, &wikilens.FetchError{Op: "download", ID: att.DownloadPath, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &wikilens.FetchError{Op: "download", ID: att.DownloadPath, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &wikilens.FetchError{
			Op: "download", ID: att.DownloadPath,
			Err: fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) newRequest(ctx context.Context, path string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.email, c.apiKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, path)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
