package wikilens

import (
	"context"
	"fmt"
)

// Page identifies a wiki page within a space.
type Page struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Attachment identifies a file attached to a wiki page.
type Attachment struct {
	PageID       string `json:"page_id"`
	Title        string `json:"title"`
	DownloadPath string `json:"download_path"` // Server-relative download link
	MediaType    string `json:"media_type"`
}

// ContentSource provides access to wiki pages and their attachments.
type ContentSource interface {
	// Pages lists pages in a space, up to limit.
	Pages(ctx context.Context, spaceKey string, limit int) ([]Page, error)
	// Body returns the storage-format body of a page.
	Body(ctx context.Context, pageID string) (string, error)
	// Attachments lists files attached to a page.
	Attachments(ctx context.Context, pageID string) ([]Attachment, error)
	// Download retrieves the raw bytes of an attachment.
	Download(ctx context.Context, att Attachment) ([]byte, error)
}

// FetchError describes a failure to retrieve content from the wiki.
// Fetch failures are reported to the caller and must not take down the
// report pipeline; features proceed with whatever snapshots are available.
type FetchError struct {
	Op  string // "pages", "body", "attachments", "download"
	ID  string // Space key, page ID, or download path
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s %q: %v", e.Op, e.ID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// GitRunner provides access to git operations for extracting local
// snapshots of a file at specific revisions.
type GitRunner interface {
	// Log returns commit hashes from the repository at repoPath, limited to n commits.
	Log(ctx context.Context, repoPath string, limit int) ([]string, error)
	// Show returns the content of path at revision rev.
	Show(ctx context.Context, repoPath, rev, path string) (string, error)
}

// Clipboard writes content to the system clipboard.
type Clipboard interface {
	Copy(content string) error
}
