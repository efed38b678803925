package mock

import (
	"context"

	"github.com/wikilens/wikilens"
)

// Compile-time interface verification.
var _ wikilens.ContentSource = (*ContentSource)(nil)

// ContentSource is a mock implementation of wikilens.ContentSource.
type ContentSource struct {
	PagesFn       func(ctx context.Context, spaceKey string, limit int) ([]wikilens.Page, error)
	BodyFn        func(ctx context.Context, pageID string) (string, error)
	AttachmentsFn func(ctx context.Context, pageID string) ([]wikilens.Attachment, error)
	DownloadFn    func(ctx context.Context, att wikilens.Attachment) ([]byte, error)
}

func (s *ContentSource) Pages(ctx context.Context, spaceKey string, limit int) ([]wikilens.Page, error) {
	return s.PagesFn(ctx, spaceKey, limit)
}

func (s *ContentSource) Body(ctx context.Context, pageID string) (string, error) {
	return s.BodyFn(ctx, pageID)
}

func (s *ContentSource) Attachments(ctx context.Context, pageID string) ([]wikilens.Attachment, error) {
	return s.AttachmentsFn(ctx, pageID)
}

func (s *ContentSource) Download(ctx context.Context, att wikilens.Attachment) ([]byte, error) {
	return s.DownloadFn(ctx, att)
}
