// Package assist implements the assistant features built on wiki content:
// context-grounded search answers, code summarization and transformation,
// video summarization, and test planning advice.
package assist

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/wikilens/wikilens"
)

// Searcher answers questions grounded in the bodies of selected wiki
// pages. Page bodies are fetched concurrently; the assembled context
// preserves page order.
type Searcher struct {
	source wikilens.ContentSource
	gen    wikilens.Generator
	clean  func(string) string
	fetchN int
}

// SearcherOption configures a Searcher.
type SearcherOption func(*Searcher)

// WithCleaner sets the function that converts a storage-format page body
// into plain text before it enters the context.
func WithCleaner(clean func(string) string) SearcherOption {
	return func(s *Searcher) { s.clean = clean }
}

// WithConcurrency bounds how many page bodies are fetched at once.
func WithConcurrency(n int) SearcherOption {
	return func(s *Searcher) {
		if n > 0 {
			s.fetchN = n
		}
	}
}

// NewSearcher creates a Searcher backed by the given source and generator.
func NewSearcher(source wikilens.ContentSource, gen wikilens.Generator, opts ...SearcherOption) *Searcher {
	s := &Searcher{
		source: source,
		gen:    gen,
		clean:  func(body string) string { return body },
		fetchN: 4,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Context fetches and cleans the bodies of the given pages and joins them
// into one prompt context block.
func (s *Searcher) Context(ctx context.Context, pages []wikilens.Page) (string, error) {
	bodies := make([]string, len(pages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fetchN)
	for i, page := range pages {
		g.Go(func() error {
			body, err := s.source.Body(gctx, page.ID)
			if err != nil {
				return err
			}
			bodies[i] = s.clean(body)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	var b strings.Builder
	for i, page := range pages {
		fmt.Fprintf(&b, "\n\nTitle: %s\n%s", page.Title, bodies[i])
	}
	return b.String(), nil
}

// Answer fetches the page bodies and asks the generator to answer the
// question using them as context.
func (s *Searcher) Answer(ctx context.Context, question string, pages []wikilens.Page) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("question must not be empty")
	}

	pageContext, err := s.Context(ctx, pages)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(
		"Answer the following question using the provided Confluence page content as context.\n"+
			"Context:\n%s\n\n"+
			"Question: %s\n"+
			"Instructions: Begin with the answer based on the context above. Then, if applicable, supplement with general knowledge.",
		pageContext, question,
	)

	answer, err := s.gen.Generate(ctx, wikilens.SanitizePrompt(prompt))
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}
	return strings.TrimSpace(answer), nil
}
