package wikilens

import "context"

// Generator produces narrative text from a prompt using an external
// text-completion service. Implementations are fallible and latency
// bearing; callers decide the retry policy.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
