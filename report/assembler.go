// Package report assembles change-impact analysis reports from snapshot
// pairs and an injected narrative generator.
package report

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wikilens/wikilens"
	"github.com/wikilens/wikilens/linediff"
)

// Retry policy for a single narrative section. After the attempts are
// exhausted the fallback prompt is generated exactly once and its result
// used; narrative generation never surfaces a hard failure.
const (
	defaultAttempts = 3
	defaultBackoff  = 2 * time.Second
)

// qaContextChars bounds each narrative section quoted in follow-up prompts.
const qaContextChars = 1000

// ErrNoReport is returned by Ask before a report has been built.
var ErrNoReport = errors.New("report: no report built")

// unavailableText stands in when even the fallback prompt fails.
const unavailableText = "Narrative generation is temporarily unavailable."

// Assembler builds analysis reports for snapshot pairs. Narrative text and
// follow-up answers are cached per pair, keyed by a content hash of both
// snapshots, and invalidated when either snapshot changes. Not safe for
// concurrent use; the pipeline is single-threaded by design.
type Assembler struct {
	gen      wikilens.Generator
	log      *zap.Logger
	attempts int
	backoff  time.Duration
	sleep    func(time.Duration)

	pairKey      string
	report       *wikilens.Report
	lastQuestion string
	lastAnswer   string
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithLogger sets the logger for retry and fallback warnings.
func WithLogger(log *zap.Logger) Option {
	return func(a *Assembler) { a.log = log }
}

// WithAttempts sets the per-section generation attempt budget.
func WithAttempts(n int) Option {
	return func(a *Assembler) { a.attempts = n }
}

// WithBackoff sets the fixed delay between failed attempts.
func WithBackoff(d time.Duration) Option {
	return func(a *Assembler) { a.backoff = d }
}

// NewAssembler creates an Assembler around the given generator.
func NewAssembler(gen wikilens.Generator, opts ...Option) *Assembler {
	a := &Assembler{
		gen:      gen,
		log:      zap.NewNop(),
		attempts: defaultAttempts,
		backoff:  defaultBackoff,
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Build produces the analysis report for a snapshot pair: diff, metrics,
// and the three narrative sections. Repeated calls with the same pair
// return the cached report without touching the generator; a different
// pair invalidates everything, including follow-up answers. The only
// error returned is context cancellation.
func (a *Assembler) Build(ctx context.Context, old, new wikilens.Snapshot) (*wikilens.Report, error) {
	key := pairKey(old, new)
	if a.report != nil && a.pairKey == key {
		return a.report, nil
	}
	a.invalidate()

	script := linediff.Compute(old, new)
	metrics := wikilens.ComputeMetrics(old, new, script)
	diff := wikilens.SanitizePrompt(linediff.Render(old, new, script))

	impact, err := a.generate(ctx, impactPrompt(diff))
	if err != nil {
		return nil, err
	}
	recs, err := a.generate(ctx, recommendationsPrompt(diff))
	if err != nil {
		return nil, err
	}
	risk, err := a.generate(ctx, riskPrompt(diff))
	if err != nil {
		return nil, err
	}

	r := &wikilens.Report{
		OldLabel:        old.Label,
		NewLabel:        new.Label,
		Diff:            diff,
		Metrics:         metrics,
		Impact:          impact,
		Recommendations: recs,
		Risk:            TagSeverities(risk),
		CreatedAt:       time.Now().UTC(),
	}

	a.pairKey = key
	a.report = r
	return r, nil
}

// Ask answers a follow-up question using a bounded summary of the built
// report as context. An identical repeated question returns the cached
// answer without calling the generator; a different question replaces the
// cache.
func (a *Assembler) Ask(ctx context.Context, question string) (string, error) {
	if a.report == nil {
		return "", ErrNoReport
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return "", errors.New("report: empty question")
	}
	if question == a.lastQuestion {
		return a.lastAnswer, nil
	}

	answer, err := a.generate(ctx, qaPrompt(a.boundedContext(), question))
	if err != nil {
		return "", err
	}

	a.lastQuestion = question
	a.lastAnswer = answer
	a.report.QALog = append(a.report.QALog, wikilens.QAEntry{Question: question, Answer: answer})
	return answer, nil
}

// Report returns the currently cached report, or nil if none was built.
func (a *Assembler) Report() *wikilens.Report {
	return a.report
}

func (a *Assembler) invalidate() {
	a.pairKey = ""
	a.report = nil
	a.lastQuestion = ""
	a.lastAnswer = ""
}

// generate runs one narrative call with bounded retries and fixed backoff,
// degrading to the fallback prompt after the attempt budget is spent.
func (a *Assembler) generate(ctx context.Context, prompt string) (string, error) {
	prompt = wikilens.SanitizePrompt(prompt)

	var lastErr error
	for attempt := 1; attempt <= a.attempts; attempt++ {
		text, err := a.gen.Generate(ctx, prompt)
		if err == nil {
			return strings.TrimSpace(text), nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		lastErr = err
		a.log.Warn("narrative generation failed",
			zap.Int("attempt", attempt),
			zap.Error(err))
		a.sleep(a.backoff)
	}

	a.log.Warn("using fallback prompt after repeated errors", zap.Error(lastErr))
	text, err := a.gen.Generate(ctx, FallbackPrompt)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		a.log.Warn("fallback generation failed", zap.Error(err))
		return unavailableText, nil
	}
	return strings.TrimSpace(text), nil
}

// boundedContext quotes the head of each narrative section plus the
// numeric metrics, keeping follow-up prompts small.
func (a *Assembler) boundedContext() string {
	r := a.report
	var sb strings.Builder
	sb.WriteString("Summary: " + head(r.Impact, qaContextChars) + "\n")
	sb.WriteString("Recommendations: " + head(r.Recommendations, qaContextChars) + "\n")
	sb.WriteString("Risks: " + head(r.Risk, qaContextChars) + "\n")
	sb.WriteString(metricsLine(r.Metrics))
	return sb.String()
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// pairKey hashes both snapshots so cache identity follows content, not
// ambient session state.
func pairKey(old, new wikilens.Snapshot) string {
	h := sha256.New()
	for _, s := range []wikilens.Snapshot{old, new} {
		io.WriteString(h, s.Label)
		h.Write([]byte{0})
		io.WriteString(h, s.Text())
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
