// Package generator orchestrates the two-pass landing page generation
// sequence: draft, refine, parse, persist.
package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/landing-page-generator/internal/llm"
	"github.com/jonathan/landing-page-generator/internal/output"
	"github.com/jonathan/landing-page-generator/internal/patterns"
	"github.com/jonathan/landing-page-generator/internal/prompts"
	"github.com/jonathan/landing-page-generator/internal/sections"
	"github.com/jonathan/landing-page-generator/internal/types"
)

// Fixed parameters for both external calls: a generous ceiling for long-form
// copy and a temperature that favors varied but controlled prose.
const (
	maxOutputTokens = 8000
	temperature     = 0.7
)

// Generation passes, used to attribute external-call failures.
const (
	PassDraft      = "draft"
	PassRefinement = "refinement"
)

// PassError reports which external call failed. Either pass failing aborts
// the whole run: there is no partial result and no fallback to the draft.
type PassError struct {
	Pass string
	Err  error
}

func (e *PassError) Error() string {
	return fmt.Sprintf("%s pass failed: %v", e.Pass, e.Err)
}

func (e *PassError) Unwrap() error {
	return e.Err
}

// ProgressEvent represents a progress update during generation
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
}

// ProgressFunc is called when generation progress occurs
type ProgressFunc func(event ProgressEvent)

// Generator runs the generation pipeline against an injected LLM client and
// persistence sink. It holds no per-request state, so a single Generator may
// serve concurrent requests.
type Generator struct {
	client     llm.Client
	set        *types.PatternSet
	sink       output.Sink
	onProgress ProgressFunc
	now        func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithProgress registers a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(g *Generator) { g.onProgress = fn }
}

// WithClock overrides the timestamp source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New creates a Generator. sink may be nil, in which case results are
// returned without being persisted.
func New(client llm.Client, set *types.PatternSet, sink output.Sink, opts ...Option) *Generator {
	g := &Generator{
		client: client,
		set:    set,
		sink:   sink,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) emit(step, message string) {
	if g.onProgress != nil {
		g.onProgress(ProgressEvent{Step: step, Message: message})
	}
}

// Generate runs the full sequence for one page configuration: select
// patterns, draft, refine, extract sections, persist. Any failure of either
// external call aborts the run with a PassError and nothing is written.
func (g *Generator) Generate(ctx context.Context, cfg types.PageConfig) (*types.GenerationResult, error) {
	sel := patterns.Select(cfg, g.set)

	initialPrompt := prompts.BuildInitialPrompt(cfg, sel)

	g.emit("draft", fmt.Sprintf("Generating initial %s copy for %s", cfg.PageType, cfg.ProductName))
	draft, err := g.client.Complete(ctx, initialPrompt, maxOutputTokens, temperature)
	if err != nil {
		return nil, &PassError{Pass: PassDraft, Err: err}
	}

	refinementPrompt := prompts.BuildRefinementPrompt(draft, cfg)

	g.emit("refine", "Refining copy for conversion")
	finalCopy, err := g.client.Complete(ctx, refinementPrompt, maxOutputTokens, temperature)
	if err != nil {
		return nil, &PassError{Pass: PassRefinement, Err: err}
	}

	res := &types.GenerationResult{
		RunID:        uuid.New(),
		Config:       cfg,
		GeneratedAt:  g.now(),
		PageContent:  finalCopy,
		PatternsUsed: sel,
		WordCount:    len(strings.Fields(finalCopy)),
		Sections:     sections.Extract(finalCopy),
	}

	if g.sink != nil {
		baseName := output.BaseName(cfg.ProductName, cfg.PageType, res.GeneratedAt)
		g.emit("persist", fmt.Sprintf("Writing artifacts as %s", baseName))
		if _, err := g.sink.Write(res, baseName); err != nil {
			return nil, fmt.Errorf("failed to persist result: %w", err)
		}
	}

	return res, nil
}
