// Package generator runs the identicon pipeline end to end: derive the pixel
// map, render it and persist the result.
package generator

import (
	"context"
	"errors"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/identicon/internal/identicon"
	"github.com/jmylchreest/identicon/internal/render"
	"github.com/jmylchreest/identicon/internal/store"
)

// Request describes one identicon to generate.
type Request struct {
	// Input is the string the identicon is derived from.
	Input string

	// Identifier names the stored artifact. Empty means Input.
	Identifier string
}

func (r Request) identifier() string {
	if r.Identifier != "" {
		return r.Identifier
	}
	return r.Input
}

// Result is the outcome of a successful generation.
type Result struct {
	Input string
	Path  string
	Image identicon.Mapped
}

// Generator wires the core pipeline to a Renderer and a Persister.
type Generator struct {
	renderer  render.Renderer
	persister store.Persister
	logger    hclog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRenderer sets the Renderer.
func WithRenderer(r render.Renderer) Option {
	return func(g *Generator) { g.renderer = r }
}

// WithPersister sets the Persister.
func WithPersister(p store.Persister) Option {
	return func(g *Generator) { g.persister = p }
}

// WithLogger sets the logger.
func WithLogger(l hclog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New creates a Generator. Without options it renders 250x250 PNGs into the
// current directory and logs nothing.
func New(opts ...Option) *Generator {
	g := &Generator{
		renderer:  render.NewPNGRenderer(0),
		persister: store.NewFilePersister(""),
		logger:    hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate derives, renders and stores the identicon for input, using input
// as the identifier.
func (g *Generator) Generate(ctx context.Context, input string) (Result, error) {
	return g.GenerateRequest(ctx, Request{Input: input})
}

// GenerateRequest derives, renders and stores the identicon described by req.
// Failures are returned as *RenderError or *PersistError and are not retried.
func (g *Generator) GenerateRequest(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	img := identicon.Generate(req.Input)
	g.logger.Debug("derived identicon", "input", req.Input, "colour", img.RGB().Hex(), "cells", len(img.Rects()))

	data, err := g.renderer.Render(img.RGB(), img.Rects())
	if err != nil {
		g.logger.Error("render failed", "input", req.Input, "error", err)
		return Result{}, &RenderError{Input: req.Input, Err: err}
	}

	id := req.identifier()
	path, err := g.persister.Save(ctx, id, data)
	if err != nil {
		g.logger.Error("persist failed", "identifier", id, "error", err)
		return Result{}, &PersistError{Identifier: id, Err: err}
	}

	g.logger.Info("wrote identicon", "input", req.Input, "path", path, "bytes", len(data))
	return Result{Input: req.Input, Path: path, Image: img}, nil
}

// GenerateAll runs GenerateRequest for every request on up to jobs workers.
// Results are returned in request order; entries for failed requests are the
// zero Result. All failures are joined into the returned error.
func (g *Generator) GenerateAll(ctx context.Context, reqs []Request, jobs int) ([]Result, error) {
	jobs = max(1, min(jobs, len(reqs)))
	results := make([]Result, len(reqs))
	errs := make([]error, len(reqs))

	indices := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < jobs; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i], errs[i] = g.GenerateRequest(ctx, reqs[i])
			}
		}()
	}

	for i := range reqs {
		indices <- i
	}
	close(indices)
	wg.Wait()

	return results, errors.Join(errs...)
}
