// Package controller owns the application state: the editable form, the
// latest generated content, and the loading/error flags. State changes go
// through the defined actions only; views read snapshots.
package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/pratama/kisi-kisi-generator/internal/types"
)

// ErrGenerationInFlight is returned when a generate action is triggered while
// a previous call has not resolved. The generator itself enforces no mutual
// exclusion; this guard is the only thing preventing overlapping calls.
var ErrGenerationInFlight = errors.New("a generation call is already in flight")

// Generator produces content for a form. Satisfied by *generation.Generator.
type Generator interface {
	Generate(ctx context.Context, form types.FormData) (*types.GeneratedContent, error)
}

// Controller holds the three pieces of mutable state and the generator that
// fills them. Content is replaced wholesale on success, never merged.
type Controller struct {
	gen Generator

	mu         sync.Mutex
	form       types.FormData
	content    *types.GeneratedContent
	errMsg     string
	generating bool
}

// New creates a Controller starting from the default form.
func New(gen Generator) *Controller {
	return &Controller{gen: gen, form: types.DefaultFormData()}
}

// Form returns a copy of the current input specification.
func (c *Controller) Form() types.FormData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// SetForm validates and replaces the input specification.
func (c *Controller) SetForm(form types.FormData) error {
	if err := form.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = form
	return nil
}

// Content returns the latest generated content, or nil when none exists.
// Export and print are only reachable once this is non-nil.
func (c *Controller) Content() *types.GeneratedContent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.content
}

// ErrorMessage returns the user-facing message of the last failed call, or "".
func (c *Controller) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// Generating reports whether a call is currently in flight.
func (c *Controller) Generating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generating
}

// Generate runs one generation call for the current form. It refuses to start
// while another call is in flight. Prior content and error are cleared as the
// call begins, before the outcome is known, so a failed call leaves no stale
// content behind.
func (c *Controller) Generate(ctx context.Context) (*types.GeneratedContent, error) {
	c.mu.Lock()
	if c.generating {
		c.mu.Unlock()
		return nil, ErrGenerationInFlight
	}
	c.generating = true
	c.content = nil
	c.errMsg = ""
	form := c.form
	c.mu.Unlock()

	content, err := c.gen.Generate(ctx, form)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.generating = false
	if err != nil {
		c.errMsg = err.Error()
		return nil, err
	}
	c.content = content
	return content, nil
}

// Clear drops the generated content and error state; the form is kept.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.content = nil
	c.errMsg = ""
}
