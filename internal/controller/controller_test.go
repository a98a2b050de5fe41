package controller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratama/kisi-kisi-generator/internal/generation"
	"github.com/pratama/kisi-kisi-generator/internal/types"
)

// stubGenerator blocks until released when gate is non-nil.
type stubGenerator struct {
	content *types.GeneratedContent
	err     error
	gate    chan struct{}

	mu    sync.Mutex
	calls int
}

func (s *stubGenerator) Generate(_ context.Context, _ types.FormData) (*types.GeneratedContent, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.gate != nil {
		<-s.gate
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.content, nil
}

func TestController_GenerateSuccess(t *testing.T) {
	want := &types.GeneratedContent{AnswerKey: []types.Answer{{Number: 1, Text: "A"}}}
	c := New(&stubGenerator{content: want})

	require.Nil(t, c.Content())

	got, err := c.Generate(context.Background())
	require.NoError(t, err)
	assert.Same(t, want, got)
	assert.Same(t, want, c.Content())
	assert.Empty(t, c.ErrorMessage())
	assert.False(t, c.Generating())
}

func TestController_GenerateFailure(t *testing.T) {
	genErr := &generation.GenerationError{Message: "Gagal menghasilkan data dari AI. Silakan coba lagi."}
	c := New(&stubGenerator{err: genErr})

	got, err := c.Generate(context.Background())
	assert.Nil(t, got)
	require.Error(t, err)

	// Displayed error message is non-empty and content stays absent.
	assert.Equal(t, "Gagal menghasilkan data dari AI. Silakan coba lagi.", c.ErrorMessage())
	assert.Nil(t, c.Content())
	assert.False(t, c.Generating())
}

func TestController_BeginClearsPriorState(t *testing.T) {
	stub := &stubGenerator{gate: make(chan struct{})}
	c := New(stub)

	// Seed prior success state.
	c.mu.Lock()
	c.content = &types.GeneratedContent{}
	c.errMsg = "stale"
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		_, _ = c.Generate(context.Background())
		close(done)
	}()

	// While the new call is pending, old content and error are already gone.
	require.Eventually(t, c.Generating, time.Second, time.Millisecond)
	assert.Nil(t, c.Content())
	assert.Empty(t, c.ErrorMessage())

	close(stub.gate)
	<-done
}

func TestController_RejectsOverlappingCalls(t *testing.T) {
	stub := &stubGenerator{gate: make(chan struct{}), content: &types.GeneratedContent{}}
	c := New(stub)

	done := make(chan struct{})
	go func() {
		_, _ = c.Generate(context.Background())
		close(done)
	}()
	require.Eventually(t, c.Generating, time.Second, time.Millisecond)

	_, err := c.Generate(context.Background())
	assert.ErrorIs(t, err, ErrGenerationInFlight)

	close(stub.gate)
	<-done

	stub.mu.Lock()
	defer stub.mu.Unlock()
	assert.Equal(t, 1, stub.calls, "the rejected trigger never reached the generator")
}

func TestController_SetForm(t *testing.T) {
	c := New(&stubGenerator{})

	form := types.DefaultFormData()
	form.Subject = "Matematika"
	require.NoError(t, c.SetForm(form))
	assert.Equal(t, "Matematika", c.Form().Subject)

	invalid := types.DefaultFormData()
	invalid.QuestionTypes = nil
	assert.Error(t, c.SetForm(invalid))
	assert.Equal(t, "Matematika", c.Form().Subject, "invalid form is not applied")
}

func TestController_FailureDoesNotRevivePriorContent(t *testing.T) {
	stub := &stubGenerator{content: &types.GeneratedContent{}}
	c := New(stub)

	_, err := c.Generate(context.Background())
	require.NoError(t, err)
	require.NotNil(t, c.Content())

	stub.err = errors.New("provider down")
	stub.content = nil
	_, err = c.Generate(context.Background())
	require.Error(t, err)
	assert.Nil(t, c.Content(), "failed retry does not restore earlier success")
	assert.NotEmpty(t, c.ErrorMessage())
}

func TestController_Clear(t *testing.T) {
	c := New(&stubGenerator{content: &types.GeneratedContent{}})
	_, err := c.Generate(context.Background())
	require.NoError(t, err)

	c.Clear()
	assert.Nil(t, c.Content())
	assert.Empty(t, c.ErrorMessage())
	assert.NotEmpty(t, c.Form().SchoolName, "the form survives a clear")
}
