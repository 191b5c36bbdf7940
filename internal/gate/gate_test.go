package gate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type scriptedBackend struct {
	response string
	err      error
	invokes  int
}

func (s *scriptedBackend) Model() string { return "stub" }

func (s *scriptedBackend) Invoke(_ context.Context, _ string) (string, error) {
	s.invokes++
	return s.response, s.err
}

func (s *scriptedBackend) Complete(_ context.Context, _ string) (string, error) {
	return s.response, s.err
}

func TestIsLegal_TrivialRejectionSkipsModelCall(t *testing.T) {
	backend := &scriptedBackend{response: "YES"}

	cases := []struct {
		name     string
		question string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"too short", "ab"},
		{"no letters", "12345 !?"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, IsLegal(context.Background(), tc.question, backend))
		})
	}
	assert.Equal(t, 0, backend.invokes, "trivial rejections must not reach the backend")
}

func TestIsLegal_Verdicts(t *testing.T) {
	cases := []struct {
		name     string
		response string
		want     bool
	}{
		{"plain yes", "YES", true},
		{"lowercase yes", "yes", true},
		{"yes with padding", "  Yes.\n", true},
		{"plain no", "NO", false},
		{"both words", "YES, but NO for some aspects", false},
		{"neither word", "This is a legal question", false},
		{"empty response", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			backend := &scriptedBackend{response: tc.response}
			got := IsLegal(context.Background(), "Can my landlord evict me without notice?", backend)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, 1, backend.invokes, "exactly one classification call")
		})
	}
}

func TestIsLegal_FailsClosedOnBackendError(t *testing.T) {
	backend := &scriptedBackend{err: errors.New("transport error")}

	questions := []string{
		"What are my rights if someone records me without consent?",
		"Is verbal agreement a binding contract?",
		"Can the police search my home without a warrant?",
	}
	for _, q := range questions {
		assert.False(t, IsLegal(context.Background(), q, backend))
	}
	assert.Equal(t, len(questions), backend.invokes)
}
