package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallback_deterministic(t *testing.T) {
	f := NewFallback()
	first, err := f.GenerateReply(context.Background(), "hello there", "prompt")
	require.NoError(t, err)
	second, err := f.GenerateReply(context.Background(), "hello there", "prompt")
	require.NoError(t, err)
	assert.Equal(t, first.Text, second.Text)
}

func TestFallback_keywordReplies(t *testing.T) {
	f := NewFallback()
	cases := []struct {
		message string
		want    string
	}{
		{"tell me about my experience", "work experience"},
		{"what skills do I have", "technical skills"},
		{"where did I get my degree", "education information"},
	}
	for _, tc := range cases {
		reply, err := f.GenerateReply(context.Background(), tc.message, "prompt")
		require.NoError(t, err)
		assert.Contains(t, reply.Text, tc.want, "message %q", tc.message)
	}
}

func TestFallback_configurationGuidance(t *testing.T) {
	f := NewFallback()
	reply, err := f.GenerateReply(context.Background(), "hello", "prompt")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "AI Provider Configuration Needed")
	assert.Nil(t, reply.Email)
}

func TestFallback_notConfigured(t *testing.T) {
	assert.False(t, NewFallback().Configured())
}
