package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenAIServer(t *testing.T, status int, body string) (*OpenAI, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	o := NewOpenAI("test-key", "gpt-3.5-turbo")
	o.SetBaseURL(srv.URL)
	return o, srv
}

func TestOpenAI_textReply(t *testing.T) {
	o, _ := newOpenAIServer(t, http.StatusOK,
		`{"choices":[{"message":{"content":"Your resume lists Go and Python."}}]}`)

	reply, err := o.GenerateReply(context.Background(), "what skills?", "prompt")
	require.NoError(t, err)
	assert.Equal(t, "Your resume lists Go and Python.", reply.Text)
	assert.Nil(t, reply.Email)
}

func TestOpenAI_functionCall(t *testing.T) {
	args, _ := json.Marshal(map[string]string{
		"recipient": "hr@example.com",
		"subject":   "Application",
		"body":      "Please find my resume attached.",
	})
	resp := map[string]interface{}{
		"choices": []map[string]interface{}{{
			"message": map[string]interface{}{
				"content": "",
				"function_call": map[string]string{
					"name":      "send_email",
					"arguments": string(args),
				},
			},
		}},
	}
	body, _ := json.Marshal(resp)
	o, _ := newOpenAIServer(t, http.StatusOK, string(body))

	reply, err := o.GenerateReply(context.Background(), "email my resume to hr@example.com", "prompt")
	require.NoError(t, err)
	require.NotNil(t, reply.Email)
	assert.Equal(t, "hr@example.com", reply.Email.Recipient)
	assert.Equal(t, "Application", reply.Email.Subject)
	assert.Equal(t, "Function called successfully", reply.Text)
}

func TestOpenAI_apiError(t *testing.T) {
	o, _ := newOpenAIServer(t, http.StatusTooManyRequests,
		`{"error":{"message":"rate limit exceeded"}}`)

	_, err := o.GenerateReply(context.Background(), "hi", "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestOpenAI_errorPayload(t *testing.T) {
	o, _ := newOpenAIServer(t, http.StatusOK,
		`{"error":{"message":"invalid api key"}}`)

	_, err := o.GenerateReply(context.Background(), "hi", "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}
