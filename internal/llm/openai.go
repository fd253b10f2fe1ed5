package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"resume-chat/pkg/httpclient"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAI generates replies through the OpenAI chat completions API.
type OpenAI struct {
	apiKey  string
	model   string
	baseURL string
	client  *httpclient.Client
}

func NewOpenAI(apiKey, model string) *OpenAI {
	return &OpenAI{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultOpenAIBaseURL,
		client:  httpclient.New(120 * time.Second),
	}
}

func (o *OpenAI) Name() string     { return "openai" }
func (o *OpenAI) Configured() bool { return true }

// SetBaseURL overrides the API endpoint. Used in tests.
func (o *OpenAI) SetBaseURL(url string) {
	o.baseURL = url
}

// emailFunction mirrors the send_email tool schema exposed to Gemini.
var emailFunction = map[string]interface{}{
	"name":        sendEmailFunctionName,
	"description": "Send an email to a recipient",
	"parameters": map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"recipient": map[string]interface{}{
				"type":        "string",
				"description": "Email address of the recipient",
			},
			"subject": map[string]interface{}{
				"type":        "string",
				"description": "Email subject line",
			},
			"body": map[string]interface{}{
				"type":        "string",
				"description": "Email body content",
			},
		},
		"required": []string{"recipient", "subject", "body"},
	},
}

func (o *OpenAI) GenerateReply(ctx context.Context, message, systemPrompt string) (*Reply, error) {
	reqBody := map[string]interface{}{
		"model": o.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": message},
		},
		"functions":     []interface{}{emailFunction},
		"function_call": "auto",
		"temperature":   generationTemperature,
		"max_tokens":    generationMaxTokens,
	}

	resp, err := o.client.PostJSON(ctx, o.baseURL+"/chat/completions",
		map[string]string{"Authorization": "Bearer " + o.apiKey}, reqBody)
	if err != nil {
		return nil, fmt.Errorf("openai: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("openai: API error %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content      string `json:"content"`
				FunctionCall *struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function_call"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("openai: decode response: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("openai: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("openai: no choices in response")
	}

	msg := result.Choices[0].Message
	reply := &Reply{Text: msg.Content}
	if msg.FunctionCall != nil && msg.FunctionCall.Name == sendEmailFunctionName {
		var directive EmailDirective
		if err := json.Unmarshal([]byte(msg.FunctionCall.Arguments), &directive); err != nil {
			return nil, fmt.Errorf("openai: decode function call arguments: %w", err)
		}
		reply.Email = &directive
	}
	if reply.Text == "" && reply.Email != nil {
		reply.Text = "Function called successfully"
	}
	return reply, nil
}
