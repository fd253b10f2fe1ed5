package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gemini generates replies through the Google Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Name() string     { return "gemini" }
func (g *Gemini) Configured() bool { return true }

// Close releases the underlying API client.
func (g *Gemini) Close() error {
	return g.client.Close()
}

func (g *Gemini) GenerateReply(ctx context.Context, message, systemPrompt string) (*Reply, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(generationTemperature)
	model.SetMaxOutputTokens(generationMaxTokens)
	model.Tools = []*genai.Tool{emailTool()}

	prompt := fmt.Sprintf("%s\n\nUser: %s\nAssistant:", systemPrompt, message)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini: empty response")
	}

	reply := &Reply{}
	var texts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		switch v := part.(type) {
		case genai.Text:
			texts = append(texts, string(v))
		case genai.FunctionCall:
			if v.Name == sendEmailFunctionName {
				reply.Email = directiveFromArgs(v.Args)
			}
		}
	}
	reply.Text = strings.TrimSpace(strings.Join(texts, ""))
	if reply.Text == "" && reply.Email != nil {
		reply.Text = "Function called successfully"
	}
	if reply.Text == "" && reply.Email == nil {
		return nil, fmt.Errorf("gemini: no text in response")
	}
	return reply, nil
}

func emailTool() *genai.Tool {
	return &genai.Tool{
		FunctionDeclarations: []*genai.FunctionDeclaration{{
			Name:        sendEmailFunctionName,
			Description: "Send an email to a recipient",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"recipient": {Type: genai.TypeString, Description: "Email address of the recipient"},
					"subject":   {Type: genai.TypeString, Description: "Email subject line"},
					"body":      {Type: genai.TypeString, Description: "Email body content"},
				},
				Required: []string{"recipient", "subject", "body"},
			},
		}},
	}
}

func directiveFromArgs(args map[string]any) *EmailDirective {
	str := func(key string) string {
		if v, ok := args[key].(string); ok {
			return v
		}
		return ""
	}
	return &EmailDirective{
		Recipient: str("recipient"),
		Subject:   str("subject"),
		Body:      str("body"),
	}
}
