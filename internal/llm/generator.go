package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Generator wraps the configured Provider and converts provider failures
// into a user-visible diagnostic reply. A single bad AI call degrades to an
// informative message instead of a 5xx response.
type Generator struct {
	provider Provider
	logger   *zap.Logger
}

func NewGenerator(provider Provider, logger *zap.Logger) *Generator {
	return &Generator{provider: provider, logger: logger}
}

// Generate never fails; on provider error the reply embeds the failure
// reason.
func (g *Generator) Generate(ctx context.Context, message, systemPrompt string) *Reply {
	reply, err := g.provider.GenerateReply(ctx, message, systemPrompt)
	if err != nil {
		g.logger.Warn("provider call failed",
			zap.String("provider", g.provider.Name()),
			zap.Error(err))
		return &Reply{
			Text: fmt.Sprintf("Sorry, I'm experiencing technical difficulties with the %s API. Error: %v",
				g.provider.Name(), err),
		}
	}
	return reply
}

// ProviderName returns the name of the wrapped provider.
func (g *Generator) ProviderName() string {
	return g.provider.Name()
}

// Configured reports whether a real AI provider is wired in.
func (g *Generator) Configured() bool {
	return g.provider.Configured()
}
