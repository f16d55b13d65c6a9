package analysis

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Prompt is the input handed to a Provider.
type Prompt struct {
	Type    string
	Model   string
	Text    string
	Context string
}

//go:generate mockgen -source=provider.go -destination=provider_mock.go -package=analysis

// Provider turns a prompt into response text.
type Provider interface {
	Generate(ctx context.Context, p Prompt) (string, error)
}

// PlaceholderProvider answers every prompt with a fixed template describing
// what it was asked. No external service is contacted.
type PlaceholderProvider struct{}

func (PlaceholderProvider) Generate(_ context.Context, p Prompt) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "[LLM Analysis Placeholder - Integration ready for %s]\n\n", p.Model)
	fmt.Fprintf(&b, "Analysis Type: %s\n", p.Type)
	fmt.Fprintf(&b, "Context length: %d characters\n\n", utf8.RuneCountInString(p.Context))
	b.WriteString("To enable actual LLM analysis, configure API keys in .env file.")

	return b.String(), nil
}
