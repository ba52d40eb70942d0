package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/balagh-app/vision-api/internal/infra/ai/prompt"
)

// Client calls the Gemini API, the default vision backend. Built once at
// startup; genai.Client is safe for concurrent use.
type Client struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	language string
}

func NewClient(ctx context.Context, apiKey, model, language string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: api key is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	m := cl.GenerativeModel(strings.TrimSpace(model))
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0.2),
		ResponseMIMEType: "application/json",
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(prompt.GetSystemPrompt())},
	}
	return &Client{client: cl, model: m, language: language}, nil
}

func (c *Client) Analyze(ctx context.Context, image []byte, contentType string) (string, error) {
	parts := []genai.Part{
		genai.Text(prompt.GetUserPrompt(c.language)),
		genai.Blob{MIMEType: contentType, Data: image},
	}
	resp, err := c.model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	txt := firstText(resp)
	if txt == "" {
		return "", fmt.Errorf("gemini: empty response")
	}
	return txt, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error { return c.client.Close() }

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		var b strings.Builder
		for _, p := range cand.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		if s := strings.TrimSpace(b.String()); s != "" {
			return s
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
