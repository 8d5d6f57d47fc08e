// Package assist wraps the Gemini API for content and image
// generation. The boundary contract is deliberately narrow: prompts in,
// a string result or an explicit empty "no result" out. Failures never
// cross the boundary as errors; they collapse to the fallback value and
// a diagnostic log, and retrying is left to the user.
package assist

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	textModel  = "gemini-2.5-flash"
	imageModel = "gemini-2.5-flash-image"
)

var dataURLPrefix = regexp.MustCompile(`^data:image/(png|jpeg|jpg);base64,`)

// Generator issues single in-flight generation requests. It keeps no
// state between calls; a client is built per call so a user-supplied
// API key can override the configured one.
type Generator struct {
	apiKey string
	log    *zap.Logger
}

// New constructs a Generator with the configured default API key. The
// key may be empty if every caller supplies its own.
func New(apiKey string, log *zap.Logger) *Generator {
	return &Generator{apiKey: apiKey, log: log}
}

// HasKey reports whether a usable key is available, preferring the
// caller-supplied one.
func (g *Generator) HasKey(userKey string) bool {
	return userKey != "" || g.apiKey != ""
}

func (g *Generator) client(ctx context.Context, userKey string) (*genai.Client, error) {
	key := userKey
	if key == "" {
		key = g.apiKey
	}
	if key == "" {
		return nil, fmt.Errorf("no API key configured")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{APIKey: key})
}

// Title generates a short SEO-friendly title for the topic. On any
// failure it returns a plain fallback title.
func (g *Generator) Title(ctx context.Context, userKey, topic string) string {
	client, err := g.client(ctx, userKey)
	if err != nil {
		g.log.Error("assist title", zap.Error(err))
		return fmt.Sprintf("New Post about %s", topic)
	}
	prompt := fmt.Sprintf("Generate a catchy, SEO-friendly blog post title about: %s. Return only the title text.", topic)
	resp, err := client.Models.GenerateContent(ctx, textModel, genai.Text(prompt), nil)
	if err != nil {
		g.log.Error("assist title", zap.Error(err))
		return fmt.Sprintf("New Post about %s", topic)
	}
	title := strings.TrimSpace(resp.Text())
	if title == "" {
		return "Untitled Post"
	}
	return title
}

// BlogPost generates an HTML article about the topic with Google
// Search grounding, returning the content and the grounding source
// URIs. On failure it returns a placeholder paragraph and no sources.
func (g *Generator) BlogPost(ctx context.Context, userKey, topic string) (string, []string) {
	const fallback = "<p>Failed to generate content. Please try again.</p>"

	client, err := g.client(ctx, userKey)
	if err != nil {
		g.log.Error("assist blog post", zap.Error(err))
		return fallback, nil
	}
	prompt := fmt.Sprintf(`Write a comprehensive, engaging blog post about %q.
IMPORTANT: Return the content in HTML format. Use <h1>, <h2>, <p>, <ul>, <li>, <strong> tags for formatting.
Do not use Markdown fences. Ensure information is up to date.`, topic)

	resp, err := client.Models.GenerateContent(ctx, textModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err != nil {
		g.log.Error("assist blog post", zap.Error(err))
		return fallback, nil
	}

	var sources []string
	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk.Web != nil && chunk.Web.URI != "" {
				sources = append(sources, chunk.Web.URI)
			}
		}
	}
	return resp.Text(), sources
}

// EditImage sends a base64 PNG (with or without a data-URL prefix) and
// an edit prompt, returning the edited image as a data URL, or "" when
// no image came back.
func (g *Generator) EditImage(ctx context.Context, userKey, imageBase64, prompt string) string {
	client, err := g.client(ctx, userKey)
	if err != nil {
		g.log.Error("assist image edit", zap.Error(err))
		return ""
	}
	raw, err := base64.StdEncoding.DecodeString(dataURLPrefix.ReplaceAllString(imageBase64, ""))
	if err != nil {
		g.log.Error("assist image edit: bad payload", zap.Error(err))
		return ""
	}

	contents := []*genai.Content{genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromBytes(raw, "image/png"),
		genai.NewPartFromText(prompt),
	}, genai.RoleUser)}

	resp, err := client.Models.GenerateContent(ctx, imageModel, contents, nil)
	if err != nil {
		g.log.Error("assist image edit", zap.Error(err))
		return ""
	}
	return firstImage(resp)
}

// Thumbnail generates a cover image from a text prompt, returning a
// data URL or "" when no image came back.
func (g *Generator) Thumbnail(ctx context.Context, userKey, prompt string) string {
	if prompt == "" {
		prompt = "A futuristic digital art representation of technology"
	}
	client, err := g.client(ctx, userKey)
	if err != nil {
		g.log.Error("assist thumbnail", zap.Error(err))
		return ""
	}
	resp, err := client.Models.GenerateContent(ctx, imageModel, genai.Text(prompt), nil)
	if err != nil {
		g.log.Error("assist thumbnail", zap.Error(err))
		return ""
	}
	return firstImage(resp)
}

// firstImage scans the response parts for inline image data and wraps
// it as a data URL.
func firstImage(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return "data:image/png;base64," + base64.StdEncoding.EncodeToString(part.InlineData.Data)
		}
	}
	return ""
}
