package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dkorolev/repoboard/internal/config"
	"github.com/dkorolev/repoboard/internal/logger"
	"github.com/dkorolev/repoboard/models"
	"github.com/go-resty/resty/v2"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	geminiModel          = "gemini-2.0-flash"

	// maxCommentLength caps stored comments; longer generations are truncated.
	maxCommentLength = 500
)

// ErrCommentsDisabled is returned by GenerateComment when no API key is
// configured. Callers fall back to the deterministic comment.
var ErrCommentsDisabled = errors.New("comment generation disabled: no API key configured")

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// geminiCommentProvider implements [CommentProvider] on top of the Gemini
// generateContent API using a resty client with an explicit timeout.
type geminiCommentProvider struct {
	client *resty.Client
	apiKey string
	logger *logger.Logger
}

// NewCommentProvider constructs a [CommentProvider] from the given
// configuration.
func NewCommentProvider(cfg config.AI, log *logger.Logger) CommentProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	return &geminiCommentProvider{client: cli, apiKey: cfg.APIKey, logger: log}
}

// GenerateComment asks the model for a short comment about the repository.
// Any failure path returns an error; the service layer substitutes
// [FallbackComment] and never surfaces the failure to the client.
func (p *geminiCommentProvider) GenerateComment(ctx context.Context, data models.RepositoryData) (string, error) {
	if p.apiKey == "" {
		return "", ErrCommentsDisabled
	}

	body := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: buildPrompt(data)}}}},
		GenerationConfig: geminiGenerationConfig{
			MaxOutputTokens: 150,
			Temperature:     0.7,
		},
	}

	var result geminiResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", p.apiKey).
		SetBody(body).
		SetResult(&result).
		Post(fmt.Sprintf("/models/%s:generateContent", geminiModel))
	if err != nil {
		return "", fmt.Errorf("comment generation request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: comment generation status %d", ErrUpstream, resp.StatusCode())
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty comment generation response", ErrUpstream)
	}

	comment := strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text)
	if comment == "" {
		return "", fmt.Errorf("%w: blank comment generated", ErrUpstream)
	}
	return truncateComment(comment), nil
}

// truncateComment caps the comment at maxCommentLength bytes without
// splitting a multi-byte rune.
func truncateComment(comment string) string {
	if len(comment) <= maxCommentLength {
		return comment
	}

	cut := maxCommentLength
	for cut > 0 && !utf8.RuneStart(comment[cut]) {
		cut--
	}

	return comment[:cut]
}

// buildPrompt assembles the generation prompt from the repository metadata.
func buildPrompt(data models.RepositoryData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a short comment about the GitHub repository %q.", data.GitHubPath)
	if data.Description != "" {
		fmt.Fprintf(&b, " Description: %s", data.Description)
	}
	if data.Language != "" {
		fmt.Fprintf(&b, " Primary language: %s", data.Language)
	}
	fmt.Fprintf(&b, " Stats: %d stars, %d forks, %d open issues.", data.Stars, data.Forks, data.OpenIssues)
	if data.Archived {
		b.WriteString(" This repository is archived.")
	}
	b.WriteString(" Write a brief, engaging comment that highlights what makes this project interesting.")

	return b.String()
}

// FallbackComment derives a deterministic comment from the repository
// metadata. Used whenever the comment provider fails or is disabled.
func FallbackComment(data models.RepositoryData) string {
	var b strings.Builder

	b.WriteString(data.Owner)
	b.WriteString("/")
	b.WriteString(data.Name)

	if data.Language != "" {
		fmt.Fprintf(&b, " - %s project", data.Language)
	}

	switch {
	case data.Stars > 1000:
		fmt.Fprintf(&b, " with %d stars", data.Stars)
	case data.Stars > 100:
		fmt.Fprintf(&b, " (%d stars)", data.Stars)
	}

	return b.String()
}
