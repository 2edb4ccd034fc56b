package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/intervia/go-interview-api/internal/interview"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const defaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"

// GeminiConfig configures the Gemini question provider.
type GeminiConfig struct {
	APIKey          string
	Model           string
	Endpoint        string
	Temperature     float64
	MaxOutputTokens int
}

// Gemini calls the Gemini generateContent REST API. The client is
// constructed once at process start and passed to the orchestrator; there
// is no ambient global configuration.
type Gemini struct {
	httpClient *http.Client
	config     GeminiConfig
}

// NewGemini creates a Gemini provider. The http.Client carries no timeout
// of its own; callers bound each request through the context.
func NewGemini(config GeminiConfig, httpClient *http.Client) *Gemini {
	if config.Endpoint == "" {
		config.Endpoint = defaultGeminiEndpoint
	}
	if config.Model == "" {
		config.Model = "gemini-1.5-flash"
	}
	if config.Temperature == 0 {
		config.Temperature = 0.7
	}
	if config.MaxOutputTokens == 0 {
		config.MaxOutputTokens = 150
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Gemini{httpClient: httpClient, config: config}
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// NextQuestion asks the model for the next interviewer question.
func (g *Gemini) NextQuestion(ctx context.Context, ic Context) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: BuildPrompt(ic)}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     g.config.Temperature,
			MaxOutputTokens: g.config.MaxOutputTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "marshal gemini request")
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", g.config.Endpoint, g.config.Model, g.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "build gemini request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %s", interview.ErrProviderTimeout, err)
		}
		return "", fmt.Errorf("%w: %s", interview.ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Msg("Gemini API returned non-200 status")
		return "", fmt.Errorf("%w: unexpected status %d", interview.ErrProvider, resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %s", interview.ErrProvider, err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty candidate list", interview.ErrProvider)
	}

	question := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if question == "" {
		return "", fmt.Errorf("%w: empty question text", interview.ErrProvider)
	}
	return question, nil
}

var _ QuestionProvider = (*Gemini)(nil)
