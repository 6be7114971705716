// Package llm implements the LLM Refinement Adapter: a bounded-timeout,
// never-raising call to an external model that rewrites residual
// source-cloud code into the target provider's idiom. The adapter is the
// only optional, network-dependent stage in the translation pipeline --
// every other stage is pure string transformation.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/catherinevee/gcpmigrate/internal/observability/logger"
	"github.com/catherinevee/gcpmigrate/internal/translate/catalog"
	"github.com/catherinevee/gcpmigrate/pkg/models"
	"google.golang.org/genai"
)

var log = logger.New("llm")

// Provider refines source text toward the target provider's SDK idiom.
// Implementations may call out to a network API; Refine itself never
// returns an error — failures are reported through the returned ok flag
// so the pipeline can fall back to the unmodified input.
type Provider interface {
	Refine(ctx context.Context, sourceText string, serviceTag models.ServiceTag, targetProvider models.CloudProvider, retryHint bool) (refinedText string, ok bool)
}

// GeminiProvider is the default Provider, backed by the Gemini API.
type GeminiProvider struct {
	client  *genai.Client
	model   string
	catalog *catalog.Catalog
	timeout time.Duration
}

// NewGeminiProvider builds a GeminiProvider against the given API key. If
// apiKey is empty, refinement is unavailable and Refine always reports
// ok=false without making a network call.
func NewGeminiProvider(ctx context.Context, apiKey, model string, cat *catalog.Catalog, timeout time.Duration) (*GeminiProvider, error) {
	p := &GeminiProvider{model: model, catalog: cat, timeout: timeout}
	if apiKey == "" {
		return p, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	p.client = client
	return p, nil
}

// Refine builds a service-typed prompt and calls the model under a hard
// wall-clock timeout. Any failure -- missing client, timeout, transport
// error, empty response -- is logged as a warning and reported as
// ok=false; Refine never panics and never returns an error to the caller.
func (p *GeminiProvider) Refine(ctx context.Context, sourceText string, serviceTag models.ServiceTag, targetProvider models.CloudProvider, retryHint bool) (string, bool) {
	if p.client == nil {
		log.Warn("llm refinement unavailable: no provider credential configured")
		return sourceText, false
	}

	timeout := p.timeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	prompt := BuildPrompt(sourceText, serviceTag, targetProvider, retryHint, p.catalog)

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		content := genai.NewContentFromText(prompt, genai.RoleUser)
		resp, err := p.client.Models.GenerateContent(callCtx, p.model, []*genai.Content{content}, nil)
		if err != nil {
			done <- result{err: err}
			return
		}
		done <- result{text: extractText(resp)}
	}()

	select {
	case <-callCtx.Done():
		log.Warn("llm refinement timed out", logger.String("service", string(serviceTag)))
		return sourceText, false
	case r := <-done:
		if r.err != nil {
			log.WithError(r.err).Warn("llm refinement call failed", logger.String("service", string(serviceTag)))
			return sourceText, false
		}
		cleaned := stripMarkdownFences(r.text)
		if strings.TrimSpace(cleaned) == "" {
			log.Warn("llm refinement returned empty response", logger.String("service", string(serviceTag)))
			return sourceText, false
		}
		return cleaned, true
	}
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String()
}

// stripMarkdownFences removes fenced code blocks' delimiter lines and any
// leading narrative the model prepends before the first fence, matching
// the adapter's documented "strip fences and leading narrative" contract.
func stripMarkdownFences(text string) string {
	text = strings.TrimSpace(text)
	lines := strings.Split(text, "\n")

	fenceStart, fenceEnd := -1, -1
	for i, ln := range lines {
		if strings.HasPrefix(strings.TrimSpace(ln), "```") {
			if fenceStart == -1 {
				fenceStart = i
				continue
			}
			fenceEnd = i
			break
		}
	}

	if fenceStart == -1 {
		return text
	}
	if fenceEnd == -1 {
		fenceEnd = len(lines)
	}
	inner := lines[fenceStart+1 : fenceEnd]
	return strings.TrimSpace(strings.Join(inner, "\n"))
}
