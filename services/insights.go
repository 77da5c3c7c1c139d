// ABOUTME: AI insight generation for capacity advise results
// ABOUTME: Claude-backed summaries with response caching and singleflight dedupe

package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/sync/singleflight"

	"github.com/matan-gr/capacity-advisor1/cache"
	"github.com/matan-gr/capacity-advisor1/models"
)

// ErrInsightsDisabled indicates insight generation has no API key configured.
var ErrInsightsDisabled = errors.New("insights not configured")

const insightSystemPrompt = "You are a cloud capacity analyst. Summarize spot placement " +
	"recommendations for an operator in three short sentences: the best option, its " +
	"trade-off, and one caveat about preemption risk. Plain language, no markdown."

// InsightGenerator produces operator-facing summaries of advise results.
// Summaries are cached by request digest; concurrent identical requests
// collapse to a single upstream call.
type InsightGenerator struct {
	client   anthropic.Client
	model    string
	enabled  bool
	cache    *cache.Cache
	cacheTTL time.Duration
	sfGroup  singleflight.Group
}

// NewInsightGenerator creates an insight generator. With an empty API key
// the generator is disabled and Summarize returns ErrInsightsDisabled.
func NewInsightGenerator(apiKey, model string, c *cache.Cache, cacheTTL time.Duration) *InsightGenerator {
	g := &InsightGenerator{
		model:    model,
		cache:    c,
		cacheTTL: cacheTTL,
	}
	if apiKey != "" {
		g.client = anthropic.NewClient(option.WithAPIKey(apiKey))
		g.enabled = true
	}
	return g
}

// Enabled reports whether insight generation is configured.
func (g *InsightGenerator) Enabled() bool {
	return g.enabled
}

// Summarize returns a short natural-language summary of an advise result.
func (g *InsightGenerator) Summarize(ctx context.Context, request models.AdviseContext, response models.CapacityAdvisorResponse) (string, error) {
	if !g.enabled {
		return "", ErrInsightsDisabled
	}

	key := insightCacheKey(request, response)
	if cached, found := g.cache.Get(key); found {
		return cached.(string), nil
	}

	// Singleflight so concurrent identical requests share one upstream call
	result, err, _ := g.sfGroup.Do(key, func() (interface{}, error) {
		summary, err := g.generate(ctx, request, response)
		if err != nil {
			return nil, err
		}
		g.cache.SetWithTTL(key, summary, g.cacheTTL)
		return summary, nil
	})
	if err != nil {
		return "", err
	}

	return result.(string), nil
}

func (g *InsightGenerator) generate(ctx context.Context, request models.AdviseContext, response models.CapacityAdvisorResponse) (string, error) {
	prompt := buildInsightPrompt(request, response)

	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: 512,
		System: []anthropic.TextBlockParam{
			{Text: insightSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("insight generation failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	summary := strings.TrimSpace(sb.String())
	if summary == "" {
		return "", fmt.Errorf("insight generation returned no text")
	}
	return summary, nil
}

// buildInsightPrompt renders an advise result into a compact prompt.
func buildInsightPrompt(request models.AdviseContext, response models.CapacityAdvisorResponse) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Request: %d x %s (%s, %s) in %s, strategy %s.\n",
		request.InstanceCount,
		request.MachineType,
		request.Family,
		request.Generation,
		request.Region,
		request.Distribution,
	)

	for i, rec := range response.Recommendations {
		fmt.Fprintf(&sb, "Option %d: obtainability %.3f, uptime %.3f, placement:",
			i+1, rec.Obtainability(), rec.Uptime())
		for _, shard := range rec.Shards {
			fmt.Fprintf(&sb, " %s=%d", shard.Location, shard.Count)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// insightCacheKey digests the placement-relevant request fields and the
// response so identical advise results share one cached summary.
func insightCacheKey(request models.AdviseContext, response models.CapacityAdvisorResponse) string {
	payload, _ := json.Marshal(struct {
		Region        string                      `json:"region"`
		MachineType   string                      `json:"machine_type"`
		InstanceCount int                         `json:"instance_count"`
		Distribution  models.DistributionStrategy `json:"distribution"`
		Response      models.CapacityAdvisorResponse
	}{
		Region:        request.Region,
		MachineType:   request.MachineType,
		InstanceCount: request.InstanceCount,
		Distribution:  request.Distribution,
		Response:      response,
	})

	sum := sha256.Sum256(payload)
	return "insight:" + hex.EncodeToString(sum[:8])
}
