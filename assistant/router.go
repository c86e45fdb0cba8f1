// Package assistant mediates natural-language interaction: it classifies a
// user message into a fixed intent set, invokes business tools, and turns
// the structured results back into text.
package assistant

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"

	"biznova/aitools"
)

// Intent is one of the fixed operations the assistant can perform.
type Intent string

const (
	IntentFestivalForecast  Intent = "festival_forecast"
	IntentUpcomingFestivals Intent = "upcoming_festivals"
	IntentTodaysProfit      Intent = "todays_profit"
	IntentLowStock          Intent = "low_stock"
	IntentTopSellers        Intent = "top_sellers"
	IntentInventorySummary  Intent = "inventory_summary"
	IntentBusinessOverview  Intent = "business_overview"
	IntentUnknown           Intent = "unknown"
)

// intentTools maps each intent to the tools it invokes. Multi-tool intents
// run their tools in parallel.
var intentTools = map[Intent][]string{
	IntentFestivalForecast:  {aitools.ToolFestivalForecast},
	IntentUpcomingFestivals: {aitools.ToolUpcomingFestivals},
	IntentTodaysProfit:      {aitools.ToolTodaysProfit},
	IntentLowStock:          {aitools.ToolLowStockItems},
	IntentTopSellers:        {aitools.ToolTopSellers},
	IntentInventorySummary:  {aitools.ToolInventorySummary},
	IntentBusinessOverview:  {aitools.ToolTodaysProfit, aitools.ToolLowStockItems, aitools.ToolTopSellers},
}

// ClarificationMessage is returned for messages outside the intent set.
const ClarificationMessage = "Sorry, I can't answer that yet. Try asking about the festival forecast, upcoming festivals, today's profit, low stock, top sellers, or an inventory summary."

// Router classifies messages and dispatches tool calls.
type Router struct {
	Registry *aitools.Registry
	APIKey   string
	Model    string
}

const defaultModel = "gemini-2.5-flash-lite"

// Classify determines the user's intent. It asks the LLM first and falls
// back to the deterministic keyword classifier when no API key is
// configured or the call fails.
func (r *Router) Classify(ctx context.Context, message string) Intent {
	if r.APIKey == "" {
		return ClassifyByKeywords(message)
	}

	intent, err := r.classifyWithModel(ctx, message)
	if err != nil {
		log.Printf("[ROUTER] Intent classification failed, using keyword fallback: %v", err)
		return ClassifyByKeywords(message)
	}
	return intent
}

func (r *Router) classifyWithModel(ctx context.Context, message string) (Intent, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(r.APIKey))
	if err != nil {
		return IntentUnknown, fmt.Errorf("failed to create AI client: %w", err)
	}
	defer client.Close()

	modelName := r.Model
	if modelName == "" {
		modelName = defaultModel
	}
	model := client.GenerativeModel(modelName)

	classificationPrompt := fmt.Sprintf(
		`You are an intent classification system for a retail assistant. Classify the user's message into exactly one of the following categories: 'festival_forecast', 'upcoming_festivals', 'todays_profit', 'low_stock', 'top_sellers', 'inventory_summary', 'business_overview', or 'unknown'. Reply with the category name only. The user message is: "%s"`,
		message,
	)

	resp, err := model.GenerateContent(ctx, genai.Text(classificationPrompt))
	if err != nil {
		return IntentUnknown, fmt.Errorf("failed to classify intent: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return IntentUnknown, fmt.Errorf("no content received from AI")
	}

	raw := strings.TrimSpace(fmt.Sprint(resp.Candidates[0].Content.Parts[0]))
	intent := Intent(strings.Trim(strings.ToLower(raw), "'\". "))
	if _, ok := intentTools[intent]; ok {
		return intent, nil
	}
	return IntentUnknown, nil
}

// ClassifyByKeywords is the deterministic classifier used when the LLM is
// unavailable. Rules are checked in a fixed order, first hit wins.
func ClassifyByKeywords(message string) Intent {
	m := strings.ToLower(message)

	switch {
	case strings.Contains(m, "overview") || strings.Contains(m, "how is my business") || strings.Contains(m, "how's my business"):
		return IntentBusinessOverview
	case strings.Contains(m, "festival") && (strings.Contains(m, "forecast") || strings.Contains(m, "demand") || strings.Contains(m, "prepare")):
		return IntentFestivalForecast
	case strings.Contains(m, "festival") || strings.Contains(m, "holiday"):
		return IntentUpcomingFestivals
	case strings.Contains(m, "profit") || strings.Contains(m, "earn") || strings.Contains(m, "made today"):
		return IntentTodaysProfit
	case strings.Contains(m, "low stock") || strings.Contains(m, "running out") || strings.Contains(m, "restock"):
		return IntentLowStock
	case strings.Contains(m, "best seller") || strings.Contains(m, "top sell") || (strings.Contains(m, "top") && strings.Contains(m, "item")):
		return IntentTopSellers
	case strings.Contains(m, "inventory") || strings.Contains(m, "stock"):
		return IntentInventorySummary
	default:
		return IntentUnknown
	}
}

// Dispatch invokes every tool mapped to the intent, in parallel, and
// returns the results keyed by tool name. An unknown tool name is a
// programmer error and propagates loudly.
func (r *Router) Dispatch(ctx context.Context, intent Intent, p aitools.Params) (map[string]any, error) {
	names, ok := intentTools[intent]
	if !ok {
		return nil, nil
	}

	var mu sync.Mutex
	results := make(map[string]any, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for _, name := range names {
		g.Go(func() error {
			payload, err := r.Registry.Call(gctx, name, p)
			if err != nil {
				return err
			}
			mu.Lock()
			results[name] = payload
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
