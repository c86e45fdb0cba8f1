package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"biznova/forecast"
	"biznova/models"
)

// Synthesizer turns structured tool output into reply text. It only ever
// receives already-computed results, never raw inventory or sales rows.
type Synthesizer struct {
	APIKey string
	Model  string
}

// Synthesize produces a natural-language reply for the tool results. Any
// LLM failure is swallowed and replaced by the deterministic fallback
// formatter, so the caller always gets usable text.
func (s *Synthesizer) Synthesize(ctx context.Context, message, language string, results map[string]any) string {
	if s.APIKey == "" {
		return FormatFallback(results)
	}

	reply, err := s.synthesizeWithModel(ctx, message, language, results)
	if err != nil {
		log.Printf("[SYNTH] AI synthesis failed, using fallback formatter: %v", err)
		return FormatFallback(results)
	}
	return reply
}

func (s *Synthesizer) synthesizeWithModel(ctx context.Context, message, language string, results map[string]any) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.APIKey))
	if err != nil {
		return "", fmt.Errorf("failed to create AI client: %w", err)
	}
	defer client.Close()

	modelName := s.Model
	if modelName == "" {
		modelName = defaultModel
	}
	model := client.GenerativeModel(modelName)

	jsonData, err := json.Marshal(results)
	if err != nil {
		return "", fmt.Errorf("failed to serialize tool results: %w", err)
	}

	if language == "" {
		language = "English"
	}

	prompt := fmt.Sprintf(
		`You are a helpful AI assistant for a retail business. The user asked: "%s". The following data was computed from the business's own records. Reply in %s with a concise, friendly analysis based only on this data. Do not invent numbers.

		Data: %s`,
		message,
		language,
		string(jsonData),
	)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content received from AI")
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text += string(txt)
		}
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content received from AI")
	}
	return text, nil
}

// FormatFallback renders tool results as templated text carrying the full
// information content: item names, confidence, stock, and actions all
// survive without the LLM. Tool names are visited in sorted order so the
// output is deterministic.
func FormatFallback(results map[string]any) string {
	if len(results) == 0 {
		return ClarificationMessage
	}

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		formatPayload(&b, results[name])
	}
	return b.String()
}

func formatPayload(b *strings.Builder, payload any) {
	switch v := payload.(type) {
	case *forecast.Result:
		formatForecast(b, v)
	case models.ProfitSummary:
		fmt.Fprintf(b, "Today's profit (%s): revenue %.2f, cost of goods %.2f, expenses %.2f, net profit %.2f.",
			v.Date, v.Revenue, v.Cost, v.Expenses, v.Profit)
	case []models.LowStockItem:
		if len(v) == 0 {
			b.WriteString("No items are low on stock.")
			return
		}
		b.WriteString("Items low on stock:")
		for _, item := range v {
			fmt.Fprintf(b, "\n- %s: %d left", item.Name, item.StockQuantity)
		}
	case []models.TopSeller:
		if len(v) == 0 {
			b.WriteString("No sales recorded in this period.")
			return
		}
		b.WriteString("Top sellers:")
		for _, seller := range v {
			fmt.Fprintf(b, "\n- %s: %d units, %.2f revenue", seller.Name, seller.TotalQuantity, seller.TotalRevenue)
		}
	case []models.UpcomingFestival:
		if len(v) == 0 {
			b.WriteString("No upcoming festivals found.")
			return
		}
		b.WriteString("Upcoming festivals:")
		for _, fest := range v {
			fmt.Fprintf(b, "\n- %s (%s, %s): %d month(s) away, %s demand", fest.Name, fest.Region, fest.Month, fest.MonthsAway, fest.DemandLevel)
		}
	case models.InventorySummary:
		fmt.Fprintf(b, "Inventory: %d items, %d units in stock, worth %.2f at selling price; %d items out of stock.",
			v.TotalItems, v.TotalStockUnits, v.StockValue, v.OutOfStockItems)
	default:
		// Unknown payload shape: dump it as JSON so no information is lost.
		data, err := json.Marshal(payload)
		if err != nil {
			fmt.Fprintf(b, "%v", payload)
			return
		}
		b.Write(data)
	}
}

func formatForecast(b *strings.Builder, result *forecast.Result) {
	if result == nil || !result.HasForecast {
		b.WriteString("No upcoming festivals found, so there is no demand forecast right now.")
		return
	}

	if result.IsImminent {
		fmt.Fprintf(b, "%s (%s) is %d month(s) away — demand level %s.", result.Festival, result.Month, result.MonthsAway, result.DemandLevel)
	} else {
		fmt.Fprintf(b, "%s (%s) is %d months away — demand level %s.", result.Festival, result.Month, result.MonthsAway, result.DemandLevel)
	}
	fmt.Fprintf(b, "\nRecommendations (%d high, %d medium, %d low confidence):",
		result.Summary.High, result.Summary.Medium, result.Summary.Low)
	for _, item := range result.Items {
		fmt.Fprintf(b, "\n- %s [%s confidence]: %s (stock: %d)",
			item.ItemName, item.Confidence, item.RecommendedAction, item.CurrentStock)
	}
}
