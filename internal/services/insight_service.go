package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"estoque_facil_backend/internal/models"
	"estoque_facil_backend/pkg/utils"

	"github.com/go-resty/resty/v2"
)

// recentSalesWindow bounds how much sale history is sent to the model.
// The collaborator sees a summary of current stock plus the most recent
// sales, never the full ledger.
const recentSalesWindow = 10

// DefaultGeminiBaseURL is the Generative Language API endpoint.
const DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// InsightService is the optional AI collaborator. Implementations must
// tolerate failure: on any error they return placeholder text, never an
// error, so the rest of the dashboard is unaffected.
type InsightService interface {
	GenerateInsights(ctx context.Context, products []models.Product, sales []models.Sale) models.BusinessInsights
}

// fallbackInsights is the degraded-mode payload, matching the
// placeholder copy shown in the dashboard when analysis is unavailable.
func fallbackInsights() models.BusinessInsights {
	return models.BusinessInsights{
		StockAlert:   "Não foi possível analisar o estoque no momento.",
		SalesInsight: "Dados de vendas temporariamente indisponíveis para análise.",
		ActionTip:    "Continue registrando suas vendas para obter insights futuros.",
	}
}

// --- No-op implementation ---

type noopInsightService struct{}

// NewNoopInsightService returns the disabled collaborator used when no
// API key is configured.
func NewNoopInsightService() InsightService {
	return noopInsightService{}
}

func (noopInsightService) GenerateInsights(_ context.Context, _ []models.Product, _ []models.Sale) models.BusinessInsights {
	return fallbackInsights()
}

// --- Gemini implementation ---

type geminiInsightService struct {
	client *resty.Client
	model  string
}

// NewGeminiInsightService returns the network-backed collaborator.
// baseURL is overridable for tests; pass DefaultGeminiBaseURL in
// production.
func NewGeminiInsightService(apiKey, model, baseURL string) InsightService {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", apiKey)
	return &geminiInsightService{client: client, model: model}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (s *geminiInsightService) GenerateInsights(ctx context.Context, products []models.Product, sales []models.Sale) models.BusinessInsights {
	body := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: buildInsightPrompt(products, sales)}}}},
	}

	var result geminiResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", s.model))
	if err != nil {
		utils.LogError(err, "Insight generation request failed")
		return fallbackInsights()
	}
	if resp.IsError() {
		utils.LogError(fmt.Errorf("status %d: %s", resp.StatusCode(), resp.String()),
			"Insight generation returned an error status")
		return fallbackInsights()
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		utils.LogError(fmt.Errorf("empty candidates in response"), "Insight generation returned no content")
		return fallbackInsights()
	}

	insights, err := parseInsightJSON(result.Candidates[0].Content.Parts[0].Text)
	if err != nil {
		utils.LogError(err, "Failed to parse insight response")
		return fallbackInsights()
	}
	return insights
}

// buildInsightPrompt summarizes current stock and the most recent sales
// into the consultant prompt.
func buildInsightPrompt(products []models.Product, sales []models.Sale) string {
	var stock strings.Builder
	for _, p := range products {
		fmt.Fprintf(&stock, "%s: Stock %d (Min %d), Cost R$%.2f\n",
			p.Name, p.CurrentStock, p.MinStock, p.CostPrice)
	}

	recent := sales
	if len(recent) > recentSalesWindow {
		recent = recent[len(recent)-recentSalesWindow:]
	}
	var recentLines strings.Builder
	for _, sl := range recent {
		fmt.Fprintf(&recentLines, "Sold %dx %s to %s for R$%.2f (Profit: R$%.2f)\n",
			sl.Quantity, sl.ProductName, sl.CustomerName, sl.SalePrice, sl.Profit)
	}

	return fmt.Sprintf(`Atue como um consultor de negócios experiente analisando os dados da minha loja "Controle Estoque Fácil".

ESTOQUE ATUAL:
%s
VENDAS RECENTES:
%s
Com base nisso, forneça 3 insights estratégicos curtos e diretos (máximo 2 frases cada) sobre:
1. Situação do estoque (o que repor urgente).
2. Performance de vendas recente.
3. Sugestão de ação para aumentar lucro.

Retorne a resposta em formato JSON estrito com a seguinte estrutura:
{
  "stock_alert": "string",
  "sales_insight": "string",
  "action_tip": "string"
}
Não use markdown code blocks, apenas o JSON cru.`, stock.String(), recentLines.String())
}

// parseInsightJSON decodes the model output, stripping the markdown
// code fences some models add despite instructions.
func parseInsightJSON(text string) (models.BusinessInsights, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var insights models.BusinessInsights
	if err := json.Unmarshal([]byte(cleaned), &insights); err != nil {
		return models.BusinessInsights{}, fmt.Errorf("decoding insight JSON: %w", err)
	}
	return insights, nil
}
