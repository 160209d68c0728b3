package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AgusMolinaCode/Crypto_Tracker_Api.git/internal/models"
	"google.golang.org/genai"
)

const geminiModel = "gemini-3-flash-preview"

// Mensaje fijo cuando no hay API key configurada
const analysisUnavailableMessage = "AI Analysis unavailable: Gemini API Key is missing. Check environment configuration."

// AnalysisService traduce un snapshot de moneda en un prompt, llama al modelo
// de Gemini y traduce la respuesta. No toca el contenedor de estado: la capa
// de presentación consume el resultado directamente.
type AnalysisService struct {
	apiKey string
}

// NewAnalysisService crea el servicio leyendo la API key del entorno
func NewAnalysisService() *AnalysisService {
	return &AnalysisService{apiKey: os.Getenv("GEMINI_API_KEY")}
}

func (s *AnalysisService) newClient(ctx context.Context) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// GetMarketAnalysis genera un resumen de mercado en texto libre para una
// moneda. Nunca devuelve error al caller: toda falla se resuelve en un texto
// legible. Sin API key no se intenta la llamada de red.
//
// El contexto viene del request HTTP, así que si el cliente que pidió el
// análisis se va, la llamada en vuelo se cancela.
func (s *AnalysisService) GetMarketAnalysis(ctx context.Context, coin models.Coin) string {
	if s.apiKey == "" {
		return analysisUnavailableMessage
	}

	client, err := s.newClient(ctx)
	if err != nil {
		log.Printf("Error al crear el cliente de Gemini: %v", err)
		return fmt.Sprintf("AI Analysis Error: %v", err)
	}

	prompt := buildAnalysisPrompt(coin)

	resp, err := client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("Error de Gemini en el análisis de %s: %v", coin.ID, err)
		return fmt.Sprintf("AI Analysis Error: %v", err)
	}

	text := responseText(resp)
	if text == "" {
		return "No insights generated. Try again."
	}
	return text
}

// GetPricePrediction pide una predicción estructurada de 24 horas. Devuelve
// nil cuando falta la API key, falla la llamada o no se puede parsear la
// respuesta; el caller debe tratar la ausencia como "sin predicción", no
// como un error.
func (s *AnalysisService) GetPricePrediction(ctx context.Context, coin models.Coin) *models.PredictionData {
	if s.apiKey == "" {
		return nil
	}

	client, err := s.newClient(ctx)
	if err != nil {
		log.Printf("Error al crear el cliente de Gemini: %v", err)
		return nil
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"sentiment": {
					Type:        genai.TypeString,
					Description: "Short sentiment label: Bullish, Bearish, or Neutral",
				},
				"confidence": {
					Type:        genai.TypeNumber,
					Description: "Confidence percentage (0-100)",
				},
				"predictionRange": {
					Type:        genai.TypeString,
					Description: "A predicted price range for the next 24 hours (e.g. '$63,500 - $65,200')",
				},
				"reasoning": {
					Type:        genai.TypeString,
					Description: "A concise, single-sentence explanation for the prediction",
				},
			},
			Required: []string{"sentiment", "confidence", "predictionRange", "reasoning"},
		},
	}

	prompt := buildPredictionPrompt(coin)

	resp, err := client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), config)
	if err != nil {
		log.Printf("Error de Gemini en la predicción de %s: %v", coin.ID, err)
		return nil
	}

	text := strings.TrimSpace(responseText(resp))
	if text == "" {
		return nil
	}

	var prediction models.PredictionData
	if err := json.Unmarshal([]byte(text), &prediction); err != nil {
		log.Printf("Error al parsear la predicción de %s: %v", coin.ID, err)
		return nil
	}

	return &prediction
}

// buildAnalysisPrompt arma el prompt fijo del análisis de mercado con el
// snapshot de la moneda
func buildAnalysisPrompt(coin models.Coin) string {
	return fmt.Sprintf(`
Act as a senior cryptocurrency market analyst.
Analyze the following real-time data for %s (%s):

- Current Price: $%.2f
- 24h Change: %.2f%%
- 7-Day Trend Direction: %s
- Market Cap: $%.0f

Provide a sophisticated, concise 3-sentence market summary:
1. First sentence: Assess the current market sentiment (Bullish/Bearish/Neutral) based on the 24h change and 7-day trend.
2. Second sentence: Highlight a key technical observation or momentum indicator implied by the data.
3. Third sentence: Provide a brief outlook or key price level to watch.

Do not use markdown formatting like bold or headers. Keep it conversational but professional.
`, coin.Name, strings.ToUpper(coin.Symbol), coin.CurrentPrice, coin.ChangePct24h, coin.TrendDirection(), coin.MarketCap)
}

// buildPredictionPrompt arma el prompt de la predicción estructurada
func buildPredictionPrompt(coin models.Coin) string {
	momentum := "Negative"
	if coin.ChangePct24h > 0 {
		momentum = "Positive"
	}

	return fmt.Sprintf(`
As a quantitative crypto analyst, predict the next 24-hour price movement for %s (%s).
Current Data:
- Price: $%.2f
- 24h Volume: $%.0f
- Recent Trend: %s momentum.

Based on this metadata and market patterns, provide a structured prediction in JSON format.
`, coin.Name, strings.ToUpper(coin.Symbol), coin.CurrentPrice, coin.MarketCap*0.05, momentum)
}

// responseText concatena las partes de texto del primer candidato
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
