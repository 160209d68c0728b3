package models

// PredictionData es la respuesta estructurada del modelo de IA para la
// predicción de precio de las próximas 24 horas
type PredictionData struct {
	Sentiment       string  `json:"sentiment"`       // Bullish, Bearish o Neutral
	Confidence      float64 `json:"confidence"`      // Porcentaje de confianza (0-100)
	PredictionRange string  `json:"predictionRange"` // Rango de precio estimado
	Reasoning       string  `json:"reasoning"`       // Explicación en una sola oración
}
