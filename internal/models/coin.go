package models

// Coin representa una criptomoneda disponible en el mercado simulado
type Coin struct {
	ID           string  `json:"id"`
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"current_price"` // Precio actual en USD
	ChangePct24h float64 `json:"price_change_percentage_24h"`
	ImageURL     string  `json:"image"`
	// Ventana deslizante de precios recientes para el mini gráfico.
	// El largo se mantiene constante: cada tick descarta el más viejo
	// y agrega el precio nuevo.
	Sparkline []float64 `json:"sparkline"`
	MarketCap float64   `json:"market_cap"` // Capitalización de mercado en USD
}

// TrendDirection devuelve la dirección de la tendencia comparando la primera
// y la última muestra del sparkline
func (c *Coin) TrendDirection() string {
	if len(c.Sparkline) < 2 {
		return "Neutral"
	}
	if c.Sparkline[len(c.Sparkline)-1] > c.Sparkline[0] {
		return "Upward"
	}
	return "Downward"
}
