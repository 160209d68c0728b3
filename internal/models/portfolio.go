package models

// PortfolioSummary representa el resumen del portafolio del usuario
type PortfolioSummary struct {
	// Valor de visualización: suma del valor de mercado de cada transacción,
	// restando las ventas en lugar de sumarlas
	DisplayValue float64 `json:"display_value"`
	// Valuación reconciliada sobre las posiciones netas reales
	TotalCurrentValue float64         `json:"total_current_value"`
	TotalInvested     float64         `json:"total_invested"`
	TotalProfit       float64         `json:"total_profit"`
	ProfitPercentage  float64         `json:"profit_percentage"`
	Holdings          []HoldingDetail `json:"holdings"`
}

// HoldingDetail representa la posición neta en una criptomoneda
type HoldingDetail struct {
	CoinID           string  `json:"coin_id"`
	Ticker           string  `json:"ticker"`
	Amount           float64 `json:"amount"`            // Cantidad neta de criptomoneda
	CurrentPrice     float64 `json:"current_price"`     // Precio actual
	Value            float64 `json:"value"`             // Valor actual (Amount * CurrentPrice)
	AverageBuyPrice  float64 `json:"avg_buy_price"`     // Precio promedio de compra
	TotalInvested    float64 `json:"total_invested"`    // Costo base restante de la posición
	Profit           float64 `json:"profit"`            // Ganancia/pérdida de la posición
	ProfitPercentage float64 `json:"profit_percentage"` // Porcentaje de ganancia/pérdida
}
