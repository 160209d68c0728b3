package models

// Tipos de transacción
const (
	TransactionTypeBuy  = "buy"
	TransactionTypeSell = "sell"
)

// Transaction representa una transacción simulada de compra o venta.
// Una vez creada es inmutable; el orden del portafolio es orden de inserción
// (la más reciente primero).
type Transaction struct {
	ID         string  `json:"id"`
	CoinID     string  `json:"coinId" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
	PriceAtBuy float64 `json:"priceAtBuy" binding:"required"` // Precio de ejecución en USD
	Date       string  `json:"date"`                          // Fecha en formato YYYY-MM-DD
	Type       string  `json:"type" binding:"required,oneof=buy sell"`
}

// TransactionDetails contiene una transacción junto con su valuación
// derivada del precio actual de mercado
type TransactionDetails struct {
	Transaction     Transaction `json:"transaction"`
	CurrentPrice    float64     `json:"current_price"`
	ExecutionValue  float64     `json:"execution_value"`   // PriceAtBuy * Amount
	CurrentValue    float64     `json:"current_value"`     // CurrentPrice * Amount
	GainLoss        float64     `json:"gain_loss"`         // CurrentValue - ExecutionValue
	GainLossPercent float64     `json:"gain_loss_percent"` // (GainLoss / ExecutionValue) * 100
}
