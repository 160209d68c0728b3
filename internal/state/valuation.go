package state

import (
	"strings"

	"github.com/AgusMolinaCode/Crypto_Tracker_Api.git/internal/models"
)

// TransactionDetails busca una transacción por id y la devuelve junto con su
// valuación al precio actual de mercado
func (s *AppState) TransactionDetails(transactionID string) (models.TransactionDetails, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, tx := range s.portfolio {
		if tx.ID == transactionID {
			return s.valuationLocked(tx), true
		}
	}
	return models.TransactionDetails{}, false
}

// PortfolioDetails devuelve todas las transacciones con su valuación,
// la más reciente primero
func (s *AppState) PortfolioDetails() []models.TransactionDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()

	details := make([]models.TransactionDetails, 0, len(s.portfolio))
	for _, tx := range s.portfolio {
		details = append(details, s.valuationLocked(tx))
	}
	return details
}

// valuationLocked calcula la valuación de una transacción. Se llama con el
// mutex tomado. Si la moneda no existe el precio actual es cero.
func (s *AppState) valuationLocked(tx models.Transaction) models.TransactionDetails {
	currentPrice := 0.0
	for i := range s.coins {
		if s.coins[i].ID == tx.CoinID {
			currentPrice = s.coins[i].CurrentPrice
			break
		}
	}

	executionValue := tx.PriceAtBuy * tx.Amount
	currentValue := currentPrice * tx.Amount
	gain := currentValue - executionValue

	gainPercent := 0.0
	if executionValue != 0 {
		gainPercent = gain / executionValue * 100
	}

	return models.TransactionDetails{
		Transaction:     tx,
		CurrentPrice:    currentPrice,
		ExecutionValue:  executionValue,
		CurrentValue:    currentValue,
		GainLoss:        gain,
		GainLossPercent: gainPercent,
	}
}

// PortfolioSummary calcula el resumen del portafolio.
//
// DisplayValue reproduce la cifra de visualización original: suma el valor de
// mercado de cada transacción y resta las ventas en lugar de ajustar el tamaño
// de la posición, así que con ventas parciales no representa las tenencias
// reales. La valuación reconciliada recorre las transacciones en orden
// cronológico y reduce la posición y el costo base en forma proporcional en
// cada venta.
func (s *AppState) PortfolioSummary() models.PortfolioSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type position struct {
		coinID   string
		amount   float64
		invested float64
	}

	displayValue := 0.0
	positions := make(map[string]*position)
	var order []string

	// El portafolio guarda la más reciente primero; se recorre al revés para
	// procesar compras antes que sus ventas
	for i := len(s.portfolio) - 1; i >= 0; i-- {
		tx := s.portfolio[i]

		currentPrice := 0.0
		for j := range s.coins {
			if s.coins[j].ID == tx.CoinID {
				currentPrice = s.coins[j].CurrentPrice
				break
			}
		}

		if tx.Type == models.TransactionTypeSell {
			displayValue -= currentPrice * tx.Amount
		} else {
			displayValue += currentPrice * tx.Amount
		}

		pos, exists := positions[tx.CoinID]
		if !exists {
			pos = &position{coinID: tx.CoinID}
			positions[tx.CoinID] = pos
			order = append(order, tx.CoinID)
		}

		switch tx.Type {
		case models.TransactionTypeSell:
			if pos.amount > 0 {
				proportion := tx.Amount / pos.amount
				if proportion > 1 {
					proportion = 1
				}
				pos.invested -= pos.invested * proportion
				pos.amount -= tx.Amount
				if pos.amount < 0 {
					pos.amount = 0
				}
			}
		default:
			pos.amount += tx.Amount
			pos.invested += tx.PriceAtBuy * tx.Amount
		}
	}

	summary := models.PortfolioSummary{DisplayValue: displayValue}

	for _, coinID := range order {
		pos := positions[coinID]
		if pos.amount <= 0 {
			continue
		}

		currentPrice := 0.0
		ticker := coinID
		for j := range s.coins {
			if s.coins[j].ID == coinID {
				currentPrice = s.coins[j].CurrentPrice
				ticker = strings.ToUpper(s.coins[j].Symbol)
				break
			}
		}

		value := pos.amount * currentPrice
		profit := value - pos.invested
		profitPct := 0.0
		if pos.invested > 0 {
			profitPct = profit / pos.invested * 100
		}

		summary.Holdings = append(summary.Holdings, models.HoldingDetail{
			CoinID:           coinID,
			Ticker:           ticker,
			Amount:           pos.amount,
			CurrentPrice:     currentPrice,
			Value:            value,
			AverageBuyPrice:  pos.invested / pos.amount,
			TotalInvested:    pos.invested,
			Profit:           profit,
			ProfitPercentage: profitPct,
		})

		summary.TotalCurrentValue += value
		summary.TotalInvested += pos.invested
	}

	summary.TotalProfit = summary.TotalCurrentValue - summary.TotalInvested
	if summary.TotalInvested > 0 {
		summary.ProfitPercentage = summary.TotalProfit / summary.TotalInvested * 100
	}

	return summary
}
