package models

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency es el código de la moneda de visualización
type Currency string

// Monedas soportadas
const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyJPY Currency = "JPY"
	CurrencyGBP Currency = "GBP"
	CurrencyINR Currency = "INR"
)

// Tasas de conversión estáticas con base USD, solo para visualización
var currencyRates = map[Currency]decimal.Decimal{
	CurrencyUSD: decimal.NewFromInt(1),
	CurrencyEUR: decimal.RequireFromString("0.92"),
	CurrencyJPY: decimal.RequireFromString("150.5"),
	CurrencyGBP: decimal.RequireFromString("0.79"),
	CurrencyINR: decimal.RequireFromString("83.50"),
}

// SupportedCurrencies devuelve la enumeración fija de monedas
func SupportedCurrencies() []Currency {
	return []Currency{CurrencyUSD, CurrencyEUR, CurrencyJPY, CurrencyGBP, CurrencyINR}
}

// IsValid verifica que la moneda pertenezca a la enumeración fija
func (c Currency) IsValid() bool {
	_, ok := currencyRates[c]
	return ok
}

// ParseCurrency valida un valor almacenado o recibido. Valores ausentes o
// inválidos caen a USD.
func ParseCurrency(value string) Currency {
	c := Currency(value)
	if !c.IsValid() {
		return CurrencyUSD
	}
	return c
}

// Rate devuelve la tasa de conversión desde USD
func (c Currency) Rate() decimal.Decimal {
	rate, ok := currencyRates[c]
	if !ok {
		return decimal.NewFromInt(1)
	}
	return rate
}

// Format convierte un monto en USD a la moneda seleccionada y lo renderiza
// con el símbolo y la cantidad de decimales de esa moneda
func (c Currency) Format(usdAmount float64) string {
	converted := decimal.NewFromFloat(usdAmount).Mul(c.Rate())
	return money.NewFromFloat(converted.InexactFloat64(), string(c)).Display()
}
