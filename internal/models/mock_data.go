package models

// MockUser es el usuario fijo que se asigna al iniciar sesión o registrarse.
// No hay verificación de credenciales.
var MockUser = User{
	ID:     "u1",
	Name:   "Alex Crypto",
	Email:  "alex@example.com",
	Avatar: "https://picsum.photos/200/200",
}

// MockBankAccounts son las cuentas bancarias vinculadas de ejemplo
var MockBankAccounts = []BankAccount{
	{ID: "b1", BankName: "Chase", LastFour: "4242", Balance: 15000.50},
	{ID: "b2", BankName: "Wells Fargo", LastFour: "8899", Balance: 2500.00},
}

// InitialFiatBalance es el saldo fiat inicial en USD
const InitialFiatBalance = 12450.00

// InitialFavorites son los favoritos con los que arranca la sesión
func InitialFavorites() []string {
	return []string{"bitcoin", "solana"}
}

// InitialPortfolio son las transacciones semilla del portafolio
func InitialPortfolio() []Transaction {
	return []Transaction{
		{ID: "t1", CoinID: "bitcoin", Amount: 0.05, PriceAtBuy: 55000, Date: "2023-11-15", Type: TransactionTypeBuy},
		{ID: "t2", CoinID: "ethereum", Amount: 1.5, PriceAtBuy: 2800, Date: "2024-01-10", Type: TransactionTypeBuy},
	}
}

// InitialCoins devuelve la lista semilla de criptomonedas del mercado simulado
func InitialCoins() []Coin {
	return []Coin{
		{
			ID:           "bitcoin",
			Symbol:       "btc",
			Name:         "Bitcoin",
			CurrentPrice: 64231.45,
			ChangePct24h: 2.4,
			ImageURL:     "https://cryptologos.cc/logos/bitcoin-btc-logo.png",
			Sparkline:    []float64{62000, 62500, 61800, 63000, 63500, 64231},
			MarketCap:    1200000000000,
		},
		{
			ID:           "ethereum",
			Symbol:       "eth",
			Name:         "Ethereum",
			CurrentPrice: 3452.12,
			ChangePct24h: 1.2,
			ImageURL:     "https://cryptologos.cc/logos/ethereum-eth-logo.png",
			Sparkline:    []float64{3300, 3350, 3320, 3400, 3420, 3452},
			MarketCap:    400000000000,
		},
		{
			ID:           "solana",
			Symbol:       "sol",
			Name:         "Solana",
			CurrentPrice: 145.67,
			ChangePct24h: -5.4,
			ImageURL:     "https://cryptologos.cc/logos/solana-sol-logo.png",
			Sparkline:    []float64{155, 154, 150, 148, 146, 145},
			MarketCap:    65000000000,
		},
		{
			ID:           "ripple",
			Symbol:       "xrp",
			Name:         "XRP",
			CurrentPrice: 0.62,
			ChangePct24h: 0.5,
			ImageURL:     "https://cryptologos.cc/logos/xrp-xrp-logo.png",
			Sparkline:    []float64{0.60, 0.61, 0.61, 0.62, 0.61, 0.62},
			MarketCap:    34000000000,
		},
		{
			ID:           "cardano",
			Symbol:       "ada",
			Name:         "Cardano",
			CurrentPrice: 0.45,
			ChangePct24h: -1.2,
			ImageURL:     "https://cryptologos.cc/logos/cardano-ada-logo.png",
			Sparkline:    []float64{0.46, 0.46, 0.45, 0.45, 0.44, 0.45},
			MarketCap:    16000000000,
		},
		{
			ID:           "dogecoin",
			Symbol:       "doge",
			Name:         "Dogecoin",
			CurrentPrice: 0.16,
			ChangePct24h: 8.5,
			ImageURL:     "https://cryptologos.cc/logos/dogecoin-doge-logo.png",
			Sparkline:    []float64{0.14, 0.14, 0.15, 0.15, 0.16, 0.16},
			MarketCap:    23000000000,
		},
		{
			ID:           "polkadot",
			Symbol:       "dot",
			Name:         "Polkadot",
			CurrentPrice: 7.23,
			ChangePct24h: -2.1,
			ImageURL:     "https://cryptologos.cc/logos/polkadot-new-dot-logo.png",
			Sparkline:    []float64{7.5, 7.4, 7.3, 7.3, 7.2, 7.23},
			MarketCap:    10000000000,
		},
	}
}
