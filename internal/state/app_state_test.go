package state

import (
	"testing"

	"github.com/AgusMolinaCode/Crypto_Tracker_Api.git/internal/models"
	"github.com/stretchr/testify/assert"
)

// fakePrefs es un almacén de preferencias en memoria para los tests
type fakePrefs struct {
	current models.Currency
	saved   []models.Currency
}

func (f *fakePrefs) PreferredCurrency() models.Currency {
	if f.current == "" {
		return models.CurrencyUSD
	}
	return f.current
}

func (f *fakePrefs) SavePreferredCurrency(currency models.Currency) error {
	f.saved = append(f.saved, currency)
	f.current = currency
	return nil
}

func TestNew_SeedData(t *testing.T) {
	s := New(nil)

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	assert.Len(t, s.Coins(), 7)
	assert.Equal(t, []string{"bitcoin", "solana"}, s.Favorites())
	assert.Len(t, s.Portfolio(), 2)
	assert.Equal(t, models.CurrencyUSD, s.Currency())
	assert.Equal(t, 12450.00, s.FiatBalance())
}

func TestNew_PreferredCurrencyFromStore(t *testing.T) {
	s := New(&fakePrefs{current: models.CurrencyEUR})
	assert.Equal(t, models.CurrencyEUR, s.Currency())
}

func TestLoginLogout(t *testing.T) {
	s := New(nil)

	user := s.Login()
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, models.MockUser, user)
	assert.Equal(t, "Alex Crypto", s.User().Name)

	s.Logout()
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
}

func TestRegister_SameAsLogin(t *testing.T) {
	s := New(nil)

	user := s.Register()
	assert.Equal(t, models.MockUser, user)
	assert.True(t, s.IsAuthenticated())
}

func TestWithdrawFunds_Success(t *testing.T) {
	s := New(nil)

	// Saldo inicial 12450.00; un retiro de 5000 deja 7450.00
	ok := s.WithdrawFunds(5000)
	assert.True(t, ok)
	assert.Equal(t, 7450.00, s.FiatBalance())
}

func TestWithdrawFunds_InsufficientBalance(t *testing.T) {
	s := New(nil)
	s.WithdrawFunds(12350) // deja el saldo en 100.00

	ok := s.WithdrawFunds(150)
	assert.False(t, ok)
	assert.Equal(t, 100.00, s.FiatBalance(), "un retiro rechazado no muta el saldo")
}

func TestWithdrawFunds_ExactBalance(t *testing.T) {
	s := New(nil)

	ok := s.WithdrawFunds(12450.00)
	assert.True(t, ok)
	assert.Equal(t, 0.00, s.FiatBalance())

	// El saldo nunca queda negativo
	assert.False(t, s.WithdrawFunds(0.01))
	assert.Equal(t, 0.00, s.FiatBalance())
}

func TestToggleFavorite_Involution(t *testing.T) {
	s := New(nil)
	original := s.Favorites()

	// Dos aplicaciones seguidas dejan la membresía como estaba
	s.ToggleFavorite("ethereum")
	assert.Contains(t, s.Favorites(), "ethereum")

	s.ToggleFavorite("ethereum")
	assert.Equal(t, original, s.Favorites())
}

func TestToggleFavorite_RemoveExisting(t *testing.T) {
	s := New(nil)

	s.ToggleFavorite("bitcoin")
	assert.NotContains(t, s.Favorites(), "bitcoin")
	assert.Contains(t, s.Favorites(), "solana")

	s.ToggleFavorite("bitcoin")
	assert.Contains(t, s.Favorites(), "bitcoin")
}

func TestAddTransaction_PrependsAndFillsDefaults(t *testing.T) {
	s := New(nil)

	created := s.AddTransaction(models.Transaction{
		CoinID:     "solana",
		Amount:     10,
		PriceAtBuy: 145.67,
		Type:       models.TransactionTypeBuy,
	})

	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.Date)

	portfolio := s.Portfolio()
	assert.Len(t, portfolio, 3)
	assert.Equal(t, created.ID, portfolio[0].ID, "la transacción nueva queda primera")
}

func TestSetCurrency_PersistsPreference(t *testing.T) {
	prefs := &fakePrefs{}
	s := New(prefs)

	err := s.SetCurrency(models.CurrencyJPY)
	assert.NoError(t, err)
	assert.Equal(t, models.CurrencyJPY, s.Currency())
	assert.Equal(t, []models.Currency{models.CurrencyJPY}, prefs.saved)
}

func TestSetCurrency_RejectsUnknown(t *testing.T) {
	prefs := &fakePrefs{}
	s := New(prefs)

	err := s.SetCurrency("BTC")
	assert.Error(t, err)
	assert.Equal(t, models.CurrencyUSD, s.Currency())
	assert.Empty(t, prefs.saved)
}

func TestFormatPrice_EuroStyle(t *testing.T) {
	s := New(nil)

	// 100 USD a tasa 0.92 son 92.00 en estilo euro
	assert.NoError(t, s.SetCurrency(models.CurrencyEUR))
	assert.Equal(t, "€92.00", s.FormatPrice(100))
}

func TestFormatPrice_RoundTrip(t *testing.T) {
	s := New(nil)

	assert.NoError(t, s.SetCurrency(models.CurrencyEUR))
	before := s.FormatPrice(1234.56)

	// Cambiar de moneda y volver reproduce el mismo formato
	assert.NoError(t, s.SetCurrency(models.CurrencyINR))
	assert.NotEqual(t, before, s.FormatPrice(1234.56))

	assert.NoError(t, s.SetCurrency(models.CurrencyEUR))
	assert.Equal(t, before, s.FormatPrice(1234.56))
}

func TestSubscribe_NotifiedOnMutation(t *testing.T) {
	s := New(nil)
	ch := s.Subscribe()

	s.ToggleFavorite("cardano")

	select {
	case <-ch:
	default:
		t.Fatal("se esperaba una señal de cambio de estado")
	}
}

func TestCoins_ReturnsCopy(t *testing.T) {
	s := New(nil)

	coins := s.Coins()
	coins[0].CurrentPrice = -1
	coins[0].Sparkline[0] = -1

	fresh := s.Coins()
	assert.Equal(t, 64231.45, fresh[0].CurrentPrice)
	assert.Equal(t, 62000.0, fresh[0].Sparkline[0])
}
