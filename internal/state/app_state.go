package state

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/AgusMolinaCode/Crypto_Tracker_Api.git/internal/models"
	"github.com/google/uuid"
)

// PreferenceStore define la única pieza de estado que sobrevive a la sesión:
// la moneda de visualización preferida
type PreferenceStore interface {
	PreferredCurrency() models.Currency
	SavePreferredCurrency(currency models.Currency) error
}

// AppState es el contenedor de estado de la aplicación. Se construye una sola
// vez al arrancar con los datos semilla y se comparte por referencia con la
// capa HTTP; toda mutación pasa por sus operaciones.
//
// A diferencia de la SPA original (un solo hilo de ejecución), los handlers
// HTTP son concurrentes, así que el contenedor se protege con un mutex para
// que el tick de precios y las mutaciones del usuario observen una vista
// consistente de las monedas.
type AppState struct {
	mu sync.RWMutex

	isAuthenticated bool
	user            *models.User
	coins           []models.Coin
	favorites       []string
	portfolio       []models.Transaction
	bankAccounts    []models.BankAccount
	currency        models.Currency
	fiatBalance     float64

	prefs PreferenceStore
	rng   *rand.Rand

	subscribers []chan struct{}
}

// New crea el contenedor de estado con los datos mock iniciales. La moneda
// preferida se lee una sola vez del almacén persistente; valores ausentes o
// inválidos caen a USD.
func New(prefs PreferenceStore) *AppState {
	currency := models.CurrencyUSD
	if prefs != nil {
		currency = prefs.PreferredCurrency()
	}

	return &AppState{
		coins:        models.InitialCoins(),
		favorites:    models.InitialFavorites(),
		portfolio:    models.InitialPortfolio(),
		bankAccounts: models.MockBankAccounts,
		currency:     currency,
		fiatBalance:  models.InitialFiatBalance,
		prefs:        prefs,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Login establece el usuario mock y la bandera de autenticación. No hay
// verificación de credenciales.
func (s *AppState) Login() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.MockUser
	s.user = &user
	s.isAuthenticated = true
	return user
}

// Register se comporta igual que Login: asigna el usuario mock
func (s *AppState) Register() models.User {
	return s.Login()
}

// Logout limpia el usuario y la bandera de autenticación
func (s *AppState) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.isAuthenticated = false
}

// IsAuthenticated indica si hay una sesión activa
func (s *AppState) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.isAuthenticated
}

// User devuelve el usuario de la sesión, o nil si no hay sesión
func (s *AppState) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// Coins devuelve una copia de la lista de monedas del mercado simulado
func (s *AppState) Coins() []models.Coin {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyCoins(s.coins)
}

// Coin busca una moneda por su id
func (s *AppState) Coin(coinID string) (models.Coin, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.coins {
		if s.coins[i].ID == coinID {
			coin := s.coins[i]
			coin.Sparkline = append([]float64(nil), s.coins[i].Sparkline...)
			return coin, true
		}
	}
	return models.Coin{}, false
}

// Favorites devuelve una copia de los ids de monedas favoritas
func (s *AppState) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.favorites...)
}

// ToggleFavorite quita el id si está presente o lo agrega al final si no.
// Aplicado dos veces deja la lista como estaba.
func (s *AppState) ToggleFavorite(coinID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.favorites {
		if id == coinID {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			s.notifyLocked()
			return
		}
	}
	s.favorites = append(s.favorites, coinID)
	s.notifyLocked()
}

// AddTransaction antepone la transacción al portafolio. No se valida el signo
// del monto, la existencia de la moneda ni la fecha; eso queda a cargo de la
// capa que crea la transacción.
func (s *AppState) AddTransaction(tx models.Transaction) models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.Date == "" {
		tx.Date = time.Now().Format("2006-01-02")
	}

	s.portfolio = append([]models.Transaction{tx}, s.portfolio...)
	s.notifyLocked()
	return tx
}

// Portfolio devuelve una copia de las transacciones, la más reciente primero
func (s *AppState) Portfolio() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Transaction(nil), s.portfolio...)
}

// BankAccounts devuelve las cuentas bancarias vinculadas
func (s *AppState) BankAccounts() []models.BankAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.BankAccount(nil), s.bankAccounts...)
}

// Currency devuelve la moneda de visualización seleccionada
func (s *AppState) Currency() models.Currency {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.currency
}

// SetCurrency cambia la moneda de visualización y la escribe en el almacén
// persistente. Rechaza valores fuera de la enumeración fija.
func (s *AppState) SetCurrency(currency models.Currency) error {
	if !currency.IsValid() {
		return fmt.Errorf("moneda no soportada: %s", currency)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.currency = currency
	if s.prefs != nil {
		if err := s.prefs.SavePreferredCurrency(currency); err != nil {
			// La preferencia sigue válida en memoria aunque no se pueda persistir
			log.Printf("Error al guardar la moneda preferida: %v", err)
		}
	}
	s.notifyLocked()
	return nil
}

// FormatPrice convierte un monto en USD a la moneda seleccionada y lo
// renderiza con el formato de esa moneda
func (s *AppState) FormatPrice(usdAmount float64) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.currency.Format(usdAmount)
}

// FiatBalance devuelve el saldo fiat disponible en USD
func (s *AppState) FiatBalance() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.fiatBalance
}

// WithdrawFunds intenta retirar un monto del saldo fiat. Si el monto supera
// el saldo devuelve false sin mutar nada; el saldo nunca queda negativo.
func (s *AppState) WithdrawFunds(amount float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount > s.fiatBalance {
		return false
	}
	s.fiatBalance -= amount
	s.notifyLocked()
	return true
}

// Subscribe devuelve un canal que recibe una señal en cada cambio de estado.
// La señal se descarta si el suscriptor no la está esperando.
func (s *AppState) Subscribe() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan struct{}, 1)
	s.subscribers = append(s.subscribers, ch)
	return ch
}

// notifyLocked avisa a los suscriptores sin bloquear. Se llama con el mutex tomado.
func (s *AppState) notifyLocked() {
	for _, ch := range s.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func copyCoins(coins []models.Coin) []models.Coin {
	out := make([]models.Coin, len(coins))
	for i := range coins {
		out[i] = coins[i]
		out[i].Sparkline = append([]float64(nil), coins[i].Sparkline...)
	}
	return out
}
