package repository

import (
	"database/sql"
	"log"

	"github.com/AgusMolinaCode/Crypto_Tracker_Api.git/internal/models"
)

// Clave bajo la que se guarda la moneda preferida
const preferredCurrencyKey = "preferred_currency"

// PreferencesRepository maneja la única pieza de estado persistente:
// la moneda de visualización preferida
type PreferencesRepository struct {
	db *sql.DB
}

func NewPreferencesRepository(db *sql.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

// PreferredCurrency lee la moneda guardada. Si la clave no existe o el valor
// no pertenece a la enumeración fija, devuelve USD.
func (r *PreferencesRepository) PreferredCurrency() models.Currency {
	var value string
	err := r.db.QueryRow(
		`SELECT value FROM preferences WHERE key = ?`, preferredCurrencyKey,
	).Scan(&value)

	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("Error al leer la moneda preferida: %v", err)
		}
		return models.CurrencyUSD
	}

	return models.ParseCurrency(value)
}

// SavePreferredCurrency escribe la moneda seleccionada. Se llama en forma
// sincrónica en cada cambio de moneda.
func (r *PreferencesRepository) SavePreferredCurrency(currency models.Currency) error {
	_, err := r.db.Exec(`
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, preferredCurrencyKey, string(currency))

	if err != nil {
		log.Printf("Error al guardar la moneda preferida: %v", err)
	}
	return err
}
