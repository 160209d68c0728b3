package repository

import (
	"path/filepath"
	"testing"

	"github.com/AgusMolinaCode/Crypto_Tracker_Api.git/internal/database"
	"github.com/AgusMolinaCode/Crypto_Tracker_Api.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *PreferencesRepository {
	t.Helper()

	db, err := database.OpenAt(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPreferencesRepository(db)
}

func TestPreferredCurrency_DefaultUSD(t *testing.T) {
	repo := newTestRepo(t)

	// Sin valor guardado cae a USD
	assert.Equal(t, models.CurrencyUSD, repo.PreferredCurrency())
}

func TestSaveAndReadPreferredCurrency(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.SavePreferredCurrency(models.CurrencyEUR))
	assert.Equal(t, models.CurrencyEUR, repo.PreferredCurrency())

	// Escribir de nuevo reemplaza el valor anterior
	require.NoError(t, repo.SavePreferredCurrency(models.CurrencyINR))
	assert.Equal(t, models.CurrencyINR, repo.PreferredCurrency())
}

func TestPreferredCurrency_InvalidStoredValue(t *testing.T) {
	repo := newTestRepo(t)

	// Un valor fuera de la enumeración cae a USD al leerlo
	_, err := repo.db.Exec(
		`INSERT INTO preferences (key, value) VALUES (?, ?)`,
		preferredCurrencyKey, "DOGE",
	)
	require.NoError(t, err)

	assert.Equal(t, models.CurrencyUSD, repo.PreferredCurrency())
}
