package middleware

import (
	"net/http"

	"github.com/AgusMolinaCode/Crypto_Tracker_Api.git/internal/models"
	"github.com/gin-gonic/gin"
)

// GetCoins devuelve la lista de monedas del mercado simulado
func GetCoins(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"coins": appState.Coins()})
}

// GetCoin devuelve el detalle de una moneda, con el precio formateado en la
// moneda de visualización seleccionada
func GetCoin(c *gin.Context) {
	coinID := c.Param("id")

	coin, found := appState.Coin(coinID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Criptomoneda no encontrada"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"coin":            coin,
		"formatted_price": appState.FormatPrice(coin.CurrentPrice),
	})
}

// GetFavorites devuelve las monedas marcadas como favoritas
func GetFavorites(c *gin.Context) {
	favoriteIDs := appState.Favorites()

	favorites := make([]models.Coin, 0, len(favoriteIDs))
	for _, id := range favoriteIDs {
		if coin, found := appState.Coin(id); found {
			favorites = append(favorites, coin)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"favorite_ids": favoriteIDs,
		"favorites":    favorites,
	})
}

// ToggleFavorite agrega o quita una moneda de favoritos
func ToggleFavorite(c *gin.Context) {
	coinID := c.Param("coinId")

	if _, found := appState.Coin(coinID); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Criptomoneda no encontrada"})
		return
	}

	appState.ToggleFavorite(coinID)
	c.JSON(http.StatusOK, gin.H{"favorite_ids": appState.Favorites()})
}
