package middleware

import (
	"net/http"

	"github.com/AgusMolinaCode/Crypto_Tracker_Api.git/internal/models"
	"github.com/gin-gonic/gin"
)

// GetCurrency devuelve la moneda de visualización seleccionada y la
// enumeración de monedas soportadas
func GetCurrency(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"currency":  appState.Currency(),
		"supported": models.SupportedCurrencies(),
	})
}

// SetCurrency cambia la moneda de visualización. El valor se valida contra la
// enumeración fija y se persiste en forma sincrónica.
func SetCurrency(c *gin.Context) {
	var body struct {
		Currency string `json:"currency" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := appState.SetCurrency(models.Currency(body.Currency)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"currency": appState.Currency()})
}
