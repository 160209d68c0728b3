package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetMarketAnalysis pide al modelo de IA un resumen de mercado para una
// moneda. La respuesta siempre es texto legible: las fallas del servicio se
// degradan a un mensaje, nunca a un error HTTP 5xx.
//
// Se usa el contexto del request: si el cliente cierra la conexión antes de
// que el modelo responda, la llamada en vuelo se cancela.
func GetMarketAnalysis(c *gin.Context) {
	coinID := c.Param("id")

	coin, found := appState.Coin(coinID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Criptomoneda no encontrada"})
		return
	}

	analysis := analysisService.GetMarketAnalysis(c.Request.Context(), coin)

	c.JSON(http.StatusOK, gin.H{
		"coin_id":  coin.ID,
		"analysis": analysis,
	})
}

// GetPricePrediction pide la predicción estructurada de 24 horas. Cuando no
// hay predicción disponible (sin API key, falla de red o respuesta
// malformada) el campo llega en null; no es un error para el caller.
func GetPricePrediction(c *gin.Context) {
	coinID := c.Param("id")

	coin, found := appState.Coin(coinID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Criptomoneda no encontrada"})
		return
	}

	prediction := analysisService.GetPricePrediction(c.Request.Context(), coin)

	c.JSON(http.StatusOK, gin.H{
		"coin_id":    coin.ID,
		"prediction": prediction,
	})
}
