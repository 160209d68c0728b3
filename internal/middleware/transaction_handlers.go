package middleware

import (
	"net/http"

	"github.com/AgusMolinaCode/Crypto_Tracker_Api.git/internal/models"
	"github.com/gin-gonic/gin"
)

// CreateTransaction registra una transacción simulada de compra o venta.
// El portafolio es de solo agregado: no existe editar ni borrar.
func CreateTransaction(c *gin.Context) {
	var tx models.Transaction
	if err := c.ShouldBindJSON(&tx); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created := appState.AddTransaction(tx)

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Transacción creada exitosamente",
		"transaction": created,
	})
}

// GetTransactions devuelve todas las transacciones con su valuación al precio
// actual, la más reciente primero
func GetTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"transactions": appState.PortfolioDetails()})
}

// GetTransactionDetails devuelve la valuación de una transacción específica
func GetTransactionDetails(c *gin.Context) {
	transactionID := c.Param("id")

	details, found := appState.TransactionDetails(transactionID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transacción no encontrada"})
		return
	}

	c.JSON(http.StatusOK, details)
}

// GetPortfolio devuelve el resumen del portafolio: la cifra de visualización
// original y la valuación reconciliada por posición
func GetPortfolio(c *gin.Context) {
	summary := appState.PortfolioSummary()

	c.JSON(http.StatusOK, gin.H{
		"summary":         summary,
		"formatted_value": appState.FormatPrice(summary.TotalCurrentValue),
	})
}
