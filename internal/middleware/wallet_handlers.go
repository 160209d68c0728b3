package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetBankAccounts devuelve las cuentas bancarias vinculadas (lista estática)
func GetBankAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bank_accounts": appState.BankAccounts()})
}

// GetBalance devuelve el saldo fiat disponible
func GetBalance(c *gin.Context) {
	balance := appState.FiatBalance()

	c.JSON(http.StatusOK, gin.H{
		"fiat_balance":      balance,
		"formatted_balance": appState.FormatPrice(balance),
	})
}

// WithdrawFunds retira un monto del saldo fiat. Un retiro que supere el saldo
// se rechaza sin mutar nada; el saldo nunca queda negativo.
func WithdrawFunds(c *gin.Context) {
	var withdrawal struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}

	if err := c.ShouldBindJSON(&withdrawal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !appState.WithdrawFunds(withdrawal.Amount) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Fondos insuficientes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Retiro exitoso",
		"fiat_balance": appState.FiatBalance(),
	})
}
