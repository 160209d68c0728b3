package routes

import (
	"net/http"

	"github.com/AgusMolinaCode/Crypto_Tracker_Api.git/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine) {
	router.POST("/login", middleware.Login)
	router.POST("/register", middleware.Register)

	// El mercado es de solo lectura y se puede consultar sin sesión
	router.GET("/coins", middleware.GetCoins)
	router.GET("/coins/:id", middleware.GetCoin)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", middleware.Logout)
		protected.GET("/profile", middleware.GetProfile)

		protected.GET("/coins/:id/analysis", middleware.GetMarketAnalysis)
		protected.GET("/coins/:id/prediction", middleware.GetPricePrediction)

		protected.GET("/favorites", middleware.GetFavorites)
		protected.POST("/favorites/:coinId", middleware.ToggleFavorite)

		protected.POST("/transactions", middleware.CreateTransaction)
		protected.GET("/transactions", middleware.GetTransactions)
		protected.GET("/transactions/:id", middleware.GetTransactionDetails)
		protected.GET("/portfolio", middleware.GetPortfolio)

		protected.GET("/bank-accounts", middleware.GetBankAccounts)
		protected.GET("/balance", middleware.GetBalance)
		protected.POST("/withdraw", middleware.WithdrawFunds)

		protected.GET("/currency", middleware.GetCurrency)
		protected.PUT("/currency", middleware.SetCurrency)
	}

	// Rutas desconocidas
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ruta no encontrada"})
	})
}
