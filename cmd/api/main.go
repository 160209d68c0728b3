package main

import (
	"log"
	"os"
	"time"

	"github.com/AgusMolinaCode/Crypto_Tracker_Api.git/internal/database"
	"github.com/AgusMolinaCode/Crypto_Tracker_Api.git/internal/middleware"
	"github.com/AgusMolinaCode/Crypto_Tracker_Api.git/internal/repository"
	routes "github.com/AgusMolinaCode/Crypto_Tracker_Api.git/internal/server"
	"github.com/AgusMolinaCode/Crypto_Tracker_Api.git/internal/services"
	"github.com/AgusMolinaCode/Crypto_Tracker_Api.git/internal/state"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Intervalo del tick del mercado simulado
const marketTickInterval = 5 * time.Second

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Printf("No se pudo cargar el archivo .env: %v", err)
	}

	// Crear el router de Gin
	router := gin.Default()

	// Configurar CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = true
	config.ExposeHeaders = []string{"Content-Length"}
	router.Use(cors.New(config))

	// Inicializar base de datos (solo guarda la moneda preferida)
	if err := database.InitDB(); err != nil {
		log.Fatalf("Error al inicializar la base de datos: %v", err)
	}
	defer database.DB.Close()

	// Construir el contenedor de estado con los datos semilla. La moneda
	// preferida se lee una sola vez del almacén persistente.
	prefs := repository.NewPreferencesRepository(database.DB)
	appState := state.New(prefs)

	// Iniciar el simulador de mercado (tick cada 5 segundos)
	simulator := services.NewMarketSimulator(appState, marketTickInterval)
	simulator.Start()
	defer simulator.Stop()

	// Entregar el estado y el servicio de análisis a los handlers
	middleware.InitState(appState, services.NewAnalysisService())

	// Configurar las rutas
	routes.RegisterRoutes(router)

	// Iniciar el servidor
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Error al iniciar el servidor: %v", err)
	}
}
