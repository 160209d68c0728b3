package middleware

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/AgusMolinaCode/Crypto_Tracker_Api.git/internal/services"
	"github.com/AgusMolinaCode/Crypto_Tracker_Api.git/internal/state"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Estado compartido con los handlers. Se inicializa una sola vez en el arranque.
var (
	appState        *state.AppState
	analysisService *services.AnalysisService
)

// InitState entrega a los handlers el contenedor de estado y el servicio de análisis
func InitState(s *state.AppState, a *services.AnalysisService) {
	appState = s
	analysisService = a
}

// AuthMiddleware valida el token JWT y que la sesión siga activa
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token no proporcionado"})
			c.Abort()
			return
		}

		tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			c.Abort()
			return
		}

		// El logout limpia la sesión aunque el token siga vigente
		if !appState.IsAuthenticated() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesión cerrada"})
			c.Abort()
			return
		}

		claims := token.Claims.(jwt.MapClaims)
		c.Set("userId", claims["userId"])
		c.Next()
	}
}

// GenerateToken genera el token JWT de la sesión
func GenerateToken(userId string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userId,
		"exp":    time.Now().Add(time.Hour * 24).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// Login inicia la sesión con el usuario mock. No se verifican credenciales:
// el cuerpo del request se ignora a propósito.
func Login(c *gin.Context) {
	user := appState.Login()

	token, err := GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al generar el token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inicio de sesión exitoso",
		"token":   token,
		"user":    user,
	})
}

// Register se comporta igual que Login: asigna el usuario mock y devuelve un token
func Register(c *gin.Context) {
	user := appState.Register()

	token, err := GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al generar el token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registro exitoso",
		"token":   token,
		"user":    user,
	})
}

// Logout limpia el usuario y la bandera de autenticación
func Logout(c *gin.Context) {
	appState.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada exitosamente"})
}

// GetProfile devuelve el usuario de la sesión
func GetProfile(c *gin.Context) {
	user := appState.User()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
