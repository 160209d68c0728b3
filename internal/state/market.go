package state

// Parámetros del movimiento simulado de precios
const (
	// Volatilidad máxima por tick: el precio se multiplica por un valor
	// uniforme en [1-v, 1+v]
	TickVolatility = 0.005
	// Deriva máxima del cambio 24h por tick, en puntos porcentuales.
	// No se acota a un rango realista.
	ChangeDrift = 0.1
)

// Tick aplica un ciclo de mutación al mercado simulado: mueve el precio de
// cada moneda con un paseo aleatorio, desliza la ventana del sparkline
// (descarta la muestra más vieja, agrega el precio nuevo, el largo no cambia)
// y empuja el cambio 24h con una deriva uniforme.
func (s *AppState) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.coins {
		coin := &s.coins[i]

		multiplier := 1 + (s.rng.Float64()*2-1)*TickVolatility
		coin.CurrentPrice *= multiplier

		if n := len(coin.Sparkline); n > 0 {
			copy(coin.Sparkline, coin.Sparkline[1:])
			coin.Sparkline[n-1] = coin.CurrentPrice
		}

		coin.ChangePct24h += (s.rng.Float64()*2 - 1) * ChangeDrift
	}

	s.notifyLocked()
}
