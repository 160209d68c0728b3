package services

import (
	"testing"
	"time"

	"github.com/AgusMolinaCode/Crypto_Tracker_Api.git/internal/state"
	"github.com/stretchr/testify/assert"
)

func TestMarketSimulator_StartStop(t *testing.T) {
	appState := state.New(nil)
	simulator := NewMarketSimulator(appState, 10*time.Millisecond)

	notifications := appState.Subscribe()

	simulator.Start()
	defer simulator.Stop()

	// El tick llega por el canal de suscripción
	select {
	case <-notifications:
	case <-time.After(time.Second):
		t.Fatal("se esperaba un tick del simulador")
	}

	assert.False(t, simulator.LastTick().IsZero())

	// El largo de los sparklines no cambia con el simulador corriendo
	for _, coin := range appState.Coins() {
		assert.Len(t, coin.Sparkline, 6, "%s", coin.ID)
	}
}

func TestMarketSimulator_StartIsIdempotent(t *testing.T) {
	appState := state.New(nil)
	simulator := NewMarketSimulator(appState, time.Hour)

	simulator.Start()
	simulator.Start() // no arranca un segundo loop
	simulator.Stop()
	simulator.Stop() // detener dos veces no entra en pánico
}
