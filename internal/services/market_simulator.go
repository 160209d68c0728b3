package services

import (
	"log"
	"sync"
	"time"

	"github.com/AgusMolinaCode/Crypto_Tracker_Api.git/internal/state"
)

// MarketSimulator es un servicio que aplica el tick del mercado simulado
// periódicamente. Es el dueño del timer: arranca con el contenedor de estado
// y se detiene en el apagado.
type MarketSimulator struct {
	interval  time.Duration
	appState  *state.AppState
	isRunning bool
	stopChan  chan struct{}
	mutex     sync.Mutex
	lastTick  time.Time
}

// NewMarketSimulator crea el servicio de simulación de precios
func NewMarketSimulator(appState *state.AppState, interval time.Duration) *MarketSimulator {
	return &MarketSimulator{
		interval: interval,
		appState: appState,
		stopChan: make(chan struct{}),
	}
}

// Start inicia el loop del tick en segundo plano. Llamarlo con el servicio
// ya corriendo no hace nada.
func (m *MarketSimulator) Start() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.isRunning {
		return
	}

	m.isRunning = true
	m.stopChan = make(chan struct{})

	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.appState.Tick()
				m.mutex.Lock()
				m.lastTick = time.Now()
				m.mutex.Unlock()
			case <-m.stopChan:
				return
			}
		}
	}()

	log.Printf("Simulador de mercado iniciado con intervalo de %v", m.interval)
}

// Stop detiene el loop del tick
func (m *MarketSimulator) Stop() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if !m.isRunning {
		return
	}

	m.isRunning = false
	close(m.stopChan)
	log.Printf("Simulador de mercado detenido")
}

// LastTick devuelve la última vez que se aplicó un tick
func (m *MarketSimulator) LastTick() time.Time {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.lastTick
}
