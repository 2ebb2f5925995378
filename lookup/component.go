package lookup

import (
	"context"
	"sync"
	"time"

	"github.com/fhsmendes/weather-lookup/models"
	"github.com/fhsmendes/weather-lookup/utils"
)

// Resolver é o que o Component precisa do Sequencer.
type Resolver interface {
	Resolve(ctx context.Context, city string) models.Outcome
}

// Component guarda o QueryState de uma interface montada (uma sessão do
// navegador, por exemplo). Apenas a invocação mais recente de Submit pode
// gravar seu desfecho; respostas de consultas substituídas são descartadas.
type Component struct {
	resolver Resolver

	mu         sync.RWMutex
	state      models.QueryState
	generation uint64
	lastSeen   time.Time
}

func NewComponent(resolver Resolver) *Component {
	return &Component{resolver: resolver, lastSeen: time.Now()}
}

// SetInput substitui o texto digitado sem cortar espaços nem validar.
func (c *Component) SetInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.CityInput = text
	c.lastSeen = time.Now()
}

// Submit ignora entradas em branco e devolve false. Caso contrário passa o
// estado para carregando e dispara a consulta com o texto original; o canal
// retornado fecha quando essa invocação termina.
func (c *Component) Submit(ctx context.Context) (<-chan struct{}, bool) {
	c.mu.Lock()
	city := c.state.CityInput
	if utils.IsBlankCity(city) {
		c.mu.Unlock()
		return nil, false
	}
	c.generation++
	gen := c.generation
	c.state.Outcome = models.Loading()
	c.lastSeen = time.Now()
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		outcome := c.resolver.Resolve(ctx, city)
		c.settle(gen, outcome)
	}()
	return done, true
}

func (c *Component) settle(gen uint64, outcome models.Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return
	}
	c.state.Outcome = outcome
}

func (c *Component) Snapshot() models.QueryState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state
}

// Touch marca a interface como ainda em uso.
func (c *Component) Touch() {
	c.mu.Lock()
	c.lastSeen = time.Now()
	c.mu.Unlock()
}

func (c *Component) LastSeen() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastSeen
}
