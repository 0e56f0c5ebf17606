package channel

import (
	"context"
	"fmt"
	"sync"

	"github.com/flemzord/milkybridge/pkg/message"
)

// Dispatcher routes outbound messages to the correct registered adapter.
type Dispatcher struct {
	mu       sync.RWMutex
	adapters map[string]Channel
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		adapters: make(map[string]Channel),
	}
}

// Register adds an adapter under the given name. Returns
// ErrDuplicateAdapter if the name is already taken.
func (d *Dispatcher) Register(name string, ch Channel) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.adapters[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateAdapter, name)
	}
	d.adapters[name] = ch
	return nil
}

// Get returns the adapter registered under name, or false if none.
func (d *Dispatcher) Get(name string) (Channel, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ch, ok := d.adapters[name]
	return ch, ok
}

// Send dispatches an outbound message to the adapter identified by
// msg.Adapter. It returns ErrNoAdapter if no adapter is registered under
// that name.
func (d *Dispatcher) Send(ctx context.Context, msg message.Outbound) ([]message.Message, error) {
	d.mu.RLock()
	ch, ok := d.adapters[msg.Adapter]
	d.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoAdapter, msg.Adapter)
	}
	return ch.Send(ctx, msg)
}

// Adapters returns the names of all registered adapters.
func (d *Dispatcher) Adapters() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.adapters))
	for name := range d.adapters {
		names = append(names, name)
	}
	return names
}
