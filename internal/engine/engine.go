package engine

// This is the main matching engine.

// Engine applies incoming orders to the book of their symbol. It is a pure
// reducer over (book, order): no I/O, no background tasks, and no internal
// locking. The caller must invoke Process from a single goroutine at a time.
type Engine struct {
	registry *Registry
}

func New(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// Process resolves the symbol's book and runs the matching algorithm,
// returning the trades produced (possibly none). Trades come back in the
// order they executed.
func (engine *Engine) Process(order Order) []Trade {
	return engine.registry.BookFor(order.Symbol).Submit(order)
}

// Registry exposes the engine's book registry for inspection.
func (engine *Engine) Registry() *Registry {
	return engine.registry
}
