package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gungnir/internal/engine"
)

func TestRegistry_CreatesBooksLazily(t *testing.T) {
	registry := engine.NewRegistry()
	assert.Equal(t, 0, registry.Len())

	book := registry.BookFor("AAPL")
	assert.NotNil(t, book)
	assert.Equal(t, 1, registry.Len())

	// Repeated access returns the same book, not a fresh one.
	assert.Same(t, book, registry.BookFor("AAPL"))
	assert.Equal(t, 1, registry.Len())
}

func TestRegistry_BooksAreIndependent(t *testing.T) {
	registry := engine.NewRegistry()

	aapl := registry.BookFor("AAPL")
	msft := registry.BookFor("MSFT")
	assert.NotSame(t, aapl, msft)
	assert.Equal(t, 2, registry.Len())

	aapl.Submit(newOrder("alice", engine.Sell, "AAPL", 100.0, 10))
	assert.Len(t, aapl.Asks(), 1)
	assert.Empty(t, msft.Asks())
}
