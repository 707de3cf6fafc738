package engine

// Registry owns the order books, one per symbol. Books are created lazily on
// first reference and never evicted, so the registry grows with the set of
// symbols seen over the process lifetime.
type Registry struct {
	books map[string]*OrderBook
}

func NewRegistry() *Registry {
	return &Registry{
		books: make(map[string]*OrderBook),
	}
}

// BookFor returns the book for a symbol, creating an empty one on first
// access.
func (r *Registry) BookFor(symbol string) *OrderBook {
	book, ok := r.books[symbol]
	if !ok {
		book = NewOrderBook()
		r.books[symbol] = book
	}
	return book
}

// Len reports how many symbols the registry is tracking.
func (r *Registry) Len() int {
	return len(r.books)
}
