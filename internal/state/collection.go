package state

// Collection is a map keyed by entity ID that remembers insertion order.
// List operations must return entities in the order they were created, which
// a plain Go map cannot guarantee.
type Collection[T any] struct {
	byID  map[string]T
	order []string
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{byID: make(map[string]T)}
}

func (c *Collection[T]) Get(id string) (T, bool) {
	v, ok := c.byID[id]
	return v, ok
}

// Put inserts or replaces the value for id. Replacing keeps the original
// insertion position.
func (c *Collection[T]) Put(id string, value T) {
	if _, exists := c.byID[id]; !exists {
		c.order = append(c.order, id)
	}
	c.byID[id] = value
}

// Delete removes id and reports whether it was present.
func (c *Collection[T]) Delete(id string) bool {
	if _, exists := c.byID[id]; !exists {
		return false
	}
	delete(c.byID, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Values returns all entries in insertion order.
func (c *Collection[T]) Values() []T {
	values := make([]T, 0, len(c.order))
	for _, id := range c.order {
		values = append(values, c.byID[id])
	}
	return values
}

func (c *Collection[T]) Len() int {
	return len(c.byID)
}
