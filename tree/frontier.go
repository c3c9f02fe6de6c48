package tree

// item is a frontier entry: a discovered node and its distance from the root.
type item[T any] struct {
	node  T
	depth int
}

// frontier is a FIFO queue of discovered but not yet visited nodes.
//
// It is owned by a single traversal and is not safe for concurrent use.
type frontier[T any] struct {
	items []item[T]
}

func newFrontier[T any]() *frontier[T] {
	return &frontier[T]{items: make([]item[T], 0, 16)}
}

// push appends nodes to the back of the queue, preserving their order.
func (f *frontier[T]) push(depth int, nodes ...T) {
	for _, n := range nodes {
		f.items = append(f.items, item[T]{node: n, depth: depth})
	}
}

// pop removes and returns the front entry.
// Returns false if the queue is empty.
func (f *frontier[T]) pop() (item[T], bool) {
	if len(f.items) == 0 {
		return item[T]{}, false
	}

	it := f.items[0]

	// Zero the slot so the backing array does not pin the caller's nodes.
	var zero item[T]
	f.items[0] = zero

	if len(f.items) == 1 {
		f.items = f.items[:0]
	} else {
		f.items = f.items[1:]
	}

	return it, true
}

func (f *frontier[T]) len() int {
	return len(f.items)
}
