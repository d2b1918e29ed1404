// Package arena provides an append-only growable container with stable
// element references. A full chunk is never reallocated, so pointers
// returned by Append stay valid for the life of the Vec.
package arena

const (
	minChunk = 64
	maxChunk = 1 << 16
)

// Vec is an append-only vector of T. Elements are stored in fixed-capacity
// chunks; Append never moves previously stored elements.
type Vec[T any] struct {
	chunks    [][]T
	length    int
	chunkSize int
}

// NewVec creates a Vec with a soft capacity hint. The hint sizes the chunks,
// it does not bound the container.
func NewVec[T any](hint int) *Vec[T] {
	size := minChunk
	for size < hint && size < maxChunk {
		size <<= 1
	}
	return &Vec[T]{chunkSize: size}
}

// Append adds v to the end and returns a pointer to the stored element.
// The pointer stays valid across later appends.
func (v *Vec[T]) Append(x T) *T {
	last := len(v.chunks) - 1
	if last < 0 || len(v.chunks[last]) == cap(v.chunks[last]) {
		v.chunks = append(v.chunks, make([]T, 0, v.chunkSize))
		last++
	}
	v.chunks[last] = append(v.chunks[last], x)
	v.length++
	return &v.chunks[last][len(v.chunks[last])-1]
}

// At returns a pointer to the i-th element in insertion order.
// Chunks fill completely before a new one is started, so the lookup is a
// division, not a scan.
func (v *Vec[T]) At(i int) *T {
	if i < 0 || i >= v.length {
		panic("arena: index out of range")
	}
	return &v.chunks[i/v.chunkSize][i%v.chunkSize]
}

// Get returns the i-th element by value.
func (v *Vec[T]) Get(i int) T {
	return *v.At(i)
}

// Len returns the number of stored elements.
func (v *Vec[T]) Len() int {
	return v.length
}

// Each calls fn for every element in insertion order.
func (v *Vec[T]) Each(fn func(i int, x T)) {
	i := 0
	for _, chunk := range v.chunks {
		for j := range chunk {
			fn(i, chunk[j])
			i++
		}
	}
}
