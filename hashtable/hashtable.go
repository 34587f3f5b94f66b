// Package hashtable is a resizable hash table with separate chaining that maps
// words to integer counters.
//
// A HashTable is not safe for concurrent use. Callers that share one must
// serialize every call, including reads, since Put may rebuild the bucket array.
package hashtable

import (
	"fmt"
	"io"
	"strings"
)

// MaxLoad is the load factor at which the bucket array doubles.
const MaxLoad = 0.75

type entry struct {
	key   string
	value int
	next  *entry
}

type HashTable struct {
	hash    HashFunc
	buckets []*entry
	size    int
}

type Option func(*HashTable)

func WithHashFunc(f HashFunc) Option {
	return func(h *HashTable) {
		if f != nil {
			h.hash = f
		}
	}
}

// New creates a table with capacity empty buckets. It panics if capacity is not
// positive.
func New(capacity int, opts ...Option) *HashTable {
	if capacity <= 0 {
		panic(fmt.Sprintf("hashtable: capacity must be positive, got %d", capacity))
	}
	h := &HashTable{
		hash:    WeightedByteSum,
		buckets: make([]*entry, capacity),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *HashTable) index(key string) int {
	if h.buckets == nil {
		panic("hashtable: use of destroyed table")
	}
	return int(h.hash(key) % uint64(len(h.buckets)))
}

func (h *HashTable) find(key string) *entry {
	for e := h.buckets[h.index(key)]; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

// Put adds value to the counter stored under key, creating the entry at the end
// of its bucket chain if the key is new. The table grows when the load factor
// reaches MaxLoad.
func (h *HashTable) Put(key string, value int) {
	if key == "" {
		panic("hashtable: empty key")
	}
	i := h.index(key)

	var tail *entry
	for e := h.buckets[i]; e != nil; e = e.next {
		if e.key == key {
			e.value += value
			return
		}
		tail = e
	}

	// The caller keeps its key; the entry owns a private copy.
	e := &entry{key: strings.Clone(key), value: value}
	if tail == nil {
		h.buckets[i] = e
	} else {
		tail.next = e
	}
	h.size++

	if h.LoadFactor() >= MaxLoad {
		h.resize(2 * len(h.buckets))
	}
}

// resize relinks every entry into a new array of the given capacity. Both
// allocations happen before any link is touched.
func (h *HashTable) resize(capacity int) {
	buckets := make([]*entry, capacity)
	tails := make([]*entry, capacity)

	for _, head := range h.buckets {
		for e := head; e != nil; {
			next := e.next
			e.next = nil

			i := int(h.hash(e.key) % uint64(capacity))
			if tails[i] == nil {
				buckets[i] = e
			} else {
				tails[i].next = e
			}
			tails[i] = e

			e = next
		}
	}

	h.buckets = buckets
}

// Get returns a pointer to the value stored under key, or nil if the key is
// absent. Writes through the pointer update the table.
func (h *HashTable) Get(key string) *int {
	if e := h.find(key); e != nil {
		return &e.value
	}
	return nil
}

func (h *HashTable) Contains(key string) bool {
	return h.find(key) != nil
}

// Remove unlinks the entry for key. It reports whether anything was removed.
func (h *HashTable) Remove(key string) bool {
	i := h.index(key)

	var prev *entry
	for e := h.buckets[i]; e != nil; e = e.next {
		if e.key != key {
			prev = e
			continue
		}
		if prev == nil {
			h.buckets[i] = e.next
		} else {
			prev.next = e.next
		}
		e.next = nil
		h.size--
		return true
	}
	return false
}

// Len returns the number of entries.
func (h *HashTable) Len() int {
	return h.size
}

// Capacity returns the number of buckets.
func (h *HashTable) Capacity() int {
	return len(h.buckets)
}

func (h *HashTable) LoadFactor() float64 {
	return float64(h.size) / float64(len(h.buckets))
}

// EmptyBuckets returns the number of buckets without entries.
func (h *HashTable) EmptyBuckets() int {
	n := 0
	for _, head := range h.buckets {
		if head == nil {
			n++
		}
	}
	return n
}

// Range calls fn for every entry in bucket order, then chain order, until fn
// returns false. fn must not modify the table.
func (h *HashTable) Range(fn func(key string, value int) bool) {
	for _, head := range h.buckets {
		for e := head; e != nil; e = e.next {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}

// Dump writes one line per non-empty bucket:
//
//	Bucket 3 -> (cat: 2) -> (dog: 1)
func (h *HashTable) Dump(w io.Writer) error {
	var b strings.Builder
	for i, head := range h.buckets {
		if head == nil {
			continue
		}
		fmt.Fprintf(&b, "Bucket %d", i)
		for e := head; e != nil; e = e.next {
			fmt.Fprintf(&b, " -> (%s: %d)", e.key, e.value)
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		b.Reset()
	}
	return nil
}

// Destroy releases every chain and the bucket array. The table must not be used
// afterwards.
func (h *HashTable) Destroy() {
	for i, head := range h.buckets {
		for e := head; e != nil; {
			next := e.next
			e.next = nil
			e = next
		}
		h.buckets[i] = nil
	}
	h.buckets = nil
	h.size = 0
}
