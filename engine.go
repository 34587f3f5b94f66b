package main

import (
	"io"
	"strings"
	"sync"

	"spellcheck/hashtable"
)

// Engine serializes access to the dictionary table. Words passed to its
// methods are lower-cased before they reach the table.
type Engine struct {
	mu     sync.RWMutex
	table  *hashtable.HashTable
	closed bool
}

type TableStats struct {
	Words        int     `json:"words"`
	Capacity     int     `json:"capacity"`
	LoadFactor   float64 `json:"load_factor"`
	EmptyBuckets int     `json:"empty_buckets"`
}

func CreateEngine(table *hashtable.HashTable) *Engine {
	return &Engine{table: table}
}

// Check reports whether the lower-cased word is in the dictionary.
func (e *Engine) Check(word string) bool {
	word = strings.ToLower(word)
	e.mu.RLock()
	defer e.mu.RUnlock()
	return word != "" && e.table.Contains(word)
}

func (e *Engine) Read(word string) (int, bool) {
	word = strings.ToLower(word)
	e.mu.RLock()
	defer e.mu.RUnlock()
	if v := e.table.Get(word); v != nil {
		return *v, true
	}
	return 0, false
}

func (e *Engine) Write(word string) {
	word = strings.ToLower(word)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.table.Put(word, 1)
}

func (e *Engine) Delete(word string) bool {
	word = strings.ToLower(word)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.table.Remove(word)
}

func (e *Engine) Stats() TableStats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return TableStats{
		Words:        e.table.Len(),
		Capacity:     e.table.Capacity(),
		LoadFactor:   e.table.LoadFactor(),
		EmptyBuckets: e.table.EmptyBuckets(),
	}
}

func (e *Engine) Dump(w io.Writer) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.table.Dump(w)
}

func (e *Engine) Top(n int) []WordCount {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return TopWords(e.table, n)
}

// Swap installs table and destroys the one it replaces. A closed engine
// destroys table instead and reports false.
func (e *Engine) Swap(table *hashtable.HashTable) bool {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		table.Destroy()
		return false
	}
	old := e.table
	e.table = table
	e.mu.Unlock()
	old.Destroy()
	return true
}

// Close destroys the table. The engine must not be used afterwards.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.closed {
		e.closed = true
		e.table.Destroy()
	}
}
