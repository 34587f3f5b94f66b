package main

import (
	"github.com/google/btree"

	"spellcheck/hashtable"
)

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Most frequent first, ties broken alphabetically
func byFrequency(a, b WordCount) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Word < b.Word
}

// TopWords returns the n most frequent words of table.
func TopWords(table *hashtable.HashTable, n int) []WordCount {
	if n <= 0 {
		return nil
	}
	tr := btree.NewG[WordCount](32, byFrequency)
	table.Range(func(key string, value int) bool {
		tr.ReplaceOrInsert(WordCount{Word: key, Count: value})
		if tr.Len() > n {
			tr.DeleteMax()
		}
		return true
	})

	out := make([]WordCount, 0, tr.Len())
	tr.Ascend(func(wc WordCount) bool {
		out = append(out, wc)
		return true
	})
	return out
}
