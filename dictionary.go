package main

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"spellcheck/hashtable"
)

type LoadStats struct {
	Words    int
	Distinct int
	Elapsed  time.Duration
}

func (s LoadStats) String() string {
	return humanize.Comma(int64(s.Words)) + " words (" +
		humanize.Comma(int64(s.Distinct)) + " distinct) in " + s.Elapsed.String()
}

// LoadDictionary puts every word of the file at path into table with a count of 1
// per occurrence.
func LoadDictionary(fs afero.Fs, path string, table *hashtable.HashTable) (LoadStats, error) {
	var stats LoadStats

	f, err := fs.Open(path)
	if err != nil {
		return stats, errors.Wrap(err, "open dictionary")
	}
	defer f.Close()

	log.Infof("%s is being opened", path)
	start := time.Now()
	before := table.Len()

	tok := NewTokenizer(f)
	for {
		word, ok := tok.Next()
		if !ok {
			break
		}
		table.Put(word, 1)
		stats.Words++
	}
	if err := tok.Err(); err != nil {
		return stats, errors.Wrapf(err, "read dictionary %s", path)
	}

	stats.Distinct = table.Len() - before
	stats.Elapsed = time.Since(start)
	log.Infof("Dictionary loaded in %f seconds", stats.Elapsed.Seconds())
	return stats, nil
}
