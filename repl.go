package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	prompt   = "Enter a word or enter the word quit to exit the program: "
	quitWord = "quit"
)

// readTokens feeds whitespace-delimited tokens of in to the returned channel,
// which is closed at end of input. The scan error, if any, is sent on errc
// before the close.
func readTokens(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	words := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(words)
		s := bufio.NewScanner(in)
		s.Split(bufio.ScanWords)
		for s.Scan() {
			select {
			case words <- s.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- s.Err()
	}()
	return words, errc
}

// RunREPL answers spelling queries read from in until "quit", end of input or
// cancellation of ctx. A read blocked on in does not delay cancellation.
func RunREPL(ctx context.Context, in io.Reader, out io.Writer, e *Engine) error {
	if ctx.Err() != nil {
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	words, errc := readTokens(ctx, in)

	for {
		if _, err := io.WriteString(out, prompt); err != nil {
			return errors.Wrap(err, "write prompt")
		}

		var word string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case w, ok := <-words:
			if !ok {
				fmt.Fprintln(out)
				var err error
				select {
				case err = <-errc:
				default:
				}
				return errors.Wrap(err, "read input")
			}
			word = strings.ToLower(w)
		}

		if word == quitWord {
			return nil
		}

		correct := e.Check(word)
		log.Debugf("Checked word=%s correct=%t", word, correct)
		if correct {
			fmt.Fprintf(out, "The word %s is spelled correctly.\n", word)
		} else {
			fmt.Fprintf(out, "The word %s is not spelled correctly.\n", word)
		}
	}
}
