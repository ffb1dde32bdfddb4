package launcher

import (
	"fmt"

	"github.com/google/shlex"
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultTokenizerCacheSize = 64

type tokenized struct {
	argv []string
	err  error
}

// Tokenizer splits command lines using shell quoting rules and remembers the
// result, since the same few bound commands are split on every gesture.
// It is safe for concurrent use.
type Tokenizer struct {
	cache *lru.Cache[string, tokenized]
}

func NewTokenizer(size int) (*Tokenizer, error) {
	if size <= 0 {
		size = defaultTokenizerCacheSize
	}
	cache, err := lru.New[string, tokenized](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create tokenizer cache: %w", err)
	}
	return &Tokenizer{cache: cache}, nil
}

// Split returns the argument vector for command. The returned slice is a
// copy owned by the caller.
func (t *Tokenizer) Split(command string) ([]string, error) {
	entry, ok := t.cache.Get(command)
	if !ok {
		argv, err := shlex.Split(command)
		if err == nil && len(argv) == 0 {
			err = fmt.Errorf("empty command")
		}
		entry = tokenized{argv: argv, err: err}
		t.cache.Add(command, entry)
	}

	if entry.err != nil {
		return nil, fmt.Errorf("failed to tokenize %q: %w", command, entry.err)
	}
	return append([]string(nil), entry.argv...), nil
}
