// Package tokens manages the pool of GitHub API tokens used to spread
// search traffic across credentials. The pool is backed by a JSON file
// and rewritten in full on every mutation.
package tokens

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	// ErrNoTokens is returned by Pick when the pool is empty.
	ErrNoTokens = errors.New("no tokens configured")
	// ErrDuplicateToken is returned by Add when the token is already present.
	ErrDuplicateToken = errors.New("token already present")
	// ErrUnknownToken is returned by Remove when the token is not present.
	ErrUnknownToken = errors.New("token not present")
)

// Pool holds interchangeable GitHub tokens. Every remote call picks a
// fresh token so that rate-limit consumption is spread evenly.
type Pool struct {
	mu     sync.Mutex
	path   string
	tokens []string
	log    zerolog.Logger
}

type tokenFile struct {
	Tokens []string `json:"tokens"`
}

// NewPool loads the token file at path. A missing file yields an empty
// pool rather than an error.
func NewPool(path string, log zerolog.Logger) (*Pool, error) {
	p := &Pool{path: path, log: log}
	if err := p.load(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Pool) load() error {
	data, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		p.log.Warn().Str("path", p.path).Msg("token file missing, starting with an empty pool")
		return nil
	}
	if err != nil {
		return fmt.Errorf("read token file: %w", err)
	}

	var tf tokenFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return fmt.Errorf("parse token file %s: %w", p.path, err)
	}

	p.tokens = tf.Tokens
	p.log.Info().Int("count", len(p.tokens)).Msg("loaded tokens")
	return nil
}

// save rewrites the token file. Callers must hold p.mu.
func (p *Pool) save() error {
	data, err := json.MarshalIndent(tokenFile{Tokens: p.tokens}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tokens: %w", err)
	}
	if err := os.WriteFile(p.path, data, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Pick returns one token chosen uniformly at random.
func (p *Pool) Pick() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.tokens) == 0 {
		return "", ErrNoTokens
	}
	return p.tokens[rand.Intn(len(p.tokens))], nil
}

// Add appends a token and persists the pool. Adding a token that is
// already present fails with ErrDuplicateToken and leaves the pool
// unchanged.
func (p *Pool) Add(token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, t := range p.tokens {
		if t == token {
			return ErrDuplicateToken
		}
	}

	p.tokens = append(p.tokens, token)
	return p.save()
}

// Remove deletes a token and persists the pool.
func (p *Pool) Remove(token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, t := range p.tokens {
		if t == token {
			p.tokens = append(p.tokens[:i], p.tokens[i+1:]...)
			return p.save()
		}
	}
	return ErrUnknownToken
}

// SetAll replaces the whole pool and persists it.
func (p *Pool) SetAll(tokens []string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.tokens = append([]string(nil), tokens...)
	return p.save()
}

// All returns a copy of the configured tokens.
func (p *Pool) All() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]string(nil), p.tokens...)
}

// Len reports how many tokens are configured.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.tokens)
}

// Mask shortens a token for display, keeping the first and last eight
// characters.
func Mask(token string) string {
	if len(token) <= 16 {
		return token
	}
	return token[:8] + "..." + token[len(token)-8:]
}
