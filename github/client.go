// Package github implements the remote search client on the GitHub
// REST API via go-gh. Every call authenticates with a token picked at
// random from the pool, trading session reuse for even rate-limit
// consumption across credentials.
package github

import (
	"fmt"
	"time"

	gh "github.com/cli/go-gh"
	"github.com/cli/go-gh/pkg/api"
	"github.com/rs/zerolog"

	"ghsieve/tokens"
)

const searchPageSize = 100

// GitHub's search API serves at most 1000 results per query.
const maxSearchPages = 10

// Client talks to the GitHub REST API.
type Client struct {
	pool    *tokens.Pool
	timeout time.Duration
	log     zerolog.Logger
}

// NewClient builds a Client drawing tokens from pool.
func NewClient(pool *tokens.Pool, log zerolog.Logger) *Client {
	return &Client{
		pool:    pool,
		timeout: 30 * time.Second,
		log:     log,
	}
}

// rest builds a REST client authenticated with a freshly picked token.
func (c *Client) rest() (api.RESTClient, error) {
	token, err := c.pool.Pick()
	if err != nil {
		return nil, err
	}

	client, err := gh.RESTClient(&api.ClientOptions{
		AuthToken: token,
		Timeout:   c.timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create github client: %w", err)
	}
	return client, nil
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
