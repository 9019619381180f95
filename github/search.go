package github

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ghsieve/searcher"
)

// rawCommit matches the items of the search/commits response.
type rawCommit struct {
	SHA     string `json:"sha"`
	HTMLURL string `json:"html_url"`
	Commit  struct {
		Message string `json:"message"`
		Author  struct {
			Name string    `json:"name"`
			Date time.Time `json:"date"`
		} `json:"author"`
		Committer struct {
			Date time.Time `json:"date"`
		} `json:"committer"`
	} `json:"commit"`
	Author *struct {
		Login string `json:"login"`
	} `json:"author"`
	Repository struct {
		FullName string `json:"full_name"`
	} `json:"repository"`
}

// rawIssue matches the items of the search/issues response. Pull
// requests surface as issues carrying a pull_request sub-object.
type rawIssue struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	HTMLURL   string    `json:"html_url"`
	CreatedAt time.Time `json:"created_at"`
	State     string    `json:"state"`
	User      *struct {
		Login string `json:"login"`
	} `json:"user"`
	PullRequest *struct {
		MergedAt *time.Time `json:"merged_at"`
	} `json:"pull_request"`
	RepositoryURL string `json:"repository_url"`
}

// SearchCommits runs a commit search query and returns up to limit
// items. Items that cannot be constructed (e.g. missing author) are
// logged and skipped; a transport failure aborts this call only.
func (c *Client) SearchCommits(ctx context.Context, query string, limit int) ([]searcher.Item, error) {
	if limit <= 0 {
		limit = searchPageSize
	}
	c.log.Info().Str("query", query).Msg("searching commits")

	var items []searcher.Item
	for page := 1; page <= maxSearchPages && len(items) < limit; page++ {
		if err := ctx.Err(); err != nil {
			return items, err
		}

		client, err := c.rest()
		if err != nil {
			return nil, err
		}

		path := fmt.Sprintf("search/commits?q=%s&per_page=%d&page=%d",
			url.QueryEscape(query), searchPageSize, page)

		var resp struct {
			Items []rawCommit `json:"items"`
		}
		if err := client.Get(path, &resp); err != nil {
			return nil, fmt.Errorf("search commits: %w", err)
		}
		if len(resp.Items) == 0 {
			break
		}

		for _, raw := range resp.Items {
			if len(items) >= limit {
				break
			}
			item, err := commitItem(raw)
			if err != nil {
				c.log.Warn().Err(err).Str("sha", raw.SHA).Msg("skipping commit")
				continue
			}
			c.attachFiles(ctx, &item)
			items = append(items, item)
		}

		if len(resp.Items) < searchPageSize {
			break
		}
	}

	c.log.Info().Int("count", len(items)).Msg("commit search finished")
	return items, nil
}

// SearchPullRequests runs an issue search query and returns up to limit
// pull request items. Issues without an attached pull request are
// dropped.
func (c *Client) SearchPullRequests(ctx context.Context, query string, limit int) ([]searcher.Item, error) {
	if limit <= 0 {
		limit = searchPageSize
	}
	c.log.Info().Str("query", query).Msg("searching pull requests")

	var items []searcher.Item
	for page := 1; page <= maxSearchPages && len(items) < limit; page++ {
		if err := ctx.Err(); err != nil {
			return items, err
		}

		client, err := c.rest()
		if err != nil {
			return nil, err
		}

		path := fmt.Sprintf("search/issues?q=%s&per_page=%d&page=%d",
			url.QueryEscape(query), searchPageSize, page)

		var resp struct {
			Items []rawIssue `json:"items"`
		}
		if err := client.Get(path, &resp); err != nil {
			return nil, fmt.Errorf("search pull requests: %w", err)
		}
		if len(resp.Items) == 0 {
			break
		}

		for _, raw := range resp.Items {
			if len(items) >= limit {
				break
			}
			if raw.PullRequest == nil {
				continue
			}
			item, err := pullRequestItem(raw)
			if err != nil {
				c.log.Warn().Err(err).Int("number", raw.Number).Msg("skipping pull request")
				continue
			}
			c.attachFiles(ctx, &item)
			items = append(items, item)
		}

		if len(resp.Items) < searchPageSize {
			break
		}
	}

	c.log.Info().Int("count", len(items)).Msg("pull request search finished")
	return items, nil
}

// attachFiles populates the item's changed file names. A failure leaves
// the list empty, which downstream filtering treats as no match.
func (c *Client) attachFiles(ctx context.Context, item *searcher.Item) {
	files, err := c.ListFiles(ctx, *item)
	if err != nil {
		c.log.Warn().Err(err).Str("url", item.URL).Msg("listing changed files failed")
		return
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Filename)
	}
	item.Files = names
}

// commitItem converts a raw search hit into an Item.
func commitItem(raw rawCommit) (searcher.Item, error) {
	if raw.HTMLURL == "" {
		return searcher.Item{}, errors.New("commit has no html_url")
	}

	author := raw.Commit.Author.Name
	if author == "" && raw.Author != nil {
		author = raw.Author.Login
	}
	if author == "" {
		return searcher.Item{}, errors.New("commit has no author")
	}

	return searcher.Item{
		Kind:       searcher.KindCommit,
		ID:         raw.SHA,
		Title:      firstLine(raw.Commit.Message),
		Body:       raw.Commit.Message,
		URL:        raw.HTMLURL,
		Date:       raw.Commit.Committer.Date,
		Author:     author,
		Repository: raw.Repository.FullName,
	}, nil
}

// pullRequestItem converts a raw issue search hit into an Item.
func pullRequestItem(raw rawIssue) (searcher.Item, error) {
	if raw.HTMLURL == "" {
		return searcher.Item{}, errors.New("pull request has no html_url")
	}
	if raw.User == nil || raw.User.Login == "" {
		return searcher.Item{}, errors.New("pull request has no author")
	}

	repo, err := repoFromURL(raw.RepositoryURL)
	if err != nil {
		return searcher.Item{}, err
	}

	state := raw.State
	if raw.PullRequest != nil && raw.PullRequest.MergedAt != nil {
		state = "merged"
	}

	return searcher.Item{
		Kind:        searcher.KindPullRequest,
		ID:          strconv.Itoa(raw.Number),
		Title:       raw.Title,
		Body:        raw.Body,
		URL:         raw.HTMLURL,
		Date:        raw.CreatedAt,
		Author:      raw.User.Login,
		Repository:  repo,
		ReviewState: state,
	}, nil
}

// repoFromURL extracts "owner/name" from an API repository URL such as
// https://api.github.com/repos/owner/name.
func repoFromURL(apiURL string) (string, error) {
	_, repo, found := strings.Cut(apiURL, "/repos/")
	if !found || repo == "" {
		return "", fmt.Errorf("unexpected repository url %q", apiURL)
	}
	return repo, nil
}
