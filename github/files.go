package github

import (
	"context"
	"fmt"

	"ghsieve/searcher"
)

// ListFiles fetches the changed files with their patch text for a
// commit or pull request.
func (c *Client) ListFiles(ctx context.Context, item searcher.Item) ([]searcher.FilePatch, error) {
	switch item.Kind {
	case searcher.KindCommit:
		return c.commitFiles(ctx, item)
	case searcher.KindPullRequest:
		return c.pullRequestFiles(ctx, item)
	default:
		return nil, fmt.Errorf("unknown item kind %q", item.Kind)
	}
}

func (c *Client) commitFiles(ctx context.Context, item searcher.Item) ([]searcher.FilePatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client, err := c.rest()
	if err != nil {
		return nil, err
	}

	var resp struct {
		Files []searcher.FilePatch `json:"files"`
	}
	path := fmt.Sprintf("repos/%s/commits/%s", item.Repository, item.ID)
	if err := client.Get(path, &resp); err != nil {
		return nil, fmt.Errorf("get commit %s: %w", item.ID, err)
	}
	return resp.Files, nil
}

func (c *Client) pullRequestFiles(ctx context.Context, item searcher.Item) ([]searcher.FilePatch, error) {
	var files []searcher.FilePatch

	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return files, err
		}

		client, err := c.rest()
		if err != nil {
			return nil, err
		}

		var batch []searcher.FilePatch
		path := fmt.Sprintf("repos/%s/pulls/%s/files?per_page=%d&page=%d",
			item.Repository, item.ID, searchPageSize, page)
		if err := client.Get(path, &batch); err != nil {
			return nil, fmt.Errorf("get pull request %s files: %w", item.ID, err)
		}

		files = append(files, batch...)
		if len(batch) < searchPageSize {
			break
		}
	}
	return files, nil
}
