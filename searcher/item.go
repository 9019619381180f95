package searcher

import "time"

// Kind discriminates the two result variants.
type Kind string

const (
	KindCommit      Kind = "commit"
	KindPullRequest Kind = "pull_request"
)

// Item is one search candidate, either a commit or a pull request.
type Item struct {
	Kind       Kind
	ID         string // commit SHA or pull request number
	Title      string
	Body       string
	URL        string // canonical web link; the deduplication key
	Date       time.Time
	Author     string
	Repository string // "owner/name"
	Files      []string

	// ReviewState is set for pull requests only: open, closed or merged.
	ReviewState string

	// Judged reports whether the judge accepted this item.
	Judged bool

	// Note is a free-text slot for manual review.
	Note string
}

// FilePatch is one changed file with its unified diff hunk text, as
// returned by the remote client.
type FilePatch struct {
	Filename string `json:"filename"`
	Patch    string `json:"patch"`
}
