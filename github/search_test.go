package github

import (
	"testing"
	"time"

	"ghsieve/searcher"
)

func TestCommitItem(t *testing.T) {
	raw := rawCommit{
		SHA:     "abc123",
		HTMLURL: "https://github.com/o/r/commit/abc123",
	}
	raw.Commit.Message = "fix parser\n\nadds a regression test"
	raw.Commit.Author.Name = "Alice Smith"
	raw.Commit.Committer.Date = time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)
	raw.Repository.FullName = "o/r"

	item, err := commitItem(raw)
	if err != nil {
		t.Fatalf("commitItem: %v", err)
	}

	if item.Kind != searcher.KindCommit {
		t.Errorf("kind = %q", item.Kind)
	}
	if item.Title != "fix parser" {
		t.Errorf("title = %q, want first message line", item.Title)
	}
	if item.Body != raw.Commit.Message {
		t.Errorf("body = %q", item.Body)
	}
	if item.Author != "Alice Smith" || item.Repository != "o/r" || item.ID != "abc123" {
		t.Errorf("fields wrong: %+v", item)
	}
}

func TestCommitItemAuthorFallback(t *testing.T) {
	raw := rawCommit{SHA: "abc", HTMLURL: "https://github.com/o/r/commit/abc"}
	raw.Commit.Message = "m"
	raw.Author = &struct {
		Login string `json:"login"`
	}{Login: "alice"}

	item, err := commitItem(raw)
	if err != nil {
		t.Fatalf("commitItem: %v", err)
	}
	if item.Author != "alice" {
		t.Errorf("author = %q, want login fallback", item.Author)
	}
}

func TestCommitItemMissingAuthor(t *testing.T) {
	raw := rawCommit{SHA: "abc", HTMLURL: "https://github.com/o/r/commit/abc"}
	raw.Commit.Message = "m"

	if _, err := commitItem(raw); err == nil {
		t.Error("expected an error for missing author")
	}
}

func TestCommitItemMissingURL(t *testing.T) {
	raw := rawCommit{SHA: "abc"}
	raw.Commit.Author.Name = "alice"

	if _, err := commitItem(raw); err == nil {
		t.Error("expected an error for missing html_url")
	}
}

func TestPullRequestItem(t *testing.T) {
	merged := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	raw := rawIssue{
		Number:        42,
		Title:         "add tests",
		Body:          "covers the parser",
		HTMLURL:       "https://github.com/o/r/pull/42",
		CreatedAt:     time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		State:         "closed",
		RepositoryURL: "https://api.github.com/repos/o/r",
	}
	raw.User = &struct {
		Login string `json:"login"`
	}{Login: "bob"}
	raw.PullRequest = &struct {
		MergedAt *time.Time `json:"merged_at"`
	}{MergedAt: &merged}

	item, err := pullRequestItem(raw)
	if err != nil {
		t.Fatalf("pullRequestItem: %v", err)
	}

	if item.Kind != searcher.KindPullRequest || item.ID != "42" {
		t.Errorf("identity wrong: %+v", item)
	}
	if item.Repository != "o/r" {
		t.Errorf("repository = %q", item.Repository)
	}
	if item.ReviewState != "merged" {
		t.Errorf("review state = %q, want merged", item.ReviewState)
	}
}

func TestPullRequestItemOpenState(t *testing.T) {
	raw := rawIssue{
		Number:        7,
		HTMLURL:       "https://github.com/o/r/pull/7",
		State:         "open",
		RepositoryURL: "https://api.github.com/repos/o/r",
	}
	raw.User = &struct {
		Login string `json:"login"`
	}{Login: "bob"}
	raw.PullRequest = &struct {
		MergedAt *time.Time `json:"merged_at"`
	}{}

	item, err := pullRequestItem(raw)
	if err != nil {
		t.Fatalf("pullRequestItem: %v", err)
	}
	if item.ReviewState != "open" {
		t.Errorf("review state = %q, want open", item.ReviewState)
	}
}

func TestPullRequestItemMissingAuthor(t *testing.T) {
	raw := rawIssue{
		Number:        7,
		HTMLURL:       "https://github.com/o/r/pull/7",
		RepositoryURL: "https://api.github.com/repos/o/r",
	}

	if _, err := pullRequestItem(raw); err == nil {
		t.Error("expected an error for missing author")
	}
}

func TestRepoFromURL(t *testing.T) {
	repo, err := repoFromURL("https://api.github.com/repos/owner/name")
	if err != nil {
		t.Fatalf("repoFromURL: %v", err)
	}
	if repo != "owner/name" {
		t.Errorf("repo = %q", repo)
	}

	if _, err := repoFromURL("https://api.github.com/owner/name"); err == nil {
		t.Error("expected an error for a url without /repos/")
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"one line", "one line"},
		{"first\nsecond", "first"},
		{"", ""},
		{"\nleading newline", ""},
	}
	for _, tt := range tests {
		if got := firstLine(tt.in); got != tt.want {
			t.Errorf("firstLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
