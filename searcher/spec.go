package searcher

import (
	"errors"
	"time"
)

// Spec describes one search invocation. It is immutable for the
// duration of the run.
type Spec struct {
	// Keywords are searched one query at a time; per-keyword queries
	// stay within GitHub's query length limits and keep result
	// attribution possible.
	Keywords []string

	// Language restricts matches to a programming language. Empty
	// means no restriction.
	Language string

	// Start and End bound the search window, inclusive.
	Start time.Time
	End   time.Time

	// FileFilter is a semicolon-separated list of regular expressions.
	// An item passes when every pattern matches at least one of its
	// changed files. Empty means no file filtering.
	FileFilter string

	// JudgeRule is the natural-language requirement handed to the
	// judge. Empty skips the judge stage entirely.
	JudgeRule string

	// SkipCommits and SkipPullRequests disable either search leg. The
	// zero value searches both.
	SkipCommits      bool
	SkipPullRequests bool

	// IncludeUnmerged widens the pull request query beyond merged PRs.
	IncludeUnmerged bool
}

func (s Spec) validate() error {
	if len(s.Keywords) == 0 {
		return errors.New("at least one keyword is required")
	}
	if s.End.Before(s.Start) {
		return errors.New("end date precedes start date")
	}
	if s.SkipCommits && s.SkipPullRequests {
		return errors.New("both commit and pull request search are disabled")
	}
	return nil
}
