package searcher

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestQueryBuilder(t *testing.T) {
	seg := Segment{Start: date("2024-01-01"), End: date("2024-01-08")}

	tests := []struct {
		name     string
		build    func() string
		expected string
	}{
		{
			name: "term only",
			build: func() string {
				return NewQueryBuilder().Term("fix bug").Build()
			},
			expected: "fix bug",
		},
		{
			name: "term with language",
			build: func() string {
				return NewQueryBuilder().Term("fix bug").Language("python").Build()
			},
			expected: "fix bug language:python",
		},
		{
			name: "empty language skipped",
			build: func() string {
				return NewQueryBuilder().Term("fix bug").Language("").Build()
			},
			expected: "fix bug",
		},
		{
			name: "committer date range",
			build: func() string {
				return NewQueryBuilder().Term("fix bug").CommitterDate(seg.Start, seg.End).Build()
			},
			expected: "fix bug committer-date:2024-01-01..2024-01-08",
		},
		{
			name: "pull request terms",
			build: func() string {
				return NewQueryBuilder().Term("fix bug").Type("pr").Merged().Created(seg.Start, seg.End).Build()
			},
			expected: "fix bug type:pr is:merged created:2024-01-01..2024-01-08",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCommitQuery(t *testing.T) {
	seg := Segment{Start: date("2024-01-01"), End: date("2024-01-08")}

	got := commitQuery("fix bug", "python", seg)
	want := "fix bug language:python committer-date:2024-01-01..2024-01-08"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPullRequestQuery(t *testing.T) {
	seg := Segment{Start: date("2024-01-01"), End: date("2024-01-08")}

	got := pullRequestQuery("fix bug", "python", seg, false)
	want := "fix bug language:python type:pr is:merged created:2024-01-01..2024-01-08"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = pullRequestQuery("fix bug", "", seg, true)
	want = "fix bug type:pr created:2024-01-01..2024-01-08"
	if got != want {
		t.Errorf("unmerged: got %q, want %q", got, want)
	}
}
