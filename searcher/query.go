package searcher

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// QueryBuilder constructs GitHub search syntax.
type QueryBuilder struct {
	terms []string
}

// NewQueryBuilder creates a new query builder.
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

// Term adds a raw search term.
func (qb *QueryBuilder) Term(term string) *QueryBuilder {
	if term != "" {
		qb.terms = append(qb.terms, term)
	}
	return qb
}

// Language adds a language filter. Empty languages are skipped.
func (qb *QueryBuilder) Language(lang string) *QueryBuilder {
	if lang != "" {
		qb.terms = append(qb.terms, fmt.Sprintf("language:%s", lang))
	}
	return qb
}

// Type adds the type filter, e.g. "pr".
func (qb *QueryBuilder) Type(t string) *QueryBuilder {
	qb.terms = append(qb.terms, fmt.Sprintf("type:%s", t))
	return qb
}

// Merged restricts the query to merged pull requests.
func (qb *QueryBuilder) Merged() *QueryBuilder {
	qb.terms = append(qb.terms, "is:merged")
	return qb
}

// CommitterDate adds an inclusive committer-date range filter.
func (qb *QueryBuilder) CommitterDate(start, end time.Time) *QueryBuilder {
	qb.terms = append(qb.terms, fmt.Sprintf("committer-date:%s..%s",
		start.Format(dateLayout), end.Format(dateLayout)))
	return qb
}

// Created adds an inclusive creation-date range filter.
func (qb *QueryBuilder) Created(start, end time.Time) *QueryBuilder {
	qb.terms = append(qb.terms, fmt.Sprintf("created:%s..%s",
		start.Format(dateLayout), end.Format(dateLayout)))
	return qb
}

// Build constructs the final search query string.
func (qb *QueryBuilder) Build() string {
	return strings.Join(qb.terms, " ")
}

// commitQuery builds the commit search query for one keyword within a
// date segment.
func commitQuery(keyword, language string, seg Segment) string {
	return NewQueryBuilder().
		Term(keyword).
		Language(language).
		CommitterDate(seg.Start, seg.End).
		Build()
}

// pullRequestQuery builds the pull request search query for one keyword
// within a date segment.
func pullRequestQuery(keyword, language string, seg Segment, includeUnmerged bool) string {
	qb := NewQueryBuilder().
		Term(keyword).
		Language(language).
		Type("pr")
	if !includeUnmerged {
		qb.Merged()
	}
	return qb.Created(seg.Start, seg.End).Build()
}
