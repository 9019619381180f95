// Package searcher implements the multi-stage filtering pipeline at the
// core of ghsieve: date-segmented paginated search, compound file-path
// filtering, size-bounded diff retrieval and LLM-based accept/reject
// judging with global deduplication.
package searcher

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Defaults for the pipeline's cost bounds.
const (
	DefaultPageLimit    = 100
	DefaultMaxDiffSize  = 10000
	DefaultMaxFileSize  = 5000
	DefaultMaxDiffFiles = 50
	DefaultSummarizeAt  = 1000
	DefaultSegmentDays  = 7

	DefaultJudgePause   = time.Second
	DefaultKeywordPause = 2 * time.Second
)

// Remote is the GitHub-facing collaborator. Transport failures are
// reported as errors; the pipeline converts them into empty results for
// the failing call and moves on.
type Remote interface {
	SearchCommits(ctx context.Context, query string, limit int) ([]Item, error)
	SearchPullRequests(ctx context.Context, query string, limit int) ([]Item, error)
	ListFiles(ctx context.Context, item Item) ([]FilePatch, error)
}

// Judge is the LLM-backed collaborator that classifies items against a
// natural-language rule and compresses oversized diffs.
type Judge interface {
	Judge(ctx context.Context, rule, title, message string, files []string, diff, url string) (bool, error)
	Summarize(ctx context.Context, diff string, maxLen int) (string, error)
}

// Options tunes the pipeline's cost bounds. Zero values take the
// package defaults.
type Options struct {
	PageLimit    int
	MaxDiffSize  int
	MaxFileSize  int
	MaxDiffFiles int
	SummarizeAt  int
	SegmentDays  int

	JudgePacer   Pacer
	KeywordPacer Pacer

	Logger zerolog.Logger
}

// Searcher runs the filtering pipeline. It is single-threaded and fully
// sequential: segments in chronological order, keywords in the order
// supplied, commits before pull requests within a keyword.
type Searcher struct {
	remote Remote
	judge  Judge
	log    zerolog.Logger

	pageLimit    int
	maxDiffSize  int
	maxFileSize  int
	maxDiffFiles int
	summarizeAt  int
	segmentDays  int

	judgePacer   Pacer
	keywordPacer Pacer
}

// New builds a Searcher. judge may be nil when no spec handed to Search
// carries a judge rule.
func New(remote Remote, judge Judge, opts Options) *Searcher {
	s := &Searcher{
		remote:       remote,
		judge:        judge,
		log:          opts.Logger,
		pageLimit:    opts.PageLimit,
		maxDiffSize:  opts.MaxDiffSize,
		maxFileSize:  opts.MaxFileSize,
		maxDiffFiles: opts.MaxDiffFiles,
		summarizeAt:  opts.SummarizeAt,
		segmentDays:  opts.SegmentDays,
		judgePacer:   opts.JudgePacer,
		keywordPacer: opts.KeywordPacer,
	}
	if s.pageLimit <= 0 {
		s.pageLimit = DefaultPageLimit
	}
	if s.maxDiffSize <= 0 {
		s.maxDiffSize = DefaultMaxDiffSize
	}
	if s.maxFileSize <= 0 {
		s.maxFileSize = DefaultMaxFileSize
	}
	if s.maxDiffFiles <= 0 {
		s.maxDiffFiles = DefaultMaxDiffFiles
	}
	if s.summarizeAt <= 0 {
		s.summarizeAt = DefaultSummarizeAt
	}
	if s.segmentDays <= 0 {
		s.segmentDays = DefaultSegmentDays
	}
	if s.judgePacer == nil {
		s.judgePacer = NewIntervalPacer(DefaultJudgePause)
	}
	if s.keywordPacer == nil {
		s.keywordPacer = NewIntervalPacer(DefaultKeywordPause)
	}
	return s
}

// Search runs the full pipeline over the spec's date range, one segment
// at a time, and returns the accepted items deduplicated by URL. The
// first occurrence across segments and keywords wins. Remote and judge
// failures never abort the run; whatever subset succeeds is returned.
func (s *Searcher) Search(ctx context.Context, spec Spec) ([]Item, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	patterns := compilePatterns(spec.FileFilter, s.log)

	var results []Item
	seen := make(map[string]struct{})

	for _, seg := range splitSegments(spec.Start, spec.End, s.segmentDays) {
		s.log.Info().
			Str("from", seg.Start.Format(dateLayout)).
			Str("to", seg.End.Format(dateLayout)).
			Msg("searching segment")

		for _, keyword := range spec.Keywords {
			items := s.searchKeyword(ctx, spec, keyword, seg, patterns)

			for _, item := range items {
				if _, dup := seen[item.URL]; dup {
					continue
				}
				seen[item.URL] = struct{}{}
				results = append(results, item)
			}

			if err := s.keywordPacer.Wait(ctx); err != nil {
				return results, err
			}
		}
	}

	s.log.Info().Int("count", len(results)).Msg("search finished")
	return results, nil
}

// searchKeyword runs the per-keyword sub-pipeline for one segment:
// remote search, file filter, judge filter.
func (s *Searcher) searchKeyword(ctx context.Context, spec Spec, keyword string, seg Segment, patterns []*regexp.Regexp) []Item {
	var items []Item

	if !spec.SkipCommits {
		query := commitQuery(keyword, spec.Language, seg)
		commits, err := s.remote.SearchCommits(ctx, query, s.pageLimit)
		if err != nil {
			s.log.Error().Err(err).Str("keyword", keyword).Msg("commit search failed")
		}
		items = append(items, commits...)
	}

	if !spec.SkipPullRequests {
		query := pullRequestQuery(keyword, spec.Language, seg, spec.IncludeUnmerged)
		prs, err := s.remote.SearchPullRequests(ctx, query, s.pageLimit)
		if err != nil {
			s.log.Error().Err(err).Str("keyword", keyword).Msg("pull request search failed")
		}
		items = append(items, prs...)
	}

	items = filterByFiles(items, patterns)
	s.log.Info().Str("keyword", keyword).Int("count", len(items)).Msg("items after file filter")

	if spec.JudgeRule == "" || len(items) == 0 {
		return items
	}
	return s.judgeItems(ctx, items, spec.JudgeRule, patterns)
}

// judgeItems fetches a bounded diff for each item and asks the judge
// whether it satisfies the rule. Judge failures reject the item rather
// than propagating.
func (s *Searcher) judgeItems(ctx context.Context, items []Item, rule string, patterns []*regexp.Regexp) []Item {
	var accepted []Item

	for _, item := range items {
		diff := s.collectDiff(ctx, item, patterns)

		if len(diff) > s.maxDiffSize {
			s.log.Warn().Str("url", item.URL).Int("size", len(diff)).Msg("diff too large, skipping item")
			continue
		}
		if len(diff) == 0 {
			s.log.Warn().Str("url", item.URL).Msg("no qualifying diff, skipping item")
			continue
		}

		if len(diff) > s.summarizeAt {
			summary, err := s.judge.Summarize(ctx, diff, s.summarizeAt)
			if err != nil {
				s.log.Warn().Err(err).Str("url", item.URL).Msg("diff summarization failed, using truncated diff")
				summary = diff[:s.summarizeAt]
			}
			diff = summary
		}

		ok, err := s.judge.Judge(ctx, rule, item.Title, item.Body, item.Files, diff, item.URL)

		if werr := s.judgePacer.Wait(ctx); werr != nil {
			return accepted
		}

		if err != nil {
			s.log.Error().Err(err).Str("url", item.URL).Msg("judge call failed, rejecting item")
			continue
		}
		if !ok {
			s.log.Info().Str("url", item.URL).Msg("judge rejected item")
			continue
		}

		item.Judged = true
		accepted = append(accepted, item)
	}

	s.log.Info().Int("count", len(accepted)).Msg("items after judge filter")
	return accepted
}

// collectDiff fetches per-file patches for the item, restricted to
// files matching any filter pattern, and concatenates them under
// per-file headers. An item with more than maxDiffFiles qualifying
// files is considered too broad to judge and yields an empty diff.
// Oversized single-file patches are dropped, not truncated.
func (s *Searcher) collectDiff(ctx context.Context, item Item, patterns []*regexp.Regexp) string {
	files, err := s.remote.ListFiles(ctx, item)
	if err != nil {
		s.log.Warn().Err(err).Str("url", item.URL).Msg("fetching diff failed")
		return ""
	}

	qualifying := 0
	var b strings.Builder
	for _, f := range files {
		if !matchesAnyPattern(f.Filename, patterns) {
			continue
		}
		qualifying++
		if f.Patch == "" || len(f.Patch) > s.maxFileSize {
			continue
		}
		b.WriteString("\n--- ")
		b.WriteString(f.Filename)
		b.WriteString(" ---\n")
		b.WriteString(f.Patch)
	}

	if qualifying > s.maxDiffFiles {
		s.log.Warn().Str("url", item.URL).Int("files", qualifying).Msg("too many qualifying files, dropping diff")
		return ""
	}
	return b.String()
}
