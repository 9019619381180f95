package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"ghsieve/config"
	"ghsieve/github"
	"ghsieve/judge"
	"ghsieve/results"
	"ghsieve/searcher"
	"ghsieve/tokens"
)

// SearchCmd runs a stored configuration over a date range.
type SearchCmd struct {
	Name string `arg:"" help:"Name of the search configuration."`

	From string `help:"Start date (YYYY-MM-DD)." required:""`
	To   string `help:"End date (YYYY-MM-DD)." required:""`

	SegmentDays     int    `help:"Days per search segment." default:"7"`
	PageLimit       int    `help:"Maximum results per keyword per segment." default:"100"`
	SkipCommits     bool   `help:"Do not search commits."`
	SkipPRs         bool   `help:"Do not search pull requests."`
	IncludeUnmerged bool   `help:"Include pull requests that are not merged."`
	Model           string `help:"Judge model." default:"gpt-4o-mini"`
}

func (cmd *SearchCmd) Run(g *Globals) error {
	start, err := time.Parse("2006-01-02", cmd.From)
	if err != nil {
		return fmt.Errorf("invalid --from date: %w", err)
	}
	end, err := time.Parse("2006-01-02", cmd.To)
	if err != nil {
		return fmt.Errorf("invalid --to date: %w", err)
	}
	if end.Before(start) {
		return errors.New("--to precedes --from")
	}

	log, cleanup, err := newRunLogger(g.LogDir, cmd.Name, g.Debug)
	if err != nil {
		return err
	}
	defer cleanup()
	log = log.With().
		Str("run_id", uuid.NewString()).
		Str("config", cmd.Name).
		Logger()

	store := config.NewStore(g.ConfigDir)
	cfg, err := store.Load(cmd.Name)
	if err != nil {
		return fmt.Errorf("load config %q: %w", cmd.Name, err)
	}

	pool, err := tokens.NewPool(g.TokenFile, log)
	if err != nil {
		return err
	}
	if pool.Len() == 0 {
		return errors.New("no GitHub tokens configured; add one with 'ghsieve tokens add'")
	}

	var judgeSvc searcher.Judge
	if cfg.AIPrompt != "" {
		jc, err := judge.New(os.Getenv("OPENAI_API_KEY"), judge.Options{
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
			Model:   cmd.Model,
		}, log)
		if err != nil {
			return fmt.Errorf("judge client: %w", err)
		}
		judgeSvc = jc
	}

	s := searcher.New(github.NewClient(pool, log), judgeSvc, searcher.Options{
		PageLimit:   cmd.PageLimit,
		SegmentDays: cmd.SegmentDays,
		Logger:      log,
	})

	log.Info().
		Strs("keywords", cfg.SearchKeywords).
		Str("language", cfg.Language).
		Str("from", cmd.From).
		Str("to", cmd.To).
		Msg("starting search")

	items, err := s.Search(context.Background(), searcher.Spec{
		Keywords:         cfg.SearchKeywords,
		Language:         cfg.Language,
		Start:            start,
		End:              end,
		FileFilter:       cfg.FileFilterRegex,
		JudgeRule:        cfg.AIPrompt,
		SkipCommits:      cmd.SkipCommits,
		SkipPullRequests: cmd.SkipPRs,
		IncludeUnmerged:  cmd.IncludeUnmerged,
	})
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("No matching results.")
		return nil
	}

	path, err := results.NewWriter(g.ResultDir).Write(items, cfg.ResultFile, start, end)
	if err != nil {
		return fmt.Errorf("save results: %w", err)
	}
	log.Info().Str("path", path).Msg("results saved")

	printSummary(os.Stdout, items, path)
	return nil
}
