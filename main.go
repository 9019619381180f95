// Package main implements ghsieve, a GitHub search agent that finds
// commits and pull requests matching keyword and date criteria, filters
// them by changed-file patterns and asks an LLM judge whether each hit
// satisfies a natural-language requirement.
//
// Features:
//   - Date-segmented, paginated commit and pull request search
//   - Compound file filtering (every pattern must match some file)
//   - Size-bounded diff retrieval with per-file and total caps
//   - LLM accept/reject judging with diff summarization
//   - Token pool management with randomized selection per call
//   - JSON config and result stores
package main

import (
	"github.com/alecthomas/kong"
)

// Globals holds flags shared by all commands.
type Globals struct {
	ConfigDir string `help:"Directory holding search configurations." default:"configs"`
	TokenFile string `help:"JSON file holding GitHub tokens." default:"github_tokens.json"`
	ResultDir string `help:"Directory for result files." default:"results"`
	LogDir    string `help:"Directory for run logs." default:"logs"`
	Debug     bool   `help:"Enable debug logging."`
}

type CLI struct {
	Globals

	Search   SearchCmd   `cmd:"" help:"Run a configured search over a date range."`
	Config   ConfigCmd   `cmd:"" help:"Manage search configurations."`
	Tokens   TokensCmd   `cmd:"" help:"Manage the GitHub token pool."`
	Keywords KeywordsCmd `cmd:"" help:"Suggest search keywords and a judge prompt from a description."`
	Version  VersionCmd  `cmd:"" help:"Show version information."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("ghsieve"),
		kong.Description("Search GitHub commits and pull requests and judge them with an LLM."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&cli.Globals))
}
