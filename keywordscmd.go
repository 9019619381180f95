package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"ghsieve/judge"
)

// KeywordsCmd asks the model for search keywords and a judge prompt
// matching a natural-language requirement.
type KeywordsCmd struct {
	Description string `arg:"" help:"Natural-language requirement description."`

	Language string `help:"Language restriction (e.g. python)."`
	Model    string `help:"Model to use." default:"gpt-4o-mini"`
}

func (cmd *KeywordsCmd) Run(g *Globals) error {
	jc, err := judge.New(os.Getenv("OPENAI_API_KEY"), judge.Options{
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
		Model:   cmd.Model,
	}, consoleLogger(g.Debug))
	if err != nil {
		return fmt.Errorf("judge client: %w", err)
	}

	suggestion, err := jc.SuggestKeywords(context.Background(), cmd.Description, cmd.Language)
	if err != nil {
		return err
	}

	fmt.Printf("keywords: %s\n", strings.Join(suggestion.Keywords, ", "))
	fmt.Printf("judge prompt: %s\n", suggestion.JudgeRule)
	return nil
}
