package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"ghsieve/config"
	"ghsieve/judge"
)

// ConfigCmd groups the configuration store commands.
type ConfigCmd struct {
	Create ConfigCreateCmd `cmd:"" help:"Create a search configuration."`
	List   ConfigListCmd   `cmd:"" help:"List stored configurations."`
	Show   ConfigShowCmd   `cmd:"" help:"Show one configuration."`
	Update ConfigUpdateCmd `cmd:"" help:"Update fields of a configuration."`
	Delete ConfigDeleteCmd `cmd:"" help:"Delete a configuration."`
}

type ConfigCreateCmd struct {
	Name string `arg:"" help:"Configuration name."`

	Language   string   `help:"Language restriction (e.g. python)."`
	Describe   string   `help:"Natural-language requirement; used to suggest keywords and a judge prompt."`
	Keywords   []string `help:"Search keywords."`
	Prompt     string   `help:"Judge prompt. Empty skips the judge stage."`
	FileFilter string   `help:"Semicolon-separated file path regexes (e.g. '\\.java$;\\.xml$')."`
	ResultFile string   `help:"Result file base name. Defaults to <name>_results.json."`
	Model      string   `help:"Model used for keyword suggestion." default:"gpt-4o-mini"`
}

func (cmd *ConfigCreateCmd) Run(g *Globals) error {
	log := consoleLogger(g.Debug)

	keywords := cmd.Keywords
	prompt := cmd.Prompt

	if cmd.Describe != "" && (len(keywords) == 0 || prompt == "") {
		jc, err := judge.New(os.Getenv("OPENAI_API_KEY"), judge.Options{
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
			Model:   cmd.Model,
		}, log)
		if err != nil {
			return fmt.Errorf("judge client: %w", err)
		}

		suggestion, err := jc.SuggestKeywords(context.Background(), cmd.Describe, cmd.Language)
		if err != nil {
			return fmt.Errorf("suggest keywords: %w", err)
		}
		if len(keywords) == 0 {
			keywords = suggestion.Keywords
		}
		if prompt == "" {
			prompt = suggestion.JudgeRule
		}
		fmt.Printf("Suggested keywords: %s\n", strings.Join(keywords, ", "))
		fmt.Printf("Suggested judge prompt: %s\n", prompt)
	}

	if len(keywords) == 0 {
		return errors.New("no keywords; pass --keywords or --describe")
	}

	resultFile := cmd.ResultFile
	if resultFile == "" {
		resultFile = cmd.Name + "_results.json"
	}

	err := config.NewStore(g.ConfigDir).Create(config.SearchConfig{
		Name:              cmd.Name,
		Language:          cmd.Language,
		FilterDescription: cmd.Describe,
		SearchKeywords:    keywords,
		AIPrompt:          prompt,
		FileFilterRegex:   cmd.FileFilter,
		ResultFile:        resultFile,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Config %q created.\n", cmd.Name)
	return nil
}

type ConfigListCmd struct{}

func (cmd *ConfigListCmd) Run(g *Globals) error {
	names, err := config.NewStore(g.ConfigDir).List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("No configurations.")
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

type ConfigShowCmd struct {
	Name string `arg:"" help:"Configuration name."`
}

func (cmd *ConfigShowCmd) Run(g *Globals) error {
	cfg, err := config.NewStore(g.ConfigDir).Load(cmd.Name)
	if err != nil {
		return err
	}

	fmt.Printf("name: %s\n", cfg.Name)
	fmt.Printf("language: %s\n", cfg.Language)
	fmt.Printf("description: %s\n", cfg.FilterDescription)
	fmt.Printf("keywords: %s\n", strings.Join(cfg.SearchKeywords, ", "))
	fmt.Printf("judge prompt: %s\n", cfg.AIPrompt)
	fmt.Printf("file filter: %s\n", cfg.FileFilterRegex)
	fmt.Printf("result file: %s\n", cfg.ResultFile)
	return nil
}

type ConfigUpdateCmd struct {
	Name string `arg:"" help:"Configuration name."`

	Language   *string  `help:"New language restriction."`
	Keywords   []string `help:"New search keywords."`
	Prompt     *string  `help:"New judge prompt."`
	FileFilter *string  `help:"New file filter expression."`
	ResultFile *string  `help:"New result file base name."`
}

func (cmd *ConfigUpdateCmd) Run(g *Globals) error {
	store := config.NewStore(g.ConfigDir)
	cfg, err := store.Load(cmd.Name)
	if err != nil {
		return err
	}

	if cmd.Language != nil {
		cfg.Language = *cmd.Language
	}
	if len(cmd.Keywords) > 0 {
		cfg.SearchKeywords = cmd.Keywords
	}
	if cmd.Prompt != nil {
		cfg.AIPrompt = *cmd.Prompt
	}
	if cmd.FileFilter != nil {
		cfg.FileFilterRegex = *cmd.FileFilter
	}
	if cmd.ResultFile != nil {
		cfg.ResultFile = *cmd.ResultFile
	}

	if err := store.Update(cfg); err != nil {
		return err
	}
	fmt.Printf("Config %q updated.\n", cmd.Name)
	return nil
}

type ConfigDeleteCmd struct {
	Name string `arg:"" help:"Configuration name."`
}

func (cmd *ConfigDeleteCmd) Run(g *Globals) error {
	if err := config.NewStore(g.ConfigDir).Delete(cmd.Name); err != nil {
		return err
	}
	fmt.Printf("Config %q deleted.\n", cmd.Name)
	return nil
}
