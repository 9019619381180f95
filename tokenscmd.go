package main

import (
	"fmt"

	"ghsieve/tokens"
)

// TokensCmd groups the token pool commands.
type TokensCmd struct {
	List   TokensListCmd   `cmd:"" help:"List configured tokens (masked)."`
	Add    TokensAddCmd    `cmd:"" help:"Add a token to the pool."`
	Remove TokensRemoveCmd `cmd:"" help:"Remove a token from the pool."`
	Set    TokensSetCmd    `cmd:"" help:"Replace the whole pool."`
}

func openPool(g *Globals) (*tokens.Pool, error) {
	return tokens.NewPool(g.TokenFile, consoleLogger(g.Debug))
}

type TokensListCmd struct{}

func (cmd *TokensListCmd) Run(g *Globals) error {
	pool, err := openPool(g)
	if err != nil {
		return err
	}

	all := pool.All()
	if len(all) == 0 {
		fmt.Println("No tokens configured.")
		return nil
	}
	for i, token := range all {
		fmt.Printf("%d. %s\n", i+1, tokens.Mask(token))
	}
	return nil
}

type TokensAddCmd struct {
	Token string `arg:"" help:"GitHub token to add."`
}

func (cmd *TokensAddCmd) Run(g *Globals) error {
	pool, err := openPool(g)
	if err != nil {
		return err
	}
	if err := pool.Add(cmd.Token); err != nil {
		return err
	}
	fmt.Println("Token added.")
	return nil
}

type TokensRemoveCmd struct {
	Token string `arg:"" help:"GitHub token to remove."`
}

func (cmd *TokensRemoveCmd) Run(g *Globals) error {
	pool, err := openPool(g)
	if err != nil {
		return err
	}
	if err := pool.Remove(cmd.Token); err != nil {
		return err
	}
	fmt.Println("Token removed.")
	return nil
}

type TokensSetCmd struct {
	Tokens []string `arg:"" help:"Tokens replacing the current pool."`
}

func (cmd *TokensSetCmd) Run(g *Globals) error {
	pool, err := openPool(g)
	if err != nil {
		return err
	}
	if err := pool.SetAll(cmd.Tokens); err != nil {
		return err
	}
	fmt.Printf("Pool set to %d token(s).\n", len(cmd.Tokens))
	return nil
}
