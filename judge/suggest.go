package judge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Suggestion is the model's proposal for a new search configuration.
type Suggestion struct {
	Keywords  []string `json:"keywords"`
	JudgeRule string   `json:"ai_prompt"`
}

// SuggestKeywords derives search keywords and a judge rule from a
// natural-language requirement description.
func (c *Client) SuggestKeywords(ctx context.Context, description, language string) (Suggestion, error) {
	system := `You are a GitHub search expert. From the user's requirement, produce search keywords and a judging prompt.

Respond with a JSON object containing exactly these fields:
- "keywords": an array of 3-5 search keywords. Keywords must be in English, concrete rather than broad, and suitable for GitHub search; technical terms, framework names and feature descriptions are all fine.
- "ai_prompt": a prompt for judging whether a commit or pull request meets the requirement. It must state the acceptance criteria explicitly and instruct the judge to answer "yes" or "no".`

	user := "User requirement: " + description
	if language != "" {
		user += "\nProgramming language restriction: " + language
	}

	content, err := c.complete(ctx, system, user)
	if err != nil {
		return Suggestion{}, err
	}

	var s Suggestion
	if err := json.Unmarshal([]byte(stripFences(content)), &s); err != nil {
		return Suggestion{}, fmt.Errorf("parse suggestion: %w", err)
	}
	if len(s.Keywords) == 0 {
		return Suggestion{}, errors.New("model suggested no keywords")
	}

	c.log.Info().Strs("keywords", s.Keywords).Msg("generated search keywords")
	return s, nil
}

// stripFences removes a Markdown code fence the model may wrap its JSON
// answer in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
