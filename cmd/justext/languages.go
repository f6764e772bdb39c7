package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/justext-go/justext"
	"github.com/justext-go/justext/stoplists"
)

// LanguagesCmd lists the bundled stopword catalog, or prints a single
// language's stoplist.
type LanguagesCmd struct {
	Language string `arg:"" optional:"" help:"Print this language's stoplist instead of listing all languages."`
}

// Run executes the languages command.
func (c *LanguagesCmd) Run(deps *Dependencies) error {
	if c.Language == "" {
		for _, name := range stoplists.All() {
			fmt.Fprintln(deps.Stdout, name)
		}
		return nil
	}

	set, err := stoplists.Get(c.Language)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	sort.Strings(words)
	fmt.Fprintln(deps.Stdout, strings.Join(words, "\n"))
	return nil
}
