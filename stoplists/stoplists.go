// Package stoplists bundles per-language stopword catalogs used by the
// classifier's stopword-density branches.
package stoplists

import (
	"embed"
	"sort"
	"strings"
	"sync"

	"github.com/justext-go/justext"
)

//go:embed data/*.txt
var data embed.FS

var (
	once      sync.Once
	byName    map[string]map[string]struct{}
	languages []string
)

func load() {
	entries, err := data.ReadDir("data")
	if err != nil {
		panic(err)
	}

	byName = make(map[string]map[string]struct{}, len(entries))
	languages = make([]string, 0, len(entries))

	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".txt")
		contents, err := data.ReadFile("data/" + entry.Name())
		if err != nil {
			panic(err)
		}
		byName[strings.ToLower(name)] = parse(string(contents))
		languages = append(languages, name)
	}

	sort.Strings(languages)
}

// parse splits a stoplist file into a set of lowercased, trimmed words,
// one per line, skipping blank lines.
func parse(contents string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, line := range strings.Split(contents, "\n") {
		word := strings.ToLower(strings.TrimSpace(line))
		if word == "" {
			continue
		}
		set[word] = struct{}{}
	}
	return set
}

// Get returns the stoplist for the given language, matched
// case-insensitively against the bundled catalog.
func Get(language string) (map[string]struct{}, error) {
	once.Do(load)

	set, ok := byName[strings.ToLower(language)]
	if !ok {
		return nil, justext.Errorf(justext.EUNKNOWNLANGUAGE, "unknown language %q", language)
	}
	return set, nil
}

// All returns the names of every bundled language, sorted alphabetically.
func All() []string {
	once.Do(load)

	out := make([]string, len(languages))
	copy(out, languages)
	return out
}
