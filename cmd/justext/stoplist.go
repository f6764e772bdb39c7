package main

import "github.com/justext-go/justext/stoplists"

// stoplistFor looks up a bundled stopword catalog by language name.
func stoplistFor(language string) (map[string]struct{}, error) {
	return stoplists.Get(language)
}
