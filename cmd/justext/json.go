package main

import (
	"encoding/json"

	"github.com/justext-go/justext"
)

// paragraphView is the JSON-friendly projection of justext.Paragraph,
// rendering ClassType/InitialClass as their string names rather than the
// underlying int.
type paragraphView struct {
	Text              string `json:"text"`
	DOMPath           string `json:"dom_path"`
	XPath             string `json:"xpath"`
	WordsCount        int    `json:"words_count"`
	CharsCountInLinks int    `json:"chars_count_in_links"`
	TagsCount         int    `json:"tags_count"`
	Heading           bool   `json:"heading"`
	InitialClass      string `json:"initial_class"`
	ClassType         string `json:"class_type"`
}

func renderJSON(paragraphs []*justext.Paragraph) (string, error) {
	views := make([]paragraphView, len(paragraphs))
	for i, p := range paragraphs {
		views[i] = paragraphView{
			Text:              p.Text,
			DOMPath:           p.DOMPath,
			XPath:             p.XPath,
			WordsCount:        p.WordsCount,
			CharsCountInLinks: p.CharsCountInLinks,
			TagsCount:         p.TagsCount,
			Heading:           p.Heading,
			InitialClass:      p.InitialClass.String(),
			ClassType:         p.ClassType.String(),
		}
	}
	out, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
