package syndication

import (
	"github.com/mmcdole/gofeed/rss"
)

// TextInput describes the RSS channel text box. Atom has no equivalent.
type TextInput struct {
	Title       string
	Description string
	Name        string
	Link        string
}

func TextInputFromRSS(input *rss.TextInput) TextInput {
	if input == nil {
		return TextInput{}
	}
	return TextInput{
		Title:       input.Title,
		Description: input.Description,
		Name:        input.Name,
		Link:        input.Link,
	}
}

func (t TextInput) ToRSS() *rss.TextInput {
	return &rss.TextInput{
		Title:       t.Title,
		Description: t.Description,
		Name:        t.Name,
		Link:        t.Link,
	}
}
