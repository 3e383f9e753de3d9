package syndication

import (
	"github.com/mmcdole/gofeed/atom"
)

// Link is a reference from a feed or entry to a web resource. RSS only
// carries the Href.
type Link struct {
	Href      string
	Rel       string
	MediaType string
	HrefLang  string
	Title     string
	Length    string
}

// LinkFromHref returns a Link with only Href set.
func LinkFromHref(href string) Link {
	return Link{Href: href}
}

func LinkFromAtom(link *atom.Link) Link {
	if link == nil {
		return Link{}
	}
	return Link{
		Href:      link.Href,
		Rel:       link.Rel,
		MediaType: link.Type,
		HrefLang:  link.Hreflang,
		Title:     link.Title,
		Length:    link.Length,
	}
}

func (l Link) ToAtom() *atom.Link {
	return &atom.Link{
		Href:     l.Href,
		Rel:      l.Rel,
		Type:     l.MediaType,
		Hreflang: l.HrefLang,
		Title:    l.Title,
		Length:   l.Length,
	}
}

// ToRSS returns the bare URL, the only part of a link RSS can hold.
func (l Link) ToRSS() string {
	return l.Href
}

// firstHref is the single link RSS can hold.
func firstHref(links []Link) string {
	if len(links) == 0 {
		return ""
	}
	return links[0].ToRSS()
}
