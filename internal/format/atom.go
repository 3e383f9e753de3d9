package format

import (
	"strings"

	"github.com/mmcdole/gofeed/atom"
)

const (
	atomNamespace  = "http://www.w3.org/2005/Atom"
	xhtmlNamespace = "http://www.w3.org/1999/xhtml"
)

// AtomString writes feed as an Atom 1.0 document. The id, title and updated
// elements are always present, even when empty.
func AtomString(feed *atom.Feed) string {
	if feed == nil {
		feed = &atom.Feed{}
	}

	w := &writer{}
	w.buf.WriteString(`<?xml version="1.0" encoding="utf-8"?>`)
	w.buf.WriteString("\n")
	w.open("feed", 0, attr{"xmlns", atomNamespace}, attr{"xml:lang", feed.Language})

	w.text("id", feed.ID, 2)
	w.text("title", feed.Title, 2)
	w.text("updated", feed.Updated, 2)
	w.element("subtitle", feed.Subtitle, 2)

	writeAtomLinks(w, feed.Links, 2)
	writeAtomPeople(w, "author", feed.Authors, 2)
	writeAtomPeople(w, "contributor", feed.Contributors, 2)
	writeAtomCategories(w, feed.Categories, 2)
	writeAtomGenerator(w, feed.Generator, 2)

	w.element("icon", feed.Icon, 2)
	w.element("logo", feed.Logo, 2)
	w.element("rights", feed.Rights, 2)

	for _, entry := range feed.Entries {
		if entry != nil {
			writeAtomEntry(w, entry)
		}
	}

	w.close("feed", 0)
	return w.String()
}

func writeAtomEntry(w *writer, entry *atom.Entry) {
	w.open("entry", 2)

	w.text("id", entry.ID, 4)
	w.text("title", entry.Title, 4)
	w.text("updated", entry.Updated, 4)
	w.element("published", entry.Published, 4)

	writeAtomLinks(w, entry.Links, 4)
	writeAtomPeople(w, "author", entry.Authors, 4)
	writeAtomPeople(w, "contributor", entry.Contributors, 4)
	writeAtomCategories(w, entry.Categories, 4)

	w.element("rights", entry.Rights, 4)
	w.element("summary", entry.Summary, 4)
	writeAtomSource(w, entry.Source, 4)
	writeAtomContent(w, entry.Content, 4)

	w.close("entry", 2)
}

func writeAtomSource(w *writer, source *atom.Source, indent int) {
	if source == nil {
		return
	}

	w.open("source", indent)
	inner := indent + 2
	w.element("id", source.ID, inner)
	w.element("title", source.Title, inner)
	w.element("updated", source.Updated, inner)
	w.element("subtitle", source.Subtitle, inner)
	writeAtomLinks(w, source.Links, inner)
	writeAtomPeople(w, "author", source.Authors, inner)
	writeAtomPeople(w, "contributor", source.Contributors, inner)
	writeAtomCategories(w, source.Categories, inner)
	writeAtomGenerator(w, source.Generator, inner)
	w.element("icon", source.Icon, inner)
	w.element("logo", source.Logo, inner)
	w.element("rights", source.Rights, inner)
	w.close("source", indent)
}

func writeAtomContent(w *writer, content *atom.Content, indent int) {
	if content == nil {
		return
	}

	lowerType := strings.ToLower(content.Type)

	switch {
	case content.Src != "":
		w.empty("content", indent, attr{"type", content.Type}, attr{"src", content.Src})
	case lowerType == "xhtml":
		// The parser strips the required div wrapper.
		w.raw("content", `<div xmlns="`+xhtmlNamespace+`">`+content.Value+`</div>`, indent, attr{"type", content.Type})
	case strings.Contains(lowerType, "xhtml"):
		w.raw("content", content.Value, indent, attr{"type", content.Type})
	default:
		w.text("content", content.Value, indent, attr{"type", content.Type})
	}
}

func writeAtomLinks(w *writer, links []*atom.Link, indent int) {
	for _, link := range links {
		if link == nil {
			continue
		}
		w.empty("link", indent,
			attr{"href", link.Href},
			attr{"rel", link.Rel},
			attr{"type", link.Type},
			attr{"hreflang", link.Hreflang},
			attr{"title", link.Title},
			attr{"length", link.Length})
	}
}

func writeAtomPeople(w *writer, tag string, people []*atom.Person, indent int) {
	for _, person := range people {
		if person == nil {
			continue
		}
		w.open(tag, indent)
		w.text("name", person.Name, indent+2)
		w.element("email", person.Email, indent+2)
		w.element("uri", person.URI, indent+2)
		w.close(tag, indent)
	}
}

func writeAtomCategories(w *writer, categories []*atom.Category, indent int) {
	for _, category := range categories {
		if category == nil {
			continue
		}
		w.empty("category", indent,
			attr{"term", category.Term},
			attr{"scheme", category.Scheme},
			attr{"label", category.Label})
	}
}

func writeAtomGenerator(w *writer, generator *atom.Generator, indent int) {
	if generator == nil {
		return
	}
	w.text("generator", generator.Value, indent,
		attr{"uri", generator.URI},
		attr{"version", generator.Version})
}
