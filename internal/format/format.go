// Package format parses raw feed text into one of the two native document
// models and writes native documents back to XML.
package format

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/mmcdole/gofeed/atom"
	"github.com/mmcdole/gofeed/rss"
)

// ErrUnrecognized is returned when no engine accepts the input.
var ErrUnrecognized = errors.New("Could not parse XML as Atom or RSS from input")

type Kind int

const (
	Atom Kind = iota
	RSS
)

func (k Kind) String() string {
	switch k {
	case Atom:
		return "atom"
	case RSS:
		return "rss"
	default:
		return "unknown"
	}
}

// Document is a native document tagged with the format it was parsed from.
// Exactly one of Atom and RSS is set, matching Kind.
type Document struct {
	Kind Kind
	Atom *atom.Feed
	RSS  *rss.Feed
}

type engine struct {
	kind  Kind
	parse func(data []byte) (Document, error)
}

// Atom is attempted first. Order matters for inputs more than one engine accepts.
var engines = []engine{
	{kind: Atom, parse: parseAtom},
	{kind: RSS, parse: parseRSS},
}

func Parse(data []byte) (Document, error) {
	for _, e := range engines {
		doc, err := e.parse(data)
		if err == nil {
			return doc, nil
		}
		slog.Debug("Format engine rejected input", "format", e.kind.String(), "error", err)
	}
	return Document{}, ErrUnrecognized
}

// Serialize writes doc with the engine matching its Kind.
func Serialize(doc Document) string {
	switch doc.Kind {
	case RSS:
		return RSSString(doc.RSS)
	default:
		return AtomString(doc.Atom)
	}
}

func parseAtom(data []byte) (Document, error) {
	fp := &atom.Parser{}
	feed, err := fp.Parse(bytes.NewReader(data))
	if err != nil {
		return Document{}, err
	}
	return Document{Kind: Atom, Atom: feed}, nil
}

func parseRSS(data []byte) (Document, error) {
	fp := &rss.Parser{}
	feed, err := fp.Parse(bytes.NewReader(data))
	if err != nil {
		return Document{}, err
	}
	restorePermalinks(data, feed)
	return Document{Kind: RSS, RSS: feed}, nil
}

// restorePermalinks fills guid isPermaLink attributes the rss parser missed.
// gofeed only reads the "isPermalink" spelling, while RSS 2.0 documents use
// "isPermaLink".
func restorePermalinks(data []byte, feed *rss.Feed) {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		slog.Debug("Skipping guid attribute recovery", "error", err)
		return
	}

	items := xmlquery.Find(doc, "//item")
	if len(items) != len(feed.Items) {
		slog.Debug("Skipping guid attribute recovery", "items", len(items), "parsed", len(feed.Items))
		return
	}

	for i, node := range items {
		item := feed.Items[i]
		if item == nil || item.GUID == nil || item.GUID.IsPermalink != "" {
			continue
		}
		guid := xmlquery.FindOne(node, "guid")
		if guid == nil {
			continue
		}
		for _, a := range guid.Attr {
			if strings.EqualFold(a.Name.Local, "isPermaLink") {
				item.GUID.IsPermalink = a.Value
				break
			}
		}
	}
}
