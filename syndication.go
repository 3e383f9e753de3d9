// Package syndication reads Atom and RSS documents into a single Feed model
// and writes a Feed back out as either format.
//
// A Feed or Entry obtained by parsing remembers the native document it came
// from. Writing it back to the same format, without modifying any field,
// returns that native document untouched. Any other conversion rebuilds the
// native document from the unified fields, which may lose data the target
// format cannot express.
package syndication

import (
	"github.com/lysyi3m/syndication/internal/format"
)

// ErrUnrecognizedFormat is returned by Parse when the input is neither Atom
// nor RSS.
var ErrUnrecognizedFormat = format.ErrUnrecognized

// Parse reads an Atom or RSS document. Atom is attempted first.
func Parse(text string) (*Feed, error) {
	return ParseBytes([]byte(text))
}

func ParseBytes(data []byte) (*Feed, error) {
	doc, err := format.Parse(data)
	if err != nil {
		return nil, err
	}

	if doc.Kind == format.RSS {
		return FeedFromRSS(doc.RSS), nil
	}
	return FeedFromAtom(doc.Atom), nil
}

func ToAtomString(feed *Feed) string {
	return format.AtomString(feed.ToAtom())
}

func ToRSSString(feed *Feed) string {
	return format.RSSString(feed.ToRSS())
}

// AtomString is shorthand for ToAtomString(f).
func (f *Feed) AtomString() string {
	return ToAtomString(f)
}

// RSSString is shorthand for ToRSSString(f).
func (f *Feed) RSSString() string {
	return ToRSSString(f)
}

func fromNative[N any, T any](items []*N, convert func(*N) T) []T {
	if len(items) == 0 {
		return nil
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item != nil {
			out = append(out, convert(item))
		}
	}
	return out
}

func toNative[T any, N any](items []T, convert func(T) *N) []*N {
	if len(items) == 0 {
		return nil
	}
	out := make([]*N, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}
	return out
}
