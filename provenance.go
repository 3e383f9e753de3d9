package syndication

import (
	"reflect"
	"slices"

	"github.com/mmcdole/gofeed/atom"
	"github.com/mmcdole/gofeed/rss"
)

// feedData is the native document a Feed was converted from. It is either
// atomFeedData or rssFeedData.
type feedData interface {
	feedData()
}

type atomFeedData struct{ feed *atom.Feed }

type rssFeedData struct{ feed *rss.Feed }

func (atomFeedData) feedData() {}
func (rssFeedData) feedData()  {}

// feedSource pairs the native document with the unified fields as they were
// right after conversion. The native document is only reused while the
// fields still match.
type feedSource struct {
	data feedData
	view Feed
}

type entryData interface {
	entryData()
}

type atomEntryData struct{ entry *atom.Entry }

type rssEntryData struct{ item *rss.Item }

func (atomEntryData) entryData() {}
func (rssEntryData) entryData()  {}

type entrySource struct {
	data entryData
	view Entry
}

func newFeedSource(f *Feed, data feedData) *feedSource {
	return &feedSource{data: data, view: f.header().clone()}
}

func newEntrySource(e *Entry, data entryData) *entrySource {
	return &entrySource{data: data, view: e.fields().clone()}
}

// header is the feed without provenance or entries.
func (f *Feed) header() Feed {
	h := *f
	h.source = nil
	h.Entries = nil
	return h
}

func (f *Feed) unchanged() bool {
	return f.source != nil && reflect.DeepEqual(f.header(), f.source.view)
}

func (f Feed) clone() Feed {
	f.Updated = clonePtr(f.Updated)
	f.Image = clonePtr(f.Image)
	f.Generator = clonePtr(f.Generator)
	f.TextInput = clonePtr(f.TextInput)
	f.Links = slices.Clone(f.Links)
	f.Categories = slices.Clone(f.Categories)
	f.Authors = slices.Clone(f.Authors)
	f.Contributors = slices.Clone(f.Contributors)
	f.SkipHours = slices.Clone(f.SkipHours)
	f.SkipDays = slices.Clone(f.SkipDays)
	return f
}

func (e *Entry) fields() Entry {
	v := *e
	v.source = nil
	return v
}

func (e *Entry) unchanged() bool {
	return e.source != nil && reflect.DeepEqual(e.fields(), e.source.view)
}

func (e Entry) clone() Entry {
	e.ID = clonePtr(e.ID)
	e.Published = clonePtr(e.Published)
	e.Links = slices.Clone(e.Links)
	e.Categories = slices.Clone(e.Categories)
	e.Authors = slices.Clone(e.Authors)
	e.Contributors = slices.Clone(e.Contributors)
	return e
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// nativeAtom returns the stored Atom document when every part of the feed
// can be emitted unchanged.
func (f *Feed) nativeAtom() (*atom.Feed, bool) {
	if !f.unchanged() {
		return nil, false
	}
	data, ok := f.source.data.(atomFeedData)
	if !ok || len(f.Entries) != len(data.feed.Entries) {
		return nil, false
	}
	for i, entry := range f.Entries {
		native, ok := entry.nativeAtom()
		if !ok || native != data.feed.Entries[i] {
			return nil, false
		}
	}
	return data.feed, true
}

func (f *Feed) nativeRSS() (*rss.Feed, bool) {
	if !f.unchanged() {
		return nil, false
	}
	data, ok := f.source.data.(rssFeedData)
	if !ok || len(f.Entries) != len(data.feed.Items) {
		return nil, false
	}
	for i, entry := range f.Entries {
		native, ok := entry.nativeRSS()
		if !ok || native != data.feed.Items[i] {
			return nil, false
		}
	}
	return data.feed, true
}

func (e *Entry) nativeAtom() (*atom.Entry, bool) {
	if e == nil || !e.unchanged() {
		return nil, false
	}
	data, ok := e.source.data.(atomEntryData)
	if !ok {
		return nil, false
	}
	return data.entry, true
}

func (e *Entry) nativeRSS() (*rss.Item, bool) {
	if e == nil || !e.unchanged() {
		return nil, false
	}
	data, ok := e.source.data.(rssEntryData)
	if !ok {
		return nil, false
	}
	return data.item, true
}

// SourceFormat names the format f was parsed from: "atom", "rss", or "" for
// a Feed built as a literal.
func (f *Feed) SourceFormat() string {
	if f == nil || f.source == nil {
		return ""
	}
	switch f.source.data.(type) {
	case atomFeedData:
		return "atom"
	case rssFeedData:
		return "rss"
	}
	return ""
}
