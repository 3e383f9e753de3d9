package syndication

import (
	"cmp"
	"time"

	"github.com/mmcdole/gofeed/atom"
	"github.com/mmcdole/gofeed/rss"
)

// Entry is a single item of a Feed: an Atom entry or an RSS item.
type Entry struct {
	// `id` in Atom, `guid` in RSS
	ID *Guid
	// `title` in both, required only in Atom
	Title string
	// `updated` in Atom, `pubDate` in RSS. Never zero for parsed entries.
	Updated time.Time
	// `published` in Atom, `pubDate` in RSS
	Published *time.Time
	// `summary` in Atom, nothing in RSS
	Summary string
	// `content` in Atom, `description` in RSS
	Content string

	// `link` elements in Atom, the single `link` in RSS
	Links      []Link
	Categories []Category
	// `author` elements in Atom, the single `author` in RSS
	Authors []Person
	// Atom only
	Contributors []Person
	// RSS only
	Comments string

	source *entrySource
}

// EntryFromAtom converts an Atom entry. An updated timestamp that is missing
// or not RFC 3339 is replaced with the current time. The entry's source
// element has no unified counterpart and is not carried over.
func EntryFromAtom(entry *atom.Entry) *Entry {
	if entry == nil {
		return nil
	}

	updated, ok := parseRFC3339(entry.Updated)
	if !ok {
		updated = now().UTC()
	}

	var id *Guid
	if entry.ID != "" {
		guid := GuidFromID(entry.ID)
		id = &guid
	}

	var content string
	if entry.Content != nil {
		content = entry.Content.Value
	}

	e := &Entry{
		ID:           id,
		Title:        entry.Title,
		Updated:      updated,
		Published:    optionalTime(parseRFC3339(entry.Published)),
		Summary:      entry.Summary,
		Content:      content,
		Links:        fromNative(entry.Links, LinkFromAtom),
		Categories:   fromNative(entry.Categories, CategoryFromAtom),
		Authors:      fromNative(entry.Authors, PersonFromAtom),
		Contributors: fromNative(entry.Contributors, PersonFromAtom),
	}
	e.source = newEntrySource(e, atomEntryData{entry: entry})
	return e
}

// EntryFromRSS converts an RSS item. The item's pubDate fills both Updated
// and Published; without a usable pubDate Updated is the current time and
// Published is nil.
func EntryFromRSS(item *rss.Item) *Entry {
	if item == nil {
		return nil
	}

	var updated time.Time
	pubDate, ok := parseRFC2822(item.PubDate)
	if ok {
		updated = pubDate
	} else {
		updated = now().UTC()
	}

	var id *Guid
	if item.GUID != nil {
		guid := GuidFromRSS(item.GUID)
		id = &guid
	}

	var links []Link
	if item.Link != "" {
		links = []Link{LinkFromHref(item.Link)}
	}

	var authors []Person
	if item.Author != "" {
		authors = []Person{PersonFromName(item.Author)}
	}

	e := &Entry{
		ID:         id,
		Title:      item.Title,
		Updated:    updated,
		Published:  optionalTime(pubDate, ok),
		Content:    item.Description,
		Links:      links,
		Categories: fromNative(item.Categories, CategoryFromRSS),
		Authors:    authors,
		Comments:   item.Comments,
	}
	e.source = newEntrySource(e, rssEntryData{item: item})
	return e
}

// ToAtom returns the Atom entry e was parsed from when e is unmodified, and
// builds a new one otherwise. A nil Entry yields nil.
func (e *Entry) ToAtom() *atom.Entry {
	if e == nil {
		return nil
	}
	if native, ok := e.nativeAtom(); ok {
		return native
	}

	var id string
	if e.ID != nil {
		id = e.ID.ID
	}

	updated := e.Updated.UTC()

	var published string
	var publishedParsed *time.Time
	if e.Published != nil {
		p := e.Published.UTC()
		published = formatRFC3339(p)
		publishedParsed = &p
	}

	var content *atom.Content
	if e.Content != "" {
		content = &atom.Content{Value: e.Content}
	}

	return &atom.Entry{
		Title:           e.Title,
		ID:              id,
		Updated:         formatRFC3339(updated),
		UpdatedParsed:   &updated,
		Summary:         e.Summary,
		Authors:         toNative(e.Authors, Person.ToAtom),
		Contributors:    toNative(e.Contributors, Person.ToAtom),
		Categories:      toNative(e.Categories, Category.ToAtom),
		Links:           toNative(e.Links, Link.ToAtom),
		Rights:          "",
		Published:       published,
		PublishedParsed: publishedParsed,
		Source:          nil,
		Content:         content,
	}
}

// ToRSS returns the RSS item e was parsed from when e is unmodified, and
// builds a new one otherwise. Only the first link and first author survive.
// A nil Entry yields nil.
func (e *Entry) ToRSS() *rss.Item {
	if e == nil {
		return nil
	}
	if native, ok := e.nativeRSS(); ok {
		return native
	}

	var guid *rss.GUID
	if e.ID != nil {
		guid = e.ID.ToRSS()
	}

	updated := e.Updated.UTC()

	return &rss.Item{
		Title:         e.Title,
		Link:          firstHref(e.Links),
		Description:   cmp.Or(e.Content, e.Summary),
		Content:       "",
		Author:        firstPerson(e.Authors),
		Categories:    toNative(e.Categories, Category.ToRSS),
		Comments:      e.Comments,
		Enclosure:     nil,
		GUID:          guid,
		PubDate:       formatRFC2822(updated),
		PubDateParsed: &updated,
		Source:        nil,
	}
}
