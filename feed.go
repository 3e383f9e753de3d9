package syndication

import (
	"slices"
	"time"

	"github.com/mmcdole/gofeed/atom"
	"github.com/mmcdole/gofeed/rss"
)

// Feed is an Atom feed or an RSS channel.
//
// See http://www.intertwingly.net/wiki/pie/Rss20AndAtom10Compared#table for
// the element correspondence the field mapping follows.
type Feed struct {
	// `id` in Atom, not present in RSS
	ID string
	// `title` in both
	Title string
	// `subtitle` in Atom, `description` in RSS
	Description string
	// `updated` in Atom, `lastBuildDate` or else `pubDate` in RSS
	Updated *time.Time
	// `rights` in Atom, `copyright` in RSS
	Copyright string
	// Atom only
	Icon string
	// `logo` in Atom, `image` in RSS
	Image     *Image
	Generator *Generator

	// `link` elements in Atom, the single channel `link` in RSS
	Links      []Link
	Categories []Category
	// `author` elements in Atom, `managingEditor` in RSS
	Authors []Person
	// `contributor` elements in Atom, `webMaster` in RSS
	Contributors []Person
	// `entry` elements in Atom, `item` elements in RSS
	Entries []*Entry

	// xml:lang in Atom, `language` in RSS
	Language string

	// RSS only
	Docs      string
	Rating    string
	TTL       string
	SkipHours []string
	SkipDays  []string
	TextInput *TextInput

	source *feedSource
}

// FeedFromAtom converts an Atom feed and all of its entries.
func FeedFromAtom(feed *atom.Feed) *Feed {
	if feed == nil {
		return nil
	}

	links := fromNative(feed.Links, LinkFromAtom)

	var image *Image
	if feed.Logo != "" {
		logo := ImageFromAtomLogo(feed.Logo, feed.Title, firstHref(links))
		image = &logo
	}

	var generator *Generator
	if feed.Generator != nil {
		g := GeneratorFromAtom(feed.Generator)
		generator = &g
	}

	f := &Feed{
		ID:           feed.ID,
		Title:        feed.Title,
		Description:  feed.Subtitle,
		Updated:      optionalTime(parseRFC3339(feed.Updated)),
		Copyright:    feed.Rights,
		Icon:         feed.Icon,
		Image:        image,
		Generator:    generator,
		Links:        links,
		Categories:   fromNative(feed.Categories, CategoryFromAtom),
		Authors:      fromNative(feed.Authors, PersonFromAtom),
		Contributors: fromNative(feed.Contributors, PersonFromAtom),
		Entries:      fromNative(feed.Entries, EntryFromAtom),
		Language:     feed.Language,
	}
	f.source = newFeedSource(f, atomFeedData{feed: feed})
	return f
}

// FeedFromRSS converts an RSS channel and all of its items.
func FeedFromRSS(feed *rss.Feed) *Feed {
	if feed == nil {
		return nil
	}

	updated, ok := parseRFC2822(feed.LastBuildDate)
	if !ok {
		updated, ok = parseRFC2822(feed.PubDate)
	}

	var links []Link
	if feed.Link != "" {
		links = []Link{LinkFromHref(feed.Link)}
	}

	var image *Image
	if feed.Image != nil {
		i := ImageFromRSS(feed.Image)
		image = &i
	}

	var generator *Generator
	if feed.Generator != "" {
		g := GeneratorFromName(feed.Generator)
		generator = &g
	}

	var authors []Person
	if feed.ManagingEditor != "" {
		authors = []Person{PersonFromName(feed.ManagingEditor)}
	}

	var contributors []Person
	if feed.WebMaster != "" {
		contributors = []Person{PersonFromName(feed.WebMaster)}
	}

	var textInput *TextInput
	if feed.TextInput != nil {
		t := TextInputFromRSS(feed.TextInput)
		textInput = &t
	}

	f := &Feed{
		Title:        feed.Title,
		Description:  feed.Description,
		Updated:      optionalTime(updated, ok),
		Copyright:    feed.Copyright,
		Image:        image,
		Generator:    generator,
		Links:        links,
		Categories:   fromNative(feed.Categories, CategoryFromRSS),
		Authors:      authors,
		Contributors: contributors,
		Entries:      fromNative(feed.Items, EntryFromRSS),
		Language:     feed.Language,
		Docs:         feed.Docs,
		Rating:       feed.Rating,
		TTL:          feed.TTL,
		SkipHours:    slices.Clone(feed.SkipHours),
		SkipDays:     slices.Clone(feed.SkipDays),
		TextInput:    textInput,
	}
	f.source = newFeedSource(f, rssFeedData{feed: feed})
	return f
}

// ToAtom returns the Atom feed f was parsed from when neither f nor any of
// its entries were modified. Otherwise it builds a new document, using the
// current time when Updated is nil. A nil Feed yields nil.
func (f *Feed) ToAtom() *atom.Feed {
	if f == nil {
		return nil
	}
	if native, ok := f.nativeAtom(); ok {
		return native
	}

	updated := now().UTC()
	if f.Updated != nil {
		updated = f.Updated.UTC()
	}

	var logo string
	if f.Image != nil {
		logo = f.Image.ToAtom()
	}

	var generator *atom.Generator
	if f.Generator != nil {
		generator = f.Generator.ToAtom()
	}

	entries := make([]*atom.Entry, 0, len(f.Entries))
	for _, entry := range f.Entries {
		if entry != nil {
			entries = append(entries, entry.ToAtom())
		}
	}

	return &atom.Feed{
		Title:         f.Title,
		ID:            f.ID,
		Updated:       formatRFC3339(updated),
		UpdatedParsed: &updated,
		Subtitle:      f.Description,
		Links:         toNative(f.Links, Link.ToAtom),
		Language:      f.Language,
		Generator:     generator,
		Icon:          f.Icon,
		Logo:          logo,
		Rights:        f.Copyright,
		Contributors:  toNative(f.Contributors, Person.ToAtom),
		Authors:       toNative(f.Authors, Person.ToAtom),
		Categories:    toNative(f.Categories, Category.ToAtom),
		Entries:       entries,
		Version:       "1.0",
	}
}

// ToRSS returns the RSS channel f was parsed from when neither f nor any of
// its entries were modified. Otherwise it builds a new channel; only the
// first link, author and contributor are kept. A nil Feed yields nil.
func (f *Feed) ToRSS() *rss.Feed {
	if f == nil {
		return nil
	}
	if native, ok := f.nativeRSS(); ok {
		return native
	}

	var lastBuildDate string
	var lastBuildDateParsed *time.Time
	if f.Updated != nil {
		updated := f.Updated.UTC()
		lastBuildDate = formatRFC2822(updated)
		lastBuildDateParsed = &updated
	}

	var generator string
	if f.Generator != nil {
		generator = f.Generator.ToRSS()
	}

	var image *rss.Image
	if f.Image != nil {
		image = f.Image.ToRSS()
	}

	var textInput *rss.TextInput
	if f.TextInput != nil {
		textInput = f.TextInput.ToRSS()
	}

	items := make([]*rss.Item, 0, len(f.Entries))
	for _, entry := range f.Entries {
		if entry != nil {
			items = append(items, entry.ToRSS())
		}
	}

	return &rss.Feed{
		Title:               f.Title,
		Link:                firstHref(f.Links),
		Description:         f.Description,
		Language:            f.Language,
		Copyright:           f.Copyright,
		ManagingEditor:      firstPerson(f.Authors),
		WebMaster:           firstPerson(f.Contributors),
		PubDate:             "",
		PubDateParsed:       nil,
		LastBuildDate:       lastBuildDate,
		LastBuildDateParsed: lastBuildDateParsed,
		Categories:          toNative(f.Categories, Category.ToRSS),
		Generator:           generator,
		Docs:                f.Docs,
		TTL:                 f.TTL,
		Image:               image,
		Rating:              f.Rating,
		SkipHours:           slices.Clone(f.SkipHours),
		SkipDays:            slices.Clone(f.SkipDays),
		Cloud:               nil,
		TextInput:           textInput,
		Items:               items,
		Version:             "2.0",
	}
}
