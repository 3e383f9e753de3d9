package syndication

import (
	"testing"
	"time"

	"github.com/mmcdole/gofeed/atom"
	"github.com/mmcdole/gofeed/rss"
)

var fixedNow = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

func fixClock(t *testing.T) {
	t.Helper()
	saved := now
	now = func() time.Time { return fixedNow }
	t.Cleanup(func() { now = saved })
}

func TestEntryFromAtom(t *testing.T) {
	native := &atom.Entry{
		ID:        "urn:uuid:entry-1",
		Title:     "Test Entry",
		Updated:   "2023-07-03T10:00:00Z",
		Published: "2023-07-02T09:00:00+02:00",
		Summary:   "Short",
		Content:   &atom.Content{Type: "html", Value: "<p>Long</p>"},
		Links:     []*atom.Link{{Href: "https://example.com/entry1", Rel: "alternate"}},
		Authors:   []*atom.Person{{Name: "Test Author"}},
		Contributors: []*atom.Person{
			{Name: "Helper One"},
			{Name: "Helper Two"},
		},
		Categories: []*atom.Category{{Term: "go"}},
		Source:     &atom.Source{Title: "Elsewhere"},
	}

	entry := EntryFromAtom(native)

	if entry.ID == nil || *entry.ID != (Guid{ID: "urn:uuid:entry-1", IsPermalink: true}) {
		t.Errorf("Unexpected id: %+v", entry.ID)
	}
	if entry.Title != "Test Entry" {
		t.Errorf("Expected title 'Test Entry', got: %s", entry.Title)
	}
	if !entry.Updated.Equal(time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected updated: %v", entry.Updated)
	}
	if entry.Updated.Location() != time.UTC {
		t.Errorf("Expected UTC updated, got: %v", entry.Updated.Location())
	}
	if entry.Published == nil || !entry.Published.Equal(time.Date(2023, 7, 2, 7, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected published: %v", entry.Published)
	}
	if entry.Summary != "Short" {
		t.Errorf("Expected summary 'Short', got: %s", entry.Summary)
	}
	if entry.Content != "<p>Long</p>" {
		t.Errorf("Expected flattened content, got: %s", entry.Content)
	}
	if len(entry.Links) != 1 || entry.Links[0].Href != "https://example.com/entry1" {
		t.Errorf("Unexpected links: %+v", entry.Links)
	}
	if len(entry.Authors) != 1 || entry.Authors[0].Name != "Test Author" {
		t.Errorf("Unexpected authors: %+v", entry.Authors)
	}
	if len(entry.Contributors) != 2 {
		t.Errorf("Expected 2 contributors, got: %d", len(entry.Contributors))
	}
	if len(entry.Categories) != 1 || entry.Categories[0].Term != "go" {
		t.Errorf("Unexpected categories: %+v", entry.Categories)
	}
	if entry.Comments != "" {
		t.Errorf("Expected no comments, got: %s", entry.Comments)
	}
}

func TestEntryFromAtomDefaultsUpdated(t *testing.T) {
	fixClock(t)

	for _, updated := range []string{"", "yesterday", "2023-07-03 10:00"} {
		entry := EntryFromAtom(&atom.Entry{ID: "x", Updated: updated})
		if !entry.Updated.Equal(fixedNow) {
			t.Errorf("Expected current time for updated %q, got: %v", updated, entry.Updated)
		}
		if entry.Published != nil {
			t.Errorf("Expected no published for %q, got: %v", updated, entry.Published)
		}
	}

	if EntryFromAtom(&atom.Entry{}).ID != nil {
		t.Error("Expected nil id for an entry without id")
	}
}

func TestEntryFromRSS(t *testing.T) {
	native := &rss.Item{
		Title:       "Test Item 1",
		Link:        "https://example.com/item1",
		Description: "Test Item 1 Description",
		Author:      "test@example.com (Test Author)",
		Categories:  []*rss.Category{{Value: "Technology"}, {Value: "Programming"}},
		Comments:    "https://example.com/item1#comments",
		GUID:        &rss.GUID{Value: "item-1", IsPermalink: "false"},
		PubDate:     "Mon, 03 Jul 2023 10:00:00 GMT",
	}

	entry := EntryFromRSS(native)

	if entry.ID == nil || *entry.ID != (Guid{ID: "item-1", IsPermalink: false}) {
		t.Errorf("Unexpected id: %+v", entry.ID)
	}
	want := time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC)
	if !entry.Updated.Equal(want) {
		t.Errorf("Expected updated %v, got: %v", want, entry.Updated)
	}
	if entry.Published == nil || !entry.Published.Equal(want) {
		t.Errorf("Expected published %v, got: %v", want, entry.Published)
	}
	if entry.Summary != "" {
		t.Errorf("Expected empty summary, got: %s", entry.Summary)
	}
	if entry.Content != "Test Item 1 Description" {
		t.Errorf("Expected description as content, got: %s", entry.Content)
	}
	if len(entry.Links) != 1 || entry.Links[0] != LinkFromHref("https://example.com/item1") {
		t.Errorf("Unexpected links: %+v", entry.Links)
	}
	if len(entry.Authors) != 1 || entry.Authors[0] != PersonFromName("test@example.com (Test Author)") {
		t.Errorf("Unexpected authors: %+v", entry.Authors)
	}
	if entry.Contributors != nil {
		t.Errorf("Expected no contributors, got: %+v", entry.Contributors)
	}
	if len(entry.Categories) != 2 {
		t.Errorf("Expected 2 categories, got: %d", len(entry.Categories))
	}
	if entry.Comments != "https://example.com/item1#comments" {
		t.Errorf("Unexpected comments: %s", entry.Comments)
	}
}

func TestEntryFromRSSWithoutDate(t *testing.T) {
	fixClock(t)

	for _, pubDate := range []string{"", "garbage"} {
		entry := EntryFromRSS(&rss.Item{Title: "I", PubDate: pubDate})
		if !entry.Updated.Equal(fixedNow) {
			t.Errorf("Expected current time for pubDate %q, got: %v", pubDate, entry.Updated)
		}
		if entry.Published != nil {
			t.Errorf("Expected no published for pubDate %q, got: %v", pubDate, entry.Published)
		}
		if entry.ID != nil || entry.Links != nil || entry.Authors != nil {
			t.Errorf("Expected empty optional fields, got: %+v", entry)
		}
	}
}

func TestEntryFastPath(t *testing.T) {
	atomEntry := &atom.Entry{ID: "a", Title: "A", Updated: "2023-07-03T10:00:00Z"}
	if got := EntryFromAtom(atomEntry).ToAtom(); got != atomEntry {
		t.Error("Expected the original Atom entry to be returned")
	}

	rssItem := &rss.Item{Title: "R", PubDate: "Mon, 03 Jul 2023 10:00:00 +0000"}
	entry := EntryFromRSS(rssItem)
	if entry.ToRSS() != rssItem {
		t.Error("Expected the original RSS item to be returned")
	}
	if entry.ToRSS() != rssItem {
		t.Error("Expected provenance to be reusable")
	}
}

func TestEntryMutationForcesRebuild(t *testing.T) {
	native := &atom.Entry{
		ID:      "a",
		Title:   "A",
		Updated: "2023-07-03T10:00:00Z",
		Links:   []*atom.Link{{Href: "https://example.com/a"}},
	}

	entry := EntryFromAtom(native)
	entry.Title = "B"
	out := entry.ToAtom()
	if out == native {
		t.Fatal("Expected a rebuilt entry after changing the title")
	}
	if out.Title != "B" {
		t.Errorf("Expected title 'B', got: %s", out.Title)
	}

	entry = EntryFromAtom(native)
	entry.Links[0].Href = "https://example.com/b"
	out = entry.ToAtom()
	if out == native {
		t.Fatal("Expected a rebuilt entry after changing a link in place")
	}
	if out.Links[0].Href != "https://example.com/b" {
		t.Errorf("Expected rebuilt link, got: %s", out.Links[0].Href)
	}
}

func TestEntryCrossFormatUsesSlowPath(t *testing.T) {
	native := &atom.Entry{ID: "a", Title: "A", Updated: "2023-07-03T10:00:00Z"}
	entry := EntryFromAtom(native)

	item := entry.ToRSS()
	if item.GUID == nil || item.GUID.Value != "a" || item.GUID.IsPermalink != "true" {
		t.Errorf("Unexpected guid: %+v", item.GUID)
	}
	if item.PubDate != "Mon, 03 Jul 2023 10:00:00 +0000" {
		t.Errorf("Unexpected pubDate: %s", item.PubDate)
	}

	// The Atom provenance is untouched by the RSS conversion.
	if entry.ToAtom() != native {
		t.Error("Expected the original Atom entry after an RSS conversion")
	}
}

func TestEntryToRSSTruncatesCollections(t *testing.T) {
	entry := &Entry{
		Title:   "Two links",
		Updated: time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC),
		Links: []Link{
			{Href: "https://example.com/1"},
			{Href: "https://example.com/2"},
		},
		Authors: []Person{
			{Name: "First", Email: "first@example.com"},
			{Name: "Second"},
		},
	}

	item := entry.ToRSS()
	if item.Link != "https://example.com/1" {
		t.Errorf("Expected first link, got: %s", item.Link)
	}
	if item.Author != "first@example.com (First)" {
		t.Errorf("Expected first author, got: %s", item.Author)
	}
	if item.GUID != nil {
		t.Errorf("Expected no guid, got: %+v", item.GUID)
	}
}

func TestEntryToAtomDefaults(t *testing.T) {
	updated := time.Date(2023, 7, 3, 10, 0, 0, 0, time.FixedZone("CEST", 2*60*60))
	entry := &Entry{Updated: updated, Content: "Plain"}

	out := entry.ToAtom()
	if out.ID != "" {
		t.Errorf("Expected empty id, got: %s", out.ID)
	}
	if out.Title != "" {
		t.Errorf("Expected empty title, got: %s", out.Title)
	}
	if out.Updated != "2023-07-03T08:00:00Z" {
		t.Errorf("Expected UTC RFC 3339 updated, got: %s", out.Updated)
	}
	if out.Published != "" || out.PublishedParsed != nil {
		t.Errorf("Expected no published, got: %s", out.Published)
	}
	if out.Content == nil || out.Content.Value != "Plain" {
		t.Errorf("Unexpected content: %+v", out.Content)
	}
	if out.Source != nil {
		t.Error("Expected no source")
	}
}

func TestEntryToRSSUsesSummaryWithoutContent(t *testing.T) {
	item := (&Entry{Summary: "Only a summary"}).ToRSS()
	if item.Description != "Only a summary" {
		t.Errorf("Expected summary as description, got: %s", item.Description)
	}

	item = (&Entry{Summary: "Summary", Content: "Content"}).ToRSS()
	if item.Description != "Content" {
		t.Errorf("Expected content as description, got: %s", item.Description)
	}
}

func TestEntryFromNil(t *testing.T) {
	if EntryFromAtom(nil) != nil {
		t.Error("Expected nil entry for nil Atom entry")
	}
	if EntryFromRSS(nil) != nil {
		t.Error("Expected nil entry for nil RSS item")
	}
}
