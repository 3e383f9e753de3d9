// Package report summarizes a syndication.Feed for display.
package report

import (
	"fmt"
	"time"

	"github.com/lysyi3m/syndication"
	"gopkg.in/yaml.v3"
)

// New builds a Report from feed. Timestamps are rendered as RFC 3339 in UTC.
func New(feed *syndication.Feed) Report {
	r := Report{
		Format:      feed.SourceFormat(),
		ID:          feed.ID,
		Title:       feed.Title,
		Description: feed.Description,
		Language:    feed.Language,
		EntryCount:  len(feed.Entries),
	}

	if feed.Updated != nil {
		r.Updated = formatTime(*feed.Updated)
	}
	if feed.Generator != nil {
		r.Generator = feed.Generator.Name
	}

	for _, link := range feed.Links {
		r.Links = append(r.Links, link.Href)
	}
	r.Authors = people(feed.Authors)
	r.Categories = categories(feed.Categories)

	for _, entry := range feed.Entries {
		if entry == nil {
			continue
		}
		r.Entries = append(r.Entries, newEntry(entry))
	}

	return r
}

func newEntry(entry *syndication.Entry) Entry {
	e := Entry{
		Title:      entry.Title,
		Updated:    formatTime(entry.Updated),
		Authors:    people(entry.Authors),
		Categories: categories(entry.Categories),
		HasSummary: entry.Summary != "",
		HasContent: entry.Content != "",
	}

	if entry.ID != nil {
		e.ID = entry.ID.ID
	}
	if entry.Published != nil {
		e.Published = formatTime(*entry.Published)
	}
	if len(entry.Links) > 0 {
		e.Link = entry.Links[0].Href
	}

	return e
}

// YAML renders r as a YAML document.
func (r Report) YAML() (string, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	return string(data), nil
}

func people(persons []syndication.Person) []string {
	var out []string
	for _, p := range persons {
		if s := p.ToRSS(); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func categories(cats []syndication.Category) []string {
	var out []string
	for _, c := range cats {
		out = append(out, c.Term)
	}
	return out
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
