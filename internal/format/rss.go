package format

import (
	"github.com/mmcdole/gofeed/rss"
)

const contentNamespace = "http://purl.org/rss/1.0/modules/content/"

// RSSString writes feed as an RSS 2.0 document regardless of the version it
// was parsed from. The channel title, link and description are always present.
func RSSString(feed *rss.Feed) string {
	if feed == nil {
		feed = &rss.Feed{}
	}

	w := &writer{}
	w.buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	w.buf.WriteString("\n")
	w.open("rss", 0, attr{"version", "2.0"}, attr{"xmlns:content", contentNamespace})
	w.open("channel", 2)

	w.text("title", feed.Title, 4)
	w.text("link", feed.Link, 4)
	w.text("description", feed.Description, 4)

	w.element("language", feed.Language, 4)
	w.element("copyright", feed.Copyright, 4)
	w.element("managingEditor", feed.ManagingEditor, 4)
	w.element("webMaster", feed.WebMaster, 4)
	w.element("pubDate", feed.PubDate, 4)
	w.element("lastBuildDate", feed.LastBuildDate, 4)
	writeRSSCategories(w, feed.Categories, 4)
	w.element("generator", feed.Generator, 4)
	w.element("docs", feed.Docs, 4)

	if cloud := feed.Cloud; cloud != nil {
		w.empty("cloud", 4,
			attr{"domain", cloud.Domain},
			attr{"port", cloud.Port},
			attr{"path", cloud.Path},
			attr{"registerProcedure", cloud.RegisterProcedure},
			attr{"protocol", cloud.Protocol})
	}

	w.element("ttl", feed.TTL, 4)

	if image := feed.Image; image != nil {
		w.open("image", 4)
		w.text("url", image.URL, 6)
		w.text("title", image.Title, 6)
		w.text("link", image.Link, 6)
		w.element("width", image.Width, 6)
		w.element("height", image.Height, 6)
		w.element("description", image.Description, 6)
		w.close("image", 4)
	}

	w.element("rating", feed.Rating, 4)

	if input := feed.TextInput; input != nil {
		w.open("textInput", 4)
		w.text("title", input.Title, 6)
		w.text("description", input.Description, 6)
		w.text("name", input.Name, 6)
		w.text("link", input.Link, 6)
		w.close("textInput", 4)
	}

	if len(feed.SkipHours) > 0 {
		w.open("skipHours", 4)
		for _, hour := range feed.SkipHours {
			w.element("hour", hour, 6)
		}
		w.close("skipHours", 4)
	}

	if len(feed.SkipDays) > 0 {
		w.open("skipDays", 4)
		for _, day := range feed.SkipDays {
			w.element("day", day, 6)
		}
		w.close("skipDays", 4)
	}

	for _, item := range feed.Items {
		if item != nil {
			writeRSSItem(w, item)
		}
	}

	w.close("channel", 2)
	w.close("rss", 0)
	return w.String()
}

func writeRSSItem(w *writer, item *rss.Item) {
	w.open("item", 4)

	w.element("title", item.Title, 6)
	w.element("link", item.Link, 6)
	w.element("description", item.Description, 6)
	w.cdata("content:encoded", item.Content, 6)
	w.element("author", item.Author, 6)
	writeRSSCategories(w, item.Categories, 6)
	w.element("comments", item.Comments, 6)

	enclosures := item.Enclosures
	if len(enclosures) == 0 && item.Enclosure != nil {
		enclosures = []*rss.Enclosure{item.Enclosure}
	}
	for _, enclosure := range enclosures {
		if enclosure == nil || enclosure.URL == "" {
			continue
		}
		w.empty("enclosure", 6,
			attr{"url", enclosure.URL},
			attr{"length", enclosure.Length},
			attr{"type", enclosure.Type})
	}

	if guid := item.GUID; guid != nil && guid.Value != "" {
		w.text("guid", guid.Value, 6, attr{"isPermaLink", guid.IsPermalink})
	}

	w.element("pubDate", item.PubDate, 6)

	if source := item.Source; source != nil && source.URL != "" {
		w.text("source", source.Title, 6, attr{"url", source.URL})
	}

	w.close("item", 4)
}

func writeRSSCategories(w *writer, categories []*rss.Category, indent int) {
	for _, category := range categories {
		if category == nil || category.Value == "" {
			continue
		}
		w.text("category", category.Value, indent, attr{"domain", category.Domain})
	}
}
