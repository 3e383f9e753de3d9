package syndication

import (
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed/rss"
)

// Guid identifies an entry. IsPermalink reports whether ID is also a URL
// pointing at the entry.
type Guid struct {
	ID          string
	IsPermalink bool
}

// GuidFromID wraps an Atom id. Atom has no permalink flag, so the result
// is marked as a permalink.
func GuidFromID(id string) Guid {
	return Guid{ID: id, IsPermalink: true}
}

// GuidFromRSS treats a missing isPermaLink attribute as true, as RSS 2.0 does.
func GuidFromRSS(guid *rss.GUID) Guid {
	if guid == nil {
		return Guid{}
	}
	return Guid{
		ID:          guid.Value,
		IsPermalink: !strings.EqualFold(strings.TrimSpace(guid.IsPermalink), "false"),
	}
}

func (g Guid) ToRSS() *rss.GUID {
	return &rss.GUID{
		Value:       g.ID,
		IsPermalink: strconv.FormatBool(g.IsPermalink),
	}
}
