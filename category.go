package syndication

import (
	"github.com/mmcdole/gofeed/atom"
	"github.com/mmcdole/gofeed/rss"
)

// Category is a tag attached to a feed or entry.
type Category struct {
	Term   string
	Scheme string
	Label  string
}

func CategoryFromAtom(category *atom.Category) Category {
	if category == nil {
		return Category{}
	}
	return Category{
		Term:   category.Term,
		Scheme: category.Scheme,
		Label:  category.Label,
	}
}

// CategoryFromRSS maps the RSS value and domain. RSS has no label, and the
// term is not copied into it.
func CategoryFromRSS(category *rss.Category) Category {
	if category == nil {
		return Category{}
	}
	return Category{
		Term:   category.Value,
		Scheme: category.Domain,
	}
}

func (c Category) ToAtom() *atom.Category {
	return &atom.Category{
		Term:   c.Term,
		Scheme: c.Scheme,
		Label:  c.Label,
	}
}

// ToRSS drops the label.
func (c Category) ToRSS() *rss.Category {
	return &rss.Category{
		Value:  c.Term,
		Domain: c.Scheme,
	}
}
