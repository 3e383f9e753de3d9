package syndication

import (
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed/rss"
)

// Image is a feed logo. Width and Height are zero when unknown.
type Image struct {
	URL    string
	Title  string
	Link   string
	Width  int
	Height int
}

func ImageFromRSS(image *rss.Image) Image {
	if image == nil {
		return Image{}
	}
	return Image{
		URL:    image.URL,
		Title:  image.Title,
		Link:   image.Link,
		Width:  parseDimension(image.Width),
		Height: parseDimension(image.Height),
	}
}

// ImageFromAtomLogo builds an Image from an Atom logo URL, borrowing the
// owning feed's title and link. Width and Height stay unset.
func ImageFromAtomLogo(logo, title, link string) Image {
	return Image{
		URL:   logo,
		Title: title,
		Link:  link,
	}
}

// ToAtom returns the logo URL. Atom has nowhere to put the rest.
func (i Image) ToAtom() string {
	return i.URL
}

func (i Image) ToRSS() *rss.Image {
	return &rss.Image{
		URL:    i.URL,
		Title:  i.Title,
		Link:   i.Link,
		Width:  formatDimension(i.Width),
		Height: formatDimension(i.Height),
	}
}

func parseDimension(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func formatDimension(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
