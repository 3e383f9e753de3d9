package syndication

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// now is replaced in tests.
var now = time.Now

// RFC 2822 variants seen in the wild, tried before the lenient parser.
var rfc2822Layouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04 -0700",
	"Mon, 2 Jan 2006 15:04 MST",
}

func parseRFC3339(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

func parseRFC2822(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range rfc2822Layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}

	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// optionalTime returns a pointer to t, or nil when ok is false.
func optionalTime(t time.Time, ok bool) *time.Time {
	if !ok {
		return nil
	}
	return &t
}

func formatRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatRFC2822(t time.Time) string {
	return t.UTC().Format(time.RFC1123Z)
}
