package syndication

import (
	"github.com/mmcdole/gofeed/atom"
)

// Generator identifies the software that produced a feed.
type Generator struct {
	Name    string
	URI     string
	Version string
}

// GeneratorFromName wraps the bare RSS generator string.
func GeneratorFromName(name string) Generator {
	return Generator{Name: name}
}

func GeneratorFromAtom(generator *atom.Generator) Generator {
	if generator == nil {
		return Generator{}
	}
	return Generator{
		Name:    generator.Value,
		URI:     generator.URI,
		Version: generator.Version,
	}
}

func (g Generator) ToAtom() *atom.Generator {
	return &atom.Generator{
		Value:   g.Name,
		URI:     g.URI,
		Version: g.Version,
	}
}

// ToRSS returns the name. URI and version have no RSS equivalent.
func (g Generator) ToRSS() string {
	return g.Name
}
