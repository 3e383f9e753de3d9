package syndication

import (
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed/atom"
)

// Person is an author or contributor.
type Person struct {
	Name  string
	URI   string
	Email string
}

// PersonFromName returns a Person with only Name set. RSS author, managing
// editor and webmaster strings are wrapped this way without further parsing.
func PersonFromName(name string) Person {
	return Person{Name: name}
}

func PersonFromAtom(person *atom.Person) Person {
	if person == nil {
		return Person{}
	}
	return Person{
		Name:  person.Name,
		URI:   person.URI,
		Email: person.Email,
	}
}

func (p Person) ToAtom() *atom.Person {
	return &atom.Person{
		Name:  p.Name,
		URI:   p.URI,
		Email: p.Email,
	}
}

// ToRSS renders the person in the RSS "email (name)" form, or whichever of
// the two is present.
func (p Person) ToRSS() string {
	name := strings.TrimSpace(p.Name)
	email := strings.TrimSpace(p.Email)

	if name != "" && email != "" {
		return fmt.Sprintf("%s (%s)", email, name)
	} else if name != "" {
		return name
	} else if email != "" {
		return email
	}

	return ""
}

func firstPerson(people []Person) string {
	if len(people) == 0 {
		return ""
	}
	return people[0].ToRSS()
}
