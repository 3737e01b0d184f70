package people

import (
	"fmt"
	"time"
)

// DateLayout is the DD.MM.YYYY form used on disk and on screen.
const DateLayout = "02.01.2006"

// Person is one entry of the managed list.
type Person struct {
	Name        string
	Surname     string
	DateOfBirth time.Time
	ZodiacSign  string
}

// Record is the on-disk shape of a Person.
type Record struct {
	Name        string `json:"name" yaml:"name"`
	Surname     string `json:"surname" yaml:"surname"`
	DateOfBirth string `json:"date_of_birth" yaml:"date_of_birth"`
	ZodiacSign  string `json:"zodiac_sign" yaml:"zodiac_sign"`
}

// ParseDate parses DD.MM.YYYY text. Impossible days such as 31.02 are rejected.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a DD.MM.YYYY date", ErrDateParse, s)
	}
	return t, nil
}

// FormatDate renders t as DD.MM.YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Record converts p to its persisted form.
func (p Person) Record() Record {
	return Record{
		Name:        p.Name,
		Surname:     p.Surname,
		DateOfBirth: FormatDate(p.DateOfBirth),
		ZodiacSign:  p.ZodiacSign,
	}
}

// FullName is "name surname".
func (p Person) FullName() string {
	return p.Name + " " + p.Surname
}

// Records converts a whole list, never returning nil.
func Records(list []Person) []Record {
	out := make([]Record, 0, len(list))
	for _, p := range list {
		out = append(out, p.Record())
	}
	return out
}
