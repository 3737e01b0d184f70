package people

import (
	"fmt"
	"sort"
)

// Add returns a new list holding list plus the given person, stably sorted by
// zodiac sign. The caller's slice is left untouched. Unparseable date text
// fails the whole call.
func Add(list []Person, name, surname, dateOfBirth, zodiacSign string) ([]Person, error) {
	if name == "" || surname == "" {
		return nil, fmt.Errorf("%w: name and surname must not be empty", ErrValidation)
	}
	dob, err := ParseDate(dateOfBirth)
	if err != nil {
		return nil, err
	}

	out := make([]Person, 0, len(list)+1)
	out = append(out, list...)
	out = append(out, Person{
		Name:        name,
		Surname:     surname,
		DateOfBirth: dob,
		ZodiacSign:  zodiacSign,
	})
	SortByZodiac(out)
	return out, nil
}

// SortByZodiac orders list by zodiac sign in place, keeping the relative order
// of equal signs.
func SortByZodiac(list []Person) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].ZodiacSign < list[j].ZodiacSign
	})
}

// Match is one hit of SelectByMonth.
type Match struct {
	Count  int // running 1-based count among matches
	Person Person
}

// SelectByMonth returns, in list order, the people born in month.
// The month is not range-checked; an impossible month matches nothing.
func SelectByMonth(list []Person, month int) []Match {
	var matches []Match
	for _, p := range list {
		if int(p.DateOfBirth.Month()) == month {
			matches = append(matches, Match{Count: len(matches) + 1, Person: p})
		}
	}
	return matches
}
