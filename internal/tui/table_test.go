package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jeanpaul/zodiac/internal/people"
)

func person(name, surname, sign string, day, month int) people.Person {
	return people.Person{
		Name:        name,
		Surname:     surname,
		ZodiacSign:  sign,
		DateOfBirth: time.Date(1990, time.Month(month), day, 0, 0, 0, 0, time.UTC),
	}
}

func TestPeopleTable(t *testing.T) {
	out := PeopleTable([]people.Person{
		person("Anna", "Lee", "Leo", 5, 8),
		person("Мария", "Иванова", "Стрелец", 12, 12),
	})

	for _, want := range []string{"№", "Name", "Surname", "Zodiac sign", "Date of birth",
		"Anna", "Lee", "Leo", "05.08.1990", "Мария", "Иванова", "Стрелец", "12.12.1990"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Anna"), strings.Index(out, "Мария"))

	lines := strings.Split(out, "\n")
	var indexed []string
	for _, l := range lines {
		if strings.Contains(l, "Anna") || strings.Contains(l, "Мария") {
			indexed = append(indexed, l)
		}
	}
	if assert.Len(t, indexed, 2) {
		assert.Contains(t, indexed[0], "1")
		assert.Contains(t, indexed[1], "2")
	}
}

func TestPeopleTable_Empty(t *testing.T) {
	out := PeopleTable(nil)
	assert.Contains(t, out, "Name")
	assert.NotContains(t, out, "01.01")
}

func TestMonthMatches(t *testing.T) {
	out := MonthMatches([]people.Match{
		{Count: 1, Person: person("May", "Two", "Taurus", 3, 5)},
		{Count: 2, Person: person("May", "Three", "Gemini", 28, 5)},
	})

	lines := strings.Split(out, "\n")
	if assert.Len(t, lines, 2) {
		assert.Contains(t, lines[0], "   1:")
		assert.Contains(t, lines[0], "May Two")
		assert.Contains(t, lines[1], "   2:")
		assert.Contains(t, lines[1], "May Three")
	}
	assert.NotContains(t, out, NoMatchesMessage)
}

func TestMonthMatches_None(t *testing.T) {
	assert.Contains(t, MonthMatches(nil), NoMatchesMessage)
}

func TestLoadSummary(t *testing.T) {
	clean := LoadSummary("people.json", people.LoadReport{People: []people.Person{person("A", "B", "Leo", 1, 8)}})
	assert.Contains(t, clean, "people.json: 1 valid, 0 skipped")

	dirty := LoadSummary("people.json", people.LoadReport{
		Skipped: []people.Skipped{{Index: 2, Err: errors.New("bad date")}},
	})
	assert.Contains(t, dirty, "0 valid, 1 skipped")
	assert.Contains(t, dirty, "record 3: bad date")
}
