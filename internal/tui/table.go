package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jeanpaul/zodiac/internal/people"
)

// NoMatchesMessage is shown by MonthMatches when nobody was born in the month.
const NoMatchesMessage = "No people born in the given month were found."

// PeopleTable renders the list with a 1-based index column.
func PeopleTable(list []people.Person) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(BorderStyle).
		Headers("№", "Name", "Surname", "Zodiac sign", "Date of birth").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case col == 0:
				return IndexStyle
			default:
				return CellStyle
			}
		})

	for i, p := range list {
		t.Row(
			strconv.Itoa(i+1),
			p.Name,
			p.Surname,
			p.ZodiacSign,
			people.FormatDate(p.DateOfBirth),
		)
	}
	return t.String()
}

// MonthMatches renders one "count: name surname" line per match, or the
// not-found message when matches is empty.
func MonthMatches(matches []people.Match) string {
	if len(matches) == 0 {
		return HelpStyle.Render(NoMatchesMessage)
	}

	var b strings.Builder
	for i, m := range matches {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(CountStyle.Render(fmt.Sprintf("%4d:", m.Count)))
		b.WriteString(" ")
		b.WriteString(NameStyle.Render(m.Person.FullName()))
	}
	return b.String()
}

// LoadSummary renders the outcome of inspecting a data file.
func LoadSummary(path string, report people.LoadReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d valid, %d skipped", path, len(report.People), len(report.Skipped))
	if len(report.Skipped) == 0 {
		return SuccessStyle.Render(b.String())
	}

	lines := []string{WarnStyle.Render(b.String())}
	for _, sk := range report.Skipped {
		lines = append(lines, ErrorStyle.Render(fmt.Sprintf("  record %d: %v", sk.Index+1, sk.Err)))
	}
	return strings.Join(lines, "\n")
}
