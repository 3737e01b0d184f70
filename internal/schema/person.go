package schema

import (
	"regexp"

	"github.com/xeipuuv/gojsonschema"
)

// DottedDateFormat is the format name for DD.MM.YYYY strings.
const DottedDateFormat = "dotted-date"

var dottedDateRe = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

// dottedDateChecker only checks the shape of the text. Whether the day
// exists in that month is left to the date parser.
type dottedDateChecker struct{}

func (dottedDateChecker) IsFormat(input interface{}) bool {
	s, ok := input.(string)
	if !ok {
		// non-strings are reported by the "type" keyword
		return true
	}
	return dottedDateRe.MatchString(s)
}

func init() {
	gojsonschema.FormatCheckers.Add(DottedDateFormat, dottedDateChecker{})
}

// Person is the structural contract every stored person record must meet.
var Person = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name":          map[string]any{"type": "string"},
		"surname":       map[string]any{"type": "string"},
		"date_of_birth": map[string]any{"type": "string", "format": DottedDateFormat},
		"zodiac_sign":   map[string]any{"type": "string"},
	},
	"required": []string{"name", "surname", "date_of_birth", "zodiac_sign"},
}
