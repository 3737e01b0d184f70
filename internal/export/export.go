// Package export writes a list of people to spreadsheet and YAML files.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/jeanpaul/zodiac/internal/people"
)

// ErrUnsupportedFormat is returned for output names with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported export format")

var header = []interface{}{"№", "Name", "Surname", "Zodiac sign", "Date of birth"}

// Write exports list to path, choosing the format from the extension:
// .xlsx, .yaml or .yml. sheet names the worksheet of an xlsx export.
func Write(path, sheet string, list []people.Person) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return WriteXLSX(path, sheet, list)
	case ".yaml", ".yml":
		return WriteYAML(path, list)
	default:
		return fmt.Errorf("%w: %q (want .xlsx, .yaml or .yml)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// WriteXLSX writes a workbook with a single sheet: a header row and one row
// per person, dates as DD.MM.YYYY text.
func WriteXLSX(path, sheet string, list []people.Person) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("sheet name %q: %w", sheet, err)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, p := range list {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{i + 1, p.Name, p.Surname, p.ZodiacSign, people.FormatDate(p.DateOfBirth)}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheet, "B", "E", 20); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteYAML writes the list as a YAML sequence using the same keys as the
// JSON data file.
func WriteYAML(path string, list []people.Person) error {
	data, err := yaml.Marshal(people.Records(list))
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
