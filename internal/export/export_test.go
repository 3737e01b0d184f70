package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/jeanpaul/zodiac/internal/people"
)

func sample() []people.Person {
	return []people.Person{
		{Name: "Anna", Surname: "Lee", ZodiacSign: "Leo", DateOfBirth: time.Date(2001, time.August, 5, 0, 0, 0, 0, time.UTC)},
		{Name: "Мария", Surname: "Иванова", ZodiacSign: "Стрелец", DateOfBirth: time.Date(1985, time.December, 12, 0, 0, 0, 0, time.UTC)},
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.xlsx")
	require.NoError(t, Write(path, "People", sample()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"People"}, f.GetSheetList())
	rows, err := f.GetRows("People")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"№", "Name", "Surname", "Zodiac sign", "Date of birth"}, rows[0])
	assert.Equal(t, []string{"1", "Anna", "Lee", "Leo", "05.08.2001"}, rows[1])
	assert.Equal(t, []string{"2", "Мария", "Иванова", "Стрелец", "12.12.1985"}, rows[2])
}

func TestWriteXLSX_BadSheetName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.xlsx")
	assert.Error(t, WriteXLSX(path, "bad[name]", sample()))
}

func TestWriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.yml")
	require.NoError(t, Write(path, "People", sample()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "date_of_birth:")

	var got []people.Record
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, people.Records(sample()), got)
}

func TestWrite_EmptyYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.yaml")
	require.NoError(t, Write(path, "People", nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestWrite_Unsupported(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "people.csv"), "People", sample())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
