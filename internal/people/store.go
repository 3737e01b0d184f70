package people

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jeanpaul/zodiac/internal/schema"
)

// Store reads and writes a list of people kept in one JSON file.
// The file is opened, fully read or written, and closed within each call.
type Store struct {
	path      string
	validator *schema.Validator
	logger    *zap.Logger
}

// Skipped describes an array element that did not survive loading.
type Skipped struct {
	Index int // position in the JSON array, 0-based
	Err   error
}

// LoadReport is the outcome of reading a data file.
type LoadReport struct {
	People  []Person
	Skipped []Skipped
}

// NewStore creates a store for the file at path. A nil logger discards output.
func NewStore(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		path:      path,
		validator: schema.NewValidator(),
		logger:    logger,
	}
}

// Path returns the data file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the people stored in the file, in file order.
// A missing file yields an empty list. Records that fail the schema or carry
// an impossible date are skipped with a warning; a file that is not a JSON
// array fails the whole load with ErrMalformedFile.
func (s *Store) Load() ([]Person, error) {
	report, err := s.Inspect()
	if err != nil {
		return nil, err
	}

	for _, sk := range report.Skipped {
		msg := "skipping invalid person record"
		if errors.Is(sk.Err, ErrDateParse) {
			msg = "skipping person record with unparseable date of birth"
		}
		s.logger.Warn(msg,
			zap.String("file", s.path),
			zap.Int("index", sk.Index),
			zap.Error(sk.Err),
		)
	}

	s.logger.Debug("loaded people",
		zap.String("file", s.path),
		zap.Int("count", len(report.People)),
		zap.Int("skipped", len(report.Skipped)),
	)
	return report.People, nil
}

// Inspect reads the file like Load but reports skipped records instead of
// logging them.
func (s *Store) Inspect() (LoadReport, error) {
	report := LoadReport{People: []Person{}}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return report, nil
		}
		return LoadReport{}, fmt.Errorf("read %s: %w", s.path, err)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return LoadReport{}, fmt.Errorf("%w: %s: %v", ErrMalformedFile, s.path, err)
	}
	if elems == nil {
		return LoadReport{}, fmt.Errorf("%w: %s: top level is null, want an array", ErrMalformedFile, s.path)
	}

	for i, elem := range elems {
		p, err := s.decode(elem)
		if err != nil {
			report.Skipped = append(report.Skipped, Skipped{Index: i, Err: err})
			continue
		}
		report.People = append(report.People, p)
	}
	return report, nil
}

// decode runs the schema gate on the untyped element and only then builds
// the typed Person.
func (s *Store) decode(elem json.RawMessage) (Person, error) {
	var raw any
	if err := json.Unmarshal(elem, &raw); err != nil {
		return Person{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := s.validator.Validate(schema.Person, raw); err != nil {
		return Person{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	fields := raw.(map[string]any)
	dob, err := ParseDate(fields["date_of_birth"].(string))
	if err != nil {
		return Person{}, err
	}
	return Person{
		Name:        fields["name"].(string),
		Surname:     fields["surname"].(string),
		DateOfBirth: dob,
		ZodiacSign:  fields["zodiac_sign"].(string),
	}, nil
}

// Save overwrites the file with the whole list as an indented JSON array.
// Non-ASCII text is written as is.
func (s *Store) Save(list []Person) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(Records(list)); err != nil {
		return fmt.Errorf("encode people: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}

	s.logger.Debug("saved people", zap.String("file", s.path), zap.Int("count", len(list)))
	return nil
}
