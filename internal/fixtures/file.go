package fixtures

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tOgg1/flowstate/internal/models"
)

// ErrUnsupportedFormat is returned for fixture files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported fixture format")

// fixtureFile is the on-disk shape of a YAML or JSON fixture.
type fixtureFile struct {
	Emails []models.EmailThread   `json:"emails" yaml:"emails"`
	Events []models.CalendarEvent `json:"events" yaml:"events"`
	Tasks  []models.QuickTask     `json:"tasks" yaml:"tasks"`
}

// ReadFile reads a YAML (.yaml, .yml) or JSON (.json) fixture file.
// Records are not validated here; Load does that.
func ReadFile(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read fixture %s: %w", path, err)
	}

	var ds Dataset
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		ds, err = DecodeYAML(bytes.NewReader(data))
	case ".json":
		ds, err = DecodeJSON(bytes.NewReader(data))
	default:
		return Dataset{}, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return Dataset{}, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return ds, nil
}

// DecodeYAML decodes a fixture document. Unknown keys are an error.
func DecodeYAML(r io.Reader) (Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file fixtureFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return Dataset{}, nil
		}
		return Dataset{}, err
	}
	return file.dataset(), nil
}

// DecodeJSON decodes a fixture document. Unknown keys are an error.
func DecodeJSON(r io.Reader) (Dataset, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var file fixtureFile
	if err := dec.Decode(&file); err != nil {
		return Dataset{}, err
	}
	return file.dataset(), nil
}

func (f fixtureFile) dataset() Dataset {
	return Dataset{Emails: f.Emails, Events: f.Events, Tasks: f.Tasks}
}

// WriteYAML encodes ds as a fixture document.
func WriteYAML(w io.Writer, ds Dataset) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fixtureFile{Emails: ds.Emails, Events: ds.Events, Tasks: ds.Tasks}); err != nil {
		return err
	}
	return enc.Close()
}
