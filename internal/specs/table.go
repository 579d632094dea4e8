package specs

import (
	"fmt"
	"os"
	"sort"

	"qc-backend/internal/models"

	"gopkg.in/yaml.v3"
)

// Table maps item codes to their ordered measurement field lists. It is
// built once at startup and read-only afterwards, so lookups need no
// synchronization.
type Table struct {
	fields map[string][]models.MeasurementField
}

type tableFile struct {
	Items map[string][]models.MeasurementField `yaml:"items"`
}

// Load reads a specification table from a YAML file. A missing file is not
// an error; the built-in defaults are returned so the binary works without
// a config directory.
func Load(path string) (*Table, error) {
	if path == "" {
		return Defaults(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("read spec table: %w", err)
	}

	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse spec table: %w", err)
	}

	t := &Table{fields: file.Items}
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("spec table %s: %w", path, err)
	}
	return t, nil
}

func (t *Table) validate() error {
	for code, fields := range t.fields {
		seen := make(map[string]bool, len(fields))
		for _, f := range fields {
			if f.ID == "" {
				return fmt.Errorf("item %s: field with empty id", code)
			}
			if seen[f.ID] {
				return fmt.Errorf("item %s: duplicate field id %s", code, f.ID)
			}
			seen[f.ID] = true

			switch f.Type {
			case models.FieldNumeric:
				if f.LSL > f.USL {
					return fmt.Errorf("item %s field %s: lsl %v above usl %v", code, f.ID, f.LSL, f.USL)
				}
			case models.FieldEnum:
				if len(f.EnumValues) == 0 {
					return fmt.Errorf("item %s field %s: enum field without values", code, f.ID)
				}
			default:
				return fmt.Errorf("item %s field %s: unknown type %q", code, f.ID, f.Type)
			}
		}
	}
	return nil
}

// Fields returns the ordered field list for an item code.
func (t *Table) Fields(itemCode string) ([]models.MeasurementField, error) {
	fields, ok := t.fields[itemCode]
	if !ok {
		return nil, models.ErrUnknownItemCode
	}
	return fields, nil
}

// Field looks up a single field definition by item code and field id.
func (t *Table) Field(itemCode, fieldID string) (models.MeasurementField, error) {
	fields, err := t.Fields(itemCode)
	if err != nil {
		return models.MeasurementField{}, err
	}
	for _, f := range fields {
		if f.ID == fieldID {
			return f, nil
		}
	}
	return models.MeasurementField{}, models.ErrUnknownField
}

// ItemCodes lists the known item codes, sorted.
func (t *Table) ItemCodes() []string {
	codes := make([]string, 0, len(t.fields))
	for code := range t.fields {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Defaults returns the compiled-in specification tables for the two bottle
// items the plant currently runs.
func Defaults() *Table {
	return &Table{fields: map[string][]models.MeasurementField{
		"PET-COOK-1L": {
			{ID: "neck-od", Name: "Neck OD", Unit: "mm", LSL: 28.90, USL: 29.10, Precision: 0.01, Type: models.FieldNumeric},
			{ID: "weight", Name: "Weight", Unit: "g", LSL: 18.8, USL: 19.4, Precision: 0.1, Type: models.FieldNumeric},
			{ID: "wall-thickness", Name: "Wall Thickness", Unit: "mm", LSL: 0.40, USL: 0.55, Precision: 0.01, Type: models.FieldNumeric},
			{ID: "visual-defects", Name: "Visual Defects", Precision: 1, Type: models.FieldEnum,
				EnumValues: []string{"OK", "Short Shot", "Flash", "Deform"}},
		},
		"HDPE-COOK-5L": {
			{ID: "neck-od", Name: "Neck OD", Unit: "mm", LSL: 42.80, USL: 43.20, Precision: 0.01, Type: models.FieldNumeric},
			{ID: "weight", Name: "Weight", Unit: "g", LSL: 95.0, USL: 105.0, Precision: 0.5, Type: models.FieldNumeric},
			{ID: "wall-thickness", Name: "Wall Thickness", Unit: "mm", LSL: 0.80, USL: 1.20, Precision: 0.01, Type: models.FieldNumeric},
			{ID: "visual-defects", Name: "Visual Defects", Precision: 1, Type: models.FieldEnum,
				EnumValues: []string{"OK", "Short Shot", "Flash", "Sink Mark"}},
		},
	}}
}
