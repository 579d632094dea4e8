package models

// FieldType distinguishes how a measurement field is evaluated.
type FieldType string

const (
	FieldNumeric FieldType = "numeric"
	FieldEnum    FieldType = "enum"
)

// EnumPassValue is the single passing value of an enumerated field.
const EnumPassValue = "OK"

// MeasurementField defines one measurement of an item's inspection template.
// Numeric fields carry spec limits and precision; enum fields carry the
// allowed value set. Fields are defined once per item code at startup and
// never change afterwards.
type MeasurementField struct {
	ID         string    `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	Unit       string    `json:"unit" yaml:"unit"`
	LSL        float64   `json:"lsl" yaml:"lsl"`
	USL        float64   `json:"usl" yaml:"usl"`
	Precision  float64   `json:"precision" yaml:"precision"`
	Type       FieldType `json:"type" yaml:"type"`
	EnumValues []string  `json:"enum_values,omitempty" yaml:"enum_values,omitempty"`
}

// EvaluationResult classifies a recorded value against its field definition.
type EvaluationResult string

const (
	ResultPass EvaluationResult = "pass"
	ResultFail EvaluationResult = "fail"
	// ResultPending means no value entered yet, or the value could not be
	// interpreted for the field's type. It never counts as a failure.
	ResultPending EvaluationResult = "pending"
)
