package specs

import (
	"strconv"
	"strings"

	"qc-backend/internal/models"
)

// Evaluate classifies a raw entered value against a field definition.
// It is total over its input: any string yields pass, fail or pending,
// never an error.
//
//   - empty input is pending
//   - enum fields pass only on the designated passing value; other allowed
//     values fail; values outside the allowed set are pending (treated as a
//     validation cue, same as unparseable numeric input)
//   - numeric fields pass iff LSL <= value <= USL, both ends inclusive;
//     unparseable input is pending
func Evaluate(field models.MeasurementField, rawValue string) models.EvaluationResult {
	rawValue = strings.TrimSpace(rawValue)
	if rawValue == "" {
		return models.ResultPending
	}

	switch field.Type {
	case models.FieldEnum:
		if rawValue == models.EnumPassValue {
			return models.ResultPass
		}
		for _, v := range field.EnumValues {
			if rawValue == v {
				return models.ResultFail
			}
		}
		return models.ResultPending

	case models.FieldNumeric:
		value, err := strconv.ParseFloat(rawValue, 64)
		if err != nil {
			return models.ResultPending
		}
		if value >= field.LSL && value <= field.USL {
			return models.ResultPass
		}
		return models.ResultFail

	default:
		return models.ResultPending
	}
}

// HasAnyFailure reports whether at least one result is a failure.
// Pending results never count as failures.
func HasAnyFailure(results map[string]models.EvaluationResult) bool {
	for _, r := range results {
		if r == models.ResultFail {
			return true
		}
	}
	return false
}
