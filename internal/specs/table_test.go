package specs

import (
	"os"
	"path/filepath"
	"testing"

	"qc-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTableFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "specs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	table, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"HDPE-COOK-5L", "PET-COOK-1L"}, table.ItemCodes())
}

func TestLoadEmptyPathFallsBackToDefaults(t *testing.T) {
	table, err := Load("")
	require.NoError(t, err)
	assert.Len(t, table.ItemCodes(), 2)
}

func TestLoadValidFile(t *testing.T) {
	path := writeTableFile(t, `
items:
  TEST-1:
    - id: weight
      name: Weight
      unit: g
      lsl: 10.0
      usl: 12.0
      precision: 0.1
      type: numeric
    - id: visual
      name: Visual
      type: enum
      enum_values: [OK, Flash]
`)

	table, err := Load(path)
	require.NoError(t, err)

	fields, err := table.Fields("TEST-1")
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "weight", fields[0].ID)
	assert.Equal(t, 10.0, fields[0].LSL)
	assert.Equal(t, models.FieldEnum, fields[1].Type)

	field, err := table.Field("TEST-1", "visual")
	require.NoError(t, err)
	assert.Equal(t, []string{"OK", "Flash"}, field.EnumValues)
}

func TestLoadRejectsBadTables(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"duplicate field id", `
items:
  X:
    - {id: a, type: numeric, lsl: 1, usl: 2}
    - {id: a, type: numeric, lsl: 1, usl: 2}
`},
		{"lsl above usl", `
items:
  X:
    - {id: a, type: numeric, lsl: 5, usl: 2}
`},
		{"enum without values", `
items:
  X:
    - {id: a, type: enum}
`},
		{"unknown field type", `
items:
  X:
    - {id: a, type: text}
`},
		{"empty field id", `
items:
  X:
    - {type: numeric, lsl: 1, usl: 2}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTableFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestTableLookupErrors(t *testing.T) {
	table := Defaults()

	_, err := table.Fields("NOPE-123")
	assert.ErrorIs(t, err, models.ErrUnknownItemCode)

	_, err = table.Field("PET-COOK-1L", "nonexistent")
	assert.ErrorIs(t, err, models.ErrUnknownField)

	field, err := table.Field("PET-COOK-1L", "neck-od")
	require.NoError(t, err)
	assert.Equal(t, 28.90, field.LSL)
	assert.Equal(t, 29.10, field.USL)
}
