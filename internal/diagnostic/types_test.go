package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	d := New(map[string]string{"missing_constraints": "add read, write or static"})

	assert.False(t, d.HasErrors())
	require.NoError(t, d.Err())

	d.Warnf("power", "object", "legacy_address", "deprecated addressing")
	assert.False(t, d.HasErrors())

	d.Errorf("power", "constraints", "missing_constraints", "constraints are required")
	d.Errorf("speed", "", "missing_address", "no address for %q", "speed")
	assert.True(t, d.HasErrors())

	err := d.Err()
	require.Error(t, err)
	assert.Equal(t,
		"[power] constraints: [missing_constraints] constraints are required\n[speed]: [missing_address] no address for \"speed\"",
		err.Error())

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, "add read, write or static", all[0].Hint)
	assert.Equal(t, SeverityWarning, all[2].Severity)
	assert.Empty(t, all[2].Hint)

	require.Len(t, d.Errors(), 2)
	require.Len(t, d.Warnings(), 1)
}

func TestDiagnostics_ByBinding(t *testing.T) {
	d := New(nil)
	d.Warnf("power", "type", "missing_type", "no type")
	d.Errorf("speed", "topic", "invalid_topic", "bad topic")
	d.Errorf("power", "converter", "unknown_converter", "no converter")

	assert.Equal(t, []string{"power", "speed"}, d.Bindings())

	power := d.For("power")
	require.Len(t, power, 2)
	assert.Equal(t, "unknown_converter", power[0].Code)
	assert.Equal(t, "missing_type", power[1].Code)

	assert.Empty(t, d.For("mode"))
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		d    Diagnostic
		want string
	}{
		{Diagnostic{Code: "c", Binding: "b", Field: "f", Message: "m"}, "[b] f: [c] m"},
		{Diagnostic{Code: "c", Binding: "b", Message: "m"}, "[b]: [c] m"},
		{Diagnostic{Field: "f", Message: "m"}, "f: m"},
		{Diagnostic{Code: "mapping_is_nil", Message: "mapping is nil"}, "[mapping_is_nil] mapping is nil"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.d.String())
		assert.Equal(t, tt.want, tt.d.Error())
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(0).String())
}
