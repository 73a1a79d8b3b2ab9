package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const heaterMapping = `
node: heater
bindings:
  power:
    topic: properties.power
    type: Boolean
    constraints: [read, write]
  temperature:
    object: sensors
    attribute: temperature
    type: Number
    constraints: read
`

func writeMapping(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mapping.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestStackCmd(t *testing.T) {
	out, _, err := run(t, "stack", "objects.ctrl.enable")
	require.NoError(t, err)
	assert.Equal(t, "[enable attributes ctrl objects objects objects]\n", out)

	out, _, err = run(t, "stack", "--root", "heater", "heater.properties.power")
	require.NoError(t, err)
	assert.Equal(t, "[power attributes properties objects]\n", out)

	_, _, err = run(t, "stack", "a..b")
	require.Error(t, err)
}

func TestCheckCmd(t *testing.T) {
	out, _, err := run(t, "check", writeMapping(t, heaterMapping))
	require.NoError(t, err)
	assert.Contains(t, out, "power")
	assert.Contains(t, out, "sensors/temperature")
	assert.Contains(t, out, "read|write")
	assert.Contains(t, out, "warning: [temperature] object: [legacy_address]")
	assert.Contains(t, out, "0 error(s), 1 warning(s)")
}

func TestCheckCmd_Errors(t *testing.T) {
	path := writeMapping(t, `
bindings:
  power:
    topic: properties.power
    type: Boolean
    constraints: write
    converter: nope
  mode:
    topic: properties.mode
    constraints: write
`)

	out, _, err := run(t, "check", path)
	require.ErrorIs(t, err, errInvalidMapping)
	assert.Contains(t, out, "error: [power] converter: [unknown_converter]")
	assert.Contains(t, out, "warning: [mode] type: [missing_type]")
	assert.Contains(t, out, "  hint: register the converter before setting the mapping\n")
	assert.Contains(t, err.Error(), "converter \"nope\" is not registered")
	assert.Contains(t, out, "1 error(s), 1 warning(s)")

	_, _, err = run(t, "check", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestTreeCmd(t *testing.T) {
	path := writeMapping(t, heaterMapping)

	out, _, err := run(t, "tree", path)
	require.NoError(t, err)
	assert.Equal(t, `heater (NodeInterface)
  properties/
    power: Boolean = false
  sensors/
    temperature: Number = 0
`, out)

	out, _, err = run(t, "tree", "--node", "boiler", path)
	require.NoError(t, err)
	assert.Contains(t, out, "boiler (NodeInterface)\n")

	out, _, err = run(t, "tree", "--dump", path)
	require.NoError(t, err)
	assert.Contains(t, out, "heater")
	assert.Contains(t, out, "temperature")
}

func TestTreeCmd_Incomplete(t *testing.T) {
	path := writeMapping(t, `
node: heater
bindings:
  power:
    topic: properties.power
    type: Boolean
    constraints: read
  flat:
    topic: flat
    type: Integer
    constraints: read
`)

	out, stderr, err := run(t, "tree", path)
	require.NoError(t, err)
	assert.Equal(t, "heater (NodeInterface)\n  properties/\n    power: Boolean = false\n", out)
	assert.Contains(t, stderr, "node built with errors")
}

func TestSetCmd(t *testing.T) {
	path := writeMapping(t, heaterMapping)

	out, stderr, err := run(t, "--log-level", "info", "set", path, "properties.power", "true")
	require.NoError(t, err)
	assert.Equal(t, "power <- true\npower: Boolean = true\n", out)
	assert.Contains(t, stderr, "cloud.iO @set attribute")

	out, _, err = run(t, "set", path, "heater.sensors.temperature", "21.5")
	require.NoError(t, err)
	assert.Equal(t, "heater.sensors.temperature: not handled\ntemperature: Number = 21.5\n", out)

	_, _, err = run(t, "set", path, "properties.power", "maybe")
	require.Error(t, err)

	_, _, err = run(t, "set", path, "properties.missing", "1")
	require.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	_, _, err := run(t, "--log-level", "loud", "stack", "a")
	require.Error(t, err)
}
