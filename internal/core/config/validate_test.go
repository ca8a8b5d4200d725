package config

import (
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDeep_Valid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Orders = "orders/**/*.{yaml,yml}"

	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestValidateDeep_InvalidOrdersPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Orders = "orders/[a-"

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "orders", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "invalid glob pattern")
}

func TestValidateDeep_ConfigPathIsDirectory(t *testing.T) {
	cfg := DefaultConfig()
	dir := t.TempDir()

	err := cfg.ValidateDeep(dir)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "is a directory")
}

func TestValidateDeep_MissingConfigFileIsFine(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.ValidateDeep(filepath.Join(t.TempDir(), "config.yaml")))
}

func TestValidateDeep_RunsStructuralValidationFirst(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keys.Advance = ""

	err := cfg.ValidateDeep("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keys.advance cannot be empty")
}
