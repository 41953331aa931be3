package version_test

import (
	"encoding/json"
	"testing"

	// Packages
	version "github.com/mutablelogic/go-consulta/pkg/version"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func Test_version_001(t *testing.T) {
	assert := assert.New(t)
	version.GitTag = "v1.2.3"
	defer func() { version.GitTag = "" }()
	assert.Equal("v1.2.3", version.Version())

	info := version.Info("consulta")
	assert.Equal("consulta", info.Map()["name"])
	assert.Equal("v1.2.3", info.Map()["tag"])
	assert.Equal(len(info), info.Len())
	assert.Equal([]any{"name", "consulta"}, info.Row(0))
}

func Test_version_002(t *testing.T) {
	assert := assert.New(t)
	var metadata map[string]string
	require.NoError(t, json.Unmarshal(version.JSON("consulta"), &metadata))
	assert.Equal("consulta", metadata["name"])
	assert.NotEmpty(metadata["compiler"])
	assert.NotEmpty(metadata["version"])
}
