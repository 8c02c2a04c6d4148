package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes a variable for the test while keeping t.Setenv's restore
// semantics, since envconfig treats set-but-empty as present.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("S3_BUCKET_NAME", "cotizaciones-docs")
	t.Setenv("EVENT_BUS_NAME", "prodirtec-bus")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "json", cfg.App.LogFormat)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, "cotizaciones", cfg.Quotations.Table)
	assert.Equal(t, "cotizaciones-docs", cfg.Quotations.Bucket)
	assert.Equal(t, "prodirtec-bus", cfg.Quotations.EventBusName)
	assert.False(t, cfg.Quotations.StrictTransitions)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("S3_BUCKET_NAME", "cotizaciones-docs")
	t.Setenv("EVENT_BUS_NAME", "prodirtec-bus")
	t.Setenv("PORT", "9090")
	t.Setenv("COTIZACIONES_TABLE_NAME", "cotizaciones-staging")
	t.Setenv("QUOTATIONS_STRICT_TRANSITIONS", "true")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "cotizaciones-staging", cfg.Quotations.Table)
	assert.True(t, cfg.Quotations.StrictTransitions)
	assert.Equal(t, "http://dynamodb:8000", cfg.AWS.DynamoDBEndpoint)
}

func TestLoad_MissingRequired(t *testing.T) {
	unsetEnv(t, "S3_BUCKET_NAME")
	unsetEnv(t, "EVENT_BUS_NAME")

	_, err := Load()

	assert.Error(t, err)
}
