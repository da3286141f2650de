package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogTableDefaultsWhenUnset(t *testing.T) {
	os.Unsetenv("GPTAB_CATALOG_TABLE")
	assert.Equal(t, "gptab-catalog", CatalogTable())
}

func TestCatalogTableHonorsEnv(t *testing.T) {
	os.Setenv("GPTAB_CATALOG_TABLE", "custom-table")
	defer os.Unsetenv("GPTAB_CATALOG_TABLE")
	assert.Equal(t, "custom-table", CatalogTable())
}

func TestBucketNamePanicsWhenUnset(t *testing.T) {
	os.Unsetenv("GPTAB_BUCKET")
	assert.Panics(t, func() { BucketName() })
}

func TestServeAddrDefaultsWhenUnset(t *testing.T) {
	os.Unsetenv("GPTAB_ADDR")
	assert.Equal(t, ":8080", ServeAddr())
}

func TestAWSRegionDefaultsWhenUnset(t *testing.T) {
	os.Unsetenv("GPTAB_AWS_REGION")
	assert.Equal(t, "us-east-1", AWSRegion())
}
