package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/enterprise-data-api/pkg/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{Host: "db", Port: 5433, User: "reporter", Password: "secret", Name: "enterprise_data", SSLMode: "require"})

	assert.Equal(t, "host=db port=5433 user=reporter password=secret dbname=enterprise_data sslmode=require", dsn)
}
