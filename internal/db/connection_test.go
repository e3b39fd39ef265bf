package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designertech992/stocks-forecast/internal/config"
	"github.com/designertech992/stocks-forecast/internal/models"
)

func TestConfig_DSN(t *testing.T) {
	pg := &Config{Driver: DriverPostgres, Host: "h", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=n sslmode=disable", pg.DSN())

	lite := &Config{Driver: DriverSQLite, SQLitePath: "data/x.db"}
	assert.Equal(t, "data/x.db", lite.DSN())
}

func TestNewConfig_FromAppConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = DriverPostgres
	cfg.Database.Host = "db"
	cfg.Database.Name = "stocks_forecast"

	c := NewConfig(cfg)
	assert.Equal(t, DriverPostgres, c.Driver)
	assert.Equal(t, "db", c.Host)
	assert.Equal(t, "stocks_forecast", c.Name)
}

func TestConnect_SQLiteFileMigratesKVTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "forecast.db")
	database, err := Connect(&Config{Driver: DriverSQLite, SQLitePath: path})
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, database.Health())
	assert.True(t, database.Migrator().HasTable(&models.KVEntry{}))
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect(&Config{Driver: "mysql"})
	require.Error(t, err)
}
