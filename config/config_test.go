package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	conf, err := Parse([]byte("app:\n  debug: true\n"))
	require.NoError(t, err)

	assert.True(t, conf.Debug())
	assert.Equal(t, "dev", conf.App.Env)
	assert.Equal(t, 8080, conf.Server.Http)
	assert.Equal(t, 3306, conf.MySQL.Port)
	assert.Equal(t, 7*24*time.Hour, conf.Jwt.Expire)
	assert.Equal(t, LimiterBackendMemory, conf.Limiter.Backend)
	assert.Equal(t, 30*time.Minute, conf.Engagement.ViewWindow)
	assert.False(t, conf.Limiter.Enabled)
}

func TestParse_Overrides(t *testing.T) {
	conf, err := Parse([]byte(`
server:
  http: 9000
mysql:
  host: db
  username: folio
  password: secret
  database: folio
jwt:
  secret: s3cret
  expire: 2h
limiter:
  enabled: true
  backend: redis
  window: 30s
  max: 100
engagement:
  view_window: 10m
`))
	require.NoError(t, err)

	assert.Equal(t, 9000, conf.Server.Http)
	assert.Equal(t, "folio:secret@tcp(db:3306)/folio?charset=utf8mb4&parseTime=True&loc=Local", conf.MySQL.Dsn())
	assert.Equal(t, 2*time.Hour, conf.Jwt.Expire)
	assert.Equal(t, LimiterBackendRedis, conf.Limiter.Backend)
	assert.Equal(t, 30*time.Second, conf.Limiter.Window)
	assert.EqualValues(t, 100, conf.Limiter.Max)
	assert.Equal(t, 10*time.Minute, conf.Engagement.ViewWindow)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("server: [1, 2"))
	assert.Error(t, err)
}
