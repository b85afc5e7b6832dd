package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	assert.Equal(t, EnvDev, c.Env)
	assert.Equal(t, 8888, c.Server.Port)
	assert.Equal(t, "UTC", c.Timezone)
	assert.Equal(t, 5, c.Checkin.WeeklyLimit)
	assert.Equal(t, 7, c.Checkin.WindowDays)
	assert.Equal(t, "memory", c.Mailer.Backend)
	assert.Equal(t, 256, c.Mailer.Buffer)
}

func TestLocation(t *testing.T) {
	c := &Config{Timezone: "America/Sao_Paulo"}
	loc, err := c.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", loc.String())

	c = &Config{Timezone: "Not/AZone"}
	_, err = c.Location()
	require.Error(t, err)

	c = &Config{Timezone: "UTC"}
	loc, err = c.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}
