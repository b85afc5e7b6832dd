package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKey(t *testing.T) {
	sp, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// 01:30 UTC is 22:30 the previous day in Sao Paulo.
	instant := time.Date(2024, 1, 11, 1, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-11", DayKey(instant, time.UTC))
	assert.Equal(t, "2024-01-10", DayKey(instant, sp))
}

func TestStartOfDay(t *testing.T) {
	sp, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	instant := time.Date(2024, 1, 11, 1, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), StartOfDay(instant, time.UTC))
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, sp), StartOfDay(instant, sp))
}
