package servertime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"server_event_timer/internal/domain/servertime"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	reference := time.Date(2025, time.November, 6, 13, 0, 0, 0, time.UTC)

	for _, tc := range [...]struct {
		instant  time.Time
		offset   int
		tpl      servertime.Template
		expected string
	}{
		{reference, 0, servertime.Template12h, "Nov 6th 2025, 1:00 PM"},
		{reference, 1, servertime.Template12h, "Nov 6th 2025, 2:00 PM"},
		{reference, -8, servertime.Template12h, "Nov 6th 2025, 5:00 AM"},
		{reference, 11, servertime.Template12h, "Nov 7th 2025, 12:00 AM"},
		{reference, -1, servertime.Template12h, "Nov 6th 2025, 12:00 PM"},
		{reference.Add(5 * time.Minute), 12, servertime.Template12h, "Nov 7th 2025, 1:05 AM"},
		{reference, 0, servertime.Template24h, "2025-11-06 13:00"},
		{reference, 11, servertime.Template24h, "2025-11-07 00:00"},
		{time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC), 2, servertime.Template24h, "2026-01-01 01:00"},
		{time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC), 2, servertime.Template12h, "Jan 1st 2026, 1:00 AM"},
		{reference, 0, servertime.Template("bogus"), "2025-11-06 13:00"},
	} {
		assert.Equal(t, tc.expected, servertime.Format(tc.instant, tc.offset, tc.tpl), "%v %+d %s", tc.instant, tc.offset, tc.tpl)
	}
}

func TestOrdinal(t *testing.T) {
	t.Parallel()

	for n, expected := range map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 10: "10th",
		11: "11th", 12: "12th", 13: "13th", 14: "14th",
		21: "21st", 22: "22nd", 23: "23rd", 24: "24th",
		30: "30th", 31: "31st", 101: "101st", 111: "111th",
	} {
		assert.Equal(t, expected, servertime.Ordinal(n))
	}
}

func TestCountdown(t *testing.T) {
	t.Parallel()

	for d, expected := range map[time.Duration]string{
		6 * time.Hour:                      "06:00:00",
		8*time.Hour + 30*time.Minute:       "08:30:00",
		time.Second + 500*time.Millisecond: "00:00:01",
		59*time.Minute + 59*time.Second:    "00:59:59",
		30 * time.Hour:                     "30:00:00",
		0:                                  "00:00:00",
		-time.Minute:                       "00:00:00",
	} {
		assert.Equal(t, expected, servertime.Countdown(d), "duration %v", d)
	}
}

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	tpl, err := servertime.ParseTemplate(" 12H ")
	require.NoError(t, err)
	require.Equal(t, servertime.Template12h, tpl)

	tpl, err = servertime.ParseTemplate("24h")
	require.NoError(t, err)
	require.Equal(t, servertime.Template24h, tpl)

	_, err = servertime.ParseTemplate("iso")
	require.Error(t, err)
}

func TestOffsetLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "UTC+1", servertime.OffsetLabel(1))
	assert.Equal(t, "UTC-8", servertime.OffsetLabel(-8))
	assert.Equal(t, "UTC", servertime.OffsetLabel(0))
}
