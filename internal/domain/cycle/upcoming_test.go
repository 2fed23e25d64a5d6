package cycle_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"server_event_timer/internal/domain/cycle"
	"server_event_timer/internal/domain/region"
)

func TestListUpcoming(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		now   time.Time
		count int
		first time.Time
		len   int
	}{
		"at reference":      {reference, 3, at("2025-11-07T03:30:00Z"), 3},
		"during active":     {at("2025-11-06T15:00:00Z"), 2, at("2025-11-07T03:30:00Z"), 2},
		"during waiting":    {at("2025-11-07T01:00:00Z"), 4, at("2025-11-07T03:30:00Z"), 4},
		"before reference":  {at("2025-11-06T12:59:59Z"), 1, reference, 1},
		"zero count":        {reference, 0, time.Time{}, 0},
		"negative count":    {reference, -2, time.Time{}, 0},
		"many before start": {reference.Add(-50 * cycle.Length), 5, reference.Add(-49 * cycle.Length), 5},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			list := cycle.ListUpcoming(anchored(), tc.now, tc.count)
			require.Len(t, list, tc.len)
			if tc.len == 0 {
				return
			}

			assert.True(t, tc.first.Equal(list[0].Start), "first start %v", list[0].Start)
			for i, o := range list {
				assert.True(t, o.Start.After(tc.now))
				assert.Equal(t, cycle.ActiveDuration, o.End.Sub(o.Start))
				if i > 0 {
					assert.Equal(t, cycle.Length, o.Start.Sub(list[i-1].Start))
				}
			}
		})
	}
}

func TestListUpcomingFarFromReference(t *testing.T) {
	t.Parallel()

	for _, now := range []time.Time{
		reference.AddDate(300, 0, 0),
		reference.AddDate(-300, 0, 0),
		reference.AddDate(5000, 0, 0),
		{},
	} {
		list := cycle.ListUpcoming(anchored(), now, 3)
		require.Len(t, list, 3)

		assert.True(t, list[0].Start.After(now), "now=%v first=%v", now, list[0].Start)
		assert.LessOrEqual(t, list[0].Start.Sub(now), cycle.Length, "now=%v", now)
		assert.Equal(t, cycle.Length, list[1].Start.Sub(list[0].Start))
		assert.Equal(t, cycle.Length, list[2].Start.Sub(list[1].Start))
	}
}

func TestListUpcomingWithoutReference(t *testing.T) {
	t.Parallel()

	profile := region.NewProfile(region.US, "", -5, time.Time{})
	for _, now := range []time.Time{reference, reference.Add(-1e6 * time.Hour), cycle.Epoch, reference.Add(1e5 * time.Hour), {}} {
		assert.Empty(t, cycle.ListUpcoming(profile, now, 10), "now=%v", now)
		for range cycle.Upcoming(profile, now, 10) {
			t.Fatalf("unexpected occurrence at now=%v", now)
		}
	}
}

func TestUpcomingIsRestartable(t *testing.T) {
	t.Parallel()

	seq := cycle.Upcoming(anchored(), reference, 3)

	var first, second []cycle.Occurrence
	for o := range seq {
		first = append(first, o)
	}
	for o := range seq {
		second = append(second, o)
	}
	require.Len(t, first, 3)
	require.Equal(t, first, second)

	var taken int
	for range seq {
		taken++
		break
	}
	require.Equal(t, 1, taken)
}
