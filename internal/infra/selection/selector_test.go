package selection_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"server_event_timer/internal/domain/region"
	"server_event_timer/internal/infra/regions"
	"server_event_timer/internal/infra/selection"
)

func newSelector(initial string) *selection.Selector {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return selection.NewSelector(regions.Default(), initial, logrus.NewEntry(logger))
}

func TestNewSelector(t *testing.T) {
	t.Parallel()

	for initial, expected := range map[string]region.ID{
		"":     region.EU,
		"#us":  region.US,
		"EU":   region.EU,
		"mars": region.EU,
	} {
		assert.Equal(t, expected, newSelector(initial).Current(), "initial %q", initial)
	}
}

func TestSet(t *testing.T) {
	t.Parallel()

	s := newSelector("EU")
	var seen []region.ID
	s.OnChange(func(id region.ID) { seen = append(seen, id) })

	require.Equal(t, region.US, s.Set(" us "))
	require.Equal(t, region.US, s.Set("#US"))
	require.Equal(t, region.EU, s.Set("nowhere"))
	require.Equal(t, region.EU, s.Current())

	require.Equal(t, []region.ID{region.US, region.EU}, seen)
}

func TestWatch(t *testing.T) {
	t.Parallel()

	s := newSelector("EU")
	var seen []region.ID
	s.OnChange(func(id region.ID) { seen = append(seen, id) })

	err := s.Watch(context.Background(), strings.NewReader("us\n\n   \n#eu\nUS\n"))
	require.NoError(t, err)
	require.Equal(t, []region.ID{region.US, region.EU, region.US}, seen)
	require.Equal(t, region.US, s.Current())
}

func TestWatchStopsOnCancel(t *testing.T) {
	t.Parallel()

	reader, writer := io.Pipe()
	defer writer.Close()

	s := newSelector("EU")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx, reader) }()

	_, err := writer.Write([]byte("us\n"))
	require.NoError(t, err)
	require.Eventually(t, func() bool { return s.Current() == region.US }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
