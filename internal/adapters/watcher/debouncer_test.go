package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/heph2/foxtail/internal/adapters/watcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	batches [][]string
}

func (r *recorder) record(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, paths)
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.batches...)
}

func TestDebouncer_CoalescesRapidEvents(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/proj/.envrc")
		d.Add("/proj/.envrc")
		d.Add("/proj/.envrc")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		batches := rec.snapshot()
		require.Len(t, batches, 1)
		assert.Equal(t, []string{"/proj/.envrc"}, batches[0])
	})
}

func TestDebouncer_WindowRestartsOnNewEvent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/proj/.envrc")
		time.Sleep(50 * time.Millisecond)
		d.Add("/proj/.envrc")
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		// The second Add restarted the window, so nothing has fired yet.
		assert.Empty(t, rec.snapshot())

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, rec.snapshot(), 1)
	})
}

func TestDebouncer_SeparateWindowsFireSeparately(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.record)

		d.Add("/proj/.envrc")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Add("/proj/.envrc")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		assert.Len(t, rec.snapshot(), 2)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(time.Hour, rec.record)

		d.Add("/proj/.envrc")
		d.Flush()

		require.Len(t, rec.snapshot(), 1)
	})
}

func TestDebouncer_FlushEmptyIsNoop(t *testing.T) {
	rec := &recorder{}
	d := watcher.NewDebouncer(time.Hour, rec.record)

	d.Flush()

	assert.Empty(t, rec.snapshot())
}
