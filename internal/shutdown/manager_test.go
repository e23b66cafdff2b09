package shutdown

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu    sync.Mutex
	order []string
}

func (r *recorder) add(name string) Func {
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.order = append(r.order, name)
	}
}

func TestShutdown_ReverseOrder(t *testing.T) {
	rec := &recorder{}
	m := NewManager(nil)
	m.Register("store", rec.add("store"))
	m.Register("controller", rec.add("controller"))
	m.Register("window", rec.add("window"))

	m.Shutdown()

	assert.Equal(t, []string{"window", "controller", "store"}, rec.order)
}

func TestShutdown_RunsOnce(t *testing.T) {
	calls := 0
	m := NewManager(nil)
	m.Register("counter", Func(func() { calls++ }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, 1, calls)
}

func TestShutdown_CancelsContextAndClosesDone(t *testing.T) {
	m := NewManager(nil)

	m.Shutdown()

	assert.Error(t, m.Context().Err())
	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdown_SlowComponentTimesOut(t *testing.T) {
	rec := &recorder{}
	release := make(chan struct{})
	defer close(release)

	m := NewManager(nil)
	m.SetTimeout(20 * time.Millisecond)
	m.Register("fast", rec.add("fast"))
	m.Register("slow", Func(func() { <-release }))

	start := time.Now()
	m.Shutdown()

	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, []string{"fast"}, rec.order)
}
