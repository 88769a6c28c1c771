package netsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raven-os/albinos/internal/wire"
)

func TestEventQueue_EnqueueDequeue(t *testing.T) {
	q := newEventQueue()

	ok := q.Enqueue(connEvent{token: 1, req: wire.Request{RequestName: wire.ConfigUnload}})
	require.True(t, ok, "enqueue should succeed")

	got, ok := q.TryDequeue()
	require.True(t, ok, "dequeue should succeed")
	assert.EqualValues(t, 1, got.token)
	assert.Equal(t, wire.ConfigUnload, got.req.RequestName)
}

func TestEventQueue_FIFO(t *testing.T) {
	q := newEventQueue()

	for i := int64(1); i <= 3; i++ {
		q.Enqueue(connEvent{token: 1, req: wire.Request{ConfigID: i}})
	}

	for i := int64(1); i <= 3; i++ {
		e, ok := q.TryDequeue()
		require.True(t, ok)
		assert.Equal(t, i, e.req.ConfigID)
	}

	_, ok := q.TryDequeue()
	assert.False(t, ok)
}

func TestEventQueue_CloseWakesWaiters(t *testing.T) {
	q := newEventQueue()

	done := make(chan struct{})
	go func() {
		<-q.Wait()
		close(done)
	}()

	q.Close()
	<-done
}

func TestEventQueue_EnqueueAfterCloseFails(t *testing.T) {
	q := newEventQueue()
	q.Close()

	ok := q.Enqueue(connEvent{})
	assert.False(t, ok)
}
