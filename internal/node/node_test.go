package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBroadcast_PublishFansOutToAllSubscribers(t *testing.T) {
	b := NewBroadcast()
	sub1 := b.Subscribe()
	sub2 := b.Subscribe()

	dropped := b.Publish([]byte("hello"))
	assert.Equal(t, 0, dropped)

	assert.Equal(t, []byte("hello"), <-sub1)
	assert.Equal(t, []byte("hello"), <-sub2)
}

func TestBroadcast_PublishDropsOnFullSubscriber(t *testing.T) {
	b := NewBroadcast()
	sub := b.Subscribe()

	for i := 0; i < broadcastCapacity; i++ {
		dropped := b.Publish([]byte{byte(i)})
		assert.Equal(t, 0, dropped)
	}

	dropped := b.Publish([]byte("overflow"))
	assert.Equal(t, 1, dropped, "a publish to a full subscriber channel should be dropped, not block")

	// Drain so the subscriber's buffered messages don't leak into other tests.
	for i := 0; i < broadcastCapacity; i++ {
		<-sub
	}
}

func TestBroadcast_NoSubscribersNeverDrops(t *testing.T) {
	b := NewBroadcast()
	dropped := b.Publish([]byte("nobody listening"))
	assert.Equal(t, 0, dropped)
}

func TestPassthrough_ReturnsInputUnchanged(t *testing.T) {
	out, err := passthrough([]byte("payload"))
	assert.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("payload")}, out)
}
