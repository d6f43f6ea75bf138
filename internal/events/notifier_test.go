package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierDeliversEvents(t *testing.T) {
	n := NewNotifier(4)
	defer n.Close()

	n.Publish(NewEvent(EventBoardChanged, "A-1", "placed"))
	e := <-n.Events()
	assert.Equal(t, EventBoardChanged, e.Type)
	assert.Equal(t, "A-1", e.ItemID)
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.Timestamp.IsZero())
}

func TestNotifierDropsOldestWhenFull(t *testing.T) {
	n := NewNotifier(2)
	defer n.Close()

	n.Publish(NewEvent(EventBoardChanged, "1", ""))
	n.Publish(NewEvent(EventBoardChanged, "2", ""))
	n.Publish(NewEvent(EventWriteBackFailed, "3", ""))

	first := <-n.Events()
	second := <-n.Events()
	assert.Equal(t, "2", first.ItemID)
	assert.Equal(t, "3", second.ItemID)
}

func TestNotifierPublishAfterClose(t *testing.T) {
	n := NewNotifier(2)
	n.Close()
	// Must not panic on a closed stream.
	n.Publish(NewEvent(EventBoardChanged, "1", ""))
	n.Close()

	_, open := <-n.Events()
	require.False(t, open)
}

func TestNilPublisher(t *testing.T) {
	var p Publisher = NilPublisher{}
	p.Publish(NewEvent(EventBoardChanged, "1", ""))
	assert.Nil(t, p.Events())
	p.Close()
}
