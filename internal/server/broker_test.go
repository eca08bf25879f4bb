package server

import (
	"encoding/json"
	"testing"
	"time"
)

func TestBrokerFanOut(t *testing.T) {
	b := NewBroker()
	ch1 := b.Subscribe()
	ch2 := b.Subscribe()

	b.Publish(ChangeEvent{Collection: collectionResults})

	for i, ch := range []chan []byte{ch1, ch2} {
		select {
		case data := <-ch:
			var ev ChangeEvent
			if err := json.Unmarshal(data, &ev); err != nil {
				t.Fatalf("subscriber %d: unmarshal: %v", i, err)
			}
			if ev.Collection != collectionResults {
				t.Errorf("subscriber %d: collection = %q", i, ev.Collection)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d: no event received", i)
		}
	}
}

func TestBrokerUnsubscribe(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()
	b.Unsubscribe(ch)

	b.Publish(ChangeEvent{Collection: collectionTeams})

	select {
	case data := <-ch:
		t.Errorf("received event after unsubscribe: %s", data)
	default:
	}
}

func TestBrokerSlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()

	// Fill the buffer and keep publishing. Publish must not block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			b.Publish(ChangeEvent{Collection: collectionSchedule})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	// The buffered events are still there.
	if len(ch) == 0 {
		t.Error("expected buffered events")
	}
}
