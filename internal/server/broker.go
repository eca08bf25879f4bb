package server

import (
	"encoding/json"
	"sync"
)

// Collections that emit change events.
const (
	collectionTeams    = "teams"
	collectionResults  = "results"
	collectionSchedule = "schedule"
)

// ChangeEvent tells subscribers that a collection changed. It carries no
// delta: the contract is "re-fetch and recompute", regardless of what
// triggered the event.
type ChangeEvent struct {
	Collection string `json:"collection"`
}

// Broker is an in-process pub/sub for the SSE change feed. Every
// subscriber sees every event; views decide for themselves which
// collections they care about.
type Broker struct {
	mu   sync.RWMutex
	subs map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel receiving JSON-encoded change events.
func (b *Broker) Subscribe() chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *Broker) Unsubscribe(ch chan []byte) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
}

// Publish fans an event out to all subscribers.
func (b *Broker) Publish(event ChangeEvent) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}
