package events

import (
	"sync"
	"time"

	"github.com/eapache/queue"
	"github.com/google/uuid"
)

// EventType identifies the kind of mutation that occurred
type EventType string

const (
	EventTypePatientReferred  EventType = "patientReferred"
	EventTypePaymentCompleted EventType = "paymentCompleted"
	EventTypeWorkoutRecorded  EventType = "workoutRecorded"
)

// Event is the common envelope published for every registry/log mutation
type Event struct {
	Id          string
	Type        EventType
	PatientId   string
	CreatedTime time.Time
}

func NewEvent(eventType EventType, patientId string) Event {
	return Event{
		Id:          uuid.NewString(),
		Type:        eventType,
		PatientId:   patientId,
		CreatedTime: time.Now(),
	}
}

type Handler func(event Event)

// Bus is a synchronous publish/subscribe channel. Events are delivered on
// the publisher's goroutine in publish order; events published from inside
// a handler are queued and drained after the current delivery completes,
// never delivered re-entrantly.
type Bus struct {
	mu       sync.Mutex
	handlers map[int]Handler
	nextId   int
	pending  *queue.Queue
	draining bool
}

func NewBus() *Bus {
	return &Bus{
		handlers: map[int]Handler{},
		pending:  queue.New(),
	}
}

// Subscribe registers a handler and returns a function that removes it.
func (b *Bus) Subscribe(handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextId
	b.nextId++
	b.handlers[id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers, id)
	}
}

func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	b.pending.Add(event)
	if b.draining {
		b.mu.Unlock()
		return
	}
	b.draining = true
	b.mu.Unlock()

	b.drain()
}

func (b *Bus) drain() {
	for {
		b.mu.Lock()
		if b.pending.Length() == 0 {
			b.draining = false
			b.mu.Unlock()
			return
		}
		event := b.pending.Remove().(Event)
		handlers := make([]Handler, 0, len(b.handlers))
		for _, handler := range b.handlers {
			handlers = append(handlers, handler)
		}
		b.mu.Unlock()

		for _, handler := range handlers {
			handler(event)
		}
	}
}
