package events_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/garrettborunda-lab/movefitrx-poc/events"
)

var _ = Describe("Bus", func() {
	var bus *events.Bus

	BeforeEach(func() {
		bus = events.NewBus()
	})

	Describe("Publish", func() {
		It("delivers events to every subscriber in publish order", func() {
			var first, second []events.EventType
			bus.Subscribe(func(event events.Event) {
				first = append(first, event.Type)
			})
			bus.Subscribe(func(event events.Event) {
				second = append(second, event.Type)
			})

			bus.Publish(events.NewEvent(events.EventTypePatientReferred, "MFRX-AB001"))
			bus.Publish(events.NewEvent(events.EventTypePaymentCompleted, "MFRX-AB001"))

			expected := []events.EventType{events.EventTypePatientReferred, events.EventTypePaymentCompleted}
			Expect(first).To(Equal(expected))
			Expect(second).To(Equal(expected))
		})

		It("stamps an id and creation time on every event", func() {
			var received events.Event
			bus.Subscribe(func(event events.Event) {
				received = event
			})

			bus.Publish(events.NewEvent(events.EventTypeWorkoutRecorded, "MFRX-AB001"))

			Expect(received.Id).ToNot(BeEmpty())
			Expect(received.CreatedTime).ToNot(BeZero())
			Expect(received.PatientId).To(Equal("MFRX-AB001"))
		})

		It("defers events published from inside a handler until the current delivery completes", func() {
			var order []events.EventType
			bus.Subscribe(func(event events.Event) {
				order = append(order, event.Type)
				if event.Type == events.EventTypePatientReferred {
					bus.Publish(events.NewEvent(events.EventTypePaymentCompleted, event.PatientId))
				}
			})
			bus.Subscribe(func(event events.Event) {
				order = append(order, event.Type)
			})

			bus.Publish(events.NewEvent(events.EventTypePatientReferred, "MFRX-AB001"))

			Expect(order).To(Equal([]events.EventType{
				events.EventTypePatientReferred,
				events.EventTypePatientReferred,
				events.EventTypePaymentCompleted,
				events.EventTypePaymentCompleted,
			}))
		})
	})

	Describe("Subscribe", func() {
		It("stops delivery after the returned function is called", func() {
			count := 0
			unsubscribe := bus.Subscribe(func(event events.Event) {
				count++
			})

			bus.Publish(events.NewEvent(events.EventTypePatientReferred, "MFRX-AB001"))
			unsubscribe()
			bus.Publish(events.NewEvent(events.EventTypePaymentCompleted, "MFRX-AB001"))

			Expect(count).To(Equal(1))
		})
	})
})
