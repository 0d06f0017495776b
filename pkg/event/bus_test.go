package event

import "testing"

func TestBus_DispatchInRegistrationOrder(t *testing.T) {
	bus := NewBus()
	var order []string

	bus.Subscribe(TopicFocusGained, func(Event) { order = append(order, "first") })
	bus.Subscribe(TopicFocusGained, func(Event) { order = append(order, "second") })

	bus.Publish(Event{Topic: TopicFocusGained})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("dispatch order = %v, want [first second]", order)
	}
}

func TestBus_TopicIsolation(t *testing.T) {
	bus := NewBus()
	gained := 0
	lost := 0

	bus.Subscribe(TopicFocusGained, func(Event) { gained++ })
	bus.Subscribe(TopicFocusLost, func(Event) { lost++ })

	bus.Publish(Event{Topic: TopicFocusGained})
	bus.Publish(Event{Topic: TopicFocusGained})
	bus.Publish(Event{Topic: TopicFocusLost})

	if gained != 2 {
		t.Errorf("focusGained deliveries = %d, want 2", gained)
	}
	if lost != 1 {
		t.Errorf("focusLost deliveries = %d, want 1", lost)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()
	calls := 0

	sub := bus.Subscribe(TopicKeyboardShown, func(Event) { calls++ })
	bus.Publish(Event{Topic: TopicKeyboardShown})
	bus.Unsubscribe(sub)
	bus.Publish(Event{Topic: TopicKeyboardShown})

	if calls != 1 {
		t.Errorf("deliveries after unsubscribe = %d, want 1", calls)
	}
	if bus.SubscriberCount(TopicKeyboardShown) != 0 {
		t.Errorf("SubscriberCount = %d, want 0", bus.SubscriberCount(TopicKeyboardShown))
	}
}

func TestBus_UnsubscribeUnknownIsIgnored(t *testing.T) {
	bus := NewBus()
	bus.Unsubscribe(Subscription{topic: TopicFocusLost, id: 42})

	calls := 0
	bus.Subscribe(TopicFocusLost, func(Event) { calls++ })
	bus.Publish(Event{Topic: TopicFocusLost})
	if calls != 1 {
		t.Errorf("deliveries = %d, want 1", calls)
	}
}

func TestBus_PayloadDelivered(t *testing.T) {
	bus := NewBus()
	var got Event

	bus.Subscribe(TopicKeyboardShown, func(ev Event) { got = ev })
	bus.Publish(Event{
		Topic:           TopicKeyboardShown,
		Frame:           Frame{Height: 216, Width: 80},
		AccessoryHeight: 40,
	})

	if got.Frame.Height != 216 || got.AccessoryHeight != 40 {
		t.Errorf("payload = %+v, want frame height 216 accessory 40", got)
	}
}

func TestTopic_String(t *testing.T) {
	tests := []struct {
		topic Topic
		want  string
	}{
		{TopicFocusGained, "widget.focusGained"},
		{TopicFocusLost, "widget.focusLost"},
		{TopicSubmitPressed, "widget.submitPressed"},
		{TopicKeyboardShown, "platform.keyboardShown"},
		{TopicKeyboardHidden, "platform.keyboardHidden"},
		{Topic(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.topic.String(); got != tt.want {
			t.Errorf("Topic(%d).String() = %q, want %q", tt.topic, got, tt.want)
		}
	}
}
