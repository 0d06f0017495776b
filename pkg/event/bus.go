package event

// Topic identifies a named channel on the Bus.
type Topic uint8

const (
	// TopicFocusGained is published when a widget acquires input focus.
	TopicFocusGained Topic = iota + 1
	// TopicFocusLost is published when a widget loses input focus.
	TopicFocusLost
	// TopicSubmitPressed is published when the submit key is pressed in a widget.
	TopicSubmitPressed
	// TopicKeyboardShown is published when the on-screen keyboard appears.
	TopicKeyboardShown
	// TopicKeyboardHidden is published when the on-screen keyboard disappears.
	TopicKeyboardHidden
)

// String returns the topic's wire-style name.
func (t Topic) String() string {
	switch t {
	case TopicFocusGained:
		return "widget.focusGained"
	case TopicFocusLost:
		return "widget.focusLost"
	case TopicSubmitPressed:
		return "widget.submitPressed"
	case TopicKeyboardShown:
		return "platform.keyboardShown"
	case TopicKeyboardHidden:
		return "platform.keyboardHidden"
	default:
		return "unknown"
	}
}

// Frame describes the on-screen keyboard geometry for TopicKeyboardShown.
type Frame struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Event is a single delivery on the Bus.
//
// Widget carries the originating widget handle for the widget.* topics
// and is nil for platform.* topics. Frame and AccessoryHeight are set
// only for TopicKeyboardShown.
type Event struct {
	Topic           Topic
	Widget          any
	Frame           Frame
	AccessoryHeight int
}

// Handler receives events for a subscribed topic.
type Handler func(Event)

// Subscription identifies a registered handler so it can be removed.
type Subscription struct {
	topic Topic
	id    int
}

type subscriber struct {
	id      int
	handler Handler
}

// Bus is a topic-keyed publish/subscribe channel.
//
// Dispatch is synchronous and single-threaded: Publish invokes every
// handler for the topic, in registration order, before returning. The
// Bus provides the ordering guarantee consumers rely on — events are
// delivered and fully processed in the order they are published. In
// particular, a focus-gained event for a widget must be published
// before any submit-pressed event that expects that widget to be the
// current focus.
type Bus struct {
	subscribers map[Topic][]subscriber
	nextID      int
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[Topic][]subscriber),
	}
}

// Subscribe registers a handler for a topic. The returned Subscription
// is the handle for Unsubscribe.
func (b *Bus) Subscribe(topic Topic, h Handler) Subscription {
	b.nextID++
	b.subscribers[topic] = append(b.subscribers[topic], subscriber{
		id:      b.nextID,
		handler: h,
	})
	return Subscription{topic: topic, id: b.nextID}
}

// Unsubscribe removes a previously registered handler. Unknown
// subscriptions are ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	subs := b.subscribers[sub.topic]
	for i, s := range subs {
		if s.id == sub.id {
			b.subscribers[sub.topic] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Publish delivers an event to every handler subscribed to its topic,
// in registration order.
func (b *Bus) Publish(ev Event) {
	for _, s := range b.subscribers[ev.Topic] {
		s.handler(ev)
	}
}

// SubscriberCount returns the number of handlers registered for a topic.
func (b *Bus) SubscriberCount(topic Topic) int {
	return len(b.subscribers[topic])
}
