package ecs

// EventType identifies different types of events
type EventType string

// Lifecycle events emitted by the world.
const (
	EventEntityCreated EventType = "entity_created"
	EventEntityRemoved EventType = "entity_removed"
)

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EntityCreatedEvent is emitted when a new entity is allocated.
type EntityCreatedEvent struct {
	Entity Entity
}

func (EntityCreatedEvent) Type() EventType { return EventEntityCreated }

// EntityRemovedEvent is emitted after an entity has been cleared from every
// store.
type EntityRemovedEvent struct {
	Entity Entity
}

func (EntityRemovedEvent) Type() EventType { return EventEntityRemoved }

// EventHandler is a function that processes events
type EventHandler func(Event)

// EventManager manages event subscriptions and dispatches
type EventManager struct {
	subscribers map[EventType][]EventHandler
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]EventHandler),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) {
	em.subscribers[eventType] = append(em.subscribers[eventType], handler)
}

// Emit dispatches an event to all subscribed handlers
func (em *EventManager) Emit(event Event) {
	for _, handler := range em.subscribers[event.Type()] {
		handler(event)
	}
}
