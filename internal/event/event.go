// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data any // полезная нагрузка, см. types.go
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

// Dispatcher — синхронный диспетчер событий. Работает в игровом цикле, без блокировок.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe — отписка от события. ListenerFunc отписать нельзя: функции несравнимы.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			break
		}
	}
}

// Dispatch — отправка события всем подписчикам. Вызов на nil-диспетчере ничего не делает.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
