package service

import (
	"sync"

	"github.com/MKhiriev/go-project-keeper/internal/logger"
	"github.com/MKhiriev/go-project-keeper/models"
)

// Notifier fans events out to subscribers. Publish never blocks: a
// subscriber whose buffer is full misses the event.
//
// The latest ProjectsUpdated event is retained and handed to every new
// subscriber first, so a late subscriber still sees the current collection.
type Notifier struct {
	mu     sync.Mutex
	subs   map[int]chan models.Event
	nextID int

	latest *models.Event

	logger *logger.Logger
}

func NewNotifier(log *logger.Logger) *Notifier {
	if log == nil {
		log = logger.Nop()
	}
	return &Notifier{
		subs:   make(map[int]chan models.Event),
		logger: log,
	}
}

// Subscribe returns a channel receiving the retained ProjectsUpdated event,
// if any, followed by every event published after the call, and a cancel
// function that closes it. Cancel is idempotent.
func (n *Notifier) Subscribe(buffer int) (<-chan models.Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan models.Event, buffer)

	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs[id] = ch
	if n.latest != nil {
		ch <- *n.latest
	}
	n.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			n.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

func (n *Notifier) Publish(event models.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if event.Type == models.EventProjectsUpdated {
		n.latest = &event
	}

	for id, ch := range n.subs {
		select {
		case ch <- event:
		default:
			n.logger.Debug().
				Str("func", "Notifier.Publish").
				Int("subscriber", id).
				Int("event_type", int(event.Type)).
				Msg("subscriber is slow, event dropped")
		}
	}
}
