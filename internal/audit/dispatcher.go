package audit

import (
	"strconv"

	"github.com/rs/zerolog/log"
)

type Event struct {
	TenantID uint
	UserID   *uint
	Action   string
	Entity   string
	EntityID *string
	Metadata any
}

// RefID renders a numeric entity ID as the string reference audit rows
// store; slot IDs are already strings and pass through RefSlot.
func RefID(id uint) *string {
	s := strconv.FormatUint(uint64(id), 10)
	return &s
}

func RefSlot(slotID string) *string {
	return &slotID
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.TenantID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// Full queue drops the event; auditing never blocks a request.
		log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}
