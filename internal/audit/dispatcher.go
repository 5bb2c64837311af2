package audit

import (
	"context"
	"log"
	"sync"
)

type Event struct {
	Action  string
	Details string
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event

	once sync.Once
	wg   sync.WaitGroup
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.queue {
		if err := d.logger.Log(
			context.Background(),
			ev.Action,
			ev.Details,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

// Dispatch never blocks; a full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event:", ev.Action)
	}
}

// Close drains the queue and waits for the worker. Dispatch must not be
// called afterwards.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}
