package events

import (
	"time"

	"admindash/internal/models"

	"github.com/google/uuid"
)

// Emit queues entry for writing. When the queue is full or the emitter is
// closed the entry is written synchronously instead.
func (e *Emitter) Emit(entry models.ActivityEntry) {
	if e == nil {
		return
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.Timestamp = time.Now().UTC()

	e.mu.Lock()
	e.pending++
	if !e.closed {
		select {
		case e.buf <- entry:
			e.mu.Unlock()
			return
		default:
		}
	}
	e.mu.Unlock()

	e.insertMany([]models.ActivityEntry{entry})
	e.done(1)
}
