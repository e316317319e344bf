package a11y

import (
	"strings"
	"sync"

	"github.com/almanaclabs/yoastseo/pkg/interfaces"
)

const defaultCapacity = 32

// Announcement is one recorded screen-reader message.
type Announcement struct {
	Message    string
	Politeness interfaces.Politeness
}

// LiveRegion buffers announcements the way an aria-live region would: the
// most recent message is what assistive technology reads, and a bounded
// history is kept for the gallery to render. Safe for concurrent use.
type LiveRegion struct {
	mu       sync.Mutex
	capacity int
	history  []Announcement
}

var _ interfaces.Announcer = (*LiveRegion)(nil)

// NewLiveRegion constructs a live region keeping at most capacity messages.
// Non-positive capacities fall back to the default.
func NewLiveRegion(capacity int) *LiveRegion {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &LiveRegion{capacity: capacity}
}

// Announce records a message. Blank messages are dropped; politeness defaults
// to polite.
func (r *LiveRegion) Announce(message string, politeness interfaces.Politeness) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	if politeness != interfaces.PolitenessAssertive {
		politeness = interfaces.PolitenessPolite
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, Announcement{Message: message, Politeness: politeness})
	if len(r.history) > r.capacity {
		r.history = r.history[len(r.history)-r.capacity:]
	}
}

// Last returns the most recent announcement.
func (r *LiveRegion) Last() (Announcement, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) == 0 {
		return Announcement{}, false
	}
	return r.history[len(r.history)-1], true
}

// History returns a copy of the recorded announcements, oldest first.
func (r *LiveRegion) History() []Announcement {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Announcement, len(r.history))
	copy(out, r.history)
	return out
}

// Len reports how many announcements are buffered.
func (r *LiveRegion) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.history)
}

// Noop returns an announcer that drops every message. It stands in when
// announcements are disabled, mirroring the no-op logger.
func Noop() interfaces.Announcer {
	return noopAnnouncer{}
}

type noopAnnouncer struct{}

func (noopAnnouncer) Announce(string, interfaces.Politeness) {}
