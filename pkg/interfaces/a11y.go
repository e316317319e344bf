package interfaces

// Politeness selects how urgently assistive technology should surface an
// announcement, matching the aria-live politeness settings.
type Politeness string

const (
	PolitenessPolite    Politeness = "polite"
	PolitenessAssertive Politeness = "assertive"
)

// Announcer receives screen-reader announcements emitted by widgets. The
// runtime ships a live-region implementation; hosts may supply their own.
type Announcer interface {
	Announce(message string, politeness Politeness)
}
