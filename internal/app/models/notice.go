package models

import "time"

type NoticeVariant string

const (
	NoticeDefault     NoticeVariant = "default"
	NoticeDestructive NoticeVariant = "destructive"
)

// DefaultNoticeDuration is how long a toast stays on screen.
const DefaultNoticeDuration = 2 * time.Second

// Notice is a transient, auto-dismissing notification.
type Notice struct {
	Title       string
	Description string
	Variant     NoticeVariant
	Duration    time.Duration
}

func Info(title, description string) Notice {
	return Notice{Title: title, Description: description, Variant: NoticeDefault}
}

// DisplayDuration falls back to DefaultNoticeDuration when unset.
func (n Notice) DisplayDuration() time.Duration {
	if n.Duration <= 0 {
		return DefaultNoticeDuration
	}
	return n.Duration
}
