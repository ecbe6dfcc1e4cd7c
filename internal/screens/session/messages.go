package session

import "time"

// timerTickMsg is sent every second while a quiz is running.
type timerTickMsg time.Time
