package notify

import (
	"log"
	"time"
)

// Level classifies a user-facing notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

// Notification is the fire-and-expire event a store mutation produces.
// Stores return these instead of rendering anything themselves; a Dispatcher
// decides how they surface.
type Notification struct {
	Level   Level
	Message string
	At      time.Time
}

func Success(msg string) *Notification {
	return &Notification{Level: LevelSuccess, Message: msg, At: time.Now()}
}

func Info(msg string) *Notification {
	return &Notification{Level: LevelInfo, Message: msg, At: time.Now()}
}

func Error(msg string) *Notification {
	return &Notification{Level: LevelError, Message: msg, At: time.Now()}
}

// Dispatcher renders notifications. Implementations must tolerate nil input.
type Dispatcher interface {
	Dispatch(n *Notification)
}

// LogDispatcher writes notifications to the standard logger.
type LogDispatcher struct{}

func (LogDispatcher) Dispatch(n *Notification) {
	if n == nil {
		return
	}
	log.Printf("[%s] %s", n.Level, n.Message)
}

// Dispatch sends n to d, tolerating a nil dispatcher or nil notification.
func Dispatch(d Dispatcher, n *Notification) {
	if d == nil || n == nil {
		return
	}
	d.Dispatch(n)
}
