// Package notify keeps the notifications shown to users and the toasts
// that pop up for them.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// swagger:enum Severity
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
)

var Severities = []Severity{
	SeverityInfo,
	SeverityWarning,
	SeveritySuccess,
}

func (s Severity) Valid() bool {
	return slices.Contains(Severities, s)
}

const (
	// MaxNotifications is the number of notifications kept per user.
	MaxNotifications = 20

	// MaxToasts is the number of toasts visible at the same time.
	MaxToasts = 5

	// DefaultToastTTL is the time after which a toast is dismissed.
	DefaultToastTTL = 5 * time.Second
)

type Notification struct {
	ID        uuid.UUID `json:"id" example:"0b1a2e3c-4d5f-4a6b-8c7d-9e0f1a2b3c4d"`
	Title     string    `json:"title" example:"Transação salva"`
	Message   string    `json:"message" example:"Mercado foi salva com sucesso."`
	Severity  Severity  `json:"severity" example:"success"`
	Read      bool      `json:"read" example:"false"`
	CreatedAt time.Time `json:"createdAt" example:"2024-03-15T12:01:44Z"`
}

// Center holds the notifications and toasts of all users for the lifetime
// of the process. Nothing is persisted.
type Center struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	inbox    map[uuid.UUID][]Notification
	toasts   map[uuid.UUID][]toast
	watchers map[uuid.UUID]map[int]func(Notification)
	nextID   int
}

type toast struct {
	Notification
	timer *time.Timer
}

// NewCenter returns a Center. Toasts are dismissed after ttl, zero or
// negative durations use DefaultToastTTL.
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}

	return &Center{
		ttl:      ttl,
		now:      time.Now,
		inbox:    make(map[uuid.UUID][]Notification),
		toasts:   make(map[uuid.UUID][]toast),
		watchers: make(map[uuid.UUID]map[int]func(Notification)),
	}
}

// For returns the notifications of a single user.
func (c *Center) For(user uuid.UUID) Inbox {
	return Inbox{center: c, user: user}
}

// Inbox is the view of a Center for a single user.
type Inbox struct {
	center *Center
	user   uuid.UUID
}

// Push adds a notification and shows it as a toast.
//
// The newest notification is first. Only the newest MaxNotifications are
// kept, the toast list is capped at MaxToasts.
func (i Inbox) Push(severity Severity, title, message string) Notification {
	c := i.center
	n := Notification{
		ID:        uuid.New(),
		Title:     title,
		Message:   message,
		Severity:  severity,
		CreatedAt: c.now().UTC(),
	}

	c.mu.Lock()
	inbox := append([]Notification{n}, c.inbox[i.user]...)
	if len(inbox) > MaxNotifications {
		inbox = inbox[:MaxNotifications]
	}
	c.inbox[i.user] = inbox

	toasts := append([]toast{{Notification: n, timer: time.AfterFunc(c.ttl, func() { i.Dismiss(n.ID) })}}, c.toasts[i.user]...)
	for _, t := range toasts[min(len(toasts), MaxToasts):] {
		t.timer.Stop()
	}
	c.toasts[i.user] = toasts[:min(len(toasts), MaxToasts)]

	watchers := make([]func(Notification), 0, len(c.watchers[i.user]))
	for _, fn := range c.watchers[i.user] {
		watchers = append(watchers, fn)
	}
	c.mu.Unlock()

	log.Debug().Str("user", i.user.String()).Str("severity", string(severity)).Str("title", title).Msg("notification")

	for _, fn := range watchers {
		fn(n)
	}

	return n
}

// Info pushes a notification with SeverityInfo
func (i Inbox) Info(title, message string) Notification {
	return i.Push(SeverityInfo, title, message)
}

// Warning pushes a notification with SeverityWarning. It is used for
// errors.
func (i Inbox) Warning(title, message string) Notification {
	return i.Push(SeverityWarning, title, message)
}

// Success pushes a notification with SeveritySuccess
func (i Inbox) Success(title, message string) Notification {
	return i.Push(SeveritySuccess, title, message)
}

// List returns all notifications, newest first.
func (i Inbox) List() []Notification {
	i.center.mu.Lock()
	defer i.center.mu.Unlock()

	return append([]Notification{}, i.center.inbox[i.user]...)
}

// UnreadCount returns the number of unread notifications.
func (i Inbox) UnreadCount() int {
	i.center.mu.Lock()
	defer i.center.mu.Unlock()

	count := 0
	for _, n := range i.center.inbox[i.user] {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead marks a single notification as read. It reports whether the
// notification exists.
func (i Inbox) MarkRead(id uuid.UUID) bool {
	i.center.mu.Lock()
	defer i.center.mu.Unlock()

	inbox := i.center.inbox[i.user]
	for idx := range inbox {
		if inbox[idx].ID == id {
			inbox[idx].Read = true
			return true
		}
	}
	return false
}

func (i Inbox) MarkAllRead() {
	i.center.mu.Lock()
	defer i.center.mu.Unlock()

	inbox := i.center.inbox[i.user]
	for idx := range inbox {
		inbox[idx].Read = true
	}
}

// Clear removes all notifications. Toasts stay until they are dismissed.
func (i Inbox) Clear() {
	i.center.mu.Lock()
	defer i.center.mu.Unlock()

	delete(i.center.inbox, i.user)
}

// Toasts returns the visible toasts, newest first.
func (i Inbox) Toasts() []Notification {
	i.center.mu.Lock()
	defer i.center.mu.Unlock()

	toasts := make([]Notification, 0, len(i.center.toasts[i.user]))
	for _, t := range i.center.toasts[i.user] {
		toasts = append(toasts, t.Notification)
	}
	return toasts
}

// Dismiss removes a toast before its time to live expires.
func (i Inbox) Dismiss(id uuid.UUID) {
	i.center.mu.Lock()
	defer i.center.mu.Unlock()

	toasts := i.center.toasts[i.user]
	for idx, t := range toasts {
		if t.ID == id {
			t.timer.Stop()
			i.center.toasts[i.user] = append(toasts[:idx:idx], toasts[idx+1:]...)
			return
		}
	}
}

// Subscribe registers fn to be called for every new notification. The
// returned function removes the subscription.
func (i Inbox) Subscribe(fn func(Notification)) (unsubscribe func()) {
	c := i.center

	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	if c.watchers[i.user] == nil {
		c.watchers[i.user] = make(map[int]func(Notification))
	}
	c.watchers[i.user][id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.watchers[i.user], id)
	}
}
