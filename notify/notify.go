// Package notify drives the transient feedback of the UI: toast notices that
// dismiss themselves and the global loading overlay.
package notify

import (
	"sync"
	"time"

	"github.com/facebookgo/clock"

	"voyagex-front/logger"
)

type Severity int

const (
	Info Severity = iota
	Success
	Error
)

func (s Severity) String() string {
	switch s {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "info"
	}
}

type Notice struct {
	ID       uint64
	Message  string
	Severity Severity
	Created  time.Time
}

// Notifier keeps the visible notices and the busy counter. OnChange is
// called, outside the lock, after every visible change.
type Notifier struct {
	mu       sync.Mutex
	clock    clock.Clock
	ttl      time.Duration
	log      *logger.Logger
	nextID   uint64
	notices  []Notice
	busy     int
	onChange func()
}

func New(clk clock.Clock, ttl time.Duration, log *logger.Logger) *Notifier {
	if clk == nil {
		clk = clock.New()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Notifier{clock: clk, ttl: ttl, log: log.With("component", "notify")}
}

// OnChange installs the re-render hook.
func (n *Notifier) OnChange(fn func()) {
	n.mu.Lock()
	n.onChange = fn
	n.mu.Unlock()
}

// Notify queues a notice. Notices are never coalesced; each one is removed
// on its own once the display duration has passed.
func (n *Notifier) Notify(message string, severity Severity) Notice {
	n.mu.Lock()
	n.nextID++
	notice := Notice{ID: n.nextID, Message: message, Severity: severity, Created: n.clock.Now()}
	n.notices = append(n.notices, notice)
	n.mu.Unlock()

	n.log.Debug("notice", "severity", severity.String(), "message", message)
	n.clock.AfterFunc(n.ttl, func() { n.dismiss(notice.ID) })
	n.changed()
	return notice
}

func (n *Notifier) dismiss(id uint64) {
	n.mu.Lock()
	removed := false
	for i, v := range n.notices {
		if v.ID == id {
			n.notices = append(n.notices[:i], n.notices[i+1:]...)
			removed = true
			break
		}
	}
	n.mu.Unlock()
	if removed {
		n.changed()
	}
}

// Notices returns the visible notices, oldest first.
func (n *Notifier) Notices() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notice(nil), n.notices...)
}

// SetBusy raises or lowers the loading overlay. Calls are counted: the
// overlay stays up until every SetBusy(true) has been matched by a
// SetBusy(false). Unmatched SetBusy(false) calls are ignored.
func (n *Notifier) SetBusy(busy bool) {
	n.mu.Lock()
	before := n.busy > 0
	switch {
	case busy:
		n.busy++
	case n.busy > 0:
		n.busy--
	default:
		n.log.Warn("unbalanced SetBusy(false)")
	}
	after := n.busy > 0
	n.mu.Unlock()
	if before != after {
		n.changed()
	}
}

func (n *Notifier) Busy() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.busy > 0
}

// Track raises the overlay and returns the matching release.
func (n *Notifier) Track() func() {
	n.SetBusy(true)
	var once sync.Once
	return func() { once.Do(func() { n.SetBusy(false) }) }
}

func (n *Notifier) changed() {
	n.mu.Lock()
	fn := n.onChange
	n.mu.Unlock()
	if fn != nil {
		fn()
	}
}
