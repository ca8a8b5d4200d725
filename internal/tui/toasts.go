package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/picklist/internal/core/notify"
	"github.com/colonyops/picklist/internal/core/styles"
)

const (
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 36
)

// toast is one visible notification. Repeats of the same message fold into a
// single toast and bump count.
type toast struct {
	notification notify.Notification
	remaining    time.Duration
	count        int
}

func (t toast) sameAs(n notify.Notification) bool {
	return t.notification.Level == n.Level && t.notification.Message == n.Message
}

// toastStack holds the notifications shown under the review card, oldest
// first. Confirming the same review several times in a row keeps one
// "review confirmed" toast with a counter instead of filling the stack.
type toastStack struct {
	ttl     time.Duration
	max     int
	toasts  []toast
	ticking bool
}

func newToastStack(ttl time.Duration, maxToasts int) *toastStack {
	return &toastStack{ttl: ttl, max: maxToasts}
}

// push shows n. A toast with the same level and message is moved to the
// bottom with a fresh TTL; otherwise n is appended and the oldest toast is
// dropped once the stack is full.
func (s *toastStack) push(n notify.Notification) {
	for i, t := range s.toasts {
		if !t.sameAs(n) {
			continue
		}
		s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
		s.toasts = append(s.toasts, toast{notification: n, remaining: s.ttl, count: t.count + 1})
		return
	}

	s.toasts = append(s.toasts, toast{notification: n, remaining: s.ttl, count: 1})
	if len(s.toasts) > s.max {
		s.toasts = s.toasts[len(s.toasts)-s.max:]
	}
}

// tick ages every toast by d and drops the expired ones.
func (s *toastStack) tick(d time.Duration) {
	alive := s.toasts[:0]
	for _, t := range s.toasts {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
		}
	}
	s.toasts = alive
}

func (s *toastStack) empty() bool { return len(s.toasts) == 0 }

// startTick returns the first tick command, or nil when there is nothing to
// age or a tick is already scheduled.
func (s *toastStack) startTick() tea.Cmd {
	if s.empty() || s.ticking {
		return nil
	}
	s.ticking = true
	return scheduleToastTick()
}

// onTick handles a tick message and schedules the next one while toasts remain.
func (s *toastStack) onTick() tea.Cmd {
	s.tick(toastTickInterval)
	if s.empty() {
		s.ticking = false
		return nil
	}
	return scheduleToastTick()
}

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// view renders the stack right-aligned in a block of the given width, or ""
// when there is nothing to show.
func (s *toastStack) view(width int) string {
	if s.empty() {
		return ""
	}

	rendered := make([]string, 0, len(s.toasts))
	for _, t := range s.toasts {
		rendered = append(rendered, renderToast(t))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, strings.Join(rendered, "\n"))
}

func renderToast(t toast) string {
	icon, style := styles.IconNotifyInfo, styles.ToastInfoStyle
	switch t.notification.Level {
	case notify.LevelError:
		icon, style = styles.IconNotifyError, styles.ToastErrorStyle
	case notify.LevelWarning:
		icon, style = styles.IconNotifyWarning, styles.ToastWarningStyle
	}

	msg := icon + " " + t.notification.Message
	if t.count > 1 {
		msg += fmt.Sprintf(" ×%d", t.count)
	}
	return style.Width(toastWidth).Render(msg)
}
