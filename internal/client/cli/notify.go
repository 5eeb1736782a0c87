package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/andrissp/invoicedesk/internal/client/theme"
)

// NotificationKind classifies a user-facing notification.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyInfo    NotificationKind = "info"
)

// DismissAfter is how long a notification stays visible in a view that can
// retract its own output. The console notifier just prints and scrolls, so
// for it the constant only documents the contract.
const DismissAfter = 3 * time.Second

// Notifier delivers transient feedback to the user. Implementations decide
// how (and for how long) a notification is shown.
type Notifier interface {
	Notify(kind NotificationKind, message string)
	SetTheme(theme string)
}

// palette holds the ANSI sequences used to tag notifications. The dark
// palette uses the bright variants so tags stay readable on dark terminals.
type palette struct {
	success string
	failure string
	info    string
	reset   string
}

func paletteFor(name string) palette {
	if name == theme.Dark {
		return palette{success: "\x1b[92m", failure: "\x1b[91m", info: "\x1b[96m", reset: "\x1b[0m"}
	}
	return palette{success: "\x1b[32m", failure: "\x1b[31m", info: "\x1b[36m", reset: "\x1b[0m"}
}

// ConsoleNotifier writes tagged notification lines to w.
type ConsoleNotifier struct {
	w io.Writer
	p palette
}

func NewConsoleNotifier(w io.Writer, themeName string) *ConsoleNotifier {
	return &ConsoleNotifier{w: w, p: paletteFor(themeName)}
}

func (n *ConsoleNotifier) SetTheme(name string) {
	n.p = paletteFor(name)
}

func (n *ConsoleNotifier) Notify(kind NotificationKind, message string) {
	color := n.p.info
	switch kind {
	case NotifySuccess:
		color = n.p.success
	case NotifyError:
		color = n.p.failure
	}
	fmt.Fprintf(n.w, "%s[%s]%s %s\n", color, kind, n.p.reset, message)
}
