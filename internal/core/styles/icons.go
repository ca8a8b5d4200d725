package styles

var (
	IconPrev    = "◀"
	IconNext    = "▶"
	IconCheck   = "✓"
	IconPackage = "▤"
)

// Notification icons
var (
	IconNotifyInfo    = "ℹ"
	IconNotifyWarning = "⚠"
	IconNotifyError   = "✗"
)
