package styles

// Plain unicode glyphs; these render without a patched font.
var (
	IconSuccess = "✓"
	IconInfo    = "ℹ"
	IconWarning = "⚠"
	IconError   = "✕"

	IconPresent = "●"
	IconAbsent  = "○"
	IconBullet  = "•"
)
