package menu

// Glyphs are the two status-item titles.
type Glyphs struct {
	Allowed string
	Blocked string
}

// DefaultGlyphs returns the built-in glyph pair.
func DefaultGlyphs() Glyphs {
	return Glyphs{Allowed: "😴", Blocked: "👀"}
}

// For returns the glyph matching allowSleep.
func (g Glyphs) For(allowSleep bool) string {
	if allowSleep {
		return g.Allowed
	}
	return g.Blocked
}

// Notification subtitles, one per state.
const (
	SubtitleAllowed = "Sleep allowed"
	SubtitleBlocked = "Sleep disallowed"
)

// Subtitle returns the notification subtitle for allowSleep.
func Subtitle(allowSleep bool) string {
	if allowSleep {
		return SubtitleAllowed
	}
	return SubtitleBlocked
}
