package chat

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the output
// matches any color scheme. A negative index means no color.
type Theme struct {
	User      int // "You:" header
	Assistant int // assistant reply header
	Error     int // diagnostics
	Success   int // confirmations
	Warning   int // notices
	Muted     int // status lines, code gutters
	Accent    int // headings, links, panel border
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		User:      2,
		Assistant: 4,
		Error:     1,
		Success:   2,
		Warning:   3,
		Muted:     8,
		Accent:    5,
	}
}
