package formatter

import "math/rand/v2"

// DefaultTruncateLength is the length used by callers that have no specific limit.
const DefaultTruncateLength = 25

// Palette is the set of decorative colors assigned to records created without a color.
var Palette = []string{
	"#0DB4B9", // Teal
	"#1F4287", // Blue
	"#FFD700", // Gold
	"#7E57C2", // Purple
	"#26A69A", // Green
	"#EF5350", // Red
	"#FF9800", // Orange
	"#42A5F5", // Light Blue
}

// RandomColor returns a color drawn uniformly from Palette.
func RandomColor() string {
	return Palette[rand.IntN(len(Palette))]
}

// TruncateText shortens text to maxLength runes followed by "..." when it is longer.
// A negative maxLength is treated as zero.
func TruncateText(text string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + "..."
}
