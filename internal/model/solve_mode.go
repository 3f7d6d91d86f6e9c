package model

// Solve mode constants
const (
	// ModeStrong computes the exact score
	ModeStrong = "strong"
	// ModeWeak only classifies the position as a win, draw or loss
	ModeWeak = "weak"
)

// ModeDisplayName returns a human-readable label for a mode
func ModeDisplayName(mode string) string {
	switch mode {
	case ModeStrong:
		return "Strong"
	case ModeWeak:
		return "Weak"
	default:
		return mode
	}
}

// ValidModes returns all valid solve mode names
func ValidModes() []string {
	return []string{ModeStrong, ModeWeak}
}

// ParseMode validates a mode name. The empty string selects ModeStrong.
func ParseMode(mode string) (string, error) {
	switch mode {
	case "":
		return ModeStrong, nil
	case ModeStrong, ModeWeak:
		return mode, nil
	default:
		return "", ErrInvalidMode
	}
}

// IsWeak reports whether the mode only asks for the game outcome
func IsWeak(mode string) bool {
	return mode == ModeWeak
}
