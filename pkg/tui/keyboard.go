package tui

// KeyEvent represents a keyboard input event
type KeyEvent struct {
	Key       rune   // The character pressed
	Ctrl      bool   // Ctrl modifier
	IsSpecial bool   // Whether this is a special key
	Special   string // Special key name (Enter, Escape, Tab, Backspace, arrows)
}

// ParseKey converts raw terminal bytes into a KeyEvent.
func ParseKey(buf []byte) KeyEvent {
	if len(buf) == 0 {
		return KeyEvent{}
	}

	// Escape sequences (arrow keys, bare escape)
	if buf[0] == 27 {
		if len(buf) == 1 {
			return KeyEvent{IsSpecial: true, Special: "Escape"}
		}
		if len(buf) > 2 && buf[1] == '[' {
			switch buf[2] {
			case 'A':
				return KeyEvent{IsSpecial: true, Special: "Up"}
			case 'B':
				return KeyEvent{IsSpecial: true, Special: "Down"}
			case 'C':
				return KeyEvent{IsSpecial: true, Special: "Right"}
			case 'D':
				return KeyEvent{IsSpecial: true, Special: "Left"}
			}
		}
		return KeyEvent{IsSpecial: true, Special: "Escape"}
	}

	switch buf[0] {
	case 9:
		return KeyEvent{IsSpecial: true, Special: "Tab"}
	case 13:
		return KeyEvent{IsSpecial: true, Special: "Enter"}
	case 127:
		return KeyEvent{IsSpecial: true, Special: "Backspace"}
	}

	// Ctrl combinations
	if buf[0] < 32 {
		return KeyEvent{
			Key:  rune(buf[0] + 'a' - 1),
			Ctrl: true,
		}
	}

	return KeyEvent{Key: rune(buf[0])}
}
