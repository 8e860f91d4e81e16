package axes

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonNone MouseButton = iota - 1
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// Key represents a keyboard key.
// Only the keys the demo can bind are named; everything else maps to KeyNone.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyQ
)

// Action is a key or mouse button transition.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeySpace:
		return "Space"
	case KeyQ:
		return "Q"
	default:
		return ""
	}
}

// ParseKey is the inverse of KeyName. Unknown names return KeyNone.
func ParseKey(name string) Key {
	for k := KeyEscape; k <= KeyQ; k++ {
		if KeyName(k) == name {
			return k
		}
	}
	return KeyNone
}

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "none"
	}
}
