package domain

import "unicode"

// Named keys understood by the core
const (
	KeyLeft      = "left"
	KeyRight     = "right"
	KeyUp        = "up"
	KeyDown      = "down"
	KeyHome      = "home"
	KeyEnd       = "end"
	KeyPageUp    = "pgup"
	KeyPageDown  = "pgdown"
	KeyBackspace = "backspace"
	KeySpace     = "space"
)

// Key is a keyboard event as seen by the core, independent of the terminal
// library that produced it. Name is empty for character keys.
type Key struct {
	Name string
	Rune rune
	Ctrl bool
	Alt  bool
	Meta bool
}

// NamedKey creates a key event for a named key
func NamedKey(name string) Key {
	return Key{Name: name}
}

// RuneKey creates a key event for a typed character
func RuneKey(r rune) Key {
	if r == ' ' {
		return Key{Name: KeySpace, Rune: r}
	}
	return Key{Rune: r}
}

// Modified reports whether any modifier key was held
func (k Key) Modified() bool {
	return k.Ctrl || k.Alt || k.Meta
}

// Plain reports whether the key is an unmodified printable character other
// than space.
func (k Key) Plain() bool {
	if k.Name != "" || k.Modified() || k.Rune == 0 {
		return false
	}
	return unicode.IsPrint(k.Rune) && !unicode.IsSpace(k.Rune)
}

// String returns a readable form used in logs
func (k Key) String() string {
	name := k.Name
	if name == "" {
		name = string(k.Rune)
	}
	if k.Meta {
		name = "meta+" + name
	}
	if k.Alt {
		name = "alt+" + name
	}
	if k.Ctrl {
		name = "ctrl+" + name
	}
	return name
}
