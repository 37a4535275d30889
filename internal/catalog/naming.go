package catalog

import "unicode"

// Capitalize uppercases only the first character of a prop name, leaving the
// remainder unchanged. This is the identifier transform used everywhere a name
// is derived: "baseFreq" becomes "BaseFreq", never "Basefreq".
func Capitalize(name string) string {
	if name == "" {
		return ""
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// CallbackName returns the derived change-notification callback identifier for
// a prop name: "wet" -> "onWetChange", "Q" -> "onQChange".
func CallbackName(name string) string {
	return "on" + Capitalize(name) + "Change"
}

// SetterName returns the derived setter identifier for a prop name:
// "wet" -> "setWet", "Q" -> "setQ".
func SetterName(name string) string {
	return "set" + Capitalize(name)
}

// CallbackName returns the derived on-change callback identifier for the prop.
func (p Prop) CallbackName() string { return CallbackName(p.Name) }

// SetterName returns the derived setter identifier for the prop.
func (p Prop) SetterName() string { return SetterName(p.Name) }

// CallbackType returns the type label of the prop's on-change callback.
func (p Prop) CallbackType() string {
	return "(" + p.Name + ": " + p.Type + ") => void"
}

// SetterType returns the type label of the prop's render-prop setter.
func (p Prop) SetterType() string {
	return "(value: " + p.Type + ") => void"
}
