package model

// The built-in placeholder list shown while the user has no saved
// items. Never persisted; the UI hides delete for these.
var defaults = []Item{
	{ID: "default-1", Text: "A warm cup of coffee ☕"},
	{ID: "default-2", Text: "Sunshine through the window 🌞"},
	{ID: "default-3", Text: "A song stuck in your head 🎶"},
	{ID: "default-4", Text: "The smell of fresh rain 🌧️"},
	{ID: "default-5", Text: "Clean sheets at night 🛏️"},
	{ID: "default-6", Text: "A really good sandwich 🥪"},
}

// Defaults returns a copy of the placeholder set, in fixed order.
func Defaults() []Item {
	out := make([]Item, len(defaults))
	copy(out, defaults)
	return out
}
