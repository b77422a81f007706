package trellis

// Button is a text widget that emits a click when pressed and released
// inside its bounds.
type Button struct {
	TextWidget
}

// NewButton creates a button labelled s.
func NewButton(s string) *Button {
	b := &Button{}
	b.initText(b, s, NewClickBehavior, "Button")
	return b
}

// Clicks returns the click behavior's signal.
func (b *Button) Clicks() *Signal[*Widget] {
	return &b.behavior.(*ClickBehavior).Clicked
}

// OnClick registers fn to run on every click.
func (b *Button) OnClick(fn func(b *Button)) Connection {
	return b.Clicks().Connect(func(*Widget) { fn(b) })
}

// ToggleButton is a text widget whose selection flips on every click.
type ToggleButton struct {
	TextWidget
}

// NewToggleButton creates a toggle button labelled s.
func NewToggleButton(s string) *ToggleButton {
	b := &ToggleButton{}
	b.initText(b, s, NewToggleBehavior, "ToggleButton", "Button")
	return b
}

// Toggles returns the toggle behavior's signal.
func (b *ToggleButton) Toggles() *Signal[bool] {
	return &b.behavior.(*ToggleBehavior).Toggled
}

// OnToggle registers fn to run with the new state on every toggle.
func (b *ToggleButton) OnToggle(fn func(selected bool)) Connection {
	return b.Toggles().Connect(fn)
}

// Selected reports whether the button is toggled on.
func (b *ToggleButton) Selected() bool {
	return b.IsSet(FlagSelected)
}
