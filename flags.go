package trellis

// Flags is the capability and state bitset carried by every Element.
type Flags uint16

const (
	// FlagValid is set while the element's layout is current.
	FlagValid Flags = 1 << iota
	// FlagEnabled marks an element that reacts to input.
	FlagEnabled
	// FlagVisible marks an element whose layer is drawn and hit tested.
	FlagVisible
	// FlagSelected marks a selected (pressed, toggled) element.
	FlagSelected
	// FlagHitDescend passes pointer hits on to child layers.
	FlagHitDescend
	// FlagHitAbsorb makes the element claim pointer hits within its bounds.
	FlagHitAbsorb
	// FlagWillDestroy is set once destruction has begun.
	FlagWillDestroy
)

// defaultFlags are the flags of a freshly constructed element.
const defaultFlags = FlagVisible | FlagEnabled | FlagHitDescend

var flagNames = [...]struct {
	f    Flags
	name string
}{
	{FlagValid, "valid"},
	{FlagEnabled, "enabled"},
	{FlagVisible, "visible"},
	{FlagSelected, "selected"},
	{FlagHitDescend, "hit-descend"},
	{FlagHitAbsorb, "hit-absorb"},
	{FlagWillDestroy, "will-destroy"},
}

// String lists the set flags, for diagnostics.
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var out []byte
	for _, fn := range flagNames {
		if f&fn.f == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, '|')
		}
		out = append(out, fn.name...)
	}
	return string(out)
}
