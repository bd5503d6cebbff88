package sound

import "github.com/spf13/pflag"

var _ pflag.Value = (*Value)(nil)

// Value adapts a Sound to pflag so unknown names fail during flag parsing.
type Value struct {
	sound *Sound
	set   bool
}

// NewValue returns a flag value writing into p, initialized to def.
func NewValue(def Sound, p *Sound) *Value {
	*p = def
	return &Value{sound: p}
}

// Set parses name and stores it.
func (v *Value) Set(name string) error {
	s, err := Parse(name)
	if err != nil {
		return err
	}
	*v.sound = s
	v.set = true
	return nil
}

// String returns the current sound name.
func (v *Value) String() string {
	if v == nil || v.sound == nil {
		return Default.String()
	}
	return v.sound.String()
}

// Type is shown in usage output.
func (v *Value) Type() string {
	return "sound"
}

// Changed reports whether Set was called.
func (v *Value) Changed() bool {
	return v.set
}
