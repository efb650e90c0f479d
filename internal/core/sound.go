package core

// Sound identifies a short effect a game wants played. Games only name the
// effect; the platform decides how (or whether) to play it.
type Sound int

const (
	SoundNone Sound = iota
	SoundBeep1
	SoundBeep2
	SoundBeep3
	SoundBeep4
	SoundPickup
	SoundFail
)

// String returns the effect name.
func (s Sound) String() string {
	switch s {
	case SoundBeep1:
		return "beep1"
	case SoundBeep2:
		return "beep2"
	case SoundBeep3:
		return "beep3"
	case SoundBeep4:
		return "beep4"
	case SoundPickup:
		return "pickup"
	case SoundFail:
		return "fail"
	default:
		return "none"
	}
}
