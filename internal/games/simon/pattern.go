package simon

import "math/rand"

// Pad identifies one of the four colored pads.
type Pad int

const (
	PadRed Pad = iota
	PadBlue
	PadGreen
	PadYellow
)

// Pads lists the pads in board order.
var Pads = []Pad{PadRed, PadBlue, PadGreen, PadYellow}

func (p Pad) String() string {
	switch p {
	case PadRed:
		return "red"
	case PadBlue:
		return "blue"
	case PadGreen:
		return "green"
	case PadYellow:
		return "yellow"
	}
	return "unknown"
}

// CheckResult is the outcome of one input against the pattern.
type CheckResult int

const (
	Continue   CheckResult = iota // correct so far, more to enter
	Matched                       // the whole pattern was entered
	Mismatched                    // wrong pad
)

func (r CheckResult) String() string {
	switch r {
	case Continue:
		return "continue"
	case Matched:
		return "matched"
	case Mismatched:
		return "mismatched"
	}
	return "unknown"
}

// Pattern is the growing sequence to repeat plus how much of it the player
// has entered this round.
type Pattern struct {
	seq     []Pad
	entered int
}

// Extend appends a random pad and returns it.
func (p *Pattern) Extend(rng *rand.Rand) Pad {
	pad := Pads[rng.Intn(len(Pads))]
	p.Add(pad)
	return pad
}

// Add appends pad.
func (p *Pattern) Add(pad Pad) {
	p.seq = append(p.seq, pad)
}

// Len is the pattern length.
func (p *Pattern) Len() int {
	return len(p.seq)
}

// At returns the i-th pad of the pattern.
func (p *Pattern) At(i int) Pad {
	return p.seq[i]
}

// Entered is how many pads of the current round were entered correctly.
func (p *Pattern) Entered() int {
	return p.entered
}

// Check compares the next input with the pattern. Matched and Mismatched
// both clear the input buffer; the pattern itself is kept.
func (p *Pattern) Check(pad Pad) CheckResult {
	if p.entered >= len(p.seq) || p.seq[p.entered] != pad {
		p.entered = 0
		return Mismatched
	}
	p.entered++
	if p.entered == len(p.seq) {
		p.entered = 0
		return Matched
	}
	return Continue
}

// Reset empties the pattern.
func (p *Pattern) Reset() {
	p.seq = p.seq[:0]
	p.entered = 0
}
