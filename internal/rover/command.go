package rover

import "unicode"

// Verb is a single-letter rover instruction.
type Verb byte

const (
	VerbMove      Verb = 'M'
	VerbTurnLeft  Verb = 'L'
	VerbTurnRight Verb = 'R'
)

func (v Verb) String() string {
	return string(rune(v))
}

// ParseVerb maps an input rune to a Verb. Matching is case-insensitive;
// ok is false for anything that is not a rover instruction.
func ParseVerb(r rune) (Verb, bool) {
	switch unicode.ToUpper(r) {
	case 'M':
		return VerbMove, true
	case 'L':
		return VerbTurnLeft, true
	case 'R':
		return VerbTurnRight, true
	default:
		return 0, false
	}
}

// Command is one executable rover instruction. Drivers hold a sequence of
// these and invoke them in order without inspecting what each one does.
type Command interface {
	Execute()
}

// MoveCommand advances its rover one cell when executed.
type MoveCommand struct {
	rover *Rover
}

// Execute performs the move. A rejected move leaves the rover in place.
func (c *MoveCommand) Execute() {
	c.rover.MoveForward()
}

// TurnLeftCommand rotates its rover counter-clockwise when executed.
type TurnLeftCommand struct {
	rover *Rover
}

func (c *TurnLeftCommand) Execute() {
	c.rover.TurnLeft()
}

// TurnRightCommand rotates its rover clockwise when executed.
type TurnRightCommand struct {
	rover *Rover
}

func (c *TurnRightCommand) Execute() {
	c.rover.TurnRight()
}

// CommandFor binds a verb to a rover. The returned command is reusable;
// executing it twice performs the instruction twice.
func CommandFor(v Verb, r *Rover) Command {
	switch v {
	case VerbTurnLeft:
		return &TurnLeftCommand{rover: r}
	case VerbTurnRight:
		return &TurnRightCommand{rover: r}
	default:
		return &MoveCommand{rover: r}
	}
}
