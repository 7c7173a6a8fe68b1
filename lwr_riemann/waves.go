package lwr_riemann

import "fmt"

type WaveType uint8

const (
	Shock WaveType = iota
	Rarefaction
	Contact
)

func (wt WaveType) String() string {
	switch wt {
	case Shock:
		return "shock"
	case Rarefaction:
		return "raref"
	case Contact:
		return "contact"
	}
	return fmt.Sprintf("WaveType(%d)", uint8(wt))
}

/*
Wave is one member of the self-similar wave fan:
  - Shock:       a jump from Left to Right moving at Lo == Hi
  - Rarefaction: a fan from Left to Right spanning characteristic speeds [Lo, Hi]
  - Contact:     the stationary jump at the speed limit interface, Lo == Hi == 0

V is the speed limit governing the wave, zero for a contact which separates the two.
*/
type Wave struct {
	Type        WaveType
	Lo, Hi      float64
	Left, Right float64
	V           float64
}

func NewShock(left, right, speed, v float64) Wave {
	return Wave{Type: Shock, Lo: speed, Hi: speed, Left: left, Right: right, V: v}
}

func NewRarefaction(left, right, v float64) Wave {
	return Wave{
		Type:  Rarefaction,
		Lo:    CharSpeed(left, v),
		Hi:    CharSpeed(right, v),
		Left:  left,
		Right: right,
		V:     v,
	}
}

func NewContact(left, right float64) Wave {
	return Wave{Type: Contact, Left: left, Right: right}
}

// Speed is the point speed of a shock or contact, the leading edge of a fan
func (w Wave) Speed() float64 {
	return w.Lo
}

func (w Wave) Interval() (lo, hi float64) {
	return w.Lo, w.Hi
}

// IsDegenerate is true for a wave that carries no jump in density
func (w Wave) IsDegenerate() bool {
	return w.Left == w.Right
}

func (w Wave) String() string {
	switch w.Type {
	case Rarefaction:
		return fmt.Sprintf("%-8s [%9.5f,%9.5f] %8.5f -> %8.5f", w.Type, w.Lo, w.Hi, w.Left, w.Right)
	default:
		return fmt.Sprintf("%-8s  %9.5f            %8.5f -> %8.5f", w.Type, w.Lo, w.Left, w.Right)
	}
}
