package depthchart

import (
	"fmt"
	"strings"
)

// Position identifies a roster slot with its own independent depth ranking.
type Position string

const (
	PositionLeftWideReceiver  Position = "LWR"
	PositionRightWideReceiver Position = "RWR"
	PositionLeftTackle        Position = "LT"
	PositionLeftGuard         Position = "LG"
	PositionCenter            Position = "C"
	PositionRightGuard        Position = "RG"
	PositionRightTackle       Position = "RT"
	PositionTightEnd          Position = "TE"
	PositionQuarterback       Position = "QB"
	PositionRunningBack       Position = "RB"
)

// OrderedPositions lists every recognized position in display order.
var OrderedPositions = []Position{
	PositionLeftWideReceiver,
	PositionRightWideReceiver,
	PositionLeftTackle,
	PositionLeftGuard,
	PositionCenter,
	PositionRightGuard,
	PositionRightTackle,
	PositionTightEnd,
	PositionQuarterback,
	PositionRunningBack,
}

var AllPositions = map[Position]struct{}{
	PositionLeftWideReceiver:  {},
	PositionRightWideReceiver: {},
	PositionLeftTackle:        {},
	PositionLeftGuard:         {},
	PositionCenter:            {},
	PositionRightGuard:        {},
	PositionRightTackle:       {},
	PositionTightEnd:          {},
	PositionQuarterback:       {},
	PositionRunningBack:       {},
}

// ParsePosition normalizes a position code and rejects unknown values.
func ParsePosition(raw string) (Position, error) {
	p := Position(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := AllPositions[p]; !ok {
		return "", fmt.Errorf("invalid position: %q", raw)
	}
	return p, nil
}

func (p Position) Valid() bool {
	_, ok := AllPositions[p]
	return ok
}

// Player is identified by Number within a position's chart; Name is display only.
type Player struct {
	Number int
	Name   string
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Number < 0 {
		return fmt.Errorf("player number must be >= 0")
	}

	return nil
}

// EndOfChart is the requested depth that appends to the end of a chart.
const EndOfChart = -1
