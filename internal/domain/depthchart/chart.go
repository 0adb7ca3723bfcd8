package depthchart

// Chart is the ordered depth ranking of one position: index 0 is the starter.
// A Chart does no business validation; callers check indices before mutating.
type Chart struct {
	players []Player
}

// NewChart builds a chart from players already in depth order.
func NewChart(players ...Player) *Chart {
	return &Chart{players: append([]Player(nil), players...)}
}

func (c *Chart) Len() int {
	return len(c.players)
}

// IndexOf returns the depth of the player with the given number, or -1.
func (c *Chart) IndexOf(number int) int {
	for i, p := range c.players {
		if p.Number == number {
			return i
		}
	}
	return -1
}

// At returns the player at depth i.
func (c *Chart) At(i int) Player {
	return c.players[i]
}

// Insert places player at index, shifting later entries down. A negative
// index appends. An index past the end panics like any slice bound violation.
func (c *Chart) Insert(player Player, index int) {
	if index < 0 || index == len(c.players) {
		c.players = append(c.players, player)
		return
	}
	if index > len(c.players) {
		panic("depthchart: insert index out of range")
	}

	c.players = append(c.players, Player{})
	copy(c.players[index+1:], c.players[index:])
	c.players[index] = player
}

// Move relocates the entry matching player.Number to newIndex. When the player
// is absent only the insert half happens.
func (c *Chart) Move(player Player, newIndex int) {
	if current := c.IndexOf(player.Number); current != -1 {
		c.removeAt(current)
	}
	c.Insert(player, newIndex)
}

// Remove deletes the first entry matching player.Number and returns the stored value.
func (c *Chart) Remove(player Player) (Player, bool) {
	i := c.IndexOf(player.Number)
	if i == -1 {
		return Player{}, false
	}
	removed := c.players[i]
	c.removeAt(i)
	return removed, true
}

// Players returns a snapshot of the chart in depth order.
func (c *Chart) Players() []Player {
	out := make([]Player, len(c.players))
	copy(out, c.players)
	return out
}

// After returns a snapshot of every player ranked below depth i.
func (c *Chart) After(i int) []Player {
	if i < 0 || i+1 >= len(c.players) {
		return []Player{}
	}
	out := make([]Player, len(c.players)-i-1)
	copy(out, c.players[i+1:])
	return out
}

func (c *Chart) removeAt(i int) {
	copy(c.players[i:], c.players[i+1:])
	c.players[len(c.players)-1] = Player{}
	c.players = c.players[:len(c.players)-1]
}
