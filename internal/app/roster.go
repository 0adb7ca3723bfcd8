package app

import (
	"io"
	"os"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/depth-chart/internal/domain/depthchart"
)

type rosterPlayer struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// LoadRosterFile reads a roster document shaped like
// {"QB":[{"number":12,"name":"Tom Brady"}]}, players listed in depth order.
func LoadRosterFile(path string) (map[depthchart.Position][]depthchart.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, crerr.Wrapf(err, "open roster file %q", path)
	}
	defer f.Close()

	return DecodeRoster(f)
}

func DecodeRoster(r io.Reader) (map[depthchart.Position][]depthchart.Player, error) {
	var raw map[string][]rosterPlayer
	decoder := sonic.ConfigDefault.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&raw); err != nil {
		return nil, crerr.Wrap(err, "decode roster")
	}

	roster := make(map[depthchart.Position][]depthchart.Player, len(raw))
	for key, players := range raw {
		position, err := depthchart.ParsePosition(key)
		if err != nil {
			return nil, crerr.Wrapf(err, "roster position %q", key)
		}
		if _, dup := roster[position]; dup {
			return nil, crerr.Newf("roster lists position %s more than once", position)
		}

		list := make([]depthchart.Player, 0, len(players))
		for i, p := range players {
			player := depthchart.Player{Number: p.Number, Name: p.Name}
			if err := player.Validate(); err != nil {
				return nil, crerr.Wrapf(err, "roster %s entry %d", position, i)
			}
			list = append(list, player)
		}
		roster[position] = list
	}

	return roster, nil
}
