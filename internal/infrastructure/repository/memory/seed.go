package memory

import "github.com/riskibarqy/depth-chart/internal/domain/depthchart"

// SeedDepthChart returns a demo roster, each position listed in depth order.
func SeedDepthChart() map[depthchart.Position][]depthchart.Player {
	return map[depthchart.Position][]depthchart.Player{
		depthchart.PositionQuarterback: {
			{Number: 12, Name: "Tom Brady"},
			{Number: 11, Name: "Blaine Gabbert"},
			{Number: 2, Name: "Kyle Trask"},
		},
		depthchart.PositionLeftWideReceiver: {
			{Number: 13, Name: "Mike Evans"},
			{Number: 1, Name: "Jaelon Darden"},
			{Number: 10, Name: "Scott Miller"},
		},
		depthchart.PositionRunningBack: {
			{Number: 7, Name: "Leonard Fournette"},
			{Number: 27, Name: "Ronald Jones II"},
		},
		depthchart.PositionTightEnd: {
			{Number: 87, Name: "Rob Gronkowski"},
			{Number: 84, Name: "Cameron Brate"},
		},
		depthchart.PositionLeftTackle: {
			{Number: 76, Name: "Donovan Smith"},
			{Number: 72, Name: "Josh Wells"},
		},
	}
}
