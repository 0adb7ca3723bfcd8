package httpapi

import "github.com/riskibarqy/depth-chart/internal/domain/depthchart"

type playerRequest struct {
	Number *int   `json:"number" validate:"required,min=0"`
	Name   string `json:"name" validate:"required,max=100"`
}

func (p playerRequest) toDomain() depthchart.Player {
	number := 0
	if p.Number != nil {
		number = *p.Number
	}
	return depthchart.Player{Number: number, Name: p.Name}
}

type addPlayerRequest struct {
	Position      string        `json:"position" validate:"required,depth_position"`
	Player        playerRequest `json:"player"`
	PositionDepth *int          `json:"position_depth" validate:"omitempty,min=-1"`
}

func (r addPlayerRequest) depth() int {
	return depthOrEnd(r.PositionDepth)
}

type bulkEntryRequest struct {
	Player        playerRequest `json:"player"`
	PositionDepth *int          `json:"position_depth" validate:"omitempty,min=-1"`
}

type bulkAddRequest struct {
	Entries []bulkEntryRequest `validate:"dive"`
}

type removePlayerRequest struct {
	Position string        `json:"position" validate:"required,depth_position"`
	Player   playerRequest `json:"player"`
}

type backupsRequest struct {
	Position     string `validate:"required,depth_position"`
	PlayerNumber *int   `validate:"required,min=0"`
	PlayerName   string `validate:"required"`
}

// depthOrEnd maps an omitted depth to the end of the chart.
func depthOrEnd(depth *int) int {
	if depth == nil {
		return depthchart.EndOfChart
	}
	return *depth
}

type playerDTO struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

type operationResult struct {
	IsValid      bool     `json:"is_valid"`
	IsSuccess    bool     `json:"is_success"`
	ErrorDetails []string `json:"error_details,omitempty"`
}

type bulkEntryResultDTO struct {
	Player        playerDTO `json:"player"`
	PositionDepth int       `json:"position_depth"`
	operationResult
}

func playerToDTO(p depthchart.Player) playerDTO {
	return playerDTO{Number: p.Number, Name: p.Name}
}

func playersToDTO(players []depthchart.Player) []playerDTO {
	out := make([]playerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, playerToDTO(p))
	}
	return out
}

func resultToDTO(r depthchart.OperationResult) operationResult {
	return operationResult{
		IsValid:      r.IsValid,
		IsSuccess:    r.IsSuccess,
		ErrorDetails: r.ErrorDetails,
	}
}
