package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/depth-chart/internal/domain/depthchart"
	"github.com/riskibarqy/depth-chart/internal/platform/logging"
	"github.com/riskibarqy/depth-chart/internal/usecase"
)

type Handler struct {
	depthChartService *usecase.DepthChartService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(depthChartService *usecase.DepthChartService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		depthChartService: depthChartService,
		logger:            logger,
		validator:         newValidator(),
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("depth_position", func(fl validator.FieldLevel) bool {
		_, err := depthchart.ParsePosition(fl.Field().String())
		return err == nil
	})
	return v
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) AddOrMovePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddOrMovePlayer")
	defer span.End()

	var req addPlayerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	position, _ := depthchart.ParsePosition(req.Position)
	result, err := h.depthChartService.AddOrMovePlayer(ctx, usecase.AddPlayerInput{
		Position: position,
		Player:   req.Player.toDomain(),
		Depth:    req.depth(),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add or move player failed", "position", req.Position, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !result.IsSuccess {
		writeRejected(ctx, w, result)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultToDTO(result))
}

func (h *Handler) AddPlayersBulk(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPlayersBulk")
	defer span.End()

	position, err := parsePathPosition(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var entries []bulkEntryRequest
	if err := decodeJSON(r, &entries); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, bulkAddRequest{Entries: entries}); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := make([]usecase.BulkPlayerEntry, 0, len(entries))
	for _, entry := range entries {
		input = append(input, usecase.BulkPlayerEntry{
			Player: entry.Player.toDomain(),
			Depth:  depthOrEnd(entry.PositionDepth),
		})
	}

	results, err := h.depthChartService.AddPlayersBulk(ctx, position, input)
	if err != nil {
		h.logger.WarnContext(ctx, "bulk add players failed", "position", position, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]bulkEntryResultDTO, 0, len(results))
	for i, result := range results {
		items = append(items, bulkEntryResultDTO{
			Player:          playerToDTO(input[i].Player),
			PositionDepth:   input[i].Depth,
			operationResult: resultToDTO(result),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemovePlayer")
	defer span.End()

	var req removePlayerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	position, _ := depthchart.ParsePosition(req.Position)
	removed, err := h.depthChartService.RemovePlayer(ctx, position, req.Player.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "remove player failed", "position", req.Position, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(removed))
}

func (h *Handler) GetBackups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBackups")
	defer span.End()

	query := r.URL.Query()
	req := backupsRequest{
		Position:   strings.TrimSpace(r.PathValue("position")),
		PlayerName: strings.TrimSpace(query.Get("player_name")),
	}
	rawNumber := strings.TrimSpace(query.Get("player_number"))
	if rawNumber != "" {
		number, err := strconv.Atoi(rawNumber)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: player_number must be an integer", usecase.ErrInvalidInput))
			return
		}
		req.PlayerNumber = &number
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	position, _ := depthchart.ParsePosition(req.Position)
	backups, err := h.depthChartService.GetBackups(ctx, position, depthchart.Player{
		Number: *req.PlayerNumber,
		Name:   req.PlayerName,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get backups failed", "position", req.Position, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(backups))
}

func (h *Handler) GetPositionChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPositionChart")
	defer span.End()

	position, err := parsePathPosition(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.depthChartService.GetPositionChart(ctx, position)
	if err != nil {
		h.logger.ErrorContext(ctx, "get position chart failed", "position", position, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) GetFullDepthChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFullDepthChart")
	defer span.End()

	switch format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format"))); format {
	case "", "json":
	case "text":
		rendered, err := h.depthChartService.RenderFullDepthChart(ctx)
		if err != nil {
			h.logger.ErrorContext(ctx, "render depth chart failed", "error", err)
			writeError(ctx, w, err)
			return
		}
		writeText(ctx, w, http.StatusOK, rendered)
		return
	default:
		writeError(ctx, w, fmt.Errorf("%w: unsupported format %q", usecase.ErrInvalidInput, format))
		return
	}

	charts, err := h.depthChartService.GetFullDepthChart(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get full depth chart failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make(map[string][]playerDTO, len(charts))
	for position, players := range charts {
		out[string(position)] = playersToDTO(players)
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func decodeJSON(r *http.Request, out any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func parsePathPosition(r *http.Request) (depthchart.Position, error) {
	position, err := depthchart.ParsePosition(r.PathValue("position"))
	if err != nil {
		return "", fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return position, nil
}
