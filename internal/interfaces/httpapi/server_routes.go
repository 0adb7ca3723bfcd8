package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool, metricsHandler http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerDepthChartRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/depth-charts", handler.GetFullDepthChart)
	mux.HandleFunc("PUT /v1/depth-charts", handler.AddOrMovePlayer)
	mux.HandleFunc("DELETE /v1/depth-charts", handler.RemovePlayer)
	mux.HandleFunc("GET /v1/depth-charts/positions/{position}", handler.GetPositionChart)
	mux.HandleFunc("PUT /v1/depth-charts/positions/{position}", handler.AddPlayersBulk)
	mux.HandleFunc("GET /v1/depth-charts/positions/{position}/backups", handler.GetBackups)
}
