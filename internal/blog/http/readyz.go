package http

import (
	"net/http"
	"time"

	"github.com/openjournal/blogd/internal/blog/store"
	"github.com/openjournal/blogd/pkg/httpx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Returns service health including database connectivity. A failing
//	@Description	database check reports status "degraded" with a 503.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	HealthResponse	"status, uptime, version, database"
//	@Failure		503	{object}	HealthResponse	"status, uptime, version, database - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overallStatus := "ok"
		database := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := HealthResponse{
			Status:   overallStatus,
			Uptime:   time.Since(startTime).String(),
			Version:  version,
			Database: database,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
