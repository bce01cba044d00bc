package handler

import (
	"github.com/gin-gonic/gin"

	"pay-dashboard-api/internal/gateway/health"
	"pay-dashboard-api/internal/presenter"
)

type HealthHandler struct {
	tracker *health.Tracker
	clock   presenter.Clock
}

func NewHealthHandler(tracker *health.Tracker, clock presenter.Clock) *HealthHandler {
	return &HealthHandler{tracker: tracker, clock: clock}
}

type healthResp struct {
	Status   string                  `json:"status"`
	Time     string                  `json:"time"`
	Upstream []health.EndpointHealth `json:"upstream"`
}

// Health GET /health. Status is "degraded" while any upstream endpoint is below threshold;
// the service itself keeps answering either way.
func (h *HealthHandler) Health(c *gin.Context) {
	endpoints := h.tracker.Snapshot()
	status := "ok"
	for _, e := range endpoints {
		if e.Degraded {
			status = "degraded"
			break
		}
	}
	ok(c, healthResp{
		Status:   status,
		Time:     h.clock.FormatDateTime(h.clock.Now()),
		Upstream: endpoints,
	})
}
