package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any dependency that exposes a Ping method
// (RedisClient, MemoryReceiptCache and EventBus all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks holds the dependencies probed by the health endpoint.
// A nil checker is reported as "disabled" and does not degrade the status.
type HealthChecks struct {
	Cache    HealthChecker
	EventBus HealthChecker
}

type healthResponse struct {
	Status   string `json:"status"`
	Cache    string `json:"cache"`
	EventBus string `json:"event_bus"`
}

// HealthHandler probes every configured checker and reports 503 with
// status "degraded" if any of them fail.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok"}
		degraded := false
		resp.Cache = probe(ctx, checks.Cache, &degraded)
		resp.EventBus = probe(ctx, checks.EventBus, &degraded)

		status := http.StatusOK
		if degraded {
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}

func probe(ctx context.Context, c HealthChecker, degraded *bool) string {
	if c == nil {
		return "disabled"
	}
	if err := c.Ping(ctx); err != nil {
		*degraded = true
		return "unreachable"
	}
	return "ok"
}
