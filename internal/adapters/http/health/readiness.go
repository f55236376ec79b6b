package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"constraintsvc/internal/adapters/http/response"
	"constraintsvc/internal/platform/health"
	"constraintsvc/internal/platform/logger"
	"constraintsvc/internal/version"
)

const readinessTimeout = 5 * time.Second

type ReadinessHandler struct {
	info          version.BuildInfo
	healthManager health.ManagerInterface
}

func NewReadinessHandler(info version.BuildInfo, healthManager health.ManagerInterface) *ReadinessHandler {
	return &ReadinessHandler{
		info:          info,
		healthManager: healthManager,
	}
}

func statusOf(result health.CheckResult) Status {
	switch result.Status {
	case health.StatusHealthy:
		return StatusPass
	case health.StatusUnhealthy:
		return StatusFail
	default:
		return StatusWarn
	}
}

func (h *ReadinessHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	results := h.healthManager.CheckAll(ctx)

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := ReadinessResponse{
		Status:    StatusPass,
		Version:   h.info.Version,
		ReleaseID: h.info.GitCommit,
		Checks:    make(map[string][]CheckDetail, len(results)),
	}
	now := time.Now().UTC()

	for _, name := range names {
		result := results[name]
		status := statusOf(result)

		detail := CheckDetail{
			ComponentID:   name,
			ComponentType: "component",
			Status:        status,
			ObservedValue: float64(result.Latency.Microseconds()) / 1000,
			ObservedUnit:  "ms",
			Time:          now,
			Output:        result.Message,
		}
		if result.Error != "" {
			detail.Output = result.Error
		}
		resp.Checks[name] = []CheckDetail{detail}

		switch {
		case status == StatusFail:
			resp.Status = StatusFail
			resp.Notes = append(resp.Notes, "Dependency "+name+" is unavailable")
		case status == StatusWarn && resp.Status == StatusPass:
			resp.Status = StatusWarn
		}
	}

	statusCode := http.StatusOK
	if resp.Status == StatusFail {
		statusCode = http.StatusServiceUnavailable
		logger.FromContext(ctx).Warn("Readiness check failed", logger.Any("notes", resp.Notes))
	}

	response.RespondJSON(w, statusCode, resp)
}
