package health

import (
	"net/http"
	"time"

	"constraintsvc/internal/adapters/http/response"
	"constraintsvc/internal/version"
)

type LivenessHandler struct {
	info version.BuildInfo
}

func NewLivenessHandler(info version.BuildInfo) *LivenessHandler {
	return &LivenessHandler{info: info}
}

func (h *LivenessHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		response.RespondError(w, http.StatusRequestTimeout, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, LivenessResponse{
		Status:    StatusPass,
		Timestamp: time.Now().UTC(),
		Version:   h.info.Version,
	})
}

// VersionHandler serves the build information of the running binary.
type VersionHandler struct {
	info version.BuildInfo
}

func NewVersionHandler(info version.BuildInfo) *VersionHandler {
	return &VersionHandler{info: info}
}

func (h *VersionHandler) Get(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.info)
}
