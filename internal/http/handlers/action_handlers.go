package handlers

import (
	"net/http"
	"time"
)

// latestActionsLimit caps the admin feed at the most recent entries.
const latestActionsLimit = 30

// GetActionsHandler godoc
// @Summary Latest audit actions
// @Description Returns the 30 most recent audit entries, newest first. Empty when no remote backend is attached.
// @Tags admin
// @Produce json
// @Success 200 {array} ActionResponse
// @Failure 502 {string} string "Backend error"
// @Router /admin/actions [get]
func GetActionsHandler(w http.ResponseWriter, r *http.Request) {
	if actionLog == nil {
		writeJSON(w, http.StatusOK, []ActionResponse{})
		return
	}

	actions, err := actionLog.Latest(r.Context(), latestActionsLimit)
	if err != nil {
		http.Error(w, "could not fetch actions", http.StatusBadGateway)
		return
	}

	out := make([]ActionResponse, len(actions))
	for i, a := range actions {
		out[i] = ActionResponse{
			Message:   a.Message,
			Timestamp: a.Timestamp.UTC().Format(time.RFC3339),
		}
	}
	writeJSON(w, http.StatusOK, out)
}
