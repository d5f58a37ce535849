package endpoint

import (
	"fmt"

	"github.com/ariebrainware/tripwire/model"
	"github.com/ariebrainware/tripwire/util"
	"github.com/gin-gonic/gin"
)

// ListAlerts godoc
// @Summary      List alerts
// @Description  Alerts ordered by timestamp, newest first. Ties keep the most recently recorded first.
// @Tags         Alert
// @Produce      json
// @Param        status query string false "Filter by status (New, Investigating, False Positive, Resolved)"
// @Param        limit query int false "Limit number of results, 0 for all" default(0)
// @Param        offset query int false "Offset for pagination" default(0)
// @Success      200 {object} util.APIResponse{data=[]model.Alert} "Alerts retrieved"
// @Failure      400 {object} util.APIResponse "Invalid query"
// @Router       /api/alerts [get]
func ListAlerts(c *gin.Context) {
	svc, ok := ensureServices(c)
	if !ok {
		return
	}

	limit, offset, err := parsePagination(c)
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid pagination",
			Err: err,
		})
		return
	}

	alerts := svc.Store.ListAlerts()
	if raw := c.Query("status"); raw != "" {
		status, err := model.ParseAlertStatus(raw)
		if err != nil {
			respondError(c, "Invalid status filter", err)
			return
		}
		filtered := alerts[:0]
		for _, a := range alerts {
			if a.Status == status {
				filtered = append(filtered, a)
			}
		}
		alerts = filtered
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Alerts retrieved",
		Data: paginate(alerts, limit, offset),
	})
}

// GetAlert godoc
// @Summary      Get an alert
// @Tags         Alert
// @Produce      json
// @Param        id path string true "Alert ID"
// @Success      200 {object} util.APIResponse{data=model.Alert} "Alert retrieved"
// @Failure      404 {object} util.APIResponse "Alert not found"
// @Router       /api/alerts/{id} [get]
func GetAlert(c *gin.Context) {
	svc, ok := ensureServices(c)
	if !ok {
		return
	}
	alert, err := svc.Store.GetAlert(c.Param("id"))
	if err != nil {
		respondError(c, "Alert not found", err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Alert retrieved",
		Data: alert,
	})
}

// UpdateAlert godoc
// @Summary      Update alert notes or status
// @Description  Only the supplied fields change.
// @Tags         Alert
// @Accept       json
// @Produce      json
// @Param        id path string true "Alert ID"
// @Param        patch body model.AlertPatch true "Fields to update"
// @Success      200 {object} util.APIResponse{data=model.Alert} "Alert updated"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      404 {object} util.APIResponse "Alert not found"
// @Failure      503 {object} util.APIResponse "Storage unavailable"
// @Router       /api/alerts/{id} [patch]
func UpdateAlert(c *gin.Context) {
	svc, ok := ensureServices(c)
	if !ok {
		return
	}

	var patch model.AlertPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}
	if patch.Empty() {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Nothing to update",
			Err: fmt.Errorf("%w: patch must set notes or status", model.ErrInvalidStatus),
		})
		return
	}
	if patch.Status != nil {
		status, err := model.ParseAlertStatus(string(*patch.Status))
		if err != nil {
			respondError(c, "Invalid status", err)
			return
		}
		patch.Status = &status
	}

	alert, err := svc.Store.UpdateAlert(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, "Failed to update alert", err)
		return
	}

	util.LogSecurityEvent(util.SecurityEvent{
		EventType: util.EventAlertUpdated,
		TokenID:   alert.TokenID,
		AlertID:   alert.ID,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Message:   fmt.Sprintf("Alert status is %s", alert.Status),
	})

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Alert updated",
		Data: alert,
	})
}
