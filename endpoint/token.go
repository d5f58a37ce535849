package endpoint

import (
	"fmt"
	"time"

	"github.com/ariebrainware/tripwire/model"
	"github.com/ariebrainware/tripwire/trap"
	"github.com/ariebrainware/tripwire/util"
	"github.com/gin-gonic/gin"
)

type updateTokenStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Disabled"`
}

// ListTokens godoc
// @Summary      List honeytokens
// @Description  Get every honeytoken in creation order
// @Tags         Token
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]model.HoneyToken} "Tokens retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /api/tokens [get]
func ListTokens(c *gin.Context) {
	svc, ok := ensureServices(c)
	if !ok {
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Tokens retrieved",
		Data: svc.Store.ListTokens(),
	})
}

// CreateToken godoc
// @Summary      Create a honeytoken
// @Description  Mint a DeceptiveURL or TrackedFile token. DeceptiveURL tokens take an optional triggerValue template containing {token_id}.
// @Tags         Token
// @Accept       json
// @Produce      json
// @Param        token body trap.CreateTokenRequest true "Token to create"
// @Success      201 {object} util.APIResponse{data=model.HoneyToken} "Token created"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      503 {object} util.APIResponse "Storage unavailable"
// @Router       /api/tokens [post]
func CreateToken(c *gin.Context) {
	svc, ok := ensureServices(c)
	if !ok {
		return
	}

	var req trap.CreateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}

	token, err := trap.NewToken(req, svc.BaseURL, time.Now())
	if err != nil {
		respondError(c, "Invalid token", err)
		return
	}
	if err := svc.Store.CreateToken(c.Request.Context(), token); err != nil {
		respondError(c, "Failed to create token", err)
		return
	}

	util.LogSecurityEvent(util.SecurityEvent{
		EventType: util.EventTokenCreated,
		TokenID:   token.ID,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Message:   fmt.Sprintf("Honeytoken %q created", token.Name),
	})

	util.CallSuccessCreated(c, util.APISuccessParams{
		Msg:  "Token created",
		Data: token,
	})
}

// GetToken godoc
// @Summary      Get a honeytoken
// @Tags         Token
// @Produce      json
// @Param        id path string true "Token ID"
// @Success      200 {object} util.APIResponse{data=model.HoneyToken} "Token retrieved"
// @Failure      404 {object} util.APIResponse "Token not found"
// @Router       /api/tokens/{id} [get]
func GetToken(c *gin.Context) {
	svc, ok := ensureServices(c)
	if !ok {
		return
	}
	token, err := svc.Store.GetToken(c.Param("id"))
	if err != nil {
		respondError(c, "Token not found", err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Token retrieved",
		Data: token,
	})
}

// UpdateTokenStatus godoc
// @Summary      Enable or disable a honeytoken
// @Description  Disabled tokens stop producing alerts; accesses are still answered the same way.
// @Tags         Token
// @Accept       json
// @Produce      json
// @Param        id path string true "Token ID"
// @Param        status body updateTokenStatusRequest true "New status (Active or Disabled)"
// @Success      200 {object} util.APIResponse{data=model.HoneyToken} "Token status updated"
// @Failure      400 {object} util.APIResponse "Invalid status"
// @Failure      404 {object} util.APIResponse "Token not found"
// @Failure      503 {object} util.APIResponse "Storage unavailable"
// @Router       /api/tokens/{id}/status [patch]
func UpdateTokenStatus(c *gin.Context) {
	svc, ok := ensureServices(c)
	if !ok {
		return
	}

	var req updateTokenStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}
	status, err := model.ParseTokenStatus(req.Status)
	if err != nil {
		respondError(c, "Invalid status", err)
		return
	}

	token, err := svc.Store.UpdateTokenStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		respondError(c, "Failed to update token status", err)
		return
	}

	util.LogSecurityEvent(util.SecurityEvent{
		EventType: util.EventTokenStatusChanged,
		TokenID:   token.ID,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Message:   fmt.Sprintf("Honeytoken status set to %s", token.Status),
	})

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Token status updated",
		Data: token,
	})
}

// DeleteToken godoc
// @Summary      Delete a honeytoken
// @Description  Alerts already recorded for the token are kept.
// @Tags         Token
// @Produce      json
// @Param        id path string true "Token ID"
// @Success      200 {object} util.APIResponse "Token deleted"
// @Failure      404 {object} util.APIResponse "Token not found"
// @Failure      503 {object} util.APIResponse "Storage unavailable"
// @Router       /api/tokens/{id} [delete]
func DeleteToken(c *gin.Context) {
	svc, ok := ensureServices(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if err := svc.Store.DeleteToken(c.Request.Context(), id); err != nil {
		respondError(c, "Failed to delete token", err)
		return
	}

	util.LogSecurityEvent(util.SecurityEvent{
		EventType: util.EventTokenDeleted,
		TokenID:   id,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Message:   "Honeytoken deleted",
	})

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Token deleted",
		Data: map[string]string{"id": id},
	})
}

// ListTokenAlerts godoc
// @Summary      List alerts for a honeytoken
// @Description  Alerts of deleted tokens remain listable by their token id.
// @Tags         Token
// @Produce      json
// @Param        id path string true "Token ID"
// @Success      200 {object} util.APIResponse{data=[]model.Alert} "Alerts retrieved"
// @Router       /api/tokens/{id}/alerts [get]
func ListTokenAlerts(c *gin.Context) {
	svc, ok := ensureServices(c)
	if !ok {
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Alerts retrieved",
		Data: svc.Store.ListAlertsByToken(c.Param("id")),
	})
}
