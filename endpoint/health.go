package endpoint

import (
	"fmt"
	"net/http"

	"github.com/ariebrainware/tripwire/util"
	"github.com/gin-gonic/gin"
)

// Welcome returns a greeting naming the app.
func Welcome(appName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", appName),
		})
	}
}

// Healthz godoc
// @Summary      Liveness probe
// @Tags         Health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /healthz [get]
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetStats godoc
// @Summary      Dashboard statistics
// @Description  Token totals and alert counts per status.
// @Tags         Alert
// @Produce      json
// @Success      200 {object} util.APIResponse{data=model.Stats} "Stats retrieved"
// @Router       /api/stats [get]
func GetStats(c *gin.Context) {
	svc, ok := ensureServices(c)
	if !ok {
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Stats retrieved",
		Data: svc.Store.Stats(),
	})
}
