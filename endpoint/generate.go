package endpoint

import (
	"fmt"

	"github.com/ariebrainware/tripwire/util"
	"github.com/gin-gonic/gin"
)

type generateRequest struct {
	Prompt string `json:"prompt" example:"finance department backups"`
}

type generateResponse struct {
	URLs []string `json:"urls"`
}

// GenerateURLs godoc
// @Summary      Generate deceptive URLs
// @Description  Suggest 3 to 5 realistic-looking URLs for a theme. Nothing is stored.
// @Tags         Generator
// @Accept       json
// @Produce      json
// @Param        request body generateRequest true "Theme prompt"
// @Success      200 {object} util.APIResponse{data=generateResponse} "URLs generated"
// @Failure      400 {object} util.APIResponse "Empty prompt"
// @Failure      429 {object} util.APIResponse "Too many requests"
// @Failure      502 {object} util.APIResponse "Generation failed"
// @Router       /api/generate [post]
func GenerateURLs(c *gin.Context) {
	svc, ok := ensureServices(c)
	if !ok {
		return
	}
	if svc.Generator == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Generator not available",
			Err: fmt.Errorf("generator is not configured"),
		})
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}

	urls, err := svc.Generator.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		respondError(c, "Failed to generate URLs", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "URLs generated",
		Data: generateResponse{URLs: urls},
	})
}
