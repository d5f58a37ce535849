package endpoint

import (
	"net/http"
	"strings"

	"github.com/ariebrainware/tripwire/middleware"
	"github.com/ariebrainware/tripwire/trap"
	"github.com/ariebrainware/tripwire/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const trapNote = "Alert triggered by direct URL access."

// 1x1 transparent GIF.
var pixelGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00, 0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00,
	0x01, 0x00, 0x01, 0x00, 0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
}

const accessDeniedPage = `<!DOCTYPE html>
<html><head><title>403 Forbidden</title></head>
<body><h1>Access Denied</h1><p>You do not have permission to access this resource.</p></body></html>`

// requestMetadata collects what the trap records about a caller.
func requestMetadata(c *gin.Context, source, notes string) trap.Metadata {
	headers := make(map[string]string, len(c.Request.Header))
	for k, v := range c.Request.Header {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}
	ip := c.ClientIP()
	geo, _ := util.LookupGeolocation(ip)
	return trap.Metadata{
		IP:          ip,
		UserAgent:   c.Request.UserAgent(),
		Headers:     headers,
		Geolocation: geo,
		Notes:       notes,
		Source:      source,
	}
}

func handleAccess(c *gin.Context, tokenID, source, notes string) {
	svc, ok := middleware.GetServices(c)
	if !ok || svc.Detector == nil || tokenID == "" {
		return
	}
	// The response never depends on the outcome; storage failures are only logged.
	if _, err := svc.Detector.HandleAccess(c.Request.Context(), tokenID, requestMetadata(c, source, notes)); err != nil {
		log.Error().Err(err).Str("source", source).Msg("trap access not recorded")
	}
}

// Trap godoc
// @Summary      Deceptive URL trap
// @Description  Records an alert for an Active token. The response is the same 403 page for every token id.
// @Tags         Trap
// @Produce      html
// @Param        token_id query string true "Token ID"
// @Success      403 {string} string "Access Denied"
// @Router       /trap [get]
func Trap(c *gin.Context) {
	handleAccess(c, c.Query("token_id"), trap.SourceTrap, trapNote)
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusForbidden, "text/html; charset=utf-8", []byte(accessDeniedPage))
}

// Pixel godoc
// @Summary      Tracking pixel
// @Description  Records an alert for an Active TrackedFile token and always returns a 1x1 GIF.
// @Tags         Trap
// @Produce      image/gif
// @Param        file path string true "<token id>.gif"
// @Success      200 {file} binary "1x1 GIF"
// @Router       /pixel/{file} [get]
func Pixel(c *gin.Context) {
	tokenID, found := strings.CutSuffix(c.Param("file"), ".gif")
	if found {
		handleAccess(c, tokenID, trap.SourcePixel, "")
	}
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
	c.Data(http.StatusOK, "image/gif", pixelGIF)
}
