package server

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/eonics-site/assets"
)

// SetupAssets serves the embedded stylesheet, script and images under /assets.
func SetupAssets(r *gin.Engine) error {
	staticFiles, err := fs.Sub(assets.Assets, ".")
	if err != nil {
		return err
	}
	r.StaticFS("/assets", http.FS(staticFiles))
	return nil
}
