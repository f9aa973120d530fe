package server

import (
	"net/http"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

// PprofServer builds the profiling server. It listens on its own address and
// should only be reachable internally.
func PprofServer(addr string) *http.Server {
	pprofRouter := gin.New()
	pprof.Register(pprofRouter)
	return &http.Server{Addr: addr, Handler: pprofRouter}
}
