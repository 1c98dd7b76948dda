package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers the trace API under rg.
//
// Endpoints:
//
//	GET /sort/:algorithm               sorting trace (data | generate, size, seed)
//	GET /tree/traversal/:traversal     tree traversal trace (tree | generate, size)
//	GET /recursion/:algorithm          recursion trace (n | text)
//	GET /graph/:algorithm              graph traversal trace (edges, start | generate, nodes, seed)
//	GET /algorithms                    families, variants and fixture generators
//	GET /stream/:family/:algorithm     websocket step stream
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.GET("/sort/:algorithm", h.HandleSort)
	rg.GET("/tree/traversal/:traversal", h.HandleTreeTraversal)
	rg.GET("/recursion/:algorithm", h.HandleRecursion)
	rg.GET("/graph/:algorithm", h.HandleGraph)
	rg.GET("/algorithms", h.HandleAlgorithms)
	rg.GET("/stream/:family/:algorithm", h.HandleStream)
}

// NewRouter returns a gin engine with request IDs, recovery, the API under
// /api, /healthz and /metrics.
func NewRouter(h *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestContext(h.logger))

	RegisterRoutes(router.Group("/api"), h)
	router.GET("/healthz", h.HandleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return router
}
