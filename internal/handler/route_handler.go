package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/promenade-app/service-route/internal/application"
	"github.com/promenade-app/service-route/internal/domain/route"
)

// PointDTO is a required lon/lat pair in request bodies. Pointers keep zero
// coordinates distinguishable from missing fields.
type PointDTO struct {
	Longitude *float64 `json:"longitude" binding:"required,longitude"`
	Latitude  *float64 `json:"latitude" binding:"required,latitude"`
}

func (p PointDTO) toPoint() orb.Point {
	return orb.Point{*p.Longitude, *p.Latitude}
}

// ConcreteRouteRequest is the body of POST /api/v1/routes/concrete.
type ConcreteRouteRequest struct {
	StartPoint *PointDTO `json:"start_point" binding:"required"`
	EndPoint   *PointDTO `json:"end_point" binding:"required"`
}

// POIRouteRequest is the body of POST /api/v1/routes/poi.
type POIRouteRequest struct {
	Point *PointDTO `json:"point" binding:"required"`
	Type  string    `json:"type" binding:"required,walkcategory"`
}

// RouteHandler handles HTTP requests for route computation.
type RouteHandler struct {
	service *application.RouteService
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(service *application.RouteService) *RouteHandler {
	return &RouteHandler{service: service}
}

// RegisterRoutes registers all route endpoints on the given router group.
func (h *RouteHandler) RegisterRoutes(r *gin.RouterGroup) {
	routes := r.Group("/api/v1/routes")
	{
		routes.POST("/concrete", h.ConcreteRoute)
		routes.POST("/poi", h.POIRoute)
	}
}

// ConcreteRoute handles POST /api/v1/routes/concrete.
func (h *RouteHandler) ConcreteRoute(c *gin.Context) {
	var req ConcreteRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.ConcreteRoute(c.Request.Context(), req.StartPoint.toPoint(), req.EndPoint.toPoint())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// POIRoute handles POST /api/v1/routes/poi.
func (h *RouteHandler) POIRoute(c *gin.Context) {
	var req POIRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := route.ParseCategory(req.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.CategoryRoute(c.Request.Context(), req.Point.toPoint(), category)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// respondError maps domain errors onto HTTP statuses. Provider failures
// echo the raw provider response for diagnostics.
func respondError(c *gin.Context, err error) {
	var providerErr *route.ProviderError
	switch {
	case errors.Is(err, route.ErrNoCandidates):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, route.ErrEmptyRoute):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.As(err, &providerErr):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":             providerErr.Error(),
			"provider_response": json.RawMessage(providerErr.Response),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
