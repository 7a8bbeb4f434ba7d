package handlers

import (
	"net/http"

	"github.com/delvaty/construccion-easy/internal/config"
	"github.com/delvaty/construccion-easy/pkg/response"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog *config.StageCatalog
}

func NewCatalogHandler(catalog *config.StageCatalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GetStages returns the stage catalog used to render process timelines.
func (h *CatalogHandler) GetStages(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog)
}

// GetProcessStages returns the stages of one process type.
func (h *CatalogHandler) GetProcessStages(c *gin.Context) {
	processType := c.Param("type")
	stages, ok := h.catalog.Processes[processType]
	if !ok {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "unknown process type"})
		return
	}
	c.JSON(http.StatusOK, stages)
}
