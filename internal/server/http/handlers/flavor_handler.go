package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmoura/pastelaria/internal/domain/model"
	"github.com/dmoura/pastelaria/internal/server/http/dto"
)

// FlavorHandler serves the flavor catalog.
type FlavorHandler struct {
	facade CatalogFacade
}

// NewFlavorHandler constructs FlavorHandler.
func NewFlavorHandler(facade CatalogFacade) *FlavorHandler {
	return &FlavorHandler{facade: facade}
}

// List handles GET /api/flavors.
func (h *FlavorHandler) List(c *gin.Context) {
	flavors, err := h.facade.Flavors(c.Request.Context())
	if err != nil {
		internalError(c)
		return
	}

	response := make([]dto.FlavorResponse, 0, len(flavors))
	for _, f := range flavors {
		response = append(response, toFlavorResponse(f))
	}
	c.JSON(http.StatusOK, response)
}

func toFlavorResponse(f model.Flavor) dto.FlavorResponse {
	return dto.FlavorResponse{
		ID:          f.ID,
		Name:        f.Name,
		Price:       f.Price,
		Description: f.Description,
	}
}
