package order

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type priceRequest struct {
	PizzaName       string `json:"pizzaname"`
	PizzaToppings   string `json:"pizzatoppings"`
	AdditionalItems string `json:"additionalitems"`
}

// --------------------------------------------------
// Price a free-text order
// --------------------------------------------------
func (h *Handler) CalculatePrice(c *gin.Context) {
	var req priceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	result := h.service.PriceOrder(
		req.PizzaName,
		req.PizzaToppings,
		req.AdditionalItems,
	)

	c.JSON(http.StatusOK, result)
}
