package handler

import (
	"net/http"

	"github.com/mdSHash/SleekSell/internal/dto"
	"github.com/mdSHash/SleekSell/internal/model"
	"github.com/mdSHash/SleekSell/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CartHandler struct{ svc service.POSService }

func NewCartHandler(svc service.POSService) *CartHandler { return &CartHandler{svc: svc} }

// AddItem reserves stock and appends a cart line.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddToCartRequest
	if !bindAndValidate(c, &req) {
		return
	}
	line, err := h.svc.AddToCart(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lineToResponse(line))
}

// RemoveItem deletes the first matching line and releases its reservation.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	line, err := h.svc.RemoveFromCart(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lineToResponse(line))
}

// Get returns the current cart contents and running total.
func (h *CartHandler) Get(c *gin.Context) {
	lines, total := h.svc.CartContents(c.Request.Context())
	c.JSON(http.StatusOK, cartToResponse(lines, total))
}

// Abandon clears the cart and releases every reservation.
func (h *CartHandler) Abandon(c *gin.Context) {
	if _, err := h.svc.AbandonCart(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func lineToResponse(line model.CartLine) dto.CartLineResponse {
	return dto.CartLineResponse{
		ProductID: line.ProductID,
		Name:      line.Name,
		UnitPrice: line.UnitPrice,
		Quantity:  line.Quantity,
		Subtotal:  line.Subtotal(),
	}
}

func cartToResponse(lines []model.CartLine, total decimal.Decimal) dto.CartResponse {
	items := make([]dto.CartLineResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, lineToResponse(l))
	}
	return dto.CartResponse{Items: items, Total: total}
}
