package handler

import (
	"net/http"

	"github.com/mdSHash/SleekSell/internal/dto"
	"github.com/mdSHash/SleekSell/internal/model"
	"github.com/mdSHash/SleekSell/internal/service"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct{ svc service.POSService }

func NewInventoryHandler(svc service.POSService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// List returns the full catalog snapshot, sorted by product ID.
func (h *InventoryHandler) List(c *gin.Context) {
	products := h.svc.ListInventory(c.Request.Context())
	data := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		data = append(data, productToResponse(p))
	}
	c.JSON(http.StatusOK, dto.InventoryListResponse{Data: data, Total: len(data)})
}

// Add inserts a new product or merges stock into an existing one.
func (h *InventoryHandler) Add(c *gin.Context) {
	var req dto.AddProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.AddProduct(c.Request.Context(), model.Product{
		ID:     req.ProductID,
		Name:   req.Name,
		Price:  req.Price,
		OnHand: req.Quantity,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, productToResponse(p))
}

// AdjustStock applies a manual correction (restock or shrinkage).
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	var req dto.AdjustStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.AdjustStock(c.Request.Context(), c.Param("id"), req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productToResponse(p))
}

// Save persists the current snapshot; used to retry a failed post-checkout
// save.
func (h *InventoryHandler) Save(c *gin.Context) {
	if err := h.svc.SaveInventory(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func productToResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		OnHand:    p.OnHand,
		Reserved:  p.Reserved,
		Available: p.Available(),
	}
}
