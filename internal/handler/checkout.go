package handler

import (
	"errors"
	"net/http"

	"github.com/mdSHash/SleekSell/internal/apierror"
	"github.com/mdSHash/SleekSell/internal/dto"
	"github.com/mdSHash/SleekSell/internal/model"
	"github.com/mdSHash/SleekSell/internal/service"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct{ svc service.POSService }

func NewCheckoutHandler(svc service.POSService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

// Checkout finalizes the cart into a transaction. When the purchase commits
// but the inventory save fails, the response still carries the transaction
// plus a save_error hint so the client can retry the save.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if !bindAndValidate(c, &req) {
		return
	}

	txn, err := h.svc.Checkout(c.Request.Context(), req.CustomerEmail)
	if err != nil {
		var pErr *service.PersistenceError
		if errors.As(err, &pErr) && txn != nil {
			c.JSON(http.StatusCreated, dto.CheckoutResponse{
				Transaction: txnToResponse(*txn),
				SaveError:   pErr.Error(),
			})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CheckoutResponse{Transaction: txnToResponse(*txn)})
}

// List returns every recorded transaction in append order.
func (h *CheckoutHandler) List(c *gin.Context) {
	txns := h.svc.ListTransactions(c.Request.Context())
	out := make([]dto.TransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, txnToResponse(t))
	}
	c.JSON(http.StatusOK, out)
}

// Last returns the most recent transaction for receipt display.
func (h *CheckoutHandler) Last(c *gin.Context) {
	txn, ok := h.svc.LastTransaction(c.Request.Context())
	if !ok {
		c.JSON(http.StatusNotFound, apierror.New("no transactions yet"))
		return
	}
	c.JSON(http.StatusOK, txnToResponse(txn))
}

func txnToResponse(t model.Transaction) dto.TransactionResponse {
	items := make([]dto.CartLineResponse, 0, len(t.Lines))
	for _, l := range t.Lines {
		items = append(items, lineToResponse(l))
	}
	return dto.TransactionResponse{
		ID:        t.ID,
		Items:     items,
		Total:     t.Total,
		Timestamp: t.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
	}
}
