package handler

import (
	"github.com/gin-gonic/gin"

	appcollection "github.com/recoffee/backend/internal/application/collection"
)

// CoffeeHandler handles cafe collection endpoints under /coffee/:cafe_id
type CoffeeHandler struct {
	BaseHandler
	collectionService *appcollection.CollectionService
}

// NewCoffeeHandler creates a new CoffeeHandler
func NewCoffeeHandler(collectionService *appcollection.CollectionService) *CoffeeHandler {
	return &CoffeeHandler{collectionService: collectionService}
}

// ListRules returns every rule of the cafe, possibly none
// GET /api/coffee/:cafe_id/rule
func (h *CoffeeHandler) ListRules(c *gin.Context) {
	cafeID, ok := h.pathInt(c, "cafe_id")
	if !ok {
		return
	}

	rules, err := h.collectionService.ListRules(c.Request.Context(), cafeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rules)
}

// CreateRules appends the requested slots
// POST /api/coffee/:cafe_id/rule
func (h *CoffeeHandler) CreateRules(c *gin.Context) {
	cafeID, ok := h.pathInt(c, "cafe_id")
	if !ok {
		return
	}

	var req CreateRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	rules, err := h.collectionService.CreateRules(c.Request.Context(), cafeID, req.toAppRequest())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rules)
}

// ListTransactions returns the cafe's transactions in any status
// GET /api/coffee/:cafe_id/transaction
func (h *CoffeeHandler) ListTransactions(c *gin.Context) {
	cafeID, ok := h.pathInt(c, "cafe_id")
	if !ok {
		return
	}

	txs, err := h.collectionService.ListTransactions(c.Request.Context(), cafeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, txs)
}

// CreateTransaction records a Waiting transaction with a client-chosen id
// POST /api/coffee/:cafe_id/transaction
func (h *CoffeeHandler) CreateTransaction(c *gin.Context) {
	cafeID, ok := h.pathInt(c, "cafe_id")
	if !ok {
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	tx, err := h.collectionService.CreateTransaction(c.Request.Context(), cafeID, req.toAppRequest())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, tx)
}

// CancelTransaction deletes a transaction; unknown ids still answer 204
// DELETE /api/coffee/:cafe_id/transaction
func (h *CoffeeHandler) CancelTransaction(c *gin.Context) {
	cafeID, ok := h.pathInt(c, "cafe_id")
	if !ok {
		return
	}

	var req CancelTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	if err := h.collectionService.CancelTransaction(c.Request.Context(), cafeID, *req.HistoryID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Carbon returns the total amount of the cafe's completed transactions
// GET /api/coffee/:cafe_id/carbon
func (h *CoffeeHandler) Carbon(c *gin.Context) {
	cafeID, ok := h.pathInt(c, "cafe_id")
	if !ok {
		return
	}

	total, err := h.collectionService.CarbonTotal(c.Request.Context(), cafeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, total)
}
