package cart

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Catalog resolves catalog ids to the immutable snapshots the engine prices
// lines from. Lookup failures mean the id does not exist (or is unavailable).
type Catalog interface {
	ProductSnapshot(ctx context.Context, productID int) (ProductSnapshot, error)
	VariantSnapshot(ctx context.Context, productID, variantID int) (ProductSnapshot, VariantSnapshot, error)
	ComboSnapshot(ctx context.Context, comboID int) (ComboSnapshot, error)
}

type Handler struct {
	sessions *SessionManager
	catalog  Catalog
}

func NewHandler(sessions *SessionManager, catalog Catalog) *Handler {
	return &Handler{sessions: sessions, catalog: catalog}
}

// --------------------------------------------------
// Session lifecycle
// --------------------------------------------------
func (h *Handler) CreateSession(c *gin.Context) {
	id, _ := h.sessions.Create()
	c.JSON(http.StatusCreated, gin.H{"session_id": id})
}

func (h *Handler) GetCart(c *gin.Context) {
	store, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart session not found"})
		return
	}

	state := store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"lines":            state.Lines,
		"is_open":          state.IsOpen,
		"total_item_count": state.TotalItemCount(),
		"total_price":      state.TotalPrice(),
	})
}

// --------------------------------------------------
// Add item (product / variant / combo / legacy)
// --------------------------------------------------

type addItemRequest struct {
	Kind           string   `json:"kind" binding:"required"`
	ProductID      int      `json:"product_id"`
	VariantID      int      `json:"variant_id"`
	ComboID        int      `json:"combo_id"`
	Quantity       *int     `json:"quantity"`
	Notes          string   `json:"notes"`
	Customizations []string `json:"customizations"`

	// legacy path only
	Item *MenuItemSnapshot `json:"item"`
}

func (h *Handler) AddItem(c *gin.Context) {
	store, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart session not found"})
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	qty := 1
	if req.Quantity != nil {
		if *req.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be at least 1"})
			return
		}
		qty = *req.Quantity
	}

	ctx := c.Request.Context()

	var lineID string
	var err error

	switch LineKind(req.Kind) {
	case KindProduct:
		var product ProductSnapshot
		product, err = h.catalog.ProductSnapshot(ctx, req.ProductID)
		if err == nil {
			lineID, err = store.AddProduct(product, qty, req.Notes, req.Customizations)
		}

	case KindProductVariant:
		var product ProductSnapshot
		var variant VariantSnapshot
		product, variant, err = h.catalog.VariantSnapshot(ctx, req.ProductID, req.VariantID)
		if err == nil {
			lineID, err = store.AddProductVariant(product, variant, qty, req.Notes, req.Customizations)
		}

	case KindFoodCombo:
		var combo ComboSnapshot
		combo, err = h.catalog.ComboSnapshot(ctx, req.ComboID)
		if err == nil {
			lineID, err = store.AddFoodCombo(combo, qty, req.Notes, req.Customizations)
		}

	case KindLegacy:
		if req.Item == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "item is required for legacy adds"})
			return
		}
		err = store.AddLegacyItem(*req.Item, req.Notes, req.Customizations)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown item kind"})
		return
	}

	if err != nil {
		if errors.Is(err, ErrInvalidQuantity) || errors.Is(err, ErrInvalidSnapshot) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"line_id":          lineID,
		"total_item_count": store.TotalItemCount(),
		"total_price":      store.TotalPrice(),
	})
}

// --------------------------------------------------
// Quantity / removal / clear / visibility
// --------------------------------------------------

func (h *Handler) UpdateQuantity(c *gin.Context) {
	store, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart session not found"})
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	// quantity <= 0 removes the line, by contract
	store.UpdateQuantity(c.Param("lineID"), req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"total_item_count": store.TotalItemCount(),
		"total_price":      store.TotalPrice(),
	})
}

func (h *Handler) RemoveLine(c *gin.Context) {
	store, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart session not found"})
		return
	}

	store.RemoveLine(c.Param("lineID"))
	c.JSON(http.StatusOK, gin.H{
		"total_item_count": store.TotalItemCount(),
		"total_price":      store.TotalPrice(),
	})
}

func (h *Handler) Clear(c *gin.Context) {
	store, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart session not found"})
		return
	}

	store.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

func (h *Handler) ToggleVisibility(c *gin.Context) {
	store, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart session not found"})
		return
	}

	store.ToggleVisibility()
	c.JSON(http.StatusOK, gin.H{"is_open": store.IsOpen()})
}
