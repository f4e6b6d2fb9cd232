package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func respondErr(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// --------------------------------------------------
// Products
// --------------------------------------------------

func (h *Handler) CreateProduct(c *gin.Context) {
	var req struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Available   *bool   `json:"available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	p := &Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Available:   available,
	}
	if err := h.service.CreateProduct(c.Request.Context(), p); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	tags, err := h.service.ListProductTags(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	variants, err := h.service.ListVariants(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":  p,
		"tags":     tags,
		"variants": variants,
	})
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Available   bool    `json:"available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	existing, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Price = req.Price
	existing.Available = req.Available

	if err := h.service.UpdateProduct(c.Request.Context(), existing); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, existing)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

func (h *Handler) UploadProductImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	defer file.Close()

	url, err := h.service.SetProductImage(
		c.Request.Context(),
		id,
		file,
		header.Filename,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"image_url": url})
}

// --------------------------------------------------
// Variants
// --------------------------------------------------

func (h *Handler) CreateVariant(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name           string  `json:"name"`
		Price          float64 `json:"price"`
		EffectivePrice float64 `json:"effective_price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	v := &Variant{
		ProductID:      productID,
		Name:           req.Name,
		Price:          req.Price,
		EffectivePrice: req.EffectivePrice,
	}
	if err := h.service.CreateVariant(c.Request.Context(), v); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *Handler) DeleteVariant(c *gin.Context) {
	id, ok := pathID(c, "variantID")
	if !ok {
		return
	}
	if err := h.service.DeleteVariant(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "variant deleted"})
}

// --------------------------------------------------
// Combos
// --------------------------------------------------

func (h *Handler) CreateCombo(c *gin.Context) {
	var req struct {
		Name           string  `json:"name"`
		Description    string  `json:"description"`
		Price          float64 `json:"price"`
		EffectivePrice float64 `json:"effective_price"`
		Items          []struct {
			ProductID int `json:"product_id"`
			Quantity  int `json:"quantity"`
		} `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	cb := &Combo{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		EffectivePrice: req.EffectivePrice,
	}
	for _, item := range req.Items {
		cb.Items = append(cb.Items, ComboProduct{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if err := h.service.CreateCombo(c.Request.Context(), cb); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, cb)
}

func (h *Handler) ListCombos(c *gin.Context) {
	combos, err := h.service.ListCombos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"combos": combos})
}

func (h *Handler) DeleteCombo(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteCombo(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "combo deleted"})
}

// --------------------------------------------------
// Tags
// --------------------------------------------------

func (h *Handler) CreateTag(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	t := &Tag{Name: req.Name, Color: req.Color}
	if err := h.service.CreateTag(c.Request.Context(), t); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.service.ListTags(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

func (h *Handler) DeleteTag(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteTag(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tag deleted"})
}

func (h *Handler) AssignTag(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	tagID, ok := pathID(c, "tagID")
	if !ok {
		return
	}
	if err := h.service.AssignTag(c.Request.Context(), productID, tagID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tag assigned"})
}

func (h *Handler) UnassignTag(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	tagID, ok := pathID(c, "tagID")
	if !ok {
		return
	}
	if err := h.service.UnassignTag(c.Request.Context(), productID, tagID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tag unassigned"})
}
