package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"mld-backend/internal/usecase"
	"mld-backend/pkg/logger"
	"mld-backend/pkg/upload"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves one product collection; the use case's config decides
// the enum values, the upload namespace and the delete policy. Collections
// with an upload namespace take multipart forms, the rest take JSON.
type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
	saver          *upload.Saver
	logger         *logger.Logger
}

func NewCatalogHandler(catalogUseCase usecase.CatalogUseCase, saver *upload.Saver, logger *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
		saver:          saver,
		logger:         logger,
	}
}

type CatalogItemRequest struct {
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	TypeDetail     string            `json:"type_detail"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	IsActive       *bool             `json:"isActive"`
}

type CatalogItemUpdateRequest struct {
	Title          *string            `json:"title"`
	Description    *string            `json:"description"`
	Price          *float64           `json:"price"`
	TypeDetail     *string            `json:"type_detail"`
	Features       *[]string          `json:"features"`
	Specifications *map[string]string `json:"specifications"`
	IsActive       *bool              `json:"isActive"`
}

// List godoc
// @Summary      List catalog items
// @Description  Internet packages hide inactive entries; hardware catalogs list everything
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  entity.CatalogItem
// @Failure      500  {object}  map[string]string
// @Router       /cctv-products [get]
// @Router       /nanobeam-products [get]
// @Router       /internet-packages [get]
func (h *CatalogHandler) List(c *gin.Context) {
	items, err := h.catalogUseCase.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary      Get a catalog item
// @Description  Fetchable by id even when soft-deleted
// @Tags         catalog
// @Produce      json
// @Param        id path string true "Item ID"
// @Success      200  {object}  entity.CatalogItem
// @Failure      404  {object}  map[string]string
// @Router       /cctv-products/{id} [get]
// @Router       /nanobeam-products/{id} [get]
// @Router       /internet-packages/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	item, err := h.catalogUseCase.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Create godoc
// @Summary      Create a catalog item
// @Description  Hardware catalogs take multipart form data with an image file; internet packages take JSON
// @Tags         catalog
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CatalogItemRequest true "Item fields (JSON collections)"
// @Success      201  {object}  entity.CatalogItem
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /cctv-products [post]
// @Router       /nanobeam-products [post]
// @Router       /internet-packages [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	var input usecase.CatalogInput

	if dir := h.catalogUseCase.Config().UploadDir; dir != "" {
		// Parse the form before touching the disk so a bad payload cannot
		// orphan an upload.
		parsed, err := h.inputFromForm(c)
		if err != nil {
			respondError(c, err)
			return
		}
		input = parsed

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
			return
		}

		imagePath, err := h.saver.Save(file, dir)
		if err != nil {
			respondError(c, err)
			return
		}
		input.Image = imagePath
	} else {
		var req CatalogItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		input = usecase.CatalogInput{
			Title:          req.Title,
			Description:    req.Description,
			Price:          req.Price,
			TypeDetail:     req.TypeDetail,
			Features:       req.Features,
			Specifications: req.Specifications,
			IsActive:       req.IsActive,
		}
	}

	item, err := h.catalogUseCase.Create(input)
	if err != nil {
		if input.Image != "" {
			h.logger.Error("Catalog create failed after upload, orphaned file %s: %v", input.Image, err)
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// Update godoc
// @Summary      Update a catalog item
// @Description  Fields are replaced only when provided; provided fields are re-validated
// @Tags         catalog
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Item ID"
// @Param        request body CatalogItemUpdateRequest true "Replacement fields (JSON collections)"
// @Success      200  {object}  entity.CatalogItem
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /cctv-products/{id} [put]
// @Router       /nanobeam-products/{id} [put]
// @Router       /internet-packages/{id} [put]
func (h *CatalogHandler) Update(c *gin.Context) {
	var update usecase.CatalogUpdate

	if dir := h.catalogUseCase.Config().UploadDir; dir != "" {
		parsed, err := h.updateFromForm(c)
		if err != nil {
			respondError(c, err)
			return
		}
		update = parsed

		if file, err := c.FormFile("image"); err == nil {
			imagePath, err := h.saver.Save(file, dir)
			if err != nil {
				respondError(c, err)
				return
			}
			update.Image = &imagePath
		}
	} else {
		var req CatalogItemUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		update = usecase.CatalogUpdate{
			Title:          req.Title,
			Description:    req.Description,
			Price:          req.Price,
			TypeDetail:     req.TypeDetail,
			Features:       req.Features,
			Specifications: req.Specifications,
			IsActive:       req.IsActive,
		}
	}

	item, err := h.catalogUseCase.Update(c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Delete godoc
// @Summary      Delete a catalog item
// @Description  Internet packages are deactivated in place; hardware catalog rows are removed
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Item ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /cctv-products/{id} [delete]
// @Router       /nanobeam-products/{id} [delete]
// @Router       /internet-packages/{id} [delete]
func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.catalogUseCase.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	label := h.catalogUseCase.Config().Label
	c.JSON(http.StatusOK, gin.H{"message": label + " deleted successfully"})
}

func (h *CatalogHandler) inputFromForm(c *gin.Context) (usecase.CatalogInput, error) {
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)

	input := usecase.CatalogInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Price:       price,
		TypeDetail:  c.PostForm("type_detail"),
		Features:    c.PostFormArray("features"),
	}

	if raw := c.PostForm("specifications"); raw != "" {
		// Specifications arrive as a JSON object inside the multipart form.
		if err := json.Unmarshal([]byte(raw), &input.Specifications); err != nil {
			return input, fmt.Errorf("%w: specifications must be a JSON object of strings", usecase.ErrValidation)
		}
	}
	if v, ok := c.GetPostForm("isActive"); ok {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return input, fmt.Errorf("%w: isActive must be a boolean", usecase.ErrValidation)
		}
		input.IsActive = &active
	}

	return input, nil
}

func (h *CatalogHandler) updateFromForm(c *gin.Context) (usecase.CatalogUpdate, error) {
	var update usecase.CatalogUpdate

	if v, ok := c.GetPostForm("title"); ok {
		update.Title = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		update.Description = &v
	}
	if v, ok := c.GetPostForm("price"); ok {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			update.Price = &price
		}
	}
	if v, ok := c.GetPostForm("type_detail"); ok {
		update.TypeDetail = &v
	}
	if features, ok := c.GetPostFormArray("features"); ok {
		update.Features = &features
	}
	if raw, ok := c.GetPostForm("specifications"); ok {
		var specs map[string]string
		if err := json.Unmarshal([]byte(raw), &specs); err != nil {
			return update, fmt.Errorf("%w: specifications must be a JSON object of strings", usecase.ErrValidation)
		}
		update.Specifications = &specs
	}
	if v, ok := c.GetPostForm("isActive"); ok {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return update, fmt.Errorf("%w: isActive must be a boolean", usecase.ErrValidation)
		}
		update.IsActive = &active
	}

	return update, nil
}
