package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/spicemart/spicemart/internal/domain/errors"
	"github.com/spicemart/spicemart/internal/server/http/dto"
)

// CategoryHandler manages category endpoints.
type CategoryHandler struct {
	facade CatalogFacade
}

// NewCategoryHandler constructs CategoryHandler.
func NewCategoryHandler(facade CatalogFacade) *CategoryHandler {
	return &CategoryHandler{facade: facade}
}

// Create handles POST /api/category.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	category, err := h.facade.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			errorMessage(c, http.StatusBadRequest, err)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			errorMessage(c, http.StatusConflict, err)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(*category))
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	response := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, dto.ToCategoryResponse(category))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/category/:slug.
func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.facade.CategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(*category))
}

// ProductsByCategory handles GET /api/products-by-category/:slug.
func (h *CategoryHandler) ProductsByCategory(c *gin.Context) {
	category, products, err := h.facade.ProductsByCategory(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ProductsByCategoryResponse{
		Category: dto.ToCategoryResponse(*category),
		Products: productResponses(products),
	})
}

// Update handles PUT /api/category/:categoryId.
func (h *CategoryHandler) Update(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	category, err := h.facade.UpdateCategory(c.Request.Context(), c.Param("categoryId"), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			errorMessage(c, http.StatusBadRequest, err)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(*category))
}

// Delete handles DELETE /api/category/:categoryId.
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteCategory(c.Request.Context(), c.Param("categoryId")); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}
