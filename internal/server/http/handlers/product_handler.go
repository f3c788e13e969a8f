package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/spicemart/spicemart/internal/domain/errors"
	"github.com/spicemart/spicemart/internal/domain/model"
	"github.com/spicemart/spicemart/internal/server/http/dto"
	"github.com/spicemart/spicemart/internal/usecase"
)

// ProductHandler manages catalog product endpoints.
type ProductHandler struct {
	facade CatalogFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade CatalogFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// Create handles POST /api/product. The payload is a multipart form so the
// photo can ride along with the fields.
func (h *ProductHandler) Create(c *gin.Context) {
	in, err := productInputFromForm(c)
	if err != nil {
		errorMessage(c, http.StatusBadRequest, err)
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), in)
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

	c.JSON(http.StatusCreated, dto.ToProductResponse(*product))
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, productResponses(products))
}

// Get handles GET /api/product/:slug.
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.facade.ProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}

// Photo handles GET /api/product/photo/:productId.
func (h *ProductHandler) Photo(c *gin.Context) {
	photo, contentType, err := h.facade.ProductPhoto(c.Request.Context(), c.Param("productId"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, photo)
}

// Update handles PUT /api/product/:productId.
func (h *ProductHandler) Update(c *gin.Context) {
	in, err := productInputFromForm(c)
	if err != nil {
		errorMessage(c, http.StatusBadRequest, err)
		return
	}

	product, err := h.facade.UpdateProduct(c.Request.Context(), c.Param("productId"), in)
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

	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}

// Delete handles DELETE /api/product/:productId.
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteProduct(c.Request.Context(), c.Param("productId")); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

// Filtered handles POST /api/filtered-products.
func (h *ProductHandler) Filtered(c *gin.Context) {
	var req dto.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	products, err := h.facade.FilteredProducts(c.Request.Context(), req.Checked, req.Radio)
	if err != nil {
		if errors.Is(err, domainErrors.ErrValidation) {
			errorMessage(c, http.StatusBadRequest, err)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, productResponses(products))
}

// Search handles GET /api/products-search/:keyword.
func (h *ProductHandler) Search(c *gin.Context) {
	products, err := h.facade.SearchProducts(c.Request.Context(), c.Param("keyword"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, productResponses(products))
}

// Related handles GET /api/related-products/:productId/:categoryId.
func (h *ProductHandler) Related(c *gin.Context) {
	products, err := h.facade.RelatedProducts(c.Request.Context(), c.Param("productId"), c.Param("categoryId"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, productResponses(products))
}

// Count handles GET /api/products-count. The body is the bare number.
func (h *ProductHandler) Count(c *gin.Context) {
	total, err := h.facade.ProductsCount(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, total)
}

func productResponses(products []model.Product) []dto.ProductResponse {
	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, dto.ToProductResponse(p))
	}
	return response
}

func productInputFromForm(c *gin.Context) (usecase.ProductInput, error) {
	in := usecase.ProductInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		CategoryID:  c.PostForm("category"),
	}

	if raw := c.PostForm("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return in, errors.New("price must be a number")
		}
		in.Price = price
	}
	if raw := c.PostForm("quantity"); raw != "" {
		quantity, err := strconv.Atoi(raw)
		if err != nil {
			return in, errors.New("quantity must be an integer")
		}
		in.Quantity = quantity
	}
	if raw := c.PostForm("shipping"); raw != "" {
		shipping, err := strconv.ParseBool(raw)
		if err != nil {
			return in, errors.New("shipping must be a boolean")
		}
		in.Shipping = shipping
	}

	file, err := c.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return in, nil
		}
		return in, errors.New("photo upload is malformed")
	}

	src, err := file.Open()
	if err != nil {
		return in, errors.New("photo upload is malformed")
	}
	defer src.Close()

	photo, err := io.ReadAll(src)
	if err != nil {
		return in, errors.New("photo upload is malformed")
	}

	in.Photo = photo
	in.PhotoContentType = file.Header.Get("Content-Type")
	return in, nil
}
