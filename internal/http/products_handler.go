package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/dto"
	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
	"github.com/AJLandry1000000000/flower-shop/internal/i18n"
	"github.com/AJLandry1000000000/flower-shop/internal/service"
)

// ProductsHandler provides HTTP handlers for the product catalog.
type ProductsHandler struct {
	products service.ProductService
}

// NewProductsHandler creates a new ProductsHandler instance.
func NewProductsHandler(products service.ProductService) *ProductsHandler {
	return &ProductsHandler{products: products}
}

// RegisterRoutes registers the catalog routes on rg.
func (h *ProductsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.ListProducts)
	rg.GET("/products/:code", h.GetProduct)
	rg.PUT("/products/:code", h.UpsertProduct)
	rg.DELETE("/products/:code", h.DeleteProduct)
}

// ListProducts handles GET /api/v1/products requests.
//
// @Summary      List products
// @Description  Returns the catalog ordered by product code
// @Tags         Products
// @Produce      json
// @Param        limit query int false "Maximum number of products"
// @Success      200 {object} dto.SuccessResponse{data=dto.ProductListResponse} "Products"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Product store unavailable"
// @Router       /api/v1/products [get]
func (h *ProductsHandler) ListProducts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	products, err := h.products.List(c.Request.Context(), limit)
	if err != nil {
		writeServiceError(builder, err)
		return
	}
	if products == nil {
		products = []model.Product{}
	}

	builder.SuccessOK(dto.ProductListResponse{
		Products: products,
		Count:    len(products),
	})
}

// GetProduct handles GET /api/v1/products/:code requests.
//
// @Summary      Get a product
// @Description  Returns the bundle sizes and prices of one product
// @Tags         Products
// @Produce      json
// @Param        code path string true "Product code" example(R12)
// @Success      200 {object} dto.SuccessResponse{data=model.Product} "Product"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      503 {object} dto.ErrorResponse "Product store unavailable"
// @Router       /api/v1/products/{code} [get]
func (h *ProductsHandler) GetProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	product, err := h.products.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeServiceError(builder, err)
		return
	}

	builder.SuccessOK(product)
}

// UpsertProduct handles PUT /api/v1/products/:code requests.
//
// @Summary      Create or replace a product
// @Description  Stores the product descriptor. Cached breakdowns of the product are dropped.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        code path string true "Product code" example(R12)
// @Param        request body dto.ProductRequest true "Product descriptor"
// @Success      200 {object} dto.SuccessResponse "Stored product"
// @Failure      400 {object} dto.ErrorResponse "Invalid product"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Product store unavailable"
// @Router       /api/v1/products/{code} [put]
func (h *ProductsHandler) UpsertProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ProductRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	product, err := req.Product(c.Param("code"))
	if err != nil {
		writeServiceError(builder, err)
		return
	}

	stored, err := h.products.Upsert(c.Request.Context(), product)
	if err != nil {
		writeServiceError(builder, err)
		return
	}

	builder.SuccessOK(map[string]any{
		"message": i18n.GetTranslator().Translate(i18n.SuccessKeyProductSaved, i18n.GetLocale(c)),
		"product": stored,
	})
}

// DeleteProduct handles DELETE /api/v1/products/:code requests.
//
// @Summary      Delete a product
// @Tags         Products
// @Param        code path string true "Product code" example(R12)
// @Success      204 "Product deleted"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      503 {object} dto.ErrorResponse "Product store unavailable"
// @Router       /api/v1/products/{code} [delete]
func (h *ProductsHandler) DeleteProduct(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("code")); err != nil {
		writeServiceError(NewResponseBuilder(c), err)
		return
	}
	c.Status(http.StatusNoContent)
}
