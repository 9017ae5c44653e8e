package catalog

import (
	"errors"
	"fmt"
	"net/http"

	"joyjuncture/internal/auth"
	"joyjuncture/internal/logger"
	"joyjuncture/internal/wallet"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB, ledger wallet.Service) *Handler {
	return &Handler{
		service: NewService(NewRepository(db), ledger),
	}
}

// ListProducts godoc
// @Summary      List products
// @Description  Returns the game catalog, optionally filtered by category.
// @Tags         catalog
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Success      200       {array}   Product
// @Failure      500       {object}  api.ErrorResponse
// @Router       /products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.service.GetAllProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		logger.Errorf("Failed to list products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct godoc
// @Summary      Get product
// @Tags         catalog
// @Produce      json
// @Param        productID  path      string  true  "Product ID"
// @Success      200        {object}  Product
// @Failure      404        {object}  api.ErrorResponse
// @Router       /products/{productID} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.service.GetProductByID(c.Request.Context(), c.Param("productID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// Purchase godoc
// @Summary      Purchase a product
// @Description  Records a purchase and awards Joy Points. No money is charged.
// @Tags         catalog
// @Security     BearerAuth
// @Produce      json
// @Param        productID  path      string  true  "Product ID"
// @Success      200        {object}  PurchaseResponse
// @Failure      401        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      503        {object}  api.ErrorResponse
// @Router       /products/{productID}/purchase [post]
func (h *Handler) Purchase(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	product, points, err := h.service.Purchase(c.Request.Context(), userID, c.Param("productID"))
	if err != nil {
		switch {
		case errors.Is(err, ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		case errors.Is(err, wallet.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "wallet temporarily unavailable, purchase not recorded"})
		case errors.Is(err, wallet.ErrPermissionDenied):
			logger.Errorf("Ledger rejected purchase write: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "wallet store permission denied: check store access configuration"})
		default:
			logger.Errorf("Purchase failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record purchase"})
		}
		return
	}

	c.JSON(http.StatusOK, PurchaseResponse{
		Message:       fmt.Sprintf("Thank you for your purchase of %s!", product.Name),
		PointsAwarded: points,
	})
}
