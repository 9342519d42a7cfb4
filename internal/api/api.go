// Package api exposes the deduction and reporting services over HTTP to
// the order-lifecycle front end.
package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"github.com/GetwithitMan/gwi-pos-sub007/internal/costing"
	"github.com/GetwithitMan/gwi-pos-sub007/internal/models"
	"github.com/GetwithitMan/gwi-pos-sub007/internal/usage"
)

// ReportStore is the read surface the reporting endpoints need
type ReportStore interface {
	CompletedOrders(locationID uint, start, end time.Time) ([]models.Order, error)
	LoadSettings(locationID uint) (*models.LocationSettings, error)
	LoadMenuItem(menuItemID uint) (*models.MenuItem, error)
	Transactions(locationID uint, start, end time.Time) ([]models.InventoryTransaction, error)
	WasteLog(locationID uint, start, end time.Time) ([]models.WasteLogEntry, error)
}

// DeductionService is the stock mutation surface of the API
type DeductionService interface {
	DeductInventoryForOrder(orderID uint) models.InventoryDeductionResult
	DeductInventoryForVoidedItem(orderItemID uint, voidReason string) models.InventoryDeductionResult
	RestoreInventoryForRestoredItem(orderItemID uint) models.InventoryDeductionResult
	DeductPrepStockForOrder(orderID uint, orderItemIDs []uint) models.PrepStockDeductionResult
	RestorePrepStockForVoid(orderItemID uint) models.PrepStockDeductionResult
}

// InventoryAPI wires the engine's services to their lifecycle endpoints
type InventoryAPI struct {
	Router     *gin.Engine
	Deductions DeductionService
	Store      ReportStore
	AuthSecret string
}

// NewInventoryAPI creates the API and registers all routes
func NewInventoryAPI(deductions DeductionService, store ReportStore, authSecret string) *InventoryAPI {
	api := &InventoryAPI{
		Router:     gin.Default(),
		Deductions: deductions,
		Store:      store,
		AuthSecret: authSecret,
	}
	api.setupRoutes()
	return api
}

func (a *InventoryAPI) setupRoutes() {
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := a.Router.Group("/api/v1")
	if a.AuthSecret != "" {
		v1.Use(a.authMiddleware())
	}
	{
		// Order lifecycle
		v1.POST("/orders/:id/deduct", a.DeductOrder)
		v1.POST("/orders/:id/prep-deduct", a.DeductPrepStock)
		v1.POST("/order-items/:id/void", a.VoidItem)
		v1.POST("/order-items/:id/restore", a.RestoreItem)
		v1.POST("/order-items/:id/prep-restore", a.RestorePrepStock)

		// Reporting
		v1.GET("/reports/theoretical-usage", a.TheoreticalUsage)
		v1.GET("/reports/transactions", a.ListTransactions)
		v1.GET("/reports/waste-log", a.ListWasteLog)

		// Recipe management support
		v1.GET("/menu-items/:id/costing", a.MenuItemCosting)
	}
}

// authMiddleware validates a bearer token signed with the shared secret
func (a *InventoryAPI) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw := strings.TrimPrefix(header, "Bearer ")
		if raw == "" || raw == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(a.AuthSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Next()
	}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// DeductOrder handles payment-time inventory deduction for an order
func (a *InventoryAPI) DeductOrder(c *gin.Context) {
	orderID, ok := idParam(c)
	if !ok {
		return
	}
	result := a.Deductions.DeductInventoryForOrder(orderID)
	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, result)
}

// VoidItem handles waste deduction for a voided order item
func (a *InventoryAPI) VoidItem(c *gin.Context) {
	itemID, ok := idParam(c)
	if !ok {
		return
	}
	var body struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result := a.Deductions.DeductInventoryForVoidedItem(itemID, body.Reason)
	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, result)
}

// RestoreItem reverses a void deduction for an item that was never made
func (a *InventoryAPI) RestoreItem(c *gin.Context) {
	itemID, ok := idParam(c)
	if !ok {
		return
	}
	result := a.Deductions.RestoreInventoryForRestoredItem(itemID)
	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, result)
}

// DeductPrepStock handles send-to-kitchen prep stock deduction
func (a *InventoryAPI) DeductPrepStock(c *gin.Context) {
	orderID, ok := idParam(c)
	if !ok {
		return
	}
	var body struct {
		OrderItemIDs []uint `json:"orderItemIds"`
	}
	// The body is optional: no body means every item on the order.
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result := a.Deductions.DeductPrepStockForOrder(orderID, body.OrderItemIDs)
	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, result)
}

// RestorePrepStock reverses prep stock for a voided, unmade item
func (a *InventoryAPI) RestorePrepStock(c *gin.Context) {
	itemID, ok := idParam(c)
	if !ok {
		return
	}
	result := a.Deductions.RestorePrepStockForVoid(itemID)
	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, result)
}

func reportWindow(c *gin.Context) (uint, time.Time, time.Time, bool) {
	locationID, err := strconv.ParseUint(c.Query("locationId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid locationId"})
		return 0, time.Time{}, time.Time{}, false
	}
	start, err := time.Parse("2006-01-02", c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate, want YYYY-MM-DD"})
		return 0, time.Time{}, time.Time{}, false
	}
	end, err := time.Parse("2006-01-02", c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate, want YYYY-MM-DD"})
		return 0, time.Time{}, time.Time{}, false
	}
	// Closed range: include the whole end day.
	return uint(locationID), start, end.Add(24*time.Hour - time.Nanosecond), true
}

// TheoreticalUsage reports expected consumption over a date range
func (a *InventoryAPI) TheoreticalUsage(c *gin.Context) {
	locationID, start, end, ok := reportWindow(c)
	if !ok {
		return
	}
	settings, _ := a.Store.LoadSettings(locationID)
	result, err := usage.CalculateTheoreticalUsage(a.Store, usage.Request{
		LocationID: locationID,
		StartDate:  start,
		EndDate:    end,
		Department: c.Query("department"),
		Settings:   settings.Multipliers(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListTransactions lists audit transactions over a date range
func (a *InventoryAPI) ListTransactions(c *gin.Context) {
	locationID, start, end, ok := reportWindow(c)
	if !ok {
		return
	}
	txs, err := a.Store.Transactions(locationID, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}

// ListWasteLog lists waste entries over a date range
func (a *InventoryAPI) ListWasteLog(c *gin.Context) {
	locationID, start, end, ok := reportWindow(c)
	if !ok {
		return
	}
	entries, err := a.Store.WasteLog(locationID, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// MenuItemCosting returns the per-line and aggregate costing of a recipe
func (a *InventoryAPI) MenuItemCosting(c *gin.Context) {
	menuItemID, ok := idParam(c)
	if !ok {
		return
	}
	menuItem, err := a.Store.LoadMenuItem(menuItemID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	lines, totalCost := costing.IngredientCosts(menuItem.RecipeLines)
	c.JSON(http.StatusOK, gin.H{
		"lines":   lines,
		"costing": costing.RecipeCosting(totalCost, menuItem.SellPrice),
	})
}
