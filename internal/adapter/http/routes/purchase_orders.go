package routes

import (
	"po_tracker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPurchaseOrders = "/purchase_orders"
	PathVendors        = "/vendors"
)

func addPurchaseOrderRoutes(rg *gin.RouterGroup, h *handlers.PurchaseOrderHandler) {
	orders := rg.Group(PathPurchaseOrders)
	{
		orders.GET("", h.ListPurchaseOrders)
		orders.POST("", h.CreatePurchaseOrder)
		orders.GET("/:po_number", h.GetPurchaseOrder)
		orders.PUT("/:po_number", h.UpdatePurchaseOrder)
		orders.PATCH("/:po_number", h.UpdatePurchaseOrder)
		orders.DELETE("/:po_number", h.DeletePurchaseOrder)
		orders.POST("/:po_number/acknowledge", h.AcknowledgePurchaseOrder)
	}
}

func addVendorRoutes(rg *gin.RouterGroup, h *handlers.VendorHandler) {
	vendors := rg.Group(PathVendors)
	{
		vendors.GET("", h.ListVendors)
		vendors.POST("", h.CreateVendor)
		vendors.GET("/:vendor_code", h.GetVendor)
		vendors.PUT("/:vendor_code", h.UpdateVendor)
		vendors.PATCH("/:vendor_code", h.UpdateVendor)
		vendors.DELETE("/:vendor_code", h.DeleteVendor)
		vendors.GET("/:vendor_code/performance", h.GetVendorPerformance)
		vendors.GET("/:vendor_code/history", h.ListVendorHistory)
	}
}
