package handlers

import (
	"errors"
	"net/http"

	request "po_tracker/internal/adapter/http/dto/request"
	response "po_tracker/internal/adapter/http/dto/response"
	"po_tracker/internal/domain/performance"
	"po_tracker/internal/usecase"
	"po_tracker/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPurchaseOrderPayload = pkg.NewDomainErrorSimple("INVALID_PURCHASE_ORDER_INPUT", "Invalid purchase order payload", http.StatusBadRequest)
)

// PurchaseOrderHandler handles HTTP requests for purchase orders.

type PurchaseOrderHandler struct {
	usecase usecase.IPurchaseOrderUseCase
}

func NewPurchaseOrderHandler(uc usecase.IPurchaseOrderUseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{usecase: uc}
}

// ListPurchaseOrders godoc
// @Summary      List purchase orders
// @Tags         purchase_orders
// @Produce      json
// @Param        vendor  query     string  false  "Vendor code filter"
// @Success      200     {array}   response.PurchaseOrderSummaryResponse
// @Failure      500     {object}  pkg.HTTPError
// @Router       /purchase_orders [get]
func (h *PurchaseOrderHandler) ListPurchaseOrders(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), c.Query("vendor"))
	if err != nil {
		h.fail(c, "list", "", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPurchaseOrders(items))
}

// CreatePurchaseOrder godoc
// @Summary      Create a purchase order
// @Description  Order and issue dates are set to now, delivery date to now + 5 days, status to pending.
// @Tags         purchase_orders
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreatePurchaseOrderRequest  true  "Purchase order"
// @Success      201      {object}  response.PurchaseOrderResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /purchase_orders [post]
func (h *PurchaseOrderHandler) CreatePurchaseOrder(c *gin.Context) {
	var payload request.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPurchaseOrderPayload.HTTPStatus, errInvalidPurchaseOrderPayload.ToHTTPError())
		return
	}

	po, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		h.fail(c, "create", payload.PONumber, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPurchaseOrder(po))
}

// GetPurchaseOrder godoc
// @Summary      Get a purchase order
// @Tags         purchase_orders
// @Produce      json
// @Param        po_number  path      string  true  "PO number"
// @Success      200        {object}  response.PurchaseOrderResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /purchase_orders/{po_number} [get]
func (h *PurchaseOrderHandler) GetPurchaseOrder(c *gin.Context) {
	poNumber := c.Param("po_number")
	po, err := h.usecase.GetByID(c.Request.Context(), poNumber)
	if err != nil {
		h.fail(c, "get", poNumber, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPurchaseOrder(po))
}

// UpdatePurchaseOrder godoc
// @Summary      Rate and/or complete a purchase order
// @Description  Requires a prior acknowledgment. The first update marks the order completed with the current time as delivery date.
// @Tags         purchase_orders
// @Accept       json
// @Produce      json
// @Param        po_number  path      string                              true  "PO number"
// @Param        payload    body      request.UpdatePurchaseOrderRequest  true  "Update"
// @Success      200        {object}  response.PurchaseOrderResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Failure      405        {object}  pkg.HTTPError
// @Router       /purchase_orders/{po_number} [put]
func (h *PurchaseOrderHandler) UpdatePurchaseOrder(c *gin.Context) {
	poNumber := c.Param("po_number")
	var payload request.UpdatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPurchaseOrderPayload.HTTPStatus, errInvalidPurchaseOrderPayload.ToHTTPError())
		return
	}

	po, err := h.usecase.Update(c.Request.Context(), poNumber, payload.ToInput())
	if err != nil {
		h.fail(c, "update", poNumber, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPurchaseOrder(po))
}

// AcknowledgePurchaseOrder godoc
// @Summary      Acknowledge a purchase order
// @Tags         purchase_orders
// @Produce      json
// @Param        po_number  path      string  true  "PO number"
// @Success      200        {object}  response.PurchaseOrderResponse
// @Failure      404        {object}  pkg.HTTPError
// @Failure      405        {object}  pkg.HTTPError
// @Router       /purchase_orders/{po_number}/acknowledge [post]
func (h *PurchaseOrderHandler) AcknowledgePurchaseOrder(c *gin.Context) {
	poNumber := c.Param("po_number")
	po, err := h.usecase.Acknowledge(c.Request.Context(), poNumber)
	if err != nil {
		h.fail(c, "acknowledge", poNumber, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPurchaseOrder(po))
}

// DeletePurchaseOrder godoc
// @Summary      Delete a purchase order
// @Tags         purchase_orders
// @Param        po_number  path  string  true  "PO number"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /purchase_orders/{po_number} [delete]
func (h *PurchaseOrderHandler) DeletePurchaseOrder(c *gin.Context) {
	poNumber := c.Param("po_number")
	if err := h.usecase.Delete(c.Request.Context(), poNumber); err != nil {
		h.fail(c, "delete", poNumber, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PurchaseOrderHandler) fail(c *gin.Context, op, poNumber string, err error) {
	appErr := mapPurchaseOrderError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		zap.L().Error("[po][handler] "+op+" failed", zap.String("po_number", poNumber), zap.Error(err))
	} else {
		zap.L().Info("[po][handler] "+op+" rejected", zap.String("po_number", poNumber), zap.String("code", appErr.Code))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPurchaseOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPONumber),
		errors.Is(err, usecase.ErrInvalidVendorCode),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidItems),
		errors.Is(err, usecase.ErrInvalidQualityRating),
		errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVendorReferenceNotFound):
		return pkg.NewDomainErrorSimple("VENDOR_NOT_FOUND", "Referenced vendor does not exist", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPurchaseOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("PURCHASE_ORDER_ALREADY_EXISTS", "Purchase order already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrPurchaseOrderNotFound):
		return pkg.NewDomainErrorSimple("PURCHASE_ORDER_NOT_FOUND", "Purchase Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyAcknowledged):
		return pkg.NewDomainErrorSimple("PURCHASE_ORDER_ALREADY_ACKNOWLEDGED", "The order is already acknowledged", http.StatusMethodNotAllowed)
	case errors.Is(err, usecase.ErrNotAcknowledged):
		return pkg.NewDomainErrorSimple("PURCHASE_ORDER_NOT_ACKNOWLEDGED", "The order is not acknowledged yet", http.StatusMethodNotAllowed)
	case errors.Is(err, performance.ErrUnreachable):
		return pkg.NewDomainError("METRIC_INVARIANT_VIOLATED", "Vendor metrics could not be updated", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
