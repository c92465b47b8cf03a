package handlers

import (
	"errors"
	"net/http"

	request "po_tracker/internal/adapter/http/dto/request"
	response "po_tracker/internal/adapter/http/dto/response"
	"po_tracker/internal/usecase"
	"po_tracker/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidVendorPayload = pkg.NewDomainErrorSimple("INVALID_VENDOR_INPUT", "Invalid vendor payload", http.StatusBadRequest)
)

// VendorHandler handles HTTP requests for vendors and their performance data.

type VendorHandler struct {
	usecase usecase.IVendorUseCase
}

func NewVendorHandler(uc usecase.IVendorUseCase) *VendorHandler {
	return &VendorHandler{usecase: uc}
}

// ListVendors godoc
// @Summary  List vendors
// @Tags     vendors
// @Produce  json
// @Success  200  {array}  response.VendorResponse
// @Router   /vendors [get]
func (h *VendorHandler) ListVendors(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list", "", err)
		return
	}
	c.JSON(http.StatusOK, response.FromVendors(items))
}

// CreateVendor godoc
// @Summary  Create a vendor
// @Tags     vendors
// @Accept   json
// @Produce  json
// @Param    payload  body      request.CreateVendorRequest  true  "Vendor"
// @Success  201      {object}  response.VendorResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  409      {object}  pkg.HTTPError
// @Router   /vendors [post]
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	var payload request.CreateVendorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVendorPayload.HTTPStatus, errInvalidVendorPayload.ToHTTPError())
		return
	}

	v, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		h.fail(c, "create", payload.VendorCode, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromVendor(v))
}

// GetVendor godoc
// @Summary  Get a vendor
// @Tags     vendors
// @Produce  json
// @Param    vendor_code  path      string  true  "Vendor code"
// @Success  200          {object}  response.VendorResponse
// @Failure  404          {object}  pkg.HTTPError
// @Router   /vendors/{vendor_code} [get]
func (h *VendorHandler) GetVendor(c *gin.Context) {
	code := c.Param("vendor_code")
	v, err := h.usecase.GetByCode(c.Request.Context(), code)
	if err != nil {
		h.fail(c, "get", code, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVendor(v))
}

// UpdateVendor godoc
// @Summary  Update a vendor profile
// @Tags     vendors
// @Accept   json
// @Produce  json
// @Param    vendor_code  path      string                       true  "Vendor code"
// @Param    payload      body      request.UpdateVendorRequest  true  "Profile fields"
// @Success  200          {object}  response.VendorResponse
// @Failure  400          {object}  pkg.HTTPError
// @Failure  404          {object}  pkg.HTTPError
// @Router   /vendors/{vendor_code} [put]
func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	code := c.Param("vendor_code")
	var payload request.UpdateVendorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVendorPayload.HTTPStatus, errInvalidVendorPayload.ToHTTPError())
		return
	}

	v, err := h.usecase.UpdateProfile(c.Request.Context(), code, payload.ToProfileUpdate())
	if err != nil {
		h.fail(c, "update", code, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVendor(v))
}

// DeleteVendor godoc
// @Summary      Delete a vendor
// @Description  Also deletes every purchase order of the vendor. Performance history is kept.
// @Tags         vendors
// @Param        vendor_code  path  string  true  "Vendor code"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /vendors/{vendor_code} [delete]
func (h *VendorHandler) DeleteVendor(c *gin.Context) {
	code := c.Param("vendor_code")
	if err := h.usecase.Delete(c.Request.Context(), code); err != nil {
		h.fail(c, "delete", code, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetVendorPerformance godoc
// @Summary  Get vendor performance metrics
// @Tags     vendors
// @Produce  json
// @Param    vendor_code  path      string  true  "Vendor code"
// @Success  200          {object}  response.PerformanceResponse
// @Failure  404          {object}  pkg.HTTPError
// @Router   /vendors/{vendor_code}/performance [get]
func (h *VendorHandler) GetVendorPerformance(c *gin.Context) {
	code := c.Param("vendor_code")
	m, err := h.usecase.GetPerformance(c.Request.Context(), code)
	if err != nil {
		h.fail(c, "performance", code, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPerformanceMetrics(m))
}

// ListVendorHistory godoc
// @Summary  List vendor performance snapshots, oldest first
// @Tags     vendors
// @Produce  json
// @Param    vendor_code  path     string  true  "Vendor code"
// @Success  200          {array}  response.PerformanceSnapshotResponse
// @Router   /vendors/{vendor_code}/history [get]
func (h *VendorHandler) ListVendorHistory(c *gin.Context) {
	code := c.Param("vendor_code")
	items, err := h.usecase.ListHistory(c.Request.Context(), code)
	if err != nil {
		h.fail(c, "history", code, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPerformanceSnapshots(items))
}

func (h *VendorHandler) fail(c *gin.Context, op, code string, err error) {
	appErr := mapVendorError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		zap.L().Error("[vendor][handler] "+op+" failed", zap.String("vendor_code", code), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapVendorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVendorCode),
		errors.Is(err, usecase.ErrInvalidVendorProfile),
		errors.Is(err, usecase.ErrEmptyVendorUpdate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVendorAlreadyExists):
		return pkg.NewDomainErrorSimple("VENDOR_ALREADY_EXISTS", "Vendor already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrVendorNotFound):
		return pkg.NewDomainErrorSimple("VENDOR_NOT_FOUND", "Vendor not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
