package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"po_tracker/internal/adapter/http/handlers/mocks"
	"po_tracker/internal/domain/entities"
	"po_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func vendorRouter(h *VendorHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/vendors", h.ListVendors)
	r.POST("/v1/vendors", h.CreateVendor)
	r.GET("/v1/vendors/:vendor_code", h.GetVendor)
	r.PUT("/v1/vendors/:vendor_code", h.UpdateVendor)
	r.DELETE("/v1/vendors/:vendor_code", h.DeleteVendor)
	r.GET("/v1/vendors/:vendor_code/performance", h.GetVendorPerformance)
	r.GET("/v1/vendors/:vendor_code/history", h.ListVendorHistory)
	return r
}

func TestVendorHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("code too long", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVendorUseCase(ctrl)

		w := doJSON(vendorRouter(NewVendorHandler(uc)), http.MethodPost, "/v1/vendors", `{"vendor_code":"ABCDEFGHIJ","name":"Acme","contact_details":"ops@acme.test","address":"1 Main St"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVendorUseCase(ctrl)

		w := doJSON(vendorRouter(NewVendorHandler(uc)), http.MethodPost, "/v1/vendors", `{"vendor_code":"V1","name":"Acme","contact_details":"ops@acme.test"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVendorUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Vendor{}, usecase.ErrVendorAlreadyExists)

		w := doJSON(vendorRouter(NewVendorHandler(uc)), http.MethodPost, "/v1/vendors", `{"vendor_code":"V1","name":"Acme","contact_details":"ops@acme.test","address":"1 Main St"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVendorUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), usecase.CreateVendorInput{VendorCode: "V1", Name: "Acme", ContactDetails: "ops@acme.test", Address: "1 Main St"}).
			Return(entities.Vendor{VendorCode: "V1", Name: "Acme", ContactDetails: "ops@acme.test", Address: "1 Main St", CreatedAt: time.Now().UTC()}, nil)

		w := doJSON(vendorRouter(NewVendorHandler(uc)), http.MethodPost, "/v1/vendors", `{"vendor_code":"V1","name":"Acme","contact_details":"ops@acme.test","address":"1 Main St"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestVendorHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVendorUseCase(ctrl)
		uc.EXPECT().UpdateProfile(gomock.Any(), "V1", entities.VendorProfileUpdate{}).Return(entities.Vendor{}, usecase.ErrEmptyVendorUpdate)

		w := doJSON(vendorRouter(NewVendorHandler(uc)), http.MethodPut, "/v1/vendors/V1", `{"quality_rating_avg":5}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVendorUseCase(ctrl)
		uc.EXPECT().UpdateProfile(gomock.Any(), "V9", gomock.Any()).Return(entities.Vendor{}, usecase.ErrVendorNotFound)

		w := doJSON(vendorRouter(NewVendorHandler(uc)), http.MethodPut, "/v1/vendors/V9", `{"name":"Other"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestVendorHandler_Performance(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIVendorUseCase(ctrl)
	uc.EXPECT().GetPerformance(gomock.Any(), "V1").Return(entities.PerformanceMetrics{
		OnTimeDeliveryRate:  1,
		QualityRatingAvg:    5,
		AverageResponseTime: 2,
		FulfillmentRate:     1,
	}, nil)

	w := doJSON(vendorRouter(NewVendorHandler(uc)), http.MethodGet, "/v1/vendors/V1/performance", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]float64
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["average_response_time"] != 2 || body["quality_rating_avg"] != 5 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestVendorHandler_DeleteAndHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("delete not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVendorUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), "V9").Return(usecase.ErrVendorNotFound)

		w := doJSON(vendorRouter(NewVendorHandler(uc)), http.MethodDelete, "/v1/vendors/V9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVendorUseCase(ctrl)
		uc.EXPECT().ListHistory(gomock.Any(), "V1").Return([]entities.PerformanceSnapshot{
			{ID: "s1", VendorCode: "V1", Date: time.Now().UTC(), PerformanceMetrics: entities.PerformanceMetrics{AverageResponseTime: 2}},
		}, nil)

		w := doJSON(vendorRouter(NewVendorHandler(uc)), http.MethodGet, "/v1/vendors/V1/history", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(body) != 1 || body[0]["id"] != "s1" || body[0]["average_response_time"] != 2.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
