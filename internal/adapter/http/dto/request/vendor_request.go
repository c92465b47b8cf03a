package request

import (
	"po_tracker/internal/domain/entities"
	"po_tracker/internal/usecase"
)

type CreateVendorRequest struct {
	VendorCode     string `json:"vendor_code" binding:"required,max=9"`
	Name           string `json:"name" binding:"required"`
	ContactDetails string `json:"contact_details" binding:"required"`
	Address        string `json:"address" binding:"required"`
}

func (r CreateVendorRequest) ToInput() usecase.CreateVendorInput {
	return usecase.CreateVendorInput{
		VendorCode:     r.VendorCode,
		Name:           r.Name,
		ContactDetails: r.ContactDetails,
		Address:        r.Address,
	}
}

// UpdateVendorRequest carries profile fields only. Metric fields are ignored
// if sent; they are owned by the metrics engine.
type UpdateVendorRequest struct {
	Name           *string `json:"name"`
	ContactDetails *string `json:"contact_details"`
	Address        *string `json:"address"`
}

func (r UpdateVendorRequest) ToProfileUpdate() entities.VendorProfileUpdate {
	return entities.VendorProfileUpdate{
		Name:           r.Name,
		ContactDetails: r.ContactDetails,
		Address:        r.Address,
	}
}
