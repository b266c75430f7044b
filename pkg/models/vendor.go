package models

import "time"

// Vendor is a row of the Vendor table as the portal reads it. PasswordHash
// holds whatever the Password column contains: a bcrypt hash for migrated
// accounts, legacy plaintext otherwise. It never serializes.
type Vendor struct {
	ID            int
	BusinessEmail string
	CompanyName   string
	RefName       *string
	BusinessPhone *string
	Address       *string
	Since         *time.Time
	IsActive      bool
	PasswordHash  string `json:"-"`
}

// VendorProfile is the login response payload: the vendor row with the
// password stripped and fields remapped to the names the frontend expects.
type VendorProfile struct {
	ID            int     `json:"ID"`
	BusinessEmail string  `json:"BusinessEmail"`
	CompanyName   string  `json:"CompanyName"`
	VendorName    string  `json:"VendorName"`
	ContactPerson *string `json:"ContactPerson"`
	PhoneNumber   *string `json:"PhoneNumber"`
	Address       *string `json:"Address"`
	IsActive      bool    `json:"Is_Active"`
	CreatedAt     *string `json:"created_at"`
}

// Profile maps a vendor row to its frontend-facing shape.
func (v *Vendor) Profile() VendorProfile {
	var createdAt *string
	if v.Since != nil {
		s := v.Since.Format("2006-01-02")
		createdAt = &s
	}
	return VendorProfile{
		ID:            v.ID,
		BusinessEmail: v.BusinessEmail,
		CompanyName:   v.CompanyName,
		VendorName:    v.CompanyName,
		ContactPerson: v.RefName,
		PhoneNumber:   v.BusinessPhone,
		Address:       v.Address,
		IsActive:      v.IsActive,
		CreatedAt:     createdAt,
	}
}

// VendorSummary is the debug listing shape for GET /api/users/vendors.
type VendorSummary struct {
	BusinessEmail string `json:"BusinessEmail"`
	CompanyName   string `json:"CompanyName"`
	IsActive      bool   `json:"Is_Active"`
}
