package models

// DraftOrderRow is one line of the purchase-order-draft report. The five
// categories share this projection; Finish Product additionally carries
// Category, Picture and Imagepath, which stay absent from the JSON for the
// other four families.
//
// ItemCode is the hyphen-joined composition of dimension codes and differs
// per category: item-color-grade for Material, item-finish for Preps,
// item-color for Accessories and Packaging, item-material-color-finish for
// Finish Product. The composition happens in the statement; consumers
// depend on the exact per-category format.
type DraftOrderRow struct {
	Vendor      string  `json:"Vendor"`
	OrderNo     string  `json:"OrderNo"`
	OrderDate   *string `json:"OrderDate"`
	ItemCode    string  `json:"ItemCode"`
	OldCode     *string `json:"OldCode"`
	Description string  `json:"Description"`
	ReserveQty  float64 `json:"ReserveQty"`

	// Finish Product only.
	Category  *string `json:"Category,omitempty"`
	Picture   *string `json:"Picture,omitempty"`
	ImagePath *string `json:"Imagepath,omitempty"`
}
