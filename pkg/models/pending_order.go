package models

// PendingOrderRow is the denormalized projection behind the pending-orders
// report. JSON keys mirror the output-column aliases the frontend tables
// bind to, including the spaced ones.
//
// Date-typed fields are normalized to YYYY-MM-DD text, null for zero dates.
// DeliveryDate and FinalDeliveryDate arrive pre-formatted (dd/MM/yy) from
// the statement itself and pass through unchanged. Quantity fields default
// to 0 when the store returns NULL; ClosingDays alone stays nullable, since
// null means "no final delivery date set", not zero days.
type PendingOrderRow struct {
	Category             string   `json:"Category"`
	ImagePath            *string  `json:"Imagepath"`
	OrderNo              string   `json:"Order #"`
	OrderDate            *string  `json:"Date"`
	ItemCode             string   `json:"Item Code"`
	OldCode              *string  `json:"Old Code"`
	Description          string   `json:"Description"`
	FactoryCode          *string  `json:"Factory Code"`
	Vendor               string   `json:"Vendor"`
	OrderQty             float64  `json:"Order"`
	ReceivedQty          float64  `json:"Received"`
	QCQty                float64  `json:"QC"`
	RejectQty            float64  `json:"Reject"`
	PendingQty           float64  `json:"Pending"`
	Unit                 string   `json:"Unit"`
	StockQty             float64  `json:"Stock"`
	DeliveryDate         *string  `json:"Delivery Date"`
	DDate                *string  `json:"DDate"`
	FinalDeliveryDate    *string  `json:"FDDate"`
	ClosingDays          *float64 `json:"ClosingDays"`
	PRStatus             string   `json:"PR Status"`
	IsCost               string   `json:"isCost"`
	Picture              string   `json:"Picture"`
	VendorPicture        string   `json:"VPicture"`
	Price                float64  `json:"Price"`
	LastReceiveQty       float64  `json:"LastReceive"`
	LastReceiveDate      *string  `json:"L_Receive"`
	AutoClosedPenaltyQty float64  `json:"AutoClosedPenaltyQty"`
}

// PendingOrdersResult pairs one page of shaped rows with the total count
// from the mirrored COUNT statement.
type PendingOrdersResult struct {
	Rows         []PendingOrderRow
	TotalRecords int
}
