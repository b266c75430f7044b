// Package reports builds the SQL statements behind the two report
// endpoints and shapes their result rows. Builders are pure functions from
// a validated request to statement text plus a named-parameter map; the
// only identifiers that ever reach statement text are compile-time
// constants resolved through the allow-lists in this package.
package reports

import "github.com/vendorops/vos-engine/pkg/models"

// DefaultSortBy is the logical sort column applied when the caller supplies
// none, or one outside the allow-list.
const DefaultSortBy = "OrderNo"

// sortColumns maps logical sort names to literal output-column expressions
// of the pending-orders projection. The map is the allow-list: identifiers
// cannot be driver-bound, so nothing outside it may reach the ORDER BY.
var sortColumns = map[string]string{
	"OrderNo":      "[Order #]",
	"Date":         "Date",
	"ItemCode":     "[Item Code]",
	"Vendor":       "Vendor",
	"Order":        "[Order]",
	"Pending":      "Pending",
	"DeliveryDate": "[Delivery Date]",
	"ClosingDays":  "ClosingDays",
}

// ResolveSortColumn returns the SQL expression for a logical sort name.
// Unknown names silently fall back to the default; this is a deliberate
// contrast with the draft category, which hard-rejects unknown values.
func ResolveSortColumn(sortBy string) string {
	if col, ok := sortColumns[sortBy]; ok {
		return col
	}
	return sortColumns[DefaultSortBy]
}

// EffectiveSortBy returns the logical name actually applied, for echoing in
// the response's sorting block.
func EffectiveSortBy(sortBy string) string {
	if _, ok := sortColumns[sortBy]; ok {
		return sortBy
	}
	return DefaultSortBy
}

// SortableColumns lists the logical names of the allow-list.
func SortableColumns() []string {
	names := make([]string, 0, len(sortColumns))
	for name := range sortColumns {
		names = append(names, name)
	}
	return names
}

func sortDirection(order models.SortOrder) string {
	if order == models.SortAsc {
		return "ASC"
	}
	return "DESC"
}
