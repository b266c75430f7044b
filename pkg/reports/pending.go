package reports

import (
	"fmt"

	"github.com/vendorops/vos-engine/pkg/apperrors"
	"github.com/vendorops/vos-engine/pkg/models"
)

// Branch predicates of the pending-orders union. Branch A carries lines
// with outstanding quantity; branch B carries lines fully received but
// still awaiting quality-control disposition, surfaced as "pending" in a
// different sense. Compile-time constants only: these are spliced into
// statement text.
const (
	branchOutstanding = "(OD.OrderQty - OD.RcvdQty - OD.AutoClosedPenaltyQty) > 0"
	branchAwaitingQC  = "(OD.OrderQty - OD.RcvdQty - OD.AutoClosedPenaltyQty) = 0 AND OD.InQCQty > 0"
)

// pendingJoins is the shared join graph of both branches: order master and
// detail, the finish-product dimension tables, the approved-vendor link,
// unit and the two-level category hierarchy, scoped to one vendor.
const pendingJoins = `
FROM FinishProductOrderMaster OM
INNER JOIN FinishProductOrderDetail OD ON OD.FK_FinishProductOrderMasterID = OM.ID
INNER JOIN Vendor V ON OM.FK_VendorID = V.ID
INNER JOIN ApprovedVendorFinishProduct AV ON OD.FK_FinishProductApprovedVariantID = AV.ID AND AV.FK_VendorID = V.ID
INNER JOIN FinishProductVariantDetail VD ON AV.FK_FinishProductVariantDetail = VD.ID
INNER JOIN ItemMaster IM ON VD.FK_ItemMasterID = IM.ID
INNER JOIN ItemType IT ON IM.FKItemType = IT.ID
INNER JOIN FP_MaterialMaster M ON VD.FKMaterialID = M.ID
INNER JOIN FP_ColorMaster C ON VD.FKColourID = C.ID
INNER JOIN Finish F ON VD.FKFinishID = F.ID
INNER JOIN Unit U ON OD.Sales_Unit_ID = U.ID
INNER JOIN Category3 C3 ON IM.FKSubGroupID = C3.ID
INNER JOIN Category2 C2 ON C3.FK_Category2ID = C2.ID
WHERE V.ID = @vendorId
  AND OD.Status NOT LIKE 'Force Closed'
  AND OD.Status NOT LIKE 'Auto Closed'
  AND OM.OrderStat <> 'Draft'
  AND %s`

// pendingProjection lists the output columns the frontend binds to. The
// scan order in the repository must match this order exactly.
const pendingProjection = `SELECT
  C2.Description AS Category,
  IT.ImageFolderPathOnline AS Imagepath,
  OM.OrderNo AS [Order #],
  CAST(OM.OrderDate AS date) AS [Date],
  (IM.ItemCode + '-' + M.M_Code + '-' + C.Code + '-' + F.Code) AS [Item Code],
  AV.OldCode AS [Old Code],
  (IM.ProductName + '-' + M.ProductName + '-' + C.Color + '-' + F.Finish) AS [Description],
  AV.FactoryCode AS [Factory Code],
  V.CompanyName AS Vendor,
  OD.OrderQty AS [Order],
  (OD.OrderQty - OD.InQCQty - (OD.OrderQty - OD.RcvdQty)) AS Received,
  OD.InQCQty AS QC,
  OD.RejectQty AS Reject,
  (OD.OrderQty - OD.RcvdQty - OD.AutoClosedPenaltyQty) AS Pending,
  U.UnitName AS Unit,
  VD.T_Stock AS Stock,
  FORMAT(OD.DeliveryDate, 'dd/MM/yy') AS [Delivery Date],
  OD.DeliveryDate AS DDate,
  FORMAT(OD.FinalDeliveryDate, 'dd/MM/yy') AS FDDate,
  CASE WHEN OD.FinalDeliveryDate IS NOT NULL THEN DATEDIFF(DAY, GETDATE(), OD.FinalDeliveryDate) ELSE NULL END AS ClosingDays,
  ISNULL((SELECT DISTINCT 'PR' FROM FinishProductPOReturn_Detail POR WHERE POR.FK_ODDetail = OD.ID AND POR.ReturnQty > 0), '') AS [PR Status],
  (CASE WHEN ISNULL(CAST(OD.CalculatedPrice AS money), 0) > 0 THEN 'Y' ELSE 'N' END) AS isCost,
  ISNULL(IM.Picture, '') AS Picture,
  ISNULL(VD.Picture, '') AS VPicture,
  CAST((
    (SELECT ISNULL(SUM(OP.RecipeQty * OP.UnitPrice), 0) FROM FinishProductOrderDetail_Prep OP WHERE OP.FK_FinishProductOrderDetail = OD.ID)
    + ISNULL(OD.CalculatedPrice - ISNULL((SELECT SUM(OP.RecipeQty * OP.UnitPrice) FROM FinishProductOrderDetail_Prep OP WHERE OP.FK_FinishProductOrderDetail = OD.ID), 0), 0)
  ) * CAST(OD.OrderQty - OD.RcvdQty AS int) AS money) AS Price,
  OD.RcvdQty AS LastReceive,
  CAST(AV.LastRecDate AS date) AS L_Receive,
  OD.AutoClosedPenaltyQty AS AutoClosedPenaltyQty`

// BuildPendingOrdersQuery builds the pending-orders page statement: the
// two-branch UNION ALL with one global ORDER BY and OFFSET/FETCH appended
// to the combined result, so sorting and pagination span both branches.
// Sort column and direction resolve through the allow-lists; page offset,
// fetch size and the mandatory vendor filter bind as named parameters.
func BuildPendingOrdersQuery(req models.ReportRequest) (string, map[string]any, error) {
	if req.VendorID <= 0 {
		return "", nil, apperrors.ErrMissingVendorID
	}

	branchA := pendingProjection + fmt.Sprintf(pendingJoins, branchOutstanding)
	branchB := pendingProjection + fmt.Sprintf(pendingJoins, branchAwaitingQC)

	statement := fmt.Sprintf(`SELECT * FROM (
(%s)
UNION ALL
(%s)
) AS UnionResult
ORDER BY %s %s
OFFSET @offset ROWS FETCH NEXT @limit ROWS ONLY`,
		branchA, branchB,
		ResolveSortColumn(req.SortBy), sortDirection(req.SortOrder))

	params := map[string]any{
		"vendorId": req.VendorID,
		"offset":   req.Offset(),
		"limit":    req.Limit,
	}
	return statement, params, nil
}

// BuildPendingOrdersCountQuery mirrors the two-branch predicate without the
// projection or ordering, for the total-record count. The driver exposes no
// combined "data plus total" call, so this runs as a separate round trip
// concurrently with the page statement.
func BuildPendingOrdersCountQuery(vendorID int) (string, map[string]any, error) {
	if vendorID <= 0 {
		return "", nil, apperrors.ErrMissingVendorID
	}

	branchA := "SELECT 1 AS cnt" + fmt.Sprintf(pendingJoins, branchOutstanding)
	branchB := "SELECT 1 AS cnt" + fmt.Sprintf(pendingJoins, branchAwaitingQC)

	statement := fmt.Sprintf(`SELECT COUNT(*) AS total FROM (
(%s)
UNION ALL
(%s)
) AS CountUnion`, branchA, branchB)

	return statement, map[string]any{"vendorId": vendorID}, nil
}
