package reports

import (
	"github.com/vendorops/vos-engine/pkg/apperrors"
	"github.com/vendorops/vos-engine/pkg/models"
)

// Per-category draft statements. Each product family has its own variant
// and approval tables, and its own item-code composition; the hyphen-joined
// code per category is an output contract the frontend depends on.
//
// Column order is shared across categories (the three Finish Product extras
// trail) so the repository scans every branch the same way.

const draftMaterialQuery = `SELECT
  V.CompanyName AS Vendor,
  OM.OrderNo,
  OM.OrderDate,
  (IM.ItemCode + '-' + C.Code + '-' + G.Code) AS ItemCode,
  AV.OldCode,
  IM.ProductName AS [Description],
  OD.OrderQty AS ReserveQty
FROM MaterialOrderMaster OM
INNER JOIN Vendor V ON OM.FK_VendorID = V.ID
INNER JOIN MaterialOrderDetail OD ON OD.FK_MaterialOrderMasterID = OM.ID
INNER JOIN ApprovedVendorMaterial AV ON OD.FK_MaterialVariantDetailID = AV.ID AND AV.FK_VendorID = V.ID
INNER JOIN MaterialVariantDetail VD ON AV.FK_MaterialVariantDetail = VD.ID
INNER JOIN ItemMaster IM ON VD.FK_ItemMasterID = IM.ID
INNER JOIN FP_ColorMaster C ON VD.FKColourID = C.ID
INNER JOIN Grade G ON VD.FKGradeID = G.ID
WHERE OM.OrderStat = 'Draft' AND OM.FK_VendorID = @vendorId
ORDER BY OM.OrderNo DESC`

const draftPrepsQuery = `SELECT
  V.CompanyName AS Vendor,
  OM.OrderNo,
  OM.OrderDate,
  (IM.ItemCode + '-' + F.Code) AS ItemCode,
  AV.OldCode,
  IM.ProductName AS [Description],
  OD.OrderQty AS ReserveQty
FROM PrepOrderMaster OM
INNER JOIN Vendor V ON OM.FK_VendorID = V.ID
INNER JOIN PrepOrderDetail OD ON OD.FK_PrepOrderMasterID = OM.ID
INNER JOIN ApprovedVendorPrep AV ON OD.FK_PrepVariantDetailID = AV.ID AND AV.FK_VendorID = V.ID
INNER JOIN PrepVariantDetail VD ON AV.FK_PrepVariantDetail = VD.ID
INNER JOIN ItemMaster IM ON VD.FK_ItemMasterID = IM.ID
INNER JOIN Finish F ON VD.FK_FinishID = F.ID
WHERE OM.OrderStat = 'Draft' AND OM.FK_VendorID = @vendorId
ORDER BY OM.OrderNo DESC`

const draftAccessoriesQuery = `SELECT
  V.CompanyName AS Vendor,
  OM.OrderNo,
  OM.OrderDate,
  (IM.ItemCode + '-' + C.Code) AS ItemCode,
  AV.OldCode,
  IM.ProductName AS [Description],
  OD.OrderQty AS ReserveQty
FROM AccessoryOrderMaster OM
INNER JOIN Vendor V ON OM.FK_VendorID = V.ID
INNER JOIN AccessoryOrderDetail OD ON OD.FK_AccessoryOrderMasterID = OM.ID
INNER JOIN ApprovedVendorAccessory AV ON OD.FK_AccessoryVariantDetailID = AV.ID AND AV.FK_VendorID = V.ID
INNER JOIN AccessoryVariantDetail VD ON AV.FK_AccessoryVariantDetail = VD.ID
INNER JOIN ItemMaster IM ON VD.FK_ItemMasterID = IM.ID
INNER JOIN FP_ColorMaster C ON VD.FK_ColourID = C.ID
WHERE OM.OrderStat = 'Draft' AND OM.FK_VendorID = @vendorId
ORDER BY OM.OrderNo DESC`

const draftPackagingQuery = `SELECT
  V.CompanyName AS Vendor,
  OM.OrderNo,
  OM.OrderDate,
  (IM.ItemCode + '-' + C.Code) AS ItemCode,
  AV.OldCode,
  IM.ProductName AS [Description],
  OD.OrderQty AS ReserveQty
FROM PackagingOrderMaster OM
INNER JOIN Vendor V ON OM.FK_VendorID = V.ID
INNER JOIN PackagingOrderDetail OD ON OD.FK_PackagingOrderMasterID = OM.ID
INNER JOIN ApprovedVendorPackaging AV ON OD.FK_PackagingVariantDetailID = AV.ID AND AV.FK_VendorID = V.ID
INNER JOIN PackagingVariantDetail VD ON AV.FK_PackagingVariantDetail = VD.ID
INNER JOIN ItemMaster IM ON VD.FK_ItemMasterID = IM.ID
INNER JOIN FP_ColorMaster C ON VD.FK_ColourID = C.ID
WHERE OM.OrderStat = 'Draft' AND OM.FK_VendorID = @vendorId
ORDER BY OM.OrderNo DESC`

const draftFinishProductQuery = `SELECT
  V.CompanyName AS Vendor,
  OM.OrderNo,
  OM.OrderDate,
  (IM.ItemCode + '-' + M.M_Code + '-' + C.Code + '-' + F.Code) AS ItemCode,
  AV.OldCode,
  (IM.ProductName + '/ ' + M.ProductName + '/ ' + C.Color + '/ ' + F.Finish) AS [Description],
  OD.OrderQty AS ReserveQty,
  C2.Description AS Category,
  IM.Picture,
  IT.ImageFolderPathOnline AS Imagepath
FROM FinishProductOrderMaster OM
INNER JOIN Vendor V ON OM.FK_VendorID = V.ID
INNER JOIN FinishProductOrderDetail OD ON OD.FK_FinishProductOrderMasterID = OM.ID
INNER JOIN ApprovedVendorFinishProduct AV ON OD.FK_FinishProductApprovedVariantID = AV.ID AND AV.FK_VendorID = V.ID
INNER JOIN FinishProductVariantDetail VD ON AV.FK_FinishProductVariantDetail = VD.ID
INNER JOIN ItemMaster IM ON VD.FK_ItemMasterID = IM.ID
INNER JOIN ItemType IT ON IM.FKItemType = IT.ID
INNER JOIN FP_MaterialMaster M ON VD.FKMaterialID = M.ID
INNER JOIN FP_ColorMaster C ON VD.FKColourID = C.ID
INNER JOIN Finish F ON VD.FKFinishID = F.ID
INNER JOIN Category3 C3 ON IM.FKSubGroupID = C3.ID
INNER JOIN Category2 C2 ON C3.FK_Category2ID = C2.ID
WHERE OM.OrderStat = 'Draft' AND OM.FK_VendorID = @vendorId
ORDER BY OM.OrderNo DESC`

// BuildDraftQuery dispatches on the closed category enum and returns the
// matching statement with its bound tenant filter. An unrecognized category
// is a terminal error and no statement is produced.
func BuildDraftQuery(category models.DraftCategory, vendorID int) (string, map[string]any, error) {
	if vendorID <= 0 {
		return "", nil, apperrors.ErrMissingVendorID
	}

	var statement string
	switch category {
	case models.CategoryMaterial:
		statement = draftMaterialQuery
	case models.CategoryPreps:
		statement = draftPrepsQuery
	case models.CategoryAccessories:
		statement = draftAccessoriesQuery
	case models.CategoryPackaging:
		statement = draftPackagingQuery
	case models.CategoryFinishProduct:
		statement = draftFinishProductQuery
	default:
		return "", nil, apperrors.ErrInvalidCategory
	}

	return statement, map[string]any{"vendorId": vendorID}, nil
}

// HasFinishProductExtras reports whether the category's projection carries
// the trailing Category/Picture/Imagepath columns.
func HasFinishProductExtras(category models.DraftCategory) bool {
	return category == models.CategoryFinishProduct
}
