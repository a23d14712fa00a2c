package repositories

import (
	"school-inventory/models"

	"gorm.io/gorm"
)

type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db}
}

// RegisterRow is one line of the asset register: the asset joined with its
// category and resolved shelf ancestry.
type RegisterRow struct {
	SKU              string `json:"sku"`
	Name             string `json:"name"`
	CategoryName     string `json:"category_name"`
	UnitPrice        string `json:"unit_price"`
	QuantityOnHand   int    `json:"quantity_on_hand"`
	ReorderThreshold int    `json:"reorder_threshold"`
	BranchName       string `json:"branch_name"`
	ZoneName         string `json:"zone_name"`
	RoomName         string `json:"room_name"`
	ShelfCode        string `json:"shelf_code"`
}

// GetRegister returns the full asset register with its resolved shelf
// ancestry, for listing and Excel export.
func (r *AssetRepository) GetRegister() ([]RegisterRow, error) {
	sqlRegister := `select a.sku, a.name, c.name as category_name, a.unit_price,
	a.quantity_on_hand, a.reorder_threshold,
	b.name as branch_name, z.name as zone_name, rm.name as room_name, s.code as shelf_code
	from assets a
	inner join categories c on a.category_id = c.id
	inner join shelves s on a.shelf_id = s.id
	inner join rooms rm on s.room_id = rm.id
	inner join zones z on rm.zone_id = z.id
	inner join branches b on z.branch_id = b.id
	where a.deleted_at is null
	order by a.sku`

	var rows []RegisterRow
	if err := r.db.Raw(sqlRegister).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// CountReferences counts workflow records that still reference the asset.
// Assets with history cannot be deleted.
func (r *AssetRepository) CountReferences(assetID uint) (int64, error) {
	var total int64

	counts := []struct {
		model  interface{}
		column string
	}{
		{&models.IssueRequest{}, "asset_id"},
		{&models.Transformation{}, "raw_material_id"},
		{&models.BulkIssuance{}, "asset_id"},
		{&models.InventoryAlert{}, "asset_id"},
	}

	for _, c := range counts {
		var n int64
		if err := r.db.Model(c.model).Where(c.column+" = ?", assetID).Count(&n).Error; err != nil {
			return 0, err
		}
		total += n
	}

	return total, nil
}
