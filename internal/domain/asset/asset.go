package asset

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedAsset is a depreciable asset. UsefulLife is in years.
type FixedAsset struct {
	ID              int             `gorm:"primaryKey;column:asset_id" json:"id"`
	Name            *string         `gorm:"column:name" json:"name,omitempty"`
	InventoryNumber *string         `gorm:"column:inventory_number" json:"inventoryNumber,omitempty"`
	AcquisitionDate time.Time       `gorm:"column:acquisition_date" json:"acquisitionDate"`
	InitialCost     decimal.Decimal `gorm:"column:initial_cost;type:decimal(18,2)" json:"initialCost"`
	UsefulLife      int             `gorm:"column:useful_life" json:"usefulLife"`
}

// TableName returns the table name for GORM
func (FixedAsset) TableName() string { return "fixed_assets" }

// Depreciation is one computed depreciation period for an asset. Method
// records the name of the strategy that produced the amount.
type Depreciation struct {
	ID      int             `gorm:"primaryKey;column:depreciation_id" json:"id"`
	AssetID int             `gorm:"column:asset_id" json:"assetId"`
	Month   time.Time       `gorm:"column:month" json:"month"`
	Amount  decimal.Decimal `gorm:"column:amount;type:decimal(18,2)" json:"amount"`
	Method  *string         `gorm:"column:method" json:"method,omitempty"`
}

// TableName returns the table name for GORM
func (Depreciation) TableName() string { return "depreciation" }

// AssetMovement logs a transfer of an asset between departments.
type AssetMovement struct {
	ID             int       `gorm:"primaryKey;column:movement_id" json:"id"`
	AssetID        int       `gorm:"column:asset_id" json:"assetId"`
	FromDepartment *string   `gorm:"column:from_department" json:"fromDepartment,omitempty"`
	ToDepartment   *string   `gorm:"column:to_department" json:"toDepartment,omitempty"`
	Date           time.Time `gorm:"column:date" json:"date"`
}

// TableName returns the table name for GORM
func (AssetMovement) TableName() string { return "asset_movements" }
