package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// Warehouse is a physical storage location.
type Warehouse struct {
	ID      int     `gorm:"primaryKey;column:warehouse_id" json:"id"`
	Name    *string `gorm:"column:name" json:"name,omitempty"`
	Address *string `gorm:"column:address" json:"address,omitempty"`
}

// TableName returns the table name for GORM
func (Warehouse) TableName() string { return "warehouses" }

// ProductCategory groups products.
type ProductCategory struct {
	ID   int     `gorm:"primaryKey;column:category_id" json:"id"`
	Name *string `gorm:"column:name" json:"name,omitempty"`
}

// TableName returns the table name for GORM
func (ProductCategory) TableName() string { return "product_categories" }

// Product is a stockable item.
type Product struct {
	ID         int     `gorm:"primaryKey;column:product_id" json:"id"`
	Name       *string `gorm:"column:name" json:"name,omitempty"`
	Unit       *string `gorm:"column:unit" json:"unit,omitempty"`
	CategoryID int     `gorm:"column:category_id" json:"categoryId"`
}

// TableName returns the table name for GORM
func (Product) TableName() string { return "products" }

// Inventory is a quantity snapshot of one product in one warehouse.
type Inventory struct {
	ID          int             `gorm:"primaryKey;column:inventory_id" json:"id"`
	WarehouseID int             `gorm:"column:warehouse_id" json:"warehouseId"`
	ProductID   int             `gorm:"column:product_id" json:"productId"`
	Quantity    decimal.Decimal `gorm:"column:quantity;type:decimal(18,3)" json:"quantity"`
}

// TableName returns the table name for GORM
func (Inventory) TableName() string { return "inventory" }

// InventoryMovement logs a stock transfer. FromWarehouseID is nil for
// inbound-only moves, ToWarehouseID nil for outbound-only moves.
type InventoryMovement struct {
	ID              int             `gorm:"primaryKey;column:movement_id" json:"id"`
	ProductID       int             `gorm:"column:product_id" json:"productId"`
	FromWarehouseID *int            `gorm:"column:from_warehouse_id" json:"fromWarehouseId,omitempty"`
	ToWarehouseID   *int            `gorm:"column:to_warehouse_id" json:"toWarehouseId,omitempty"`
	Quantity        decimal.Decimal `gorm:"column:quantity;type:decimal(18,3)" json:"quantity"`
	Date            time.Time       `gorm:"column:date" json:"date"`
}

// TableName returns the table name for GORM
func (InventoryMovement) TableName() string { return "inventory_movements" }
