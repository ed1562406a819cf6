package trade

import (
	"time"

	"github.com/shopspring/decimal"
)

// Document is a commercial document header. TotalAmount is caller-supplied;
// it is not required to equal the sum of the document's items.
type Document struct {
	ID             int             `gorm:"primaryKey;column:document_id" json:"id"`
	Type           *string         `gorm:"column:type" json:"type,omitempty"`
	Date           time.Time       `gorm:"column:date" json:"date"`
	CounterpartyID *int            `gorm:"column:counterparty_id" json:"counterpartyId,omitempty"`
	TotalAmount    decimal.Decimal `gorm:"column:total_amount;type:decimal(18,2)" json:"totalAmount"`
}

// TableName returns the table name for GORM
func (Document) TableName() string { return "documents" }

// DocumentItem is one line of a document.
type DocumentItem struct {
	ID         int             `gorm:"primaryKey;column:item_id" json:"id"`
	DocumentID int             `gorm:"column:document_id" json:"documentId"`
	ProductID  int             `gorm:"column:product_id" json:"productId"`
	Quantity   decimal.Decimal `gorm:"column:quantity;type:decimal(18,3)" json:"quantity"`
	Price      decimal.Decimal `gorm:"column:price;type:decimal(18,2)" json:"price"`
}

// TableName returns the table name for GORM
func (DocumentItem) TableName() string { return "document_items" }
