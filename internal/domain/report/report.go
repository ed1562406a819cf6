package report

import "time"

// FinancialReport is a report metadata record. Report content itself is
// computed on demand by the ledger service and is not persisted here.
type FinancialReport struct {
	ID           int       `gorm:"primaryKey;column:report_id" json:"id"`
	Type         *string   `gorm:"column:type" json:"type,omitempty"`
	Period       *string   `gorm:"column:period" json:"period,omitempty"`
	GeneratedBy  int       `gorm:"column:generated_by" json:"generatedBy"`
	CreationDate time.Time `gorm:"column:creation_date" json:"creationDate"`
}

// TableName returns the table name for GORM
func (FinancialReport) TableName() string { return "financial_reports" }
