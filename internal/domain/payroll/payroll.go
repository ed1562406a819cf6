package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Department is an organizational unit employees belong to.
type Department struct {
	ID   int     `gorm:"primaryKey;column:department_id" json:"id"`
	Name *string `gorm:"column:name" json:"name,omitempty"`
}

// TableName returns the table name for GORM
func (Department) TableName() string { return "departments" }

// Employee is a payroll subject.
type Employee struct {
	ID           int       `gorm:"primaryKey;column:employee_id" json:"id"`
	FullName     *string   `gorm:"column:full_name" json:"fullName,omitempty"`
	Position     *string   `gorm:"column:position" json:"position,omitempty"`
	DepartmentID int       `gorm:"column:department_id" json:"departmentId"`
	HireDate     time.Time `gorm:"column:hire_date" json:"hireDate"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string { return "employees" }

// SalaryPayment is one payroll period for an employee. TaxDeduction is
// computed by the selected tax strategy at registration time.
type SalaryPayment struct {
	ID           int             `gorm:"primaryKey;column:payment_id" json:"id"`
	EmployeeID   int             `gorm:"column:employee_id" json:"employeeId"`
	Month        time.Time       `gorm:"column:month" json:"month"`
	BaseSalary   decimal.Decimal `gorm:"column:base_salary;type:decimal(18,2)" json:"baseSalary"`
	Bonus        decimal.Decimal `gorm:"column:bonus;type:decimal(18,2)" json:"bonus"`
	TaxDeduction decimal.Decimal `gorm:"column:tax_deduction;type:decimal(18,2)" json:"taxDeduction"`
}

// TableName returns the table name for GORM
func (SalaryPayment) TableName() string { return "salary_payments" }

// Tax is one tax levied on a salary payment.
type Tax struct {
	ID        int             `gorm:"primaryKey;column:tax_id" json:"id"`
	PaymentID int             `gorm:"column:payment_id" json:"paymentId"`
	Type      *string         `gorm:"column:type" json:"type,omitempty"`
	Amount    decimal.Decimal `gorm:"column:amount;type:decimal(18,2)" json:"amount"`
}

// TableName returns the table name for GORM
func (Tax) TableName() string { return "taxes" }
