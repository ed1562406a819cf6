package archive

import (
	"github.com/financebook/backend/internal/domain/asset"
	"github.com/financebook/backend/internal/domain/identity"
	"github.com/financebook/backend/internal/domain/inventory"
	"github.com/financebook/backend/internal/domain/ledger"
	"github.com/financebook/backend/internal/domain/partner"
	"github.com/financebook/backend/internal/domain/payroll"
	"github.com/financebook/backend/internal/domain/report"
	"github.com/financebook/backend/internal/domain/trade"
	"github.com/financebook/backend/internal/infrastructure/persistence"
)

// decoder turns one import record into the table's entity. Field lookups
// probe both the export key and the SQL column name; absent fields decode
// to zero values.
type decoder func(Record) (any, error)

var decoders = map[persistence.Table]decoder{
	persistence.TableUsers: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &identity.User{
			ID:           f.Int("id", "user_id"),
			Username:     f.Str("username"),
			PasswordHash: f.Str("passwordHash", "password_hash"),
			FullName:     f.Str("fullName", "full_name"),
			Email:        f.Str("email"),
			IsActive:     f.Bool("isActive", "is_active"),
		}
		return e, f.Err()
	},
	persistence.TableRoles: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &identity.Role{
			ID:   f.Int("id", "role_id"),
			Name: f.Str("name"),
		}
		return e, f.Err()
	},
	persistence.TablePermissions: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &identity.Permission{
			ID:   f.Int("id", "permission_id"),
			Name: f.Str("name"),
		}
		return e, f.Err()
	},
	persistence.TableUserRoles: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &identity.UserRole{
			UserID: f.Int("userId", "user_id"),
			RoleID: f.Int("roleId", "role_id"),
		}
		return e, f.Err()
	},
	persistence.TableRolePermissions: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &identity.RolePermission{
			RoleID:       f.Int("roleId", "role_id"),
			PermissionID: f.Int("permissionId", "permission_id"),
		}
		return e, f.Err()
	},
	persistence.TableCounterparties: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &partner.Counterparty{
			ID:          f.Int("id", "counterparty_id"),
			Name:        f.Str("name"),
			Type:        f.Str("type"),
			TaxNumber:   f.Str("taxNumber", "tax_number"),
			BankDetails: f.Str("bankDetails", "bank_details"),
		}
		return e, f.Err()
	},
	persistence.TableBankAccounts: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &partner.BankAccount{
			ID:             f.Int("id", "account_id"),
			CounterpartyID: f.Int("counterpartyId", "counterparty_id"),
			AccountNumber:  f.Str("accountNumber", "account_number"),
			BankName:       f.Str("bankName", "bank_name"),
		}
		return e, f.Err()
	},
	persistence.TableContracts: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &partner.Contract{
			ID:             f.Int("id", "contract_id"),
			CounterpartyID: f.Int("counterpartyId", "counterparty_id"),
			StartDate:      f.Time("startDate", "start_date"),
			EndDate:        f.TimePtr("endDate", "end_date"),
			Amount:         f.Decimal("amount"),
		}
		return e, f.Err()
	},
	persistence.TableChartOfAccounts: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &ledger.ChartOfAccount{
			ID:   f.Int("id", "account_id"),
			Code: f.Str("code"),
			Name: f.Str("name"),
			Type: f.Str("type"),
		}
		return e, f.Err()
	},
	persistence.TableTransactions: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &ledger.Transaction{
			ID:              f.Int("transactionId", "transaction_id"),
			Date:            f.Time("date"),
			DebitAccountID:  f.IntPtr("debitAccountId", "debit_account_id"),
			CreditAccountID: f.IntPtr("creditAccountId", "credit_account_id"),
			Amount:          f.Decimal("amount"),
			Description:     f.Str("description"),
		}
		return e, f.Err()
	},
	persistence.TableDocuments: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &trade.Document{
			ID:             f.Int("id", "document_id"),
			Type:           f.Str("type"),
			Date:           f.Time("date"),
			CounterpartyID: f.IntPtr("counterpartyId", "counterparty_id"),
			TotalAmount:    f.Decimal("totalAmount", "total_amount"),
		}
		return e, f.Err()
	},
	persistence.TableDocumentItems: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &trade.DocumentItem{
			ID:         f.Int("id", "item_id"),
			DocumentID: f.Int("documentId", "document_id"),
			ProductID:  f.Int("productId", "product_id"),
			Quantity:   f.Decimal("quantity"),
			Price:      f.Decimal("price"),
		}
		return e, f.Err()
	},
	persistence.TableFixedAssets: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &asset.FixedAsset{
			ID:              f.Int("id", "asset_id"),
			Name:            f.Str("name"),
			InventoryNumber: f.Str("inventoryNumber", "inventory_number"),
			AcquisitionDate: f.Time("acquisitionDate", "acquisition_date"),
			InitialCost:     f.Decimal("initialCost", "initial_cost"),
			UsefulLife:      f.Int("usefulLife", "useful_life"),
		}
		return e, f.Err()
	},
	persistence.TableDepreciation: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &asset.Depreciation{
			ID:      f.Int("id", "depreciation_id"),
			AssetID: f.Int("assetId", "asset_id"),
			Month:   f.Time("month"),
			Amount:  f.Decimal("amount"),
			Method:  f.Str("method"),
		}
		return e, f.Err()
	},
	persistence.TableAssetMovements: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &asset.AssetMovement{
			ID:             f.Int("id", "movement_id"),
			AssetID:        f.Int("assetId", "asset_id"),
			FromDepartment: f.Str("fromDepartment", "from_department"),
			ToDepartment:   f.Str("toDepartment", "to_department"),
			Date:           f.Time("date"),
		}
		return e, f.Err()
	},
	persistence.TableWarehouses: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &inventory.Warehouse{
			ID:      f.Int("id", "warehouse_id"),
			Name:    f.Str("name"),
			Address: f.Str("address"),
		}
		return e, f.Err()
	},
	persistence.TableProductCategories: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &inventory.ProductCategory{
			ID:   f.Int("id", "category_id"),
			Name: f.Str("name"),
		}
		return e, f.Err()
	},
	persistence.TableProducts: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &inventory.Product{
			ID:         f.Int("id", "product_id"),
			Name:       f.Str("name"),
			Unit:       f.Str("unit"),
			CategoryID: f.Int("categoryId", "category_id"),
		}
		return e, f.Err()
	},
	persistence.TableInventory: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &inventory.Inventory{
			ID:          f.Int("id", "inventory_id"),
			WarehouseID: f.Int("warehouseId", "warehouse_id"),
			ProductID:   f.Int("productId", "product_id"),
			Quantity:    f.Decimal("quantity"),
		}
		return e, f.Err()
	},
	persistence.TableInventoryMovements: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &inventory.InventoryMovement{
			ID:              f.Int("id", "movement_id"),
			ProductID:       f.Int("productId", "product_id"),
			FromWarehouseID: f.IntPtr("fromWarehouseId", "from_warehouse_id"),
			ToWarehouseID:   f.IntPtr("toWarehouseId", "to_warehouse_id"),
			Quantity:        f.Decimal("quantity"),
			Date:            f.Time("date"),
		}
		return e, f.Err()
	},
	persistence.TableDepartments: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &payroll.Department{
			ID:   f.Int("id", "department_id"),
			Name: f.Str("name"),
		}
		return e, f.Err()
	},
	persistence.TableEmployees: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &payroll.Employee{
			ID:           f.Int("id", "employee_id"),
			FullName:     f.Str("fullName", "full_name"),
			Position:     f.Str("position"),
			DepartmentID: f.Int("departmentId", "department_id"),
			HireDate:     f.Time("hireDate", "hire_date"),
		}
		return e, f.Err()
	},
	persistence.TableSalaryPayments: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &payroll.SalaryPayment{
			ID:           f.Int("id", "payment_id"),
			EmployeeID:   f.Int("employeeId", "employee_id"),
			Month:        f.Time("month"),
			BaseSalary:   f.Decimal("baseSalary", "base_salary"),
			Bonus:        f.Decimal("bonus"),
			TaxDeduction: f.Decimal("taxDeduction", "tax_deduction"),
		}
		return e, f.Err()
	},
	persistence.TableTaxes: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &payroll.Tax{
			ID:        f.Int("id", "tax_id"),
			PaymentID: f.Int("paymentId", "payment_id"),
			Type:      f.Str("type"),
			Amount:    f.Decimal("amount"),
		}
		return e, f.Err()
	},
	persistence.TableFinancialReports: func(r Record) (any, error) {
		f := &fieldReader{rec: r}
		e := &report.FinancialReport{
			ID:           f.Int("id", "report_id"),
			Type:         f.Str("type"),
			Period:       f.Str("period"),
			GeneratedBy:  f.Int("generatedBy", "generated_by"),
			CreationDate: f.Time("creationDate", "creation_date"),
		}
		return e, f.Err()
	},
}
