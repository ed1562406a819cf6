package persistence

import (
	"fmt"
	"strings"

	"github.com/financebook/backend/internal/domain/asset"
	"github.com/financebook/backend/internal/domain/identity"
	"github.com/financebook/backend/internal/domain/inventory"
	"github.com/financebook/backend/internal/domain/ledger"
	"github.com/financebook/backend/internal/domain/partner"
	"github.com/financebook/backend/internal/domain/payroll"
	"github.com/financebook/backend/internal/domain/report"
	"github.com/financebook/backend/internal/domain/shared"
	"github.com/financebook/backend/internal/domain/trade"
)

// Table identifies one of the managed relational tables. The identifiers
// double as the top-level keys of export documents.
type Table string

// The full set of managed tables.
const (
	TableUsers              Table = "Users"
	TableRoles              Table = "Roles"
	TablePermissions        Table = "Permissions"
	TableUserRoles          Table = "UserRoles"
	TableRolePermissions    Table = "RolePermissions"
	TableCounterparties     Table = "Counterparties"
	TableBankAccounts       Table = "BankAccounts"
	TableContracts          Table = "Contracts"
	TableChartOfAccounts    Table = "ChartOfAccounts"
	TableTransactions       Table = "Transactions"
	TableDocuments          Table = "Documents"
	TableDocumentItems      Table = "DocumentItems"
	TableFixedAssets        Table = "FixedAssets"
	TableDepreciation       Table = "Depreciation"
	TableAssetMovements     Table = "AssetMovements"
	TableWarehouses         Table = "Warehouses"
	TableProductCategories  Table = "ProductCategories"
	TableProducts           Table = "Products"
	TableInventory          Table = "Inventory"
	TableInventoryMovements Table = "InventoryMovements"
	TableDepartments        Table = "Departments"
	TableEmployees          Table = "Employees"
	TableSalaryPayments     Table = "SalaryPayments"
	TableTaxes              Table = "Taxes"
	TableFinancialReports   Table = "FinancialReports"
)

// AllTables returns every managed table in a stable order. Referenced tables
// come before the tables that reference them so imports replayed in this
// order never hit a dangling foreign key.
func AllTables() []Table {
	return []Table{
		TableUsers,
		TableRoles,
		TablePermissions,
		TableUserRoles,
		TableRolePermissions,
		TableCounterparties,
		TableBankAccounts,
		TableContracts,
		TableChartOfAccounts,
		TableTransactions,
		TableWarehouses,
		TableProductCategories,
		TableProducts,
		TableInventory,
		TableInventoryMovements,
		TableDocuments,
		TableDocumentItems,
		TableFixedAssets,
		TableDepreciation,
		TableAssetMovements,
		TableDepartments,
		TableEmployees,
		TableSalaryPayments,
		TableTaxes,
		TableFinancialReports,
	}
}

// ParseTable resolves a table name to its identifier. Matching is
// case-insensitive; an unknown name is a configuration error.
func ParseTable(name string) (Table, error) {
	for _, t := range AllTables() {
		if strings.EqualFold(string(t), name) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown table '%s'", shared.ErrConfiguration, name)
}

// tableSpec describes how the gateway handles one table: the entity type,
// the primary key column used for MAX-based ID allocation, and the conflict
// target for upserts.
type tableSpec struct {
	// model returns a pointer to a zero entity, slice a pointer to an
	// empty slice of entities.
	model func() any
	slice func() any

	// idColumn is empty for junction tables, which have no surrogate key.
	idColumn string

	// conflictColumns are the upsert conflict target.
	conflictColumns []string

	// ignoreConflicts makes upserts DO NOTHING instead of updating.
	// Junction rows have no payload beyond their key, so a conflict
	// means the row already exists as desired.
	ignoreConflicts bool
}

var tableSpecs = map[Table]tableSpec{
	TableUsers: {
		model:           func() any { return &identity.User{} },
		slice:           func() any { return &[]identity.User{} },
		idColumn:        "user_id",
		conflictColumns: []string{"user_id"},
	},
	TableRoles: {
		model:           func() any { return &identity.Role{} },
		slice:           func() any { return &[]identity.Role{} },
		idColumn:        "role_id",
		conflictColumns: []string{"role_id"},
	},
	TablePermissions: {
		model:           func() any { return &identity.Permission{} },
		slice:           func() any { return &[]identity.Permission{} },
		idColumn:        "permission_id",
		conflictColumns: []string{"permission_id"},
	},
	TableUserRoles: {
		model:           func() any { return &identity.UserRole{} },
		slice:           func() any { return &[]identity.UserRole{} },
		conflictColumns: []string{"user_id", "role_id"},
		ignoreConflicts: true,
	},
	TableRolePermissions: {
		model:           func() any { return &identity.RolePermission{} },
		slice:           func() any { return &[]identity.RolePermission{} },
		conflictColumns: []string{"role_id", "permission_id"},
		ignoreConflicts: true,
	},
	TableCounterparties: {
		model:           func() any { return &partner.Counterparty{} },
		slice:           func() any { return &[]partner.Counterparty{} },
		idColumn:        "counterparty_id",
		conflictColumns: []string{"counterparty_id"},
	},
	TableBankAccounts: {
		model:           func() any { return &partner.BankAccount{} },
		slice:           func() any { return &[]partner.BankAccount{} },
		idColumn:        "account_id",
		conflictColumns: []string{"account_id"},
	},
	TableContracts: {
		model:           func() any { return &partner.Contract{} },
		slice:           func() any { return &[]partner.Contract{} },
		idColumn:        "contract_id",
		conflictColumns: []string{"contract_id"},
	},
	TableChartOfAccounts: {
		model:           func() any { return &ledger.ChartOfAccount{} },
		slice:           func() any { return &[]ledger.ChartOfAccount{} },
		idColumn:        "account_id",
		conflictColumns: []string{"account_id"},
	},
	TableTransactions: {
		model:           func() any { return &ledger.Transaction{} },
		slice:           func() any { return &[]ledger.Transaction{} },
		idColumn:        "transaction_id",
		conflictColumns: []string{"transaction_id"},
	},
	TableDocuments: {
		model:           func() any { return &trade.Document{} },
		slice:           func() any { return &[]trade.Document{} },
		idColumn:        "document_id",
		conflictColumns: []string{"document_id"},
	},
	TableDocumentItems: {
		model:           func() any { return &trade.DocumentItem{} },
		slice:           func() any { return &[]trade.DocumentItem{} },
		idColumn:        "item_id",
		conflictColumns: []string{"item_id"},
	},
	TableFixedAssets: {
		model:           func() any { return &asset.FixedAsset{} },
		slice:           func() any { return &[]asset.FixedAsset{} },
		idColumn:        "asset_id",
		conflictColumns: []string{"asset_id"},
	},
	TableDepreciation: {
		model:           func() any { return &asset.Depreciation{} },
		slice:           func() any { return &[]asset.Depreciation{} },
		idColumn:        "depreciation_id",
		conflictColumns: []string{"depreciation_id"},
	},
	TableAssetMovements: {
		model:           func() any { return &asset.AssetMovement{} },
		slice:           func() any { return &[]asset.AssetMovement{} },
		idColumn:        "movement_id",
		conflictColumns: []string{"movement_id"},
	},
	TableWarehouses: {
		model:           func() any { return &inventory.Warehouse{} },
		slice:           func() any { return &[]inventory.Warehouse{} },
		idColumn:        "warehouse_id",
		conflictColumns: []string{"warehouse_id"},
	},
	TableProductCategories: {
		model:           func() any { return &inventory.ProductCategory{} },
		slice:           func() any { return &[]inventory.ProductCategory{} },
		idColumn:        "category_id",
		conflictColumns: []string{"category_id"},
	},
	TableProducts: {
		model:           func() any { return &inventory.Product{} },
		slice:           func() any { return &[]inventory.Product{} },
		idColumn:        "product_id",
		conflictColumns: []string{"product_id"},
	},
	TableInventory: {
		model:           func() any { return &inventory.Inventory{} },
		slice:           func() any { return &[]inventory.Inventory{} },
		idColumn:        "inventory_id",
		conflictColumns: []string{"inventory_id"},
	},
	TableInventoryMovements: {
		model:           func() any { return &inventory.InventoryMovement{} },
		slice:           func() any { return &[]inventory.InventoryMovement{} },
		idColumn:        "movement_id",
		conflictColumns: []string{"movement_id"},
	},
	TableDepartments: {
		model:           func() any { return &payroll.Department{} },
		slice:           func() any { return &[]payroll.Department{} },
		idColumn:        "department_id",
		conflictColumns: []string{"department_id"},
	},
	TableEmployees: {
		model:           func() any { return &payroll.Employee{} },
		slice:           func() any { return &[]payroll.Employee{} },
		idColumn:        "employee_id",
		conflictColumns: []string{"employee_id"},
	},
	TableSalaryPayments: {
		model:           func() any { return &payroll.SalaryPayment{} },
		slice:           func() any { return &[]payroll.SalaryPayment{} },
		idColumn:        "payment_id",
		conflictColumns: []string{"payment_id"},
	},
	TableTaxes: {
		model:           func() any { return &payroll.Tax{} },
		slice:           func() any { return &[]payroll.Tax{} },
		idColumn:        "tax_id",
		conflictColumns: []string{"tax_id"},
	},
	TableFinancialReports: {
		model:           func() any { return &report.FinancialReport{} },
		slice:           func() any { return &[]report.FinancialReport{} },
		idColumn:        "report_id",
		conflictColumns: []string{"report_id"},
	},
}

// tabler matches GORM's convention for models that name their own table.
type tabler interface {
	TableName() string
}

// SQLName returns the underlying SQL table name for a table identifier.
func SQLName(t Table) (string, error) {
	spec, ok := tableSpecs[t]
	if !ok {
		return "", fmt.Errorf("%w: unknown table '%s'", shared.ErrConfiguration, t)
	}
	m, ok := spec.model().(tabler)
	if !ok {
		return "", fmt.Errorf("%w: model for table '%s' does not declare a table name", shared.ErrConfiguration, t)
	}
	return m.TableName(), nil
}

// validateTableSpecs checks that every declared table has a complete spec.
// Called once at gateway construction so a gap fails startup, not a request.
func validateTableSpecs() error {
	for _, t := range AllTables() {
		spec, ok := tableSpecs[t]
		if !ok {
			return fmt.Errorf("%w: table '%s' has no spec", shared.ErrConfiguration, t)
		}
		if spec.model == nil || spec.slice == nil {
			return fmt.Errorf("%w: table '%s' spec is missing factories", shared.ErrConfiguration, t)
		}
		if len(spec.conflictColumns) == 0 {
			return fmt.Errorf("%w: table '%s' spec has no conflict columns", shared.ErrConfiguration, t)
		}
		if spec.idColumn == "" && !spec.ignoreConflicts {
			return fmt.Errorf("%w: table '%s' has neither an id column nor ignore-conflict upserts", shared.ErrConfiguration, t)
		}
		if _, ok := spec.model().(tabler); !ok {
			return fmt.Errorf("%w: model for table '%s' does not declare a table name", shared.ErrConfiguration, t)
		}
	}
	if len(tableSpecs) != len(AllTables()) {
		return fmt.Errorf("%w: %d table specs declared for %d tables", shared.ErrConfiguration, len(tableSpecs), len(AllTables()))
	}
	return nil
}
