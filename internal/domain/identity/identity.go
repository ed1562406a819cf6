package identity

// User is a system login account.
type User struct {
	ID           int     `gorm:"primaryKey;column:user_id" json:"id"`
	Username     *string `gorm:"column:username" json:"username,omitempty"`
	PasswordHash *string `gorm:"column:password_hash" json:"passwordHash,omitempty"`
	FullName     *string `gorm:"column:full_name" json:"fullName,omitempty"`
	Email        *string `gorm:"column:email" json:"email,omitempty"`
	IsActive     bool    `gorm:"column:is_active" json:"isActive"`
}

// TableName returns the table name for GORM
func (User) TableName() string { return "users" }

// Role groups permissions for assignment to users.
type Role struct {
	ID   int     `gorm:"primaryKey;column:role_id" json:"id"`
	Name *string `gorm:"column:name" json:"name,omitempty"`
}

// TableName returns the table name for GORM
func (Role) TableName() string { return "roles" }

// Permission is a named capability grantable to roles.
type Permission struct {
	ID   int     `gorm:"primaryKey;column:permission_id" json:"id"`
	Name *string `gorm:"column:name" json:"name,omitempty"`
}

// TableName returns the table name for GORM
func (Permission) TableName() string { return "permissions" }

// UserRole links a user to a role. The pair is the primary key, so a
// duplicate assignment is ignored rather than updated.
type UserRole struct {
	UserID int `gorm:"primaryKey;column:user_id" json:"userId"`
	RoleID int `gorm:"primaryKey;column:role_id" json:"roleId"`
}

// TableName returns the table name for GORM
func (UserRole) TableName() string { return "user_roles" }

// RolePermission links a role to a permission. Pair-keyed like UserRole.
type RolePermission struct {
	RoleID       int `gorm:"primaryKey;column:role_id" json:"roleId"`
	PermissionID int `gorm:"primaryKey;column:permission_id" json:"permissionId"`
}

// TableName returns the table name for GORM
func (RolePermission) TableName() string { return "role_permissions" }
