package models

import "time"

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// Permission names checked by the admin middleware.
const (
	PermManageAdmins          = "canManageAdmins"
	PermManageBookings        = "canManageBookings"
	PermManageBookingSettings = "canManageBookingSettings"
	PermManagePricing         = "canManagePricing"
	PermViewAnalytics         = "canViewAnalytics"
)

// AdminPermissions are the toggles a super admin grants to regular admins.
type AdminPermissions struct {
	CanManageAdmins          bool `bson:"canManageAdmins" json:"canManageAdmins"`
	CanManageBookings        bool `bson:"canManageBookings" json:"canManageBookings"`
	CanManageBookingSettings bool `bson:"canManageBookingSettings" json:"canManageBookingSettings"`
	CanManagePricing         bool `bson:"canManagePricing" json:"canManagePricing"`
	CanViewAnalytics         bool `bson:"canViewAnalytics" json:"canViewAnalytics"`
}

// DefaultAdminPermissions mirrors what a freshly created admin may do.
func DefaultAdminPermissions() AdminPermissions {
	return AdminPermissions{
		CanManageBookings: true,
		CanManagePricing:  true,
		CanViewAnalytics:  true,
	}
}

// Admin is a back-office account.
type Admin struct {
	ID           string           `bson:"id" json:"id"`
	Username     string           `bson:"username" json:"username"`
	PasswordHash string           `bson:"password_hash" json:"-"`
	Role         string           `bson:"role" json:"role"`
	Permissions  AdminPermissions `bson:"permissions" json:"permissions"`
	CreatedAt    time.Time        `bson:"created_at" json:"created_at"`
	CreatedBy    string           `bson:"created_by" json:"created_by"`
}

// Has reports whether the admin holds the named permission. Super admins hold all.
func (a Admin) Has(permission string) bool {
	if a.Role == RoleSuperAdmin {
		return true
	}
	switch permission {
	case PermManageAdmins:
		return a.Permissions.CanManageAdmins
	case PermManageBookings:
		return a.Permissions.CanManageBookings
	case PermManageBookingSettings:
		return a.Permissions.CanManageBookingSettings
	case PermManagePricing:
		return a.Permissions.CanManagePricing
	case PermViewAnalytics:
		return a.Permissions.CanViewAnalytics
	}
	return false
}

// AdminCreateInput is used by super admins and the CLI to add accounts.
type AdminCreateInput struct {
	Username    string            `json:"username" binding:"required"`
	Password    string            `json:"password" binding:"required"`
	Role        string            `json:"role,omitempty"`
	Permissions *AdminPermissions `json:"permissions,omitempty"`
}

// AdminLoginInput is the login form.
type AdminLoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminAuthResponse is returned on successful login.
type AdminAuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Admin     Admin     `json:"admin"`
}

// CalculatorStats are the pricing calculator usage counters.
type CalculatorStats struct {
	Estimates         int64 `json:"estimates"`
	CompleteEstimates int64 `json:"complete_estimates"`
}
