package member

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	// RoleMember is a regular club member checking in and borrowing items.
	RoleMember Role = "member"
	// RoleStaff operates the front desk: manual check-ins, admin returns.
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
	// RoleKiosk is an unattended check-in terminal, only allowed to
	// request rotating tokens.
	RoleKiosk Role = "kiosk"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleStaff, RoleAdmin, RoleKiosk:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
