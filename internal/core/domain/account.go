package domain

import (
	"errors"
	"strconv"
)

// Role classifies an account's authorization level.
type Role string

const (
	RoleStandard   Role = "standard"
	RolePrivileged Role = "admin"
)

// AdminOwnerID is the fixed owner key used by the synthesized privileged
// account. It never appears in the accounts collection.
const AdminOwnerID = "admin"

var ErrDuplicateEmail = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountNotFound = errors.New("account not found")
var ErrUnauthenticated = errors.New("not authenticated")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidInput = errors.New("invalid input")

// Account models a registered shopper. Passwords are stored as supplied;
// hashing is explicitly out of scope for this store.
type Account struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// OwnerID returns the cart owner key for this account: the decimal account
// id, or the admin sentinel for the synthesized privileged account.
func (a Account) OwnerID() string {
	if a.Role == RolePrivileged {
		return AdminOwnerID
	}
	return strconv.FormatInt(a.ID, 10)
}
