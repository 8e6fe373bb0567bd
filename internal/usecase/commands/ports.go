package commands

import (
	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type MemberSnapshot struct {
	ID           uuid.UUID
	Email        string
	Role         string
	PasswordHash string
	IsActive     bool
}

// Resource lock key prefixes. Visits serialize per member, lending per
// item, token issuance per club and redemption per token value, so the
// four families never contend with each other.
const (
	memberLockPrefix = "member:"
	itemLockPrefix   = "item:"
	clubLockPrefix   = "club:"
	tokenLockPrefix  = "token:"
)
