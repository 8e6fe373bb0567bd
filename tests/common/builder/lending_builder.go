//go:build unit || e2e

package builder

import (
	"time"

	"clubhub/internal/domain/lending"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	id                uuid.UUID
	clubID            uuid.UUID
	name              string
	status            lending.Status
	maxBorrowDuration time.Duration
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		id:                uuid.New(),
		clubID:            uuid.New(),
		name:              "Table tennis paddle set",
		status:            lending.StatusAvailable,
		maxBorrowDuration: time.Hour,
	}
}

func (b *ItemBuilder) WithID(id uuid.UUID) *ItemBuilder {
	b.id = id
	return b
}

func (b *ItemBuilder) WithStatus(s lending.Status) *ItemBuilder {
	b.status = s
	return b
}

func (b *ItemBuilder) WithMaxBorrowDuration(d time.Duration) *ItemBuilder {
	b.maxBorrowDuration = d
	return b
}

func (b *ItemBuilder) BuildDomain() *lending.Item {
	return lending.ReconstructItem(b.id, b.clubID, b.name, b.status, b.maxBorrowDuration)
}

type LendingSessionBuilder struct {
	item       *lending.Item
	borrowerID uuid.UUID
	isGuest    bool
	borrowedAt time.Time
}

func NewLendingSessionBuilder() *LendingSessionBuilder {
	return &LendingSessionBuilder{
		item:       NewItemBuilder().BuildDomain(),
		borrowerID: uuid.New(),
		borrowedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *LendingSessionBuilder) WithItem(item *lending.Item) *LendingSessionBuilder {
	b.item = item
	return b
}

func (b *LendingSessionBuilder) WithBorrowerID(id uuid.UUID) *LendingSessionBuilder {
	b.borrowerID = id
	return b
}

func (b *LendingSessionBuilder) WithIsGuest(g bool) *LendingSessionBuilder {
	b.isGuest = g
	return b
}

func (b *LendingSessionBuilder) WithBorrowedAt(t time.Time) *LendingSessionBuilder {
	b.borrowedAt = t
	return b
}

func (b *LendingSessionBuilder) BuildDomain() (*lending.Session, error) {
	return lending.NewSession(b.item, b.borrowerID, b.isGuest, b.borrowedAt)
}
