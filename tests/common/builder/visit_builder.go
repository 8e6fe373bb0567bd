//go:build unit || e2e

package builder

import (
	"time"

	"clubhub/internal/domain/visit"

	"github.com/google/uuid"
)

type VisitSessionBuilder struct {
	memberID  uuid.UUID
	clubID    uuid.UUID
	method    visit.Method
	checkInAt time.Time
}

func NewVisitSessionBuilder() *VisitSessionBuilder {
	return &VisitSessionBuilder{
		memberID:  uuid.New(),
		clubID:    uuid.New(),
		method:    visit.MethodManual,
		checkInAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *VisitSessionBuilder) WithMemberID(id uuid.UUID) *VisitSessionBuilder {
	b.memberID = id
	return b
}

func (b *VisitSessionBuilder) WithClubID(id uuid.UUID) *VisitSessionBuilder {
	b.clubID = id
	return b
}

func (b *VisitSessionBuilder) WithMethod(m visit.Method) *VisitSessionBuilder {
	b.method = m
	return b
}

func (b *VisitSessionBuilder) WithCheckInAt(t time.Time) *VisitSessionBuilder {
	b.checkInAt = t
	return b
}

func (b *VisitSessionBuilder) BuildDomain() (*visit.Session, error) {
	return visit.NewSession(b.memberID, b.clubID, b.method, b.checkInAt)
}
