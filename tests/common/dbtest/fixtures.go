//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestMember(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	memberID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO members (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		memberID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM members WHERE email = $1", email).Scan(&memberID)
	}

	return memberID
}

func CreateTestClub(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	clubID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO clubs (id, name) VALUES ($1, $2)", clubID, name)
	require.NoError(t, err)

	return clubID
}

func CreateTestItem(t *testing.T, db DBLike, clubID uuid.UUID, name string, maxBorrow time.Duration) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO items (id, club_id, name, status, max_borrow_seconds) VALUES ($1, $2, $3, 'available', $4)",
		itemID, clubID, name, int64(maxBorrow/time.Second))
	require.NoError(t, err)

	return itemID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO clubs (id, name)
		SELECT gen_random_uuid(), 'Default Club'
		WHERE NOT EXISTS (SELECT 1 FROM clubs WHERE name = 'Default Club');
	`)
	return err
}

func DefaultClubID(pool *pgxpool.Pool) (uuid.UUID, error) {
	var clubID uuid.UUID
	err := pool.QueryRow(context.Background(), "SELECT id FROM clubs WHERE name = 'Default Club' LIMIT 1").Scan(&clubID)
	return clubID, err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
