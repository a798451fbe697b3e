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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plaintext password for every seeded test user.
const TestPassword = "password123"

var (
	passwordHashOnce sync.Once
	passwordHash     string
)

// hashed once per process; MinCost keeps test setup fast
func testPasswordHash() string {
	passwordHashOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		passwordHash = string(h)
	})
	return passwordHash
}

func CreateTestUser(t *testing.T, db DBLike, loginID, role string) int64 {
	t.Helper()

	ctx := context.Background()
	var userID int64
	err := db.QueryRow(ctx, `
		INSERT INTO users (login_id, email, password_hash, role)
		VALUES ($1, $1 || '@example.com', $2, $3)
		ON CONFLICT (login_id) DO UPDATE SET role = EXCLUDED.role
		RETURNING id`,
		loginID, testPasswordHash(), role).Scan(&userID)
	require.NoError(t, err)

	return userID
}

func CreateTestHotel(t *testing.T, db DBLike, name, region string) int64 {
	t.Helper()

	ctx := context.Background()
	var hotelID int64
	err := db.QueryRow(ctx,
		"INSERT INTO hotels (name, region) VALUES ($1, $2) RETURNING id",
		name, region).Scan(&hotelID)
	require.NoError(t, err)

	return hotelID
}

func CreateTestRoomType(t *testing.T, db DBLike, hotelID int64, name string) int64 {
	t.Helper()

	ctx := context.Background()
	var roomTypeID int64
	err := db.QueryRow(ctx,
		"INSERT INTO room_types (hotel_id, name) VALUES ($1, $2) RETURNING id",
		hotelID, name).Scan(&roomTypeID)
	require.NoError(t, err)

	return roomTypeID
}

func CreateBookingDay(t *testing.T, db DBLike, hotelID, roomTypeID int64, stayDate time.Time, allotment, price int) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO booking_day (hotel_id, room_type_id, stay_date, allotment, booked, price, status)
		VALUES ($1, $2, $3, $4, 0, $5, 'OPEN')
		ON CONFLICT (hotel_id, room_type_id, stay_date) DO NOTHING`,
		hotelID, roomTypeID, stayDate, allotment, price)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (login_id, email, password_hash, role) VALUES
		    ('testuser', 'testuser@example.com', $1, 'USER'),
		    ('testadmin', 'testadmin@example.com', $1, 'ADMIN')
		ON CONFLICT (login_id) DO NOTHING;
	`, testPasswordHash())
	if err != nil {
		return err
	}

	return nil
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
