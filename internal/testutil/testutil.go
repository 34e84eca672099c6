package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/db"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormLogger "gorm.io/gorm/logger"
)

// NewTestDB returns a migrated in-memory sqlite database private to t. It
// has a single connection, so concurrent transactions queue up.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared&_foreign_keys=on"

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return gdb
}

// NewBrokenDB returns a database without any tables, so every query fails.
func NewBrokenDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:errdb_" + uuid.New().String() + "?mode=memory&cache=shared"

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to error test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return gdb
}

func SeedBook(t *testing.T, gdb *gorm.DB, title, author string, amount int) model.Book {
	t.Helper()

	book := model.Book{
		Title:  title,
		Author: author,
		Amount: amount,
	}

	if err := gdb.Omit(clause.Associations).Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}

	return book
}

func SeedMember(t *testing.T, gdb *gorm.DB, name string) model.Member {
	t.Helper()

	member := model.Member{
		Name: name,
	}

	if err := gdb.Omit(clause.Associations).Create(&member).Error; err != nil {
		t.Fatalf("failed to seed member %q: %v", name, err)
	}

	return member
}

// SeedLoan records a hold and takes one copy, the way a borrow would.
func SeedLoan(t *testing.T, gdb *gorm.DB, member model.Member, book model.Book) model.Loan {
	t.Helper()

	loan := model.Loan{
		MemberID: member.ID,
		BookID:   book.ID,
	}

	err := gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&loan).Error; err != nil {
			return err
		}
		return tx.Model(&model.Book{}).
			Where("id = ?", book.ID).
			Update("amount", gorm.Expr("amount - 1")).Error
	})
	if err != nil {
		t.Fatalf("failed to seed loan %s -> %s: %v", member.Name, book.Title, err)
	}

	return loan
}

func ReloadBook(t *testing.T, gdb *gorm.DB, id uuid.UUID) model.Book {
	t.Helper()

	var book model.Book
	if err := gdb.Preload("Loans.Member").First(&book, "id = ?", id).Error; err != nil {
		t.Fatalf("failed to reload book %s: %v", id, err)
	}
	return book
}

func ReloadMember(t *testing.T, gdb *gorm.DB, id uuid.UUID) model.Member {
	t.Helper()

	var member model.Member
	if err := gdb.Preload("Loans.Book").First(&member, "id = ?", id).Error; err != nil {
		t.Fatalf("failed to reload member %s: %v", id, err)
	}
	return member
}
