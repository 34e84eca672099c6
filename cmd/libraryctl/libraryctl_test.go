package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/config"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/lending-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testEnv(gdb *gorm.DB) env {
	return env{
		loadConfig: func() (*config.Config, error) {
			return &config.Config{DBDriver: config.DriverSQLite, BorrowLimit: 10}, nil
		},
		openDB: func(*config.Config) (*gorm.DB, error) { return gdb, nil },
	}
}

func run(t *testing.T, e env, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd(e)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMigrate(t *testing.T) {
	out, err := run(t, testEnv(testutil.NewTestDB(t)), "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "migrated sqlite store")
}

func TestSeed_RerunMergesBooks(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	e := testEnv(gdb)

	out, err := run(t, e, "seed", "--books", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 10 books")
	assert.Contains(t, out, "3 new members, 3 new loans")

	_, err = run(t, e, "seed", "--books", "2")
	require.NoError(t, err)

	var books []model.Book
	require.NoError(t, gdb.Find(&books).Error)
	assert.Len(t, books, len(sampleBooks))

	var members, loans int64
	require.NoError(t, gdb.Model(&model.Member{}).Count(&members).Error)
	require.NoError(t, gdb.Model(&model.Loan{}).Count(&loans).Error)
	assert.EqualValues(t, len(sampleMembers), members)
	assert.EqualValues(t, len(sampleMembers), loans)

	// Two seeds added four copies per title; one copy of each of the first
	// three titles is out on loan.
	for _, b := range books {
		want := 4
		if b.Title == "Moby Dick" || b.Title == "Animal Farm" || b.Title == "Pride and Prejudice" {
			want = 3
		}
		assert.Equal(t, want, b.Amount, b.Title)
	}
}

func TestSeed_NoCopiesSkipsLoans(t *testing.T) {
	gdb := testutil.NewTestDB(t)

	out, err := run(t, testEnv(gdb), "seed", "--books", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "0 new loans")
}

func TestSeed_NegativeCopies(t *testing.T) {
	_, err := run(t, testEnv(testutil.NewTestDB(t)), "seed", "--books", "-1")
	require.Error(t, err)
}

func TestReport(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	e := testEnv(gdb)

	out, err := run(t, e, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "no books are borrowed")

	moby := testutil.SeedBook(t, gdb, "Moby Dick", "Herman Melville", 3)
	other := testutil.SeedBook(t, gdb, "Moby Dick", "Someone Else", 1)
	typee := testutil.SeedBook(t, gdb, "Typee", "Herman Melville", 1)
	a := testutil.SeedMember(t, gdb, "Ishmael")
	b := testutil.SeedMember(t, gdb, "Queequeg")
	testutil.SeedLoan(t, gdb, a, moby)
	testutil.SeedLoan(t, gdb, b, other)
	testutil.SeedLoan(t, gdb, a, typee)

	out, err = run(t, e, "report")
	require.NoError(t, err)
	assert.Regexp(t, `Moby Dick\s+2`, out)
	assert.Regexp(t, `Typee\s+1`, out)
}

func TestConnectError(t *testing.T) {
	e := env{
		loadConfig: func() (*config.Config, error) { return nil, errors.New("BORROW_LIMIT must be positive") },
	}

	_, err := run(t, e, "report")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
