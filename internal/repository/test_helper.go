package repository

import (
	"reflect"
	"testing"

	"github.com/Bigsouley03/cat-payment-app/pkg/pg"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testDB struct {
	*pg.DB
	rawDB *gorm.DB
}

func setupTestDB(t *testing.T) *testDB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&ReceiptEntity{})
	require.NoError(t, err)

	return wrapTestDB(db)
}

// setupTestDBWithSchema builds the table from explicit DDL so tests can use
// the same declared column types as the shipped migration. AutoMigrate maps
// every string field to TEXT regardless, which would hide a type mismatch.
func setupTestDBWithSchema(t *testing.T, ddl string) *testDB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec(ddl).Error)

	return wrapTestDB(db)
}

func wrapTestDB(db *gorm.DB) *testDB {
	pgDB := &pg.DB{}
	pgDBValue := reflect.ValueOf(pgDB).Elem()

	readField := pgDBValue.FieldByName("read")
	writeField := pgDBValue.FieldByName("write")

	readField = reflect.NewAt(readField.Type(), readField.Addr().UnsafePointer()).Elem()
	writeField = reflect.NewAt(writeField.Type(), writeField.Addr().UnsafePointer()).Elem()

	readField.Set(reflect.ValueOf(db))
	writeField.Set(reflect.ValueOf(db))

	return &testDB{
		DB:    pgDB,
		rawDB: db,
	}
}
