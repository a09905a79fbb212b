package db

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
)

func TestOpenGormWithDialector_MockedMySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer sqlDB.Close()
	mock.ExpectPing()

	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	})
	gdb, err := OpenGormWithDialector(dial)
	if err != nil {
		t.Fatalf("OpenGormWithDialector: %v", err)
	}
	if gdb == nil {
		t.Fatal("nil gorm.DB")
	}
}

func TestOpenGormWithDialector_ConfiguresPool(t *testing.T) {
	gdb, err := OpenGormWithDialector(sqlite.Open("file::memory:"))
	if err != nil {
		t.Fatalf("OpenGormWithDialector: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("DB(): %v", err)
	}
	if got := sqlDB.Stats().MaxOpenConnections; got != 30 {
		t.Fatalf("max open conns = %d, want 30", got)
	}
}

func TestMigrate_CreatesTables(t *testing.T) {
	gdb, err := OpenGormWithDialector(sqlite.Open("file::memory:"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := Migrate(gdb); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	for _, table := range []string{"users", "travel_requests", "trip_details", "comments"} {
		if !gdb.Migrator().HasTable(table) {
			t.Fatalf("table %s missing", table)
		}
	}
}
