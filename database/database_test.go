package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "x")
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "students.db?_busy_timeout=5000", sqliteDSN("students.db"))
	assert.Equal(t, "students.db?cache=shared&_busy_timeout=5000", sqliteDSN("students.db?cache=shared"))
	assert.Equal(t, "file:x?mode=memory&cache=shared", sqliteDSN("file:x?mode=memory&cache=shared"))
}

func TestOpenAndMigrateSqlite(t *testing.T) {
	db, err := Open("sqlite", "file:migrate_test?mode=memory&cache=shared")
	if !assert.NoError(t, err) {
		return
	}
	assert.NoError(t, Migrate(db))
	for _, table := range []string{"students", "course_packages", "student_course_packages", "activity_rules", "consumption_records"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
