package middleware

import (
	"testing"

	"malifaux-tracker-server/internal/service"
	"malifaux-tracker-server/internal/testutils"

	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb := testutils.SetupDB(t)
	service.ClearCache()
	return gdb
}
