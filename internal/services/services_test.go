package services

import (
	"testing"

	"clubhub/internal/blob"
	"clubhub/internal/domain/user"
	"clubhub/internal/repository"
	"clubhub/pkg/database"
	"clubhub/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testEnv wires services against an in-memory database and a temp
// blob directory.
type testEnv struct {
	db    *gorm.DB
	blobs *blob.Store
	audit *AuditService

	auditRepo repository.AuditLogRepository
	userRepo  repository.UserRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))

	blobs, err := blob.New(t.TempDir())
	require.NoError(t, err)

	auditRepo := repository.NewAuditLogRepository(db)
	return &testEnv{
		db:        db,
		blobs:     blobs,
		audit:     NewAuditService(auditRepo, logger.Nop(), 20),
		auditRepo: auditRepo,
		userRepo:  repository.NewUserRepository(db),
	}
}

func adminPrincipal() user.Principal {
	// IDs sit far above anything sqlite auto-increment hands out, so a
	// synthetic principal never collides with a row created in a test.
	return user.Principal{ID: 9001, Name: "Admin", Username: "admin", Role: user.RoleAdmin}
}

func memberPrincipal() user.Principal {
	return user.Principal{ID: 9002, Name: "Member", Username: "member", Role: user.RoleUser}
}

func testMeta() RequestMeta {
	return RequestMeta{IPAddress: "127.0.0.1", UserAgent: "test-agent"}
}
