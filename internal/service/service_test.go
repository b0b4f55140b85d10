package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"munch-pos/internal/core/auth"
	"munch-pos/internal/domain"
	"munch-pos/internal/repo"
)

// 内存 sqlite 跑真实 GORM 栈，免 mock
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Product{}, &domain.Transaction{}))
	return db
}

func newTestCatalog(t *testing.T, db *gorm.DB) *CatalogService {
	t.Helper()
	return NewCatalogService(repo.NewProductRepo(db), nil, 0)
}

func newTestCredentials(t *testing.T, db *gorm.DB) (*CredentialService, *auth.JWTer) {
	t.Helper()
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "munch-pos", TTL: time.Hour}
	return NewCredentialService(repo.NewUserRepo(db), jwter), jwter
}
