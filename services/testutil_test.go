package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"coffeeshop/entity"
	"coffeeshop/pkg/catalog"
	"coffeeshop/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// sqlite in-memory แยก DB ต่อเทสต์ด้วยชื่อ DSN ไม่ซ้ำกัน
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Order{}, &entity.GuestOrder{}))
	return db
}

func newTestCatalog(t *testing.T, items ...catalog.Item) *catalog.Catalog {
	t.Helper()
	if len(items) == 0 {
		items = []catalog.Item{
			{ID: 1, Title: "Bryggkaffe", Desc: "Bryggd på månadens bönor.", Price: 39},
			{ID: 2, Title: "Caffè Doppio", Desc: "Bryggd på månadens bönor.", Price: 49},
			{ID: 5, Title: "Kaffe Latte", Desc: "Bryggd på månadens bönor.", Price: 54},
		}
	}
	raw, err := json.Marshal(map[string]any{"menu": items})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "menu.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	c, err := catalog.Load(path)
	require.NoError(t, err)
	return c
}

func newTestUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	user, err := entity.NewUser(email, "hemligt123")
	require.NoError(t, err)
	require.NoError(t, repository.NewUserRepository(db).Create(user))
	return user
}
