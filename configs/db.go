package configs

import (
	"coffeeshop/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	// สาม collection: users, orders, guest_orders
	db.AutoMigrate(
		&entity.User{},
		&entity.Order{},
		&entity.GuestOrder{},
	)
}
