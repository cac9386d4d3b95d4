package configs

import (
	"log"

	"coffeeshop/entity"
)

// SeedDemoUser สร้างบัญชีทดลองครั้งแรก ถ้าตั้ง env ไว้
func SeedDemoUser() error {
	db := DB()
	email := getEnv("SEED_EMAIL", "")
	pass := getEnv("SEED_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding demo user: missing SEED_EMAIL/SEED_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("demo user already exists:", email)
		return nil
	}

	user, err := entity.NewUser(email, pass)
	if err != nil {
		return err
	}
	return db.Create(user).Error
}
