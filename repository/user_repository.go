package repository

import (
	"coffeeshop/entity"

	"gorm.io/gorm"
)

// UserRepository รับผิดชอบการคุยกับตาราง users ใน DB เท่านั้น
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// หาผู้ใช้จาก email
func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// โหลด user ตาม ID
func (r *UserRepository) FindByID(id string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// สร้าง user ใหม่
func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

// UpdateCart เขียนทับ cart ทั้ง field (replace ไม่ใช่ patch)
// ต้องอัปเดตผ่าน struct เพื่อให้ json serializer ของ field ทำงาน
// และต้อง Select เอง ไม่งั้น cart ว่างจะโดน gorm มองว่า zero value แล้วไม่เขียน
func (r *UserRepository) UpdateCart(userID string, cart []entity.CartLine) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).
		Select("cart").Updates(&entity.User{Cart: cart}).Error
}
