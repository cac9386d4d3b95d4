package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User คือเอกสารผู้ใช้หนึ่งรายการ — cart กับ order refs เก็บเป็น JSON ทั้งก้อน
// แล้วเขียนทับทั้ง field ตอนอัปเดต (replace ไม่ใช่ patch)
type User struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	Email     string     `gorm:"uniqueIndex;not null" json:"email"`
	Password  string     `json:"-"`
	Cart      []CartLine `gorm:"serializer:json" json:"-"`
	OrderRefs []string   `gorm:"serializer:json" json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"-"`
}

// NewUser ตรวจ field ที่จำเป็นก่อนสร้างเอกสาร
func NewUser(email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}
	return &User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  password,
		Cart:      []CartLine{},
		OrderRefs: []string{},
	}, nil
}
