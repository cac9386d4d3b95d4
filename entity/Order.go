package entity

import "time"

// OrderLine เก็บราคา ณ เวลาสั่ง — ราคาเมนูเปลี่ยนทีหลังไม่กระทบยอดเก่า
type OrderLine struct {
	ItemID   int     `json:"itemId"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order ของผู้ใช้ที่ล็อกอิน — ไม่มี orderId, ใช้ userId เป็น key ตอนดึง
// record ไม่แก้หลัง insert; status เป็นค่า derive ตอนอ่านเท่านั้น
type Order struct {
	ID                       uint        `gorm:"primaryKey" json:"-"`
	UserID                   string      `gorm:"index;not null" json:"userId"`
	Items                    []OrderLine `gorm:"serializer:json" json:"items"`
	EstimatedDeliveryMinutes int         `json:"estimatedDeliveryTime"`
	CreatedAt                time.Time   `json:"timestamp"`
}

// GuestOrder สั่งโดยไม่ล็อกอิน — key คือ orderId ที่สุ่มขึ้นมา
type GuestOrder struct {
	ID                       uint        `gorm:"primaryKey" json:"-"`
	OrderID                  string      `gorm:"index;not null" json:"orderId"`
	Items                    []OrderLine `gorm:"serializer:json" json:"items"`
	EstimatedDeliveryMinutes int         `json:"estimatedDeliveryTime"`
	CreatedAt                time.Time   `json:"timestamp"`
}
