package services

import (
	"math/rand"
	"time"
)

// Status ของการจัดส่ง — เดินทางเดียว en_route -> delivered แล้วไม่ย้อนกลับ
type Status string

const (
	StatusEnRoute   Status = "en_route"
	StatusDelivered Status = "delivered"
)

const (
	minDeliveryMinutes = 5
	maxDeliveryMinutes = 20

	guestOrderIDLen     = 9
	guestOrderIDCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// DeriveStatus คำนวณ status จากเวลาที่ผ่านไปล้วน ๆ — ไม่มี state เก็บ, เรียกซ้ำได้
// delivered เมื่อ now >= createdAt + etaMinutes
func DeriveStatus(createdAt time.Time, etaMinutes int, now time.Time) Status {
	deadline := createdAt.Add(time.Duration(etaMinutes) * time.Minute)
	if now.Before(deadline) {
		return StatusEnRoute
	}
	return StatusDelivered
}

// EstimateDeliveryMinutes สุ่ม ETA ต่อออเดอร์ในช่วง [5, 20] นาที — ของ simulate ไม่ใช่ logistics จริง
func EstimateDeliveryMinutes() int {
	return minDeliveryMinutes + rand.Intn(maxDeliveryMinutes-minDeliveryMinutes+1)
}

// NewGuestOrderID สุ่ม id แบบ url-safe ให้ guest order
// ไม่เช็คชนกับของเดิม — โอกาสชนถือว่าน้อยพอ ยอมรับเป็น known risk
func NewGuestOrderID() string {
	b := make([]byte, guestOrderIDLen)
	for i := range b {
		b[i] = guestOrderIDCharset[rand.Intn(len(guestOrderIDCharset))]
	}
	return string(b)
}
