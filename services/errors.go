package services

import "errors"

// error taxonomy ของระบบ — controller map เป็น HTTP code เอง
var (
	ErrBadInput      = errors.New("missing required fields")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
	ErrItemNotFound  = errors.New("item not on the menu")
	ErrNoOrders      = errors.New("no orders found for user")
	ErrOrderNotFound = errors.New("order not found")

	// ErrStore ครอบ error จาก persistence ทุกชนิด — ไม่ retry, ไม่ panic
	ErrStore = errors.New("store failure")
)
