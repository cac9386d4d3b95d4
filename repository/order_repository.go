package repository

import (
	"coffeeshop/entity"

	"gorm.io/gorm"
)

// OrderRepository ดูแลสอง collection: orders (มี userId) กับ guest_orders (มี orderId)
type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(o *entity.Order) error {
	return r.DB.Create(o).Error
}

func (r *OrderRepository) CreateGuestOrder(o *entity.GuestOrder) error {
	return r.DB.Create(o).Error
}

// ListByUser คืนทุกออเดอร์ของ user ตามลำดับที่ store คืนมา — ไม่มี pagination
func (r *OrderRepository) ListByUser(userID string) ([]entity.Order, error) {
	var orders []entity.Order
	if err := r.DB.Where("user_id = ?", userID).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) FindGuestByOrderID(orderID string) (*entity.GuestOrder, error) {
	var o entity.GuestOrder
	if err := r.DB.Where("order_id = ?", orderID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}
