package services

import (
	"errors"
	"time"

	"coffeeshop/entity"
	"coffeeshop/pkg/catalog"
	"coffeeshop/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	Repo *repository.OrderRepository
	Menu *catalog.Catalog
}

func NewOrderService(repo *repository.OrderRepository, menu *catalog.Catalog) *OrderService {
	return &OrderService{Repo: repo, Menu: menu}
}

// ----- DTOs from Controller -----

type OrderLineIn struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantity"`
}

type PlaceOrderIn struct {
	UserID string        `json:"userId"`
	Items  []OrderLineIn `json:"items"`
}

type PlaceOrderOut struct {
	OrderID               string    `json:"orderId,omitempty"`
	Status                Status    `json:"status"`
	EstimatedDeliveryTime int       `json:"estimatedDeliveryTime"`
	Timestamp             time.Time `json:"timestamp"`
}

// OrderView คือออเดอร์ที่ derive status ใหม่แล้ว พร้อมยอดรวม
type OrderView struct {
	OrderID               string             `json:"orderId,omitempty"`
	UserID                string             `json:"userId,omitempty"`
	Items                 []entity.OrderLine `json:"items"`
	Status                Status             `json:"status"`
	EstimatedDeliveryTime int                `json:"estimatedDeliveryTime"`
	Timestamp             time.Time          `json:"timestamp"`
	TotalPrice            float64            `json:"totalPrice"`
}

// Place สร้างออเดอร์ — มี userId ลงตาราง orders, ไม่มีก็เป็น guest order
// ราคาถูก snapshot จากเมนู ณ ตอนสั่ง ไม่อ่านซ้ำทีหลัง
func (s *OrderService) Place(in *PlaceOrderIn) (*PlaceOrderOut, error) {
	if len(in.Items) == 0 {
		return nil, ErrBadInput
	}

	lines := make([]entity.OrderLine, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return nil, ErrBadInput
		}
		m, ok := s.Menu.Lookup(it.ItemID)
		if !ok {
			return nil, ErrItemNotFound
		}
		lines = append(lines, entity.OrderLine{
			ItemID: it.ItemID, Quantity: it.Quantity, Price: m.Price,
		})
	}

	eta := EstimateDeliveryMinutes()

	if in.UserID != "" {
		o := &entity.Order{UserID: in.UserID, Items: lines, EstimatedDeliveryMinutes: eta}
		if err := s.Repo.CreateOrder(o); err != nil {
			return nil, storeErr(err)
		}
		return &PlaceOrderOut{
			Status:                DeriveStatus(o.CreatedAt, eta, time.Now()),
			EstimatedDeliveryTime: eta,
			Timestamp:             o.CreatedAt,
		}, nil
	}

	o := &entity.GuestOrder{OrderID: NewGuestOrderID(), Items: lines, EstimatedDeliveryMinutes: eta}
	if err := s.Repo.CreateGuestOrder(o); err != nil {
		return nil, storeErr(err)
	}
	return &PlaceOrderOut{
		OrderID:               o.OrderID,
		Status:                DeriveStatus(o.CreatedAt, eta, time.Now()),
		EstimatedDeliveryTime: eta,
		Timestamp:             o.CreatedAt,
	}, nil
}

// ListForUser ดึงทุกออเดอร์ของ user แล้ว derive status สด ๆ ทุกใบ
// user ไม่มีออเดอร์เลยคือ ErrNoOrders — เป็น empty result ไม่ใช่ store พัง
func (s *OrderService) ListForUser(userID string) ([]OrderView, error) {
	orders, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, storeErr(err)
	}
	if len(orders) == 0 {
		return nil, ErrNoOrders
	}

	now := time.Now()
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, OrderView{
			UserID:                o.UserID,
			Items:                 o.Items,
			Status:                DeriveStatus(o.CreatedAt, o.EstimatedDeliveryMinutes, now),
			EstimatedDeliveryTime: o.EstimatedDeliveryMinutes,
			Timestamp:             o.CreatedAt,
			TotalPrice:            orderTotal(o.Items),
		})
	}
	return views, nil
}

// GuestDetail ดู guest order ใบเดียวจาก orderId ที่ได้ตอนสั่ง
func (s *OrderService) GuestDetail(orderID string) (*OrderView, error) {
	o, err := s.Repo.FindGuestByOrderID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &OrderView{
		OrderID:               o.OrderID,
		Items:                 o.Items,
		Status:                DeriveStatus(o.CreatedAt, o.EstimatedDeliveryMinutes, time.Now()),
		EstimatedDeliveryTime: o.EstimatedDeliveryMinutes,
		Timestamp:             o.CreatedAt,
		TotalPrice:            orderTotal(o.Items),
	}, nil
}

func orderTotal(items []entity.OrderLine) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
