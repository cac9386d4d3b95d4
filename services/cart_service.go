package services

import (
	"errors"

	"coffeeshop/entity"
	"coffeeshop/pkg/catalog"
	"coffeeshop/repository"

	"gorm.io/gorm"
)

type CartService struct {
	Users *repository.UserRepository
	Menu  *catalog.Catalog
}

func NewCartService(users *repository.UserRepository, menu *catalog.Catalog) *CartService {
	return &CartService{Users: users, Menu: menu}
}

// CartViewLine หนึ่งแถวของ cart ที่ join เมนูแล้ว
type CartViewLine struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Desc      string  `json:"desc"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

type CartView struct {
	Cart       []CartViewLine `json:"cart"`
	TotalPrice float64        `json:"totalPrice"`
}

// Add ใส่สินค้า 1 ชิ้น — มีแถวเดิมก็บวก quantity, ไม่มีก็ต่อท้าย
// เขียน cart กลับทั้งก้อน; read-modify-write ไม่มี lock (ดู DESIGN.md)
func (s *CartService) Add(userID string, itemID int) error {
	user, err := s.Users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return storeErr(err)
	}
	if _, ok := s.Menu.Lookup(itemID); !ok {
		return ErrItemNotFound
	}

	cart := user.Cart
	found := false
	for i := range cart {
		if cart[i].ItemID == itemID {
			cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart = append(cart, entity.CartLine{ItemID: itemID, Quantity: 1})
	}

	if err := s.Users.UpdateCart(userID, cart); err != nil {
		return storeErr(err)
	}
	return nil
}

// Remove ลบทุกแถวของ item นั้นออก — ไม่เช็คว่ามีอยู่ก่อน, ลบของที่ไม่มีก็สำเร็จ
func (s *CartService) Remove(userID string, itemID int) error {
	user, err := s.Users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil // no-op เหมือนเดิม
	}
	if err != nil {
		return storeErr(err)
	}

	kept := make([]entity.CartLine, 0, len(user.Cart))
	for _, line := range user.Cart {
		if line.ItemID != itemID {
			kept = append(kept, line)
		}
	}
	if len(kept) == len(user.Cart) {
		return nil
	}

	if err := s.Users.UpdateCart(userID, kept); err != nil {
		return storeErr(err)
	}
	return nil
}

// Get คืน cart ที่ dedup แล้ว join เมนู พร้อมยอดรวม
// ข้อมูลเก่าที่มี itemId ซ้ำหลายแถวจะถูกยุบเป็นแถวเดียว quantity รวมกัน
// ลำดับคือลำดับที่ item โผล่ครั้งแรก
func (s *CartService) Get(userID string) (*CartView, error) {
	user, err := s.Users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, storeErr(err)
	}

	view := &CartView{Cart: []CartViewLine{}}
	index := make(map[int]int) // itemId -> ตำแหน่งใน view.Cart
	for _, line := range user.Cart {
		if i, ok := index[line.ItemID]; ok {
			view.Cart[i].Quantity += line.Quantity
			continue
		}
		it, ok := s.Menu.Lookup(line.ItemID)
		if !ok {
			continue // item หลุดจากเมนูไปแล้ว ไม่มีราคาให้คิด
		}
		index[line.ItemID] = len(view.Cart)
		view.Cart = append(view.Cart, CartViewLine{
			ID: it.ID, Title: it.Title, Desc: it.Desc, Price: it.Price,
			Quantity: line.Quantity,
		})
	}

	for i := range view.Cart {
		view.Cart[i].LineTotal = view.Cart[i].Price * float64(view.Cart[i].Quantity)
		view.TotalPrice += view.Cart[i].LineTotal
	}
	return view, nil
}
