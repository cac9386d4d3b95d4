package entity

// CartLine หนึ่งแถวในตะกร้า — invariant: หนึ่ง itemId มีได้แถวเดียว (quantity สะสมแทน)
type CartLine struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantity"`
}
