package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Item คือเมนูหนึ่งรายการจากไฟล์เมนู
type Item struct {
	ID    int     `json:"id"`
	Title string  `json:"title"`
	Desc  string  `json:"desc"`
	Price float64 `json:"price"`
}

// Catalog เก็บเมนูทั้งหมดแบบ read-only หลัง Load แล้วห้ามแก้
type Catalog struct {
	items []Item
	byID  map[int]Item
}

type menuFile struct {
	Menu []Item `json:"menu"`
}

// Load อ่านเมนูจากไฟล์ JSON ครั้งเดียวตอน start
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	var f menuFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse menu file: %w", err)
	}
	if len(f.Menu) == 0 {
		return nil, fmt.Errorf("menu file %s has no items", path)
	}

	c := &Catalog{items: f.Menu, byID: make(map[int]Item, len(f.Menu))}
	for _, it := range f.Menu {
		if it.Price < 0 {
			return nil, fmt.Errorf("menu item %d has negative price", it.ID)
		}
		c.byID[it.ID] = it
	}
	return c, nil
}

// Lookup หา item ตาม id
func (c *Catalog) Lookup(id int) (Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// Snapshot คืนเมนูทั้งหมดตามลำดับในไฟล์
func (c *Catalog) Snapshot() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}
