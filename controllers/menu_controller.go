package controllers

import (
	"strconv"

	"coffeeshop/pkg/catalog"
	"coffeeshop/pkg/resp"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Menu *catalog.Catalog }

func NewMenuController(menu *catalog.Catalog) *MenuController { return &MenuController{Menu: menu} }

// GET /menu — เมนูทั้งหมดตามลำดับในไฟล์
func (h *MenuController) List(c *gin.Context) {
	resp.OK(c, h.Menu.Snapshot())
}

// GET /menu/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "id must be a number"); return
	}
	it, ok := h.Menu.Lookup(id)
	if !ok {
		resp.NotFound(c, "item not on the menu"); return
	}
	resp.OK(c, it)
}
