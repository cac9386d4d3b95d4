package utils

import "github.com/gin-gonic/gin"

// CurrentUserID อ่าน userId ที่ middleware ฝากไว้ใน context
func CurrentUserID(c *gin.Context) string {
	if v, ok := c.Get("userId"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
