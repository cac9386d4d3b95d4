package main

import (
	"fmt"
	"log"

	"coffeeshop/configs"
	"coffeeshop/middlewares"
	"coffeeshop/pkg/catalog"
	"coffeeshop/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedDemoUser(); err != nil {
		log.Fatalf("seed demo user failed: %v", err)
	}

	// เมนูโหลดครั้งเดียว หลังจากนี้ read-only
	menu, err := catalog.Load(cfg.MenuFile)
	if err != nil {
		log.Fatalf("load menu failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, menu)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
