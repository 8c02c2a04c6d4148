package main

import (
	_ "cotizador_service/docs"
	"cotizador_service/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Cotizador Service API
// @version         1.0
// @description     Quotation lifecycle service (generate, adjust, approve) backed by DynamoDB, S3 and EventBridge.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
