package main

import (
	_ "flota_ot/docs"
	"flota_ot/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Flota OT API
// @version         1.0
// @description     Work-order management front end for the fleet maintenance backend.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	routes.Run()
}
