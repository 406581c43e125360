package main

import (
	_ "amsi_crm/docs"
	"amsi_crm/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           AMSI CRM API
// @version         1.0
// @description     CRM and dispatch backend for a security-alarm installer: customers, leads, quotes, invoices, tickets, subscriptions and product stock.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
