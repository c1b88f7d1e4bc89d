package main

import (
	"gitlab.com/noa.peled/contact-manager/internal/config"
	"gitlab.com/noa.peled/contact-manager/internal/service"
	"gitlab.com/noa.peled/contact-manager/internal/store"
)

// Usage example on the command line:
// > DB_HOST=localhost DB_USER=root DB_PASSWORD=secret DB_NAME=contacts_db PORT=8080 go run main.go
func main() {
	sqlDB := store.CreateDatabase()
	store.SetupDatabaseWrapper(sqlDB)
	router := service.SetupHttpRouter()
	router.Run(":" + config.ServerPort())
}
