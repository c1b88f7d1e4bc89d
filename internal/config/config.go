// Package config reads the service configuration from environment variables.
// A .env file is loaded into the process environment first if one exists;
// every variable has a default so the service starts without any of them set.
package config

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// DBHost returns the hostname of the MySQL server.
func DBHost() string {
	return getEnv("DB_HOST", "db")
}

// DBPort returns the port of the MySQL server.
func DBPort() string {
	return getEnv("DB_PORT", "3306")
}

// DBUser returns the user for the MySQL connection.
func DBUser() string {
	return getEnv("DB_USER", "root")
}

// DBPassword returns the password for the MySQL connection.
func DBPassword() string {
	return getEnv("DB_PASSWORD", "rootpassword")
}

// DBName returns the name of the database holding the contacts table.
func DBName() string {
	return getEnv("DB_NAME", "contacts_db")
}

// ServerPort returns the port the HTTP server listens on.
func ServerPort() string {
	return getEnv("PORT", "8080")
}

// getEnv reads an environment variable, falling back to a default if the
// variable is unset or empty.
func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
