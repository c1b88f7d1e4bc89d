package main

import (
	"bufio"
	"flag"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"

	"gitlab.com/noa.peled/contact-manager/internal/store"
)

// Usage example on the command line:
// > DB_HOST=localhost DB_USER=root DB_PASSWORD=secret DB_NAME=contacts_db go run main.go -file=../../scripts/database.sql
func main() {
	sqlDB := store.CreateDatabase()
	db := sqlx.NewDb(sqlDB, "mysql")
	defer db.Close()

	filePtr := flag.String("file", "database.sql", "the sql file to execute")
	flag.Parse()

	readFile, err := os.Open(*filePtr)
	if err != nil {
		panic(err)
	}
	defer readFile.Close()

	fileScanner := bufio.NewScanner(readFile)
	fileScanner.Split(bufio.ScanLines)
	builder := strings.Builder{}
	for fileScanner.Scan() {
		line := fileScanner.Text()
		builder.WriteString(line)
		builder.WriteString(" ")
		if strings.Contains(line, ";") {
			db.MustExec(builder.String())
			builder = strings.Builder{}
		}
	}
}
