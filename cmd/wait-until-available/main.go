package main

import (
	"fmt"
	"net/http"
	"time"

	"gitlab.com/noa.peled/contact-manager/internal/config"
)

// Polls the service root until it answers, for use in container startup
// scripts that must wait for the API to come up.
func main() {
	requestURL := fmt.Sprintf("http://localhost:%s/", config.ServerPort())
	totalWaitTime := 0
	for {
		res, err := http.Get(requestURL)
		if err == nil {
			if res.StatusCode == http.StatusOK {
				fmt.Println(res)
				break
			}
			fmt.Println(res)
		} else {
			fmt.Println(err)
		}
		totalWaitTime += 5
		fmt.Printf("Waiting %d seconds", totalWaitTime)
		fmt.Println()
		time.Sleep(5 * time.Second)
	}
}
