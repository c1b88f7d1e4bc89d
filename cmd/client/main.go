package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"gitlab.com/noa.peled/contact-manager/internal/config"
	"gitlab.com/noa.peled/contact-manager/internal/model"
)

// A small smoke-test client that drives one full contact lifecycle against a
// running service: create, patch the phone number, list, delete, list again.
//
// Usage example on the command line:
// > PORT=8080 go run main.go
func main() {
	baseURL := fmt.Sprintf("http://localhost:%s", config.ServerPort())

	status, body := sendRequest(http.MethodPost, baseURL+"/contacts", []byte(`{
		"first_name": "John",
		"last_name": "Doe",
		"phone_number": "050-1234567"
	}`))
	fmt.Printf("POST /contacts -> %d %s\n", status, body)
	if status != http.StatusCreated {
		panic("expected status 201 CREATED")
	}
	var created struct {
		Message string `json:"message"`
		Id      int64  `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		fmt.Println("could not unmarshal JSON", err)
		panic(err)
	}

	contactURL := fmt.Sprintf("%s/contacts/%d", baseURL, created.Id)
	status, body = sendRequest(http.MethodPut, contactURL, []byte(`{
		"phone_number": "052-9999999"
	}`))
	fmt.Printf("PUT /contacts/%d -> %d %s\n", created.Id, status, body)
	if status != http.StatusOK {
		panic("expected status 200 OK")
	}

	fmt.Println("contact list after update:")
	printContacts(baseURL)

	status, body = sendRequest(http.MethodDelete, contactURL, nil)
	fmt.Printf("DELETE /contacts/%d -> %d %s\n", created.Id, status, body)
	if status != http.StatusOK {
		panic("expected status 200 OK")
	}

	fmt.Println("contact list after delete:")
	printContacts(baseURL)
}

func printContacts(baseURL string) {
	status, body := sendRequest(http.MethodGet, baseURL+"/contacts", nil)
	if status != http.StatusOK {
		panic("expected status 200 OK")
	}
	var contacts []model.Contact
	if err := json.Unmarshal(body, &contacts); err != nil {
		fmt.Println("could not unmarshal JSON", err)
		panic(err)
	}
	for _, contact := range contacts {
		fmt.Printf("  %d: %s %s %s\n",
			contact.Id, contact.FirstName, contact.LastName, contact.PhoneNumber)
	}
}

func sendRequest(method string, requestURL string, body []byte) (int, []byte) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, requestURL, bodyReader)
	if err != nil {
		fmt.Println("could not create request", err)
		panic(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("error making http request", err)
		panic(err)
	}
	defer res.Body.Close()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		fmt.Println("could not read response body", err)
		panic(err)
	}
	return res.StatusCode, resBody
}
