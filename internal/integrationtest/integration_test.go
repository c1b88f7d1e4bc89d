// Package integrationtest exercises the service end to end against a real
// database. The connection parameters are taken from the environment, same
// as for the service itself; run these tests only with a database available.
package integrationtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"gitlab.com/noa.peled/contact-manager/internal/model"
	"gitlab.com/noa.peled/contact-manager/internal/service"
	"gitlab.com/noa.peled/contact-manager/internal/store"
)

// setupRouter connects to the database and returns a gin engine against which requests can be
// executed.
func setupRouter() *gin.Engine {
	sqlDB := store.CreateDatabase()
	store.SetupDatabaseWrapper(sqlDB)
	gin.SetMode(gin.ReleaseMode)
	return service.SetupHttpRouter()
}

// performRequest executes the HTTP request with the specified arguments and returns the response.
func performRequest(router *gin.Engine, method string, url string, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(method, url, strings.NewReader(body))
	router.ServeHTTP(recorder, request)
	return recorder
}

// uniquePhone returns a phone number that no earlier test run has used, so that the unique
// constraint on the contacts table does not make tests interfere with each other.
func uniquePhone() string {
	return fmt.Sprintf("+%d", time.Now().UnixNano())
}

// listContacts fetches all contacts and returns them.
func listContacts(t *testing.T, router *gin.Engine) []model.Contact {
	recorder := performRequest(router, "GET", "/contacts", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	var contacts []model.Contact
	err := json.Unmarshal(recorder.Body.Bytes(), &contacts)
	assert.NoError(t, err)
	return contacts
}

// findContact returns the contact with the given id from a list, or nil.
func findContact(contacts []model.Contact, id int64) *model.Contact {
	for i := range contacts {
		if contacts[i].Id == id {
			return &contacts[i]
		}
	}
	return nil
}

// createContact creates a contact and returns its newly assigned id.
func createContact(t *testing.T, router *gin.Engine, first, last, phone string) int64 {
	body := fmt.Sprintf(`{"first_name": %q, "last_name": %q, "phone_number": %q}`,
		first, last, phone)
	recorder := performRequest(router, "POST", "/contacts", body)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	var created struct {
		Message string `json:"message"`
		Id      int64  `json:"id"`
	}
	err := json.Unmarshal(recorder.Body.Bytes(), &created)
	assert.NoError(t, err)
	assert.Greater(t, created.Id, int64(0))
	return created.Id
}

// TestContactHappyPath creates a contact, patches its phone number, verifies the list contents,
// deletes it and verifies it is gone.
func TestContactHappyPath(t *testing.T) {
	router := setupRouter()
	phone := uniquePhone()
	newPhone := uniquePhone()

	id := createContact(t, router, "John", "Doe", phone)
	contactURL := fmt.Sprintf("/contacts/%d", id)

	// patch only the phone number
	putRecorder := performRequest(router, "PUT", contactURL,
		fmt.Sprintf(`{"phone_number": %q}`, newPhone))
	assert.Equal(t, http.StatusOK, putRecorder.Code)

	// the other fields must have kept their values
	contact := findContact(listContacts(t, router), id)
	if assert.NotNil(t, contact) {
		assert.Equal(t, "John", contact.FirstName)
		assert.Equal(t, "Doe", contact.LastName)
		assert.Equal(t, newPhone, contact.PhoneNumber)
	}

	deleteRecorder := performRequest(router, "DELETE", contactURL, "")
	assert.Equal(t, http.StatusOK, deleteRecorder.Code)
	assert.Nil(t, findContact(listContacts(t, router), id))

	// deleting the same contact again must fail
	deleteAgainRecorder := performRequest(router, "DELETE", contactURL, "")
	assert.Equal(t, http.StatusNotFound, deleteAgainRecorder.Code)
}

// TestDuplicatePhoneNumber creates two contacts with the same phone number. The second creation
// must fail and the table must contain exactly one contact with that number.
func TestDuplicatePhoneNumber(t *testing.T) {
	router := setupRouter()
	phone := uniquePhone()

	id := createContact(t, router, "John", "Doe", phone)

	recorder := performRequest(router, "POST", "/contacts",
		fmt.Sprintf(`{"first_name": "Jane", "last_name": "Doe", "phone_number": %q}`, phone))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	count := 0
	for _, contact := range listContacts(t, router) {
		if contact.PhoneNumber == phone {
			count++
		}
	}
	assert.Equal(t, 1, count)

	// clean up
	performRequest(router, "DELETE", fmt.Sprintf("/contacts/%d", id), "")
}

// TestUpdateWithoutFields sends a PUT request with an empty JSON object. It expects the NOT
// FOUND status code and that the contact keeps all its values.
func TestUpdateWithoutFields(t *testing.T) {
	router := setupRouter()
	phone := uniquePhone()

	id := createContact(t, router, "John", "Doe", phone)
	contactURL := fmt.Sprintf("/contacts/%d", id)

	recorder := performRequest(router, "PUT", contactURL, "{}")
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	contact := findContact(listContacts(t, router), id)
	if assert.NotNil(t, contact) {
		assert.Equal(t, "John", contact.FirstName)
		assert.Equal(t, "Doe", contact.LastName)
		assert.Equal(t, phone, contact.PhoneNumber)
	}

	// clean up
	performRequest(router, "DELETE", contactURL, "")
}

// TestUpdateNonexistent sends a PUT request for an id that does not exist. It expects the NOT
// FOUND status code.
func TestUpdateNonexistent(t *testing.T) {
	router := setupRouter()

	recorder := performRequest(router, "PUT", "/contacts/999999999",
		`{"first_name": "Nobody"}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
