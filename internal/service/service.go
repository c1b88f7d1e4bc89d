// Package service is the HTTP layer of the contact manager. Handlers
// validate the request shape, call exactly one store operation, and map its
// outcome to a status code with a JSON message body.
package service

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"gitlab.com/noa.peled/contact-manager/internal/model"
	"gitlab.com/noa.peled/contact-manager/internal/store"
)

// SetupHttpRouter initializes the REST API router and registers all endpoints.
func SetupHttpRouter() *gin.Engine {
	var router *gin.Engine
	if strings.EqualFold(os.Getenv("GIN_LOGGING"), "off") {
		fmt.Println("Turning off HTTP request logging.")
		router = gin.New()
	} else {
		router = gin.Default()
	}
	router.GET("/", describeService)
	router.GET("/contacts", findAllContacts)
	router.POST("/contacts", createContact)
	router.PUT("/contacts/:id", updateContactByID)
	router.DELETE("/contacts/:id", deleteContactByID)
	return router
}

// describeService responds with a short description of the API.
//
// Example REST API call:
//
//	> curl "http://localhost:8080/"
func describeService(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, gin.H{
		"message": "Welcome to Contact Manager API",
		"endpoints": gin.H{
			"GET /contacts":         "Get all contacts",
			"POST /contacts":        "Create a new contact",
			"PUT /contacts/{id}":    "Update a contact",
			"DELETE /contacts/{id}": "Delete a contact",
		},
	})
}

// findAllContacts responds with the list of all contacts as JSON. An empty
// table yields an empty array, never an error.
//
// Example REST API call:
//
//	> curl "http://localhost:8080/contacts"
func findAllContacts(c *gin.Context) {
	contacts, err := store.AllContacts()
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"message": "error retrieving contacts"})
		return
	}
	c.IndentedJSON(http.StatusOK, contacts)
}

// createContact inserts the contact specified in the request's JSON into the
// database. All three fields are required; a body missing one of them is
// rejected before any data access. On success it responds with the id that
// the database assigned to the new contact.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts --request "POST" --include --header "Content-Type: application/json" --data '{"first_name": "John", "last_name": "Doe", "phone_number": "050-1234567"}'
func createContact(c *gin.Context) {
	var newContact model.ContactCreate
	if err := c.BindJSON(&newContact); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	id, err := store.CreateContact(newContact)
	if err != nil {
		// Creation failures are reported uniformly; the most likely cause
		// is a duplicate phone number.
		c.AbortWithStatusJSON(http.StatusBadRequest,
			gin.H{"message": "failed to create contact, phone number might already exist"})
		return
	}
	c.IndentedJSON(http.StatusCreated, gin.H{"message": "contact created successfully", "id": id})
}

// updateContactByID updates the contact whose ID value matches the id
// parameter of the request URL, changing the values specified in the JSON
// (and only those).
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/56 --request "PUT" --include --header "Content-Type: application/json" --data '{"phone_number": "052-9999999"}'
func updateContactByID(c *gin.Context) {
	id, errConv := strconv.ParseInt(c.Param("id"), 10, 64)
	if errConv != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "invalid id parameter"})
		return
	}

	var submitted model.ContactUpdate
	if errBind := c.BindJSON(&submitted); errBind != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	err := store.UpdateContact(id, submitted)
	switch {
	case errors.Is(err, store.ErrNoFields), errors.Is(err, store.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
	case err != nil:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "error updating contact"})
	default:
		c.IndentedJSON(http.StatusOK, gin.H{"message": "contact updated successfully"})
	}
}

// deleteContactByID deletes the contact whose ID value matches the id
// parameter of the request URL from the database.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/56 --request "DELETE"
func deleteContactByID(c *gin.Context) {
	id, errConv := strconv.ParseInt(c.Param("id"), 10, 64)
	if errConv != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "invalid id parameter"})
		return
	}

	err := store.DeleteContact(id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
	case err != nil:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "error deleting contact"})
	default:
		c.IndentedJSON(http.StatusOK, gin.H{"message": "contact deleted successfully"})
	}
}
