package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/droidablebee/person-service/internal/http/response"
	"github.com/droidablebee/person-service/internal/pkg/logger"
	"github.com/droidablebee/person-service/internal/pkg/pagination"
	"github.com/droidablebee/person-service/internal/services"
	"github.com/droidablebee/person-service/internal/types"
)

const (
	HeaderUserID = "userId"
	HeaderToken  = "token"
)

type PersonHandler struct {
	log             *logger.Logger
	personService   services.PersonService
	defaultPageSize int
	maxPageSize     int
}

func NewPersonHandler(log *logger.Logger, personService services.PersonService, defaultPageSize, maxPageSize int) *PersonHandler {
	return &PersonHandler{
		log:             log.With("handler", "PersonHandler"),
		personService:   personService,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// List serves GET /v1/persons: a page of persons with their addresses,
// wrapped in the page envelope.
func (h *PersonHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "0"))
	pageable := pagination.Normalize(page, size, h.defaultPageSize, h.maxPageSize)

	persons, err := h.personService.FindAll(c.Request.Context(), pageable)
	if err != nil {
		h.log.Error("List failed", "error", err)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, persons)
}

// Get serves GET /v1/person/:id. A missing row is a plain 404 with an
// empty body, not an error envelope.
func (h *PersonHandler) Get(c *gin.Context) {
	id, ok := parsePersonID(c)
	if !ok {
		return
	}
	person, err := h.personService.FindOne(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Get failed", "error", err, "id", id)
		response.RespondFromError(c, err)
		return
	}
	if person == nil {
		c.Status(http.StatusNotFound)
		return
	}
	response.RespondOK(c, person)
}

// Create serves POST /v1/person: create-or-replace of the full payload.
// The body may be JSON or XML; the userId header is required, the token
// header is optional and currently informational only.
func (h *PersonHandler) Create(c *gin.Context) {
	userID, ok := requireCallerHeaders(c)
	if !ok {
		return
	}

	var person types.Person
	if err := c.ShouldBind(&person); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := validatePerson(&person); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}

	saved, err := h.personService.Save(c.Request.Context(), &person)
	if err != nil {
		h.log.Error("Create failed", "error", err, "caller", userID)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, saved)
}

// Update serves PUT /v1/person/:id with merge semantics: only first,
// last, middle name and the wholesale-replaced addresses collection are
// taken from the body. Everything else on the stored record, date of
// birth included, stays untouched.
func (h *PersonHandler) Update(c *gin.Context) {
	id, ok := parsePersonID(c)
	if !ok {
		return
	}
	userID, ok := requireCallerHeaders(c)
	if !ok {
		return
	}

	var person types.Person
	if err := c.ShouldBind(&person); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := validatePerson(&person); err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_error", err)
		return
	}

	found, err := h.personService.FindOne(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Update lookup failed", "error", err, "id", id)
		response.RespondFromError(c, err)
		return
	}
	if found == nil {
		c.Status(http.StatusNotFound)
		return
	}

	found.FirstName = person.FirstName
	found.LastName = person.LastName
	found.MiddleName = person.MiddleName
	found.Addresses = person.Addresses

	updated, err := h.personService.Update(c.Request.Context(), found)
	if err != nil {
		h.log.Error("Update failed", "error", err, "id", id, "caller", userID)
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, updated)
}

func parsePersonID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", errors.New("id must be a positive integer"))
		return 0, false
	}
	return id, true
}

func requireCallerHeaders(c *gin.Context) (string, bool) {
	userID := c.GetHeader(HeaderUserID)
	if userID == "" {
		response.RespondError(c, http.StatusBadRequest, "missing_user_id", errors.New("userId header is required"))
		return "", false
	}
	// token header is optional and defaults to empty; accepted, not acted on
	_ = c.GetHeader(HeaderToken)
	return userID, true
}

func validatePerson(person *types.Person) error {
	if person.FirstName == "" {
		return errors.New("firstName is required")
	}
	if person.LastName == "" {
		return errors.New("lastName is required")
	}
	return nil
}
