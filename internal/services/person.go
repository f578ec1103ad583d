package services

import (
	"context"
	"net/http"

	"gorm.io/gorm"

	"github.com/droidablebee/person-service/internal/pkg/apierr"
	"github.com/droidablebee/person-service/internal/pkg/logger"
	"github.com/droidablebee/person-service/internal/pkg/pagination"
	"github.com/droidablebee/person-service/internal/repos"
	"github.com/droidablebee/person-service/internal/types"
)

// PersonService is a thin transactional facade over the person repository.
// Reads pass straight through; writes run inside a single transaction so
// the person row and its address rows commit or roll back together. The
// merge policy for partial updates lives in the endpoint layer, not here:
// this service persists exactly the Person it is handed.
type PersonService interface {
	FindAll(ctx context.Context, pageable pagination.Pageable) (*pagination.Page[*types.Person], error)
	FindOne(ctx context.Context, id int64) (*types.Person, error)
	Save(ctx context.Context, person *types.Person) (*types.Person, error)
	Update(ctx context.Context, person *types.Person) (*types.Person, error)
}

type personService struct {
	db         *gorm.DB
	log        *logger.Logger
	personRepo repos.PersonRepo
}

func NewPersonService(db *gorm.DB, log *logger.Logger, personRepo repos.PersonRepo) PersonService {
	serviceLog := log.With("service", "PersonService")
	return &personService{db: db, log: serviceLog, personRepo: personRepo}
}

func (ps *personService) FindAll(ctx context.Context, pageable pagination.Pageable) (*pagination.Page[*types.Person], error) {
	page, err := ps.personRepo.FindAll(ctx, nil, pageable)
	if err != nil {
		ps.log.Error("FindAll failed", "error", err, "page", pageable.Page, "size", pageable.Size)
		return nil, apierr.New(http.StatusInternalServerError, "storage_error", err)
	}
	return page, nil
}

// FindOne returns (nil, nil) when no row matches: absence is a normal
// outcome here, only the endpoint converts it to 404.
func (ps *personService) FindOne(ctx context.Context, id int64) (*types.Person, error) {
	person, err := ps.personRepo.FindByID(ctx, nil, id)
	if err != nil {
		ps.log.Error("FindOne failed", "error", err, "id", id)
		return nil, apierr.New(http.StatusInternalServerError, "storage_error", err)
	}
	return person, nil
}

func (ps *personService) Save(ctx context.Context, person *types.Person) (*types.Person, error) {
	var saved *types.Person
	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sErr error
		saved, sErr = ps.personRepo.Save(ctx, tx, person)
		return sErr
	})
	if err != nil {
		ps.log.Error("Save failed", "error", err, "id", person.ID)
		return nil, apierr.New(http.StatusInternalServerError, "storage_error", err)
	}
	return saved, nil
}

func (ps *personService) Update(ctx context.Context, person *types.Person) (*types.Person, error) {
	return ps.Save(ctx, person)
}
