package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/droidablebee/person-service/internal/pkg/logger"
	"github.com/droidablebee/person-service/internal/pkg/pagination"
	"github.com/droidablebee/person-service/internal/types"
)

type PersonRepo interface {
	FindByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Person, error)
	FindAll(ctx context.Context, tx *gorm.DB, pageable pagination.Pageable) (*pagination.Page[*types.Person], error)
	Save(ctx context.Context, tx *gorm.DB, person *types.Person) (*types.Person, error)
	DeleteAll(ctx context.Context, tx *gorm.DB) error
}

type personRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPersonRepo(db *gorm.DB, baseLog *logger.Logger) PersonRepo {
	repoLog := baseLog.With("repo", "PersonRepo")
	return &personRepo{db: db, log: repoLog}
}

// addressOrder keeps the owned collection in a deterministic order so a
// loaded Person always reads the same way.
func addressOrder(db *gorm.DB) *gorm.DB {
	return db.Order("address.id ASC")
}

func (pr *personRepo) FindByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Person, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var result types.Person
	err := transaction.WithContext(ctx).
		Preload("Addresses", addressOrder).
		First(&result, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// FindAll pages through persons with their addresses eagerly populated.
// Content and count are two queries: the count runs against the person
// table alone, so a person with three addresses still counts once. The
// primary-key ordering keeps page windows disjoint and exhaustive.
func (pr *personRepo) FindAll(ctx context.Context, tx *gorm.DB, pageable pagination.Pageable) (*pagination.Page[*types.Person], error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var people []*types.Person
	if err := transaction.WithContext(ctx).
		Preload("Addresses", addressOrder).
		Order("person.id ASC").
		Offset(pageable.Offset()).
		Limit(pageable.Size).
		Find(&people).Error; err != nil {
		return nil, err
	}

	var total int64
	if err := transaction.WithContext(ctx).
		Model(&types.Person{}).
		Count(&total).Error; err != nil {
		return nil, err
	}

	return pagination.NewPage(people, pageable, total), nil
}

// Save inserts when the id is unset and fully replaces otherwise. On
// replace the address rows are rewritten wholesale: whatever collection
// the caller hands in becomes the entire relationship state.
func (pr *personRepo) Save(ctx context.Context, tx *gorm.DB, person *types.Person) (*types.Person, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	person.TruncateDateOfBirth()

	if person.ID == 0 {
		if err := transaction.WithContext(ctx).Create(person).Error; err != nil {
			return nil, err
		}
		return person, nil
	}

	if err := transaction.WithContext(ctx).
		Where("person_id = ?", person.ID).
		Delete(&types.Address{}).Error; err != nil {
		return nil, err
	}
	for i := range person.Addresses {
		person.Addresses[i].ID = 0
		person.Addresses[i].PersonID = person.ID
	}

	result := transaction.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(person)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// id was supplied but never persisted: treat as insert-with-id
		if err := transaction.WithContext(ctx).Create(person).Error; err != nil {
			return nil, err
		}
	}
	return person, nil
}

// DeleteAll is test support only; no route reaches it.
func (pr *personRepo) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if err := transaction.WithContext(ctx).
		Where("1 = 1").
		Delete(&types.Address{}).Error; err != nil {
		return err
	}
	return transaction.WithContext(ctx).
		Where("1 = 1").
		Delete(&types.Person{}).Error
}
