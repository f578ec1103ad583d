package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/droidablebee/person-service/internal/pkg/apierr"
	"github.com/droidablebee/person-service/internal/pkg/logger"
	"github.com/droidablebee/person-service/internal/pkg/pagination"
	"github.com/droidablebee/person-service/internal/repos"
	"github.com/droidablebee/person-service/internal/types"
)

type fakePersonRepo struct {
	findByIDResult *types.Person
	findByIDErr    error
	saveErr        error
	saveCalls      int
	lastSaveTx     *gorm.DB
}

func (f *fakePersonRepo) FindByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Person, error) {
	return f.findByIDResult, f.findByIDErr
}

func (f *fakePersonRepo) FindAll(ctx context.Context, tx *gorm.DB, pageable pagination.Pageable) (*pagination.Page[*types.Person], error) {
	return pagination.NewPage([]*types.Person{}, pageable, 0), nil
}

func (f *fakePersonRepo) Save(ctx context.Context, tx *gorm.DB, person *types.Person) (*types.Person, error) {
	f.saveCalls++
	f.lastSaveTx = tx
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	return person, nil
}

func (f *fakePersonRepo) DeleteAll(ctx context.Context, tx *gorm.DB) error { return nil }

func newServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&types.Person{}, &types.Address{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newTestPersonService(t *testing.T, repo repos.PersonRepo) PersonService {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return NewPersonService(newServiceTestDB(t), log, repo)
}

func TestPersonServiceFindOnePassesAbsenceThrough(t *testing.T) {
	fake := &fakePersonRepo{}
	svc := newTestPersonService(t, fake)

	person, err := svc.FindOne(context.Background(), 42)
	if err != nil {
		t.Fatalf("FindOne: %v", err)
	}
	if person != nil {
		t.Fatalf("FindOne on absent row: got=%+v want=nil", person)
	}
}

func TestPersonServiceFindOneWrapsStorageError(t *testing.T) {
	fake := &fakePersonRepo{findByIDErr: errors.New("connection refused")}
	svc := newTestPersonService(t, fake)

	_, err := svc.FindOne(context.Background(), 42)
	if err == nil {
		t.Fatalf("FindOne should surface the storage error")
	}
	var ae *apierr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("error is not an apierr: %v", err)
	}
	if ae.StatusCode != http.StatusInternalServerError || ae.Code != "storage_error" {
		t.Fatalf("unexpected mapping: status=%d code=%q", ae.StatusCode, ae.Code)
	}
}

func TestPersonServiceSaveRunsInsideTransaction(t *testing.T) {
	fake := &fakePersonRepo{}
	svc := newTestPersonService(t, fake)

	p := &types.Person{FirstName: "Jack", LastName: "Bauer"}
	saved, err := svc.Save(context.Background(), p)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved != p {
		t.Fatalf("Save did not return the persisted person")
	}
	if fake.saveCalls != 1 {
		t.Fatalf("repo save calls: got=%d want=1", fake.saveCalls)
	}
	if fake.lastSaveTx == nil {
		t.Fatalf("repo save was not handed a transaction")
	}
}

func TestPersonServiceSaveWrapsStorageError(t *testing.T) {
	fake := &fakePersonRepo{saveErr: errors.New("constraint violation")}
	svc := newTestPersonService(t, fake)

	_, err := svc.Save(context.Background(), &types.Person{FirstName: "Jack", LastName: "Bauer"})
	if err == nil {
		t.Fatalf("Save should surface the storage error")
	}
	var ae *apierr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("error is not an apierr: %v", err)
	}
	if ae.Code != "storage_error" {
		t.Fatalf("unexpected code: %q", ae.Code)
	}
}

func TestPersonServiceUpdateDelegatesToSave(t *testing.T) {
	fake := &fakePersonRepo{}
	svc := newTestPersonService(t, fake)

	if _, err := svc.Update(context.Background(), &types.Person{ID: 7, FirstName: "Kim", LastName: "Bauer"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if fake.saveCalls != 1 {
		t.Fatalf("repo save calls: got=%d want=1", fake.saveCalls)
	}
}
