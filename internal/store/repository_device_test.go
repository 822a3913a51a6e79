package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fieldtrack/syncserver/internal/logger"
	"github.com/fieldtrack/syncserver/models"
	"github.com/jackc/pgerrcode"
)

func newTestDeviceRepo(t *testing.T) (*deviceRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &deviceRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func deviceColumns() []string {
	return []string{"device_id", "username", "password", "date_joined", "user_data", "owner_ids"}
}

func TestCreateDevice_Success(t *testing.T) {
	repo, mock, db := newTestDeviceRepo(t)
	defer db.Close()

	joined := time.Now()
	device := models.Device{
		DeviceID:   "device-1",
		Username:   "chw1",
		Password:   "$2a$10$hash",
		DateJoined: joined,
		UserData:   map[string]string{"district": "north"},
		OwnerIDs:   []string{"owner-1"},
	}

	rows := sqlmock.NewRows(deviceColumns()).
		AddRow(device.DeviceID, device.Username, device.Password, joined,
			[]byte(`{"district":"north"}`), []byte(`["owner-1"]`))

	mock.ExpectQuery("INSERT INTO devices").
		WithArgs(device.DeviceID, device.Username, device.Password, joined,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(rows)

	created, err := repo.Create(context.Background(), device)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Username != "chw1" {
		t.Errorf("expected username chw1, got %s", created.Username)
	}
	if created.UserData["district"] != "north" {
		t.Errorf("expected user data to round-trip, got %+v", created.UserData)
	}
}

func TestCreateDevice_AlreadyExists(t *testing.T) {
	repo, mock, db := newTestDeviceRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO devices").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(context.Background(), models.Device{DeviceID: "device-1"})
	if !errors.Is(err, ErrDeviceAlreadyExists) {
		t.Fatalf("expected ErrDeviceAlreadyExists, got %v", err)
	}
}

func TestGetDevice_Success(t *testing.T) {
	repo, mock, db := newTestDeviceRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(deviceColumns()).
		AddRow("device-1", "chw1", "$2a$10$hash", time.Now(), []byte(`{}`), []byte(`["owner-1","owner-2"]`))

	mock.ExpectQuery("SELECT (.+) FROM devices").
		WithArgs("device-1").
		WillReturnRows(rows)

	device, err := repo.Get(context.Background(), "device-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(device.OwnerIDs) != 2 {
		t.Errorf("expected 2 owner ids, got %+v", device.OwnerIDs)
	}
}

func TestGetDevice_NotFound(t *testing.T) {
	repo, mock, db := newTestDeviceRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM devices").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Fatalf("expected ErrDeviceNotFound, got %v", err)
	}
}
