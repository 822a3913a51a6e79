package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldtrack/syncserver/internal/logger"
	"github.com/fieldtrack/syncserver/internal/store"
	"github.com/fieldtrack/syncserver/internal/utils"
	"github.com/fieldtrack/syncserver/models"
	"golang.org/x/crypto/bcrypt"
)

type registrationService struct {
	devices store.DeviceRepository
	uuid    *utils.UUIDGenerator

	logger *logger.Logger
}

func NewRegistrationService(devices store.DeviceRepository, logger *logger.Logger) RegistrationService {
	return &registrationService{
		devices: devices,
		uuid:    utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

// Register enrolls a device. The password is stored as a bcrypt hash; the
// raw credential never reaches the repository. A missing device id is
// assigned server-side.
func (r *registrationService) Register(ctx context.Context, device models.Device) (models.Device, error) {
	if device.Username == "" || device.Password == "" {
		return models.Device{}, fmt.Errorf("%w: username and password are required", ErrInvalidRegistration)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(device.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Device{}, fmt.Errorf("hashing device password: %w", err)
	}
	device.Password = string(hash)

	if device.DeviceID == "" {
		device.DeviceID = r.uuid.Generate()
	}
	if device.DateJoined.IsZero() {
		device.DateJoined = time.Now().UTC()
	}

	created, err := r.devices.Create(ctx, device)
	if err != nil {
		return models.Device{}, err
	}

	r.logger.Info().
		Str("device_id", created.DeviceID).
		Str("username", created.Username).
		Msg("device registered")

	return created, nil
}
