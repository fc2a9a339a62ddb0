package service

import (
	"context"
	"fmt"

	"go-storefront-ws/internal/bus"
	"go-storefront-ws/internal/model"
	"go-storefront-ws/internal/repository"
	"go-storefront-ws/internal/store"
)

type SettingsService interface {
	GetSettings(ctx context.Context) (*model.StoreSettings, error)
	SaveSettings(ctx context.Context, settings *model.StoreSettings) (*model.StoreSettings, error)
}

type settingsService struct {
	settings repository.SettingsRepository
	changes  *bus.Bus
}

func NewSettingsService(settings repository.SettingsRepository, changes *bus.Bus) SettingsService {
	return &settingsService{
		settings: settings,
		changes:  changes,
	}
}

func (s *settingsService) GetSettings(ctx context.Context) (*model.StoreSettings, error) {
	return s.settings.Get(ctx)
}

// SaveSettings overwrites the record wholesale. The payment method list
// is taken as sent; there is no merge with the stored list.
func (s *settingsService) SaveSettings(ctx context.Context, settings *model.StoreSettings) (*model.StoreSettings, error) {
	settings.Normalize()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if settings.PaymentMethods == nil {
		settings.PaymentMethods = []model.PaymentMethod{}
	}

	if err := s.settings.Save(ctx, settings); err != nil {
		return nil, err
	}

	s.changes.Publish(store.CollectionSettings)
	return settings, nil
}
