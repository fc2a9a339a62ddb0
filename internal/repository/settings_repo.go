package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-storefront-ws/internal/model"
	"go-storefront-ws/internal/store"
)

type SettingsRepository interface {
	// Get always succeeds on a healthy backend: a missing record is
	// seeded with defaults, and a record written by an older version is
	// returned merged over the current defaults.
	Get(ctx context.Context) (*model.StoreSettings, error)
	// Save overwrites the whole record. There is no partial patch for
	// the payment method list; callers send the full list every time.
	Save(ctx context.Context, settings *model.StoreSettings) error
}

type settingsRepo struct {
	backend store.Backend
}

func NewSettingsRepo(backend store.Backend) SettingsRepository {
	return &settingsRepo{backend}
}

func (r *settingsRepo) Get(ctx context.Context) (*model.StoreSettings, error) {
	doc, err := r.backend.Get(ctx, store.CollectionSettings, model.SettingsDocID)
	if errors.Is(err, store.ErrNotFound) {
		defaults := model.DefaultSettings()
		if err := r.Save(ctx, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}

	// Unmarshal over the defaults: fields present in the stored record
	// win, fields it predates keep their default. Reads never write the
	// merged view back, so repeated reads are identical.
	settings := model.DefaultSettings()
	if err := json.Unmarshal(doc, settings); err != nil {
		return nil, fmt.Errorf("%w: settings: %v", store.ErrCorrupt, err)
	}
	if settings.PaymentMethods == nil {
		settings.PaymentMethods = []model.PaymentMethod{}
	}
	settings.Normalize()
	return settings, nil
}

func (r *settingsRepo) Save(ctx context.Context, settings *model.StoreSettings) error {
	return r.backend.Put(ctx, store.CollectionSettings, model.SettingsDocID, settings)
}
