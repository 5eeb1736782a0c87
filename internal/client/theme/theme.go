// Package theme owns the light/dark display preference. The choice is
// persisted in the settings store under the "theme" key so it survives
// restarts.
package theme

import (
	"context"
	"database/sql"

	"github.com/andrissp/invoicedesk/internal/client/storage"
	"github.com/andrissp/invoicedesk/internal/dbx"
)

const (
	Light = "light"
	Dark  = "dark"

	settingKey = "theme"
)

type Controller struct {
	db *sql.DB
}

func NewController(db *sql.DB) *Controller {
	return &Controller{db: db}
}

// Current returns the persisted theme, defaulting to light when nothing is
// stored or the store is unreadable.
func (c *Controller) Current(ctx context.Context) string {
	v, err := storage.NewSettingsRepository(c.db).Get(ctx, settingKey)
	if err != nil || v != Dark {
		return Light
	}
	return Dark
}

// Toggle flips the preference and returns the new value. The read-modify-
// write runs in one transaction so overlapping toggles cannot interleave.
func (c *Controller) Toggle(ctx context.Context) (string, error) {
	var next string
	err := dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSettingsRepository(tx)
		current, err := repo.Get(ctx, settingKey)
		if err != nil {
			return err
		}
		if current == Dark {
			next = Light
		} else {
			next = Dark
		}
		return repo.Set(ctx, settingKey, next)
	})
	if err != nil {
		return "", err
	}
	return next, nil
}
