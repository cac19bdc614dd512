// Package rtdb implements the document-store gateway over the Firebase
// Realtime Database REST tree. It translates domain operations into
// GET/Push/Update/Set calls on hierarchical keys and carries no business
// logic.
package rtdb

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"compras/config"
)

// NewClient builds the Realtime Database client from configuration.
func NewClient(ctx context.Context, cfg *config.Config) (*db.Client, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	opts := []option.ClientOption{}
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:   cfg.Firebase.ProjectID,
		DatabaseURL: cfg.Firebase.DatabaseURL,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase app")
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get database client")
	}

	return client, nil
}
