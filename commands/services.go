package commands

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/joshua-poirier/data-access/dataset"
	"github.com/joshua-poirier/data-access/gdrive"
	"github.com/joshua-poirier/data-access/gsheets"
)

// sheetsService connects to the Sheets API with either the service account
// from the environment or the cached OAuth2 token.
func sheetsService(ctx context.Context) (*sheets.Service, error) {
	if serviceAccount {
		return gsheets.NewServiceWithServiceAccount(ctx, conf.ServiceAccount)
	}

	client, err := authorize(credentials, gsheets.Scope, workdir)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%w)", err)
	}

	return gsheets.NewService(ctx, client)
}

// driveClient connects to the Drive API with either the service account
// from the environment or the cached OAuth2 token.
func driveClient(ctx context.Context, opts dataset.ReadOptions) (*gdrive.Client, error) {
	if serviceAccount {
		return gdrive.NewClient(ctx, conf.ServiceAccount, opts)
	}

	client, err := authorize(credentials, gdrive.Scope, workdir)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%w)", err)
	}

	return gdrive.NewClientWithHTTP(ctx, client, opts)
}
