package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"shelfmate/internal/repositories"
	"shelfmate/internal/shared"
)

// SetupConfig writes the embedded example config to the given path.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}
	r.logger.Info("created config file", "path", path)
	return r.writePlainln("Created %s", path)
}

// MigrateUsers reshapes a legacy list-form users document into the map form.
func (r *Runner) MigrateUsers(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("file")
	if path == "" {
		path = r.config.Storage.UsersPath
	}

	n, err := repositories.MigrateUsersFile(path)
	if err != nil {
		return err
	}
	if n == 0 {
		return r.writePlainln("%s is already in the map format, nothing to do", path)
	}
	r.logger.Info("migrated users document", "path", path, "accounts", n)
	return r.writePlainln("Converted %d account(s) in %s", n, path)
}
