package main

import (
	"context"
	"fmt"
)

func runCreateAdmin(ctx context.Context, name, email, password string) error {
	app, err := newApplication(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	if name == "" {
		name = app.config.GetAdminName()
	}
	if email == "" {
		email = app.config.GetAdminEmail()
	}
	if password == "" {
		password = app.config.GetAdminPassword()
	}
	if email == "" || password == "" {
		return fmt.Errorf("admin email and password are required (--email/--password or ADMIN_EMAIL/ADMIN_PASSWORD)")
	}
	return app.bootstrapAdmin(ctx, name, email, password)
}

func (a *application) bootstrapAdmin(ctx context.Context, name, email, password string) error {
	admin, created, err := a.users.BootstrapAdmin(ctx, name, email, password)
	if err != nil {
		return fmt.Errorf("bootstrap admin %s: %w", email, err)
	}
	if created {
		a.logger.Infof("Admin %s created.", admin.Email)
	} else {
		a.logger.Infof("Admin %s already exists.", admin.Email)
	}
	return nil
}
