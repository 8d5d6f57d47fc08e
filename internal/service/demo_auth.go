package service

import (
	"github.com/prokashpul/techpulse/internal/models"
	"github.com/prokashpul/techpulse/internal/seed"
)

// This file is the whole credential-checking strategy, and it is
// demo-grade on purpose: one hardcoded pair resolves to the built-in
// administrator, and every other stored email is accepted with the
// password ignored. Nothing here constitutes real authentication.
// Replace this file before exposing the application to anyone but its
// owner.

const (
	demoAdminEmail    = seed.AdminEmail
	demoAdminPassword = "Proksh2"
)

// resolveDemoLogin applies the demo credential rules to a login
// attempt. stored is the user found by email lookup, possibly nil.
//
//   - The hardcoded admin pair always succeeds, falling back to the
//     seeded admin record when the account is missing from the store.
//   - Any other lookup hit succeeds regardless of password.
//   - A lookup miss fails.
func resolveDemoLogin(email, password string, stored *models.User) *models.User {
	if email == demoAdminEmail && password == demoAdminPassword {
		if stored != nil {
			return stored
		}
		return seededAdmin()
	}
	return stored
}
