package service

import (
	"fmt"

	"github.com/smilodon-digital/invoicing-service/internal/models"
)

// GetUser looks up one user by id
func (s *Service) GetUser(id string) (models.User, bool) {
	return s.stores.Users.FindByID(id)
}

// ListUsers returns the current user sequence
func (s *Service) ListUsers() []models.User {
	return s.stores.Users.Query()
}

// AddUser validates and inserts a new back-office user. Role defaults
// to the regular user role, status to active.
func (s *Service) AddUser(draft models.User) (models.User, error) {
	if draft.Name == "" {
		return models.User{}, fmt.Errorf("user name is required")
	}
	if draft.Email == "" {
		return models.User{}, fmt.Errorf("user email is required")
	}
	if draft.Department == "" {
		return models.User{}, fmt.Errorf("user department is required")
	}
	if draft.Role == "" {
		draft.Role = models.RoleUser
	}
	if draft.Role != models.RoleAdmin && draft.Role != models.RoleManager && draft.Role != models.RoleUser {
		return models.User{}, fmt.Errorf("unknown user role %q", draft.Role)
	}
	if draft.Status == "" {
		draft.Status = models.UserStatusActive
	}

	created := s.stores.Users.Insert(draft)
	s.log.Infof("User created: %s (%s)", created.Email, created.ID)
	return created, nil
}

// SetUserStatus toggles a user between active and inactive
func (s *Service) SetUserStatus(id, status string) (models.User, error) {
	if status != models.UserStatusActive && status != models.UserStatusInactive {
		return models.User{}, fmt.Errorf("unknown user status %q", status)
	}
	if _, ok := s.stores.Users.FindByID(id); !ok {
		return models.User{}, fmt.Errorf("user %s not found", id)
	}

	s.stores.Users.Update(id, func(u models.User) models.User {
		u.Status = status
		return u
	})
	updated, _ := s.stores.Users.FindByID(id)
	s.log.Infof("User %s status set to %s", updated.Email, status)
	return updated, nil
}

// RemoveUser deletes a user; no-op when absent
func (s *Service) RemoveUser(id string) {
	s.stores.Users.Remove(id)
	s.log.Infof("User removed: %s", id)
}
