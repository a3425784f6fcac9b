package services

import (
	"context"

	"go.uber.org/zap"

	"adjaoko/app/domains"
	"adjaoko/app/dto"
	"adjaoko/app/session"
)

// ProfileService drives the profile screen flows.
type ProfileService struct {
	remote *RemoteStore
	holder *session.Holder
	logger *zap.Logger
}

// NewProfileService creates a profile service.
func NewProfileService(remote *RemoteStore, holder *session.Holder, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		remote: remote,
		holder: holder,
		logger: logger,
	}
}

// Load returns the signed-in user's profile, or nil when none exists yet
// (first-time users edit from a blank profile).
func (s *ProfileService) Load(ctx context.Context) (*domains.UserProfile, error) {
	sess := s.holder.Session()
	if sess == nil || sess.User == nil || sess.User.ID == "" {
		return nil, ErrNotAuthenticated
	}
	return s.remote.GetProfile(ctx, sess.User.ID)
}

// Save upserts the signed-in user's profile, keyed by their identity id.
// The email falls back to the identity's email when the form leaves it
// empty.
func (s *ProfileService) Save(ctx context.Context, form dto.SaveProfileRequest) (*domains.UserProfile, error) {
	sess := s.holder.Session()
	if sess == nil || sess.User == nil || sess.User.ID == "" {
		return nil, ErrNotAuthenticated
	}

	userType := form.UserType
	if userType == "" {
		userType = domains.UserTypeFarmer
	}
	email := form.Email
	if email == "" {
		email = sess.User.Email
	}

	profile := domains.UserProfile{
		ID:          sess.User.ID,
		Name:        form.Name,
		Phone:       form.Phone,
		Location:    form.Location,
		Email:       email,
		UserType:    userType,
		Description: form.Description,
	}

	return s.remote.SaveProfile(ctx, profile)
}
