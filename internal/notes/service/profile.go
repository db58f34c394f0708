package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/pkg/notesdk"
)

// ProfileUpdate changes only the fields that are set. Empty Username and
// Email are ignored; an empty Bio clears it.
type ProfileUpdate struct {
	Username notesdk.Optional[string]
	Email    notesdk.Optional[string]
	Bio      notesdk.Optional[string]
}

type ProfileService struct {
	Store store.Store
}

func (s *ProfileService) GetProfile(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, up ProfileUpdate) (domain.User, error) {
	bio, bioSet := up.Bio.Get()
	if bioSet && utf8.RuneCountInString(bio) > domain.MaxBioLen {
		return domain.User{}, ErrBioTooLong
	}

	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	if username, ok := up.Username.Get(); ok && username != "" {
		if err := s.checkFree(ctx, userID, s.Store.Users().GetUserByUsername, username, ErrUsernameTaken); err != nil {
			return domain.User{}, err
		}
		user.Username = username
	}
	if email, ok := up.Email.Get(); ok && email != "" {
		if err := s.checkFree(ctx, userID, s.Store.Users().GetUserByEmail, email, ErrEmailTaken); err != nil {
			return domain.User{}, err
		}
		user.Email = email
	}
	switch {
	case bioSet:
		user.Bio = bio
	case up.Bio.Null:
		user.Bio = ""
	}

	if err := s.Store.Users().UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, userConflict(ctx, s.Store, userID, user.Username)
		}
		return domain.User{}, fmt.Errorf("update profile: %w", err)
	}
	return s.GetProfile(ctx, userID)
}

func (s *ProfileService) checkFree(
	ctx context.Context,
	userID string,
	lookup func(context.Context, string) (domain.User, error),
	value string,
	taken error,
) error {
	other, err := lookup(ctx, value)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("lookup user: %w", err)
	case other.ID == userID:
		return nil
	}
	return taken
}

// userConflict decides which unique field a failed write tripped over.
func userConflict(ctx context.Context, st store.Store, selfID, username string) error {
	other, err := st.Users().GetUserByUsername(ctx, username)
	if err == nil && other.ID != selfID {
		return ErrUsernameTaken
	}
	return ErrEmailTaken
}
