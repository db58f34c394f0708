package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/pkg/idx"
	"github.com/aussiebroadwan/notes/pkg/slogx"
)

// FolderInput creates or fully replaces a folder. Empty Description and
// Color fall back to their defaults.
type FolderInput struct {
	Name        string
	Description string
	Color       string
}

// FolderDetail is a folder together with its notes, newest first.
type FolderDetail struct {
	Folder domain.Folder
	Notes  []domain.Note
}

type FolderService struct {
	Store store.Store
}

func (s *FolderService) ListFolders(ctx context.Context, ownerID string) ([]domain.FolderWithCount, error) {
	folders, err := s.Store.Folders().ListFolders(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	return folders, nil
}

func (s *FolderService) GetFolder(ctx context.Context, ownerID, folderID string) (FolderDetail, error) {
	folder, err := s.Store.Folders().GetFolder(ctx, ownerID, folderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return FolderDetail{}, ErrFolderNotFound
		}
		return FolderDetail{}, fmt.Errorf("get folder: %w", err)
	}

	notes, err := s.Store.Notes().ListNotes(ctx, ownerID, domain.NoteFilter{
		Scope:    domain.NotesInFolder,
		FolderID: folder.ID,
	})
	if err != nil {
		return FolderDetail{}, fmt.Errorf("list folder notes: %w", err)
	}
	return FolderDetail{Folder: folder, Notes: notes}, nil
}

func (s *FolderService) CreateFolder(ctx context.Context, ownerID string, in FolderInput) (domain.Folder, error) {
	in, err := normalizeFolder(in)
	if err != nil {
		return domain.Folder{}, err
	}

	if err := s.checkNameFree(ctx, ownerID, in.Name, ""); err != nil {
		return domain.Folder{}, err
	}

	now := time.Now().UTC()
	folder := domain.Folder{
		ID:          idx.NewAt(now).String(),
		UserID:      ownerID,
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Folders().CreateFolder(ctx, folder); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Folder{}, ErrFolderNameTaken
		}
		return domain.Folder{}, fmt.Errorf("create folder: %w", err)
	}

	slogx.FromContext(ctx).Info("folder created", slog.String("folder_id", folder.ID))
	return folder, nil
}

// UpdateFolder replaces the folder's fields. A missing folder is reported
// before any name conflict.
func (s *FolderService) UpdateFolder(ctx context.Context, ownerID, folderID string, in FolderInput) (domain.Folder, error) {
	folder, err := s.Store.Folders().GetFolder(ctx, ownerID, folderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Folder{}, ErrFolderNotFound
		}
		return domain.Folder{}, fmt.Errorf("get folder: %w", err)
	}

	in, err = normalizeFolder(in)
	if err != nil {
		return domain.Folder{}, err
	}
	if err := s.checkNameFree(ctx, ownerID, in.Name, folder.ID); err != nil {
		return domain.Folder{}, err
	}

	folder.Name = in.Name
	folder.Description = in.Description
	folder.Color = in.Color

	if err := s.Store.Folders().UpdateFolder(ctx, folder); err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Folder{}, ErrFolderNameTaken
		case errors.Is(err, store.ErrNotFound):
			return domain.Folder{}, ErrFolderNotFound
		}
		return domain.Folder{}, fmt.Errorf("update folder: %w", err)
	}

	// Re-read for the stored updated_at.
	updated, err := s.Store.Folders().GetFolder(ctx, ownerID, folderID)
	if err != nil {
		return domain.Folder{}, fmt.Errorf("reload folder: %w", err)
	}
	return updated, nil
}

// DeleteFolder removes the folder and moves its notes out of it in one
// transaction. It returns how many notes were moved.
func (s *FolderService) DeleteFolder(ctx context.Context, ownerID, folderID string) (int64, error) {
	var detached int64
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Folders().GetFolder(ctx, ownerID, folderID); err != nil {
			return err
		}

		n, err := tx.Notes().DetachFolder(ctx, ownerID, folderID)
		if err != nil {
			return err
		}
		detached = n

		return tx.Folders().DeleteFolder(ctx, ownerID, folderID)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, ErrFolderNotFound
		}
		return 0, fmt.Errorf("delete folder: %w", err)
	}

	slogx.FromContext(ctx).Info("folder deleted",
		slog.String("folder_id", folderID),
		slog.Int64("detached_notes", detached),
	)
	return detached, nil
}

// checkNameFree looks for another folder of the owner with this name. The
// unique index is the final word; this only gives a clean error early.
func (s *FolderService) checkNameFree(ctx context.Context, ownerID, name, selfID string) error {
	existing, err := s.Store.Folders().GetFolderByName(ctx, ownerID, name)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("lookup folder name: %w", err)
	case existing.ID == selfID:
		return nil
	}
	return ErrFolderNameTaken
}

func normalizeFolder(in FolderInput) (FolderInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Color = strings.TrimSpace(in.Color)

	if in.Name == "" {
		return in, ErrFolderNameRequired
	}
	if utf8.RuneCountInString(in.Name) > domain.MaxFolderNameLen {
		return in, ErrFolderNameTooLong
	}
	if utf8.RuneCountInString(in.Description) > domain.MaxFolderDescriptionLen {
		return in, ErrFolderDescriptionTooLong
	}
	if in.Color == "" {
		in.Color = domain.DefaultColor
	}
	return in, nil
}
