package sqlite

import (
	"context"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store/drivers/sqlite/gen"
)

type foldersRepo struct {
	q *gen.Queries
}

func (r *foldersRepo) ListFolders(ctx context.Context, userID string) ([]domain.FolderWithCount, error) {
	rows, err := r.q.ListFoldersWithCounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.FolderWithCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.FolderWithCount{
			Folder: mapFolder(gen.Folder{
				ID:          row.ID,
				UserID:      row.UserID,
				Name:        row.Name,
				Description: row.Description,
				Color:       row.Color,
				CreatedAt:   row.CreatedAt,
				UpdatedAt:   row.UpdatedAt,
			}),
			NoteCount: int(row.NoteCount),
		})
	}
	return out, nil
}

func (r *foldersRepo) GetFolder(ctx context.Context, userID, id string) (domain.Folder, error) {
	row, err := r.q.GetFolder(ctx, gen.GetFolderParams{ID: id, UserID: userID})
	if err != nil {
		return domain.Folder{}, mapNotFound(err)
	}
	return mapFolder(row), nil
}

func (r *foldersRepo) GetFolderByName(ctx context.Context, userID, name string) (domain.Folder, error) {
	row, err := r.q.GetFolderByName(ctx, gen.GetFolderByNameParams{UserID: userID, Name: name})
	if err != nil {
		return domain.Folder{}, mapNotFound(err)
	}
	return mapFolder(row), nil
}

func (r *foldersRepo) CreateFolder(ctx context.Context, f domain.Folder) error {
	err := r.q.CreateFolder(ctx, gen.CreateFolderParams{
		ID:          f.ID,
		UserID:      f.UserID,
		Name:        f.Name,
		Description: f.Description,
		Color:       f.Color,
		CreatedAt:   f.CreatedAt.UTC(),
		UpdatedAt:   f.UpdatedAt.UTC(),
	})
	return mapWriteErr(err)
}

func (r *foldersRepo) UpdateFolder(ctx context.Context, f domain.Folder) error {
	return requireRow(r.q.UpdateFolder(ctx, gen.UpdateFolderParams{
		Name:        f.Name,
		Description: f.Description,
		Color:       f.Color,
		UpdatedAt:   now(),
		ID:          f.ID,
		UserID:      f.UserID,
	}))
}

func (r *foldersRepo) DeleteFolder(ctx context.Context, userID, id string) error {
	return requireRow(r.q.DeleteFolder(ctx, gen.DeleteFolderParams{ID: id, UserID: userID}))
}
