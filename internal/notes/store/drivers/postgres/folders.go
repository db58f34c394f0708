package postgres

import (
	"context"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/jackc/pgx/v5"
)

type foldersRepo struct {
	q querier
}

const folderColumns = `id, user_id, name, description, color, created_at, updated_at`

func scanFolder(row pgx.Row, extra ...any) (domain.Folder, error) {
	var f domain.Folder
	dest := append([]any{&f.ID, &f.UserID, &f.Name, &f.Description, &f.Color, &f.CreatedAt, &f.UpdatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return domain.Folder{}, err
	}
	return f, nil
}

func (r *foldersRepo) ListFolders(ctx context.Context, userID string) ([]domain.FolderWithCount, error) {
	rows, err := r.q.Query(ctx, `
		SELECT f.id, f.user_id, f.name, f.description, f.color, f.created_at, f.updated_at,
		       (SELECT COUNT(*) FROM notes n WHERE n.folder_id = f.id AND n.user_id = f.user_id)
		FROM folders f
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC, f.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.FolderWithCount
	for rows.Next() {
		var count int64
		f, err := scanFolder(rows, &count)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.FolderWithCount{Folder: f, NoteCount: int(count)})
	}
	return out, rows.Err()
}

func (r *foldersRepo) GetFolder(ctx context.Context, userID, id string) (domain.Folder, error) {
	f, err := scanFolder(r.q.QueryRow(ctx,
		`SELECT `+folderColumns+` FROM folders WHERE id = $1 AND user_id = $2`, id, userID))
	return f, mapNotFound(err)
}

func (r *foldersRepo) GetFolderByName(ctx context.Context, userID, name string) (domain.Folder, error) {
	f, err := scanFolder(r.q.QueryRow(ctx,
		`SELECT `+folderColumns+` FROM folders WHERE user_id = $1 AND name = $2`, userID, name))
	return f, mapNotFound(err)
}

func (r *foldersRepo) CreateFolder(ctx context.Context, f domain.Folder) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO folders (`+folderColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		f.ID, f.UserID, f.Name, f.Description, f.Color, f.CreatedAt.UTC(), f.UpdatedAt.UTC(),
	)
	return mapWriteErr(err)
}

func (r *foldersRepo) UpdateFolder(ctx context.Context, f domain.Folder) error {
	return requireRow(r.q.Exec(ctx,
		`UPDATE folders SET name = $1, description = $2, color = $3, updated_at = $4
		 WHERE id = $5 AND user_id = $6`,
		f.Name, f.Description, f.Color, now(), f.ID, f.UserID,
	))
}

func (r *foldersRepo) DeleteFolder(ctx context.Context, userID, id string) error {
	return requireRow(r.q.Exec(ctx, `DELETE FROM folders WHERE id = $1 AND user_id = $2`, id, userID))
}
