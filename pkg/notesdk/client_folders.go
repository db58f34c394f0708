package notesdk

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ListFolders(ctx context.Context) ([]Folder, error) {
	var out []Folder
	if err := c.do(ctx, http.MethodGet, "/api/folders", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateFolder(ctx context.Context, req FolderRequest) (*Folder, error) {
	var out Folder
	if err := c.do(ctx, http.MethodPost, "/api/folders", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFolder returns a folder together with its notes.
func (c *Client) GetFolder(ctx context.Context, id string) (*FolderDetail, error) {
	var out FolderDetail
	if err := c.do(ctx, http.MethodGet, "/api/folders/"+url.PathEscape(id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateFolder(ctx context.Context, id string, req FolderRequest) (*Folder, error) {
	var out Folder
	if err := c.do(ctx, http.MethodPut, "/api/folders/"+url.PathEscape(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFolder removes a folder. Its notes stay, without a folder.
func (c *Client) DeleteFolder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/folders/"+url.PathEscape(id), nil, nil, http.StatusOK)
}
