package api

import (
	"fmt"

	"github.com/harshakreox/ghostqa-cli/internal/category"
)

// --- Folder Methods ---

// ListFolders returns the flat folder collection for one project and
// category. The hierarchy is reconstructed client-side.
func (c *Client) ListFolders(projectID string, cat category.Category) ([]Folder, error) {
	if !cat.Valid() {
		return nil, fmt.Errorf("%w: %q", category.ErrInvalidCategory, string(cat))
	}
	path := buildQuery(fmt.Sprintf("/api/projects/%s/folders", projectID), QueryParams{
		"category": string(cat),
	})
	data, err := c.get(path)
	if err != nil {
		return nil, err
	}
	return decodeList[Folder](data)
}

func (c *Client) CreateFolder(projectID string, cat category.Category, input CreateFolderInput) (*Folder, error) {
	if !cat.Valid() {
		return nil, fmt.Errorf("%w: %q", category.ErrInvalidCategory, string(cat))
	}
	path := buildQuery(fmt.Sprintf("/api/projects/%s/folders", projectID), QueryParams{
		"category": string(cat),
	})
	data, err := c.post(path, input)
	if err != nil {
		return nil, err
	}
	return decodeOne[Folder](data)
}

func (c *Client) UpdateFolder(id string, input UpdateFolderInput) (*Folder, error) {
	data, err := c.put(fmt.Sprintf("/api/folders/%s", id), input)
	if err != nil {
		return nil, err
	}
	return decodeOne[Folder](data)
}

// DeleteFolder removes a folder. The backend reparents the folder's direct
// children to the deleted folder's own parent; callers see the new shape
// on the next full reload.
func (c *Client) DeleteFolder(id string) error {
	_, err := c.del(fmt.Sprintf("/api/folders/%s", id))
	return err
}
