package api

import (
	"github.com/harshakreox/ghostqa-cli/internal/category"
)

// --- Item Methods ---
//
// All item calls resolve their path through the category dispatcher first,
// so an unrecognized tag fails before any request is issued.

// ListItems returns the items of one category in a project, tagged with
// the category they were fetched as.
func (c *Client) ListItems(projectID string, cat category.Category) ([]Item, error) {
	path, err := cat.ListPath(projectID)
	if err != nil {
		return nil, err
	}
	data, err := c.get(path)
	if err != nil {
		return nil, err
	}
	items, err := decodeList[Item](data)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Category = cat
	}
	return items, nil
}

func (c *Client) GetItem(cat category.Category, id string) (*Item, error) {
	path, err := cat.ItemPath(id)
	if err != nil {
		return nil, err
	}
	data, err := c.get(path)
	if err != nil {
		return nil, err
	}
	item, err := decodeOne[Item](data)
	if err != nil {
		return nil, err
	}
	item.Category = cat
	return item, nil
}

func (c *Client) CreateItem(projectID string, cat category.Category, input CreateItemInput) (*Item, error) {
	path, err := cat.ListPath(projectID)
	if err != nil {
		return nil, err
	}
	data, err := c.post(path, input)
	if err != nil {
		return nil, err
	}
	return decodeOne[Item](data)
}

func (c *Client) UpdateItem(cat category.Category, id string, input UpdateItemInput) (*Item, error) {
	path, err := cat.ItemPath(id)
	if err != nil {
		return nil, err
	}
	data, err := c.put(path, input)
	if err != nil {
		return nil, err
	}
	return decodeOne[Item](data)
}

func (c *Client) DeleteItem(cat category.Category, id string) error {
	path, err := cat.ItemPath(id)
	if err != nil {
		return err
	}
	_, err = c.del(path)
	return err
}

// MoveItem reassigns an item to a folder; a nil folderID moves it to the
// uncategorized bucket.
func (c *Client) MoveItem(cat category.Category, id string, folderID *string) (*Item, error) {
	path, err := cat.MovePath(id)
	if err != nil {
		return nil, err
	}
	data, err := c.put(path, map[string]*string{"folder_id": folderID})
	if err != nil {
		return nil, err
	}
	return decodeOne[Item](data)
}

// ExportItem downloads an item in the given format and returns the raw
// file content.
func (c *Client) ExportItem(cat category.Category, id string, format category.Format) ([]byte, error) {
	path, err := cat.ExportPath(id, format)
	if err != nil {
		return nil, err
	}
	return c.get(path)
}
