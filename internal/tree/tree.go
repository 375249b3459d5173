// Package tree resolves the folder hierarchy view for the cases browser:
// breadcrumb path, subfolders of the current folder, and the items that
// live in it. The collection is small and reloaded whole, so everything
// here is a linear pass over flat slices.
package tree

import (
	"errors"
	"fmt"

	"github.com/harshakreox/ghostqa-cli/internal/api"
)

// ErrCorruptHierarchy is returned when a folder's parent chain loops or
// points at a folder that does not exist. A well-behaved backend never
// produces this; callers treat it as fatal to the operation and recover
// by reloading.
var ErrCorruptHierarchy = errors.New("corrupt folder hierarchy")

// View is the resolved presentation of one folder level.
type View struct {
	// Path is the ancestor chain from root to the current folder,
	// empty when the current folder is the root.
	Path []api.Folder
	// Subfolders are the direct children of the current folder.
	Subfolders []api.Folder
	// Items are the items filed in the current folder. At the root these
	// are the uncategorized items (no folder assignment).
	Items []api.Item
}

// Resolve builds the view for folderID ("" means root) from a full reload
// of the project's folders and items. The breadcrumb walk is capped by the
// folder count so a cyclic parent chain fails instead of looping.
func Resolve(folders []api.Folder, items []api.Item, folderID string) (*View, error) {
	path, err := AncestorPath(folders, folderID)
	if err != nil {
		return nil, err
	}
	v := &View{Path: path}
	for _, f := range folders {
		if parentID(f) == folderID {
			v.Subfolders = append(v.Subfolders, f)
		}
	}
	for _, it := range items {
		if itemFolderID(it) == folderID {
			v.Items = append(v.Items, it)
		}
	}
	return v, nil
}

// AncestorPath walks parent pointers backward from folderID and returns
// the chain ordered root first. An empty folderID yields an empty path.
func AncestorPath(folders []api.Folder, folderID string) ([]api.Folder, error) {
	if folderID == "" {
		return nil, nil
	}
	byID := make(map[string]api.Folder, len(folders))
	for _, f := range folders {
		byID[f.ID] = f
	}

	var path []api.Folder
	id := folderID
	for hops := 0; id != ""; hops++ {
		if hops > len(folders) {
			return nil, fmt.Errorf("%w: parent chain from %s exceeds folder count", ErrCorruptHierarchy, folderID)
		}
		f, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: folder %s not found", ErrCorruptHierarchy, id)
		}
		path = append([]api.Folder{f}, path...)
		id = parentID(f)
	}
	return path, nil
}

// Partition splits items into per-folder buckets plus the root bucket
// (key ""). Every item lands in exactly one bucket.
func Partition(items []api.Item) map[string][]api.Item {
	buckets := make(map[string][]api.Item)
	for _, it := range items {
		id := itemFolderID(it)
		buckets[id] = append(buckets[id], it)
	}
	return buckets
}

func parentID(f api.Folder) string {
	if f.ParentFolderID == nil {
		return ""
	}
	return *f.ParentFolderID
}

func itemFolderID(it api.Item) string {
	if it.FolderID == nil {
		return ""
	}
	return *it.FolderID
}
