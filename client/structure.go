package client

import (
	"atrium/internal/domain/models"
	"atrium/internal/richtext"
)

// MoveFolderUp swaps the folder with the given ID with its predecessor,
// in place. Moving the first folder (or an unknown ID) is a no-op; the
// return value reports whether the order changed, so callers can skip the
// save round trip when it didn't.
func MoveFolderUp(folders []models.FolderInfo, id string) bool {
	for i := range folders {
		if folders[i].ID == id {
			if i == 0 {
				return false
			}
			folders[i-1], folders[i] = folders[i], folders[i-1]
			return true
		}
	}
	return false
}

// DescriptionHTML renders a folder's description markup as a sanitized HTML
// fragment ready for display. Descriptions are stored raw; rendering happens
// on read.
func DescriptionHTML(f models.FolderInfo) string {
	return richtext.Render(f.Description)
}

// MoveFolderDown swaps the folder with the given ID with its successor,
// in place. Moving the last folder (or an unknown ID) is a no-op.
func MoveFolderDown(folders []models.FolderInfo, id string) bool {
	for i := range folders {
		if folders[i].ID == id {
			if i == len(folders)-1 {
				return false
			}
			folders[i], folders[i+1] = folders[i+1], folders[i]
			return true
		}
	}
	return false
}
