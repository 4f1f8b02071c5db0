package client

import (
	"testing"

	"atrium/internal/domain/models"
)

func threeFolders() []models.FolderInfo {
	return []models.FolderInfo{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
		{ID: "c", Name: "C"},
	}
}

func ids(folders []models.FolderInfo) []string {
	out := make([]string, len(folders))
	for i, f := range folders {
		out[i] = f.ID
	}
	return out
}

func TestMoveFolderUp(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		wantOrder   []string
		wantChanged bool
	}{
		{name: "middle moves up", id: "b", wantOrder: []string{"b", "a", "c"}, wantChanged: true},
		{name: "first is a no-op", id: "a", wantOrder: []string{"a", "b", "c"}, wantChanged: false},
		{name: "unknown id is a no-op", id: "z", wantOrder: []string{"a", "b", "c"}, wantChanged: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folders := threeFolders()
			changed := MoveFolderUp(folders, tt.id)
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			got := ids(folders)
			for i, want := range tt.wantOrder {
				if got[i] != want {
					t.Errorf("order = %v, want %v", got, tt.wantOrder)
					break
				}
			}
		})
	}
}

func TestDescriptionHTML(t *testing.T) {
	f := models.FolderInfo{
		Name:        "components",
		Description: "Shared **widgets**\n- keep props flat",
	}
	got := DescriptionHTML(f)
	want := "Shared <strong>widgets</strong><br><li>keep props flat</li>"
	if got != want {
		t.Errorf("DescriptionHTML() = %q, want %q", got, want)
	}

	if got := DescriptionHTML(models.FolderInfo{}); got != "" {
		t.Errorf("empty description should render empty, got %q", got)
	}
}

func TestMoveFolderDown(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		wantOrder   []string
		wantChanged bool
	}{
		{name: "middle moves down", id: "b", wantOrder: []string{"a", "c", "b"}, wantChanged: true},
		{name: "last is a no-op", id: "c", wantOrder: []string{"a", "b", "c"}, wantChanged: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folders := threeFolders()
			changed := MoveFolderDown(folders, tt.id)
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			got := ids(folders)
			for i, want := range tt.wantOrder {
				if got[i] != want {
					t.Errorf("order = %v, want %v", got, tt.wantOrder)
					break
				}
			}
		})
	}
}
