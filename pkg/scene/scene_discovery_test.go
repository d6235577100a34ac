package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const minimalSceneYAML = `width: 4
height: 3
lights:
  - type: directional
    direction: [0, 0, -1]
    intensity: 1
objects:
  - mesh: {type: sphere, center: [0, 0, -3], radius: 1}
    material: {color: [200, 20, 50]}
`

func writeSceneFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"mirror-room", "Mirror Room"},
		{"checker_floor", "Checker Floor"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestParseSceneMetadata(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected SceneInfo
	}{
		{
			name: "complete_metadata.yaml",
			content: `# Scene: Mirror Room
# Variant: Deep
# Description: Facing mirrors with many bounces
# Group: Mirrors

width: 4`,
			expected: SceneInfo{
				ID:          "yaml:complete_metadata",
				Name:        "Mirror Room",
				DisplayName: "Mirror Room - Deep",
				Description: "Facing mirrors with many bounces",
				Group:       "Mirrors",
				Type:        "yaml",
				Variant:     "Deep",
			},
		},
		{
			name: "partial_metadata.yaml",
			content: `# Scene: Spheres
# Description: A few spheres

width: 4`,
			expected: SceneInfo{
				ID:          "yaml:partial_metadata",
				Name:        "Spheres",
				DisplayName: "Spheres",
				Description: "A few spheres",
				Group:       "Scene Files", // Default group
				Type:        "yaml",
			},
		},
		{
			name:    "no_metadata.yaml",
			content: `width: 4`,
			expected: SceneInfo{
				ID:          "yaml:no_metadata",
				Name:        "No Metadata", // From filename
				DisplayName: "No Metadata",
				Group:       "Scene Files",
				Type:        "yaml",
			},
		},
		{
			name: "late_comment.yaml",
			content: `width: 4
# Scene: Ignored`,
			expected: SceneInfo{
				ID:          "yaml:late_comment",
				Name:        "Late Comment",
				DisplayName: "Late Comment",
				Group:       "Scene Files",
				Type:        "yaml",
			},
		},
	}

	dir := t.TempDir()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSceneFile(t, dir, tc.name, tc.content)

			result, err := ParseSceneMetadata(path)
			if err != nil {
				t.Fatalf("ParseSceneMetadata() error: %v", err)
			}

			tc.expected.FilePath = path
			if result != tc.expected {
				t.Errorf("ParseSceneMetadata() = %+v, want %+v", result, tc.expected)
			}
		})
	}
}

func TestParseSceneMetadata_MissingFile(t *testing.T) {
	info, err := ParseSceneMetadata("nonexistent.yaml")
	if err == nil {
		t.Error("Expected error for missing file")
	}
	// Fallback values are still populated
	if info.ID != "yaml:nonexistent" || info.DisplayName != "Nonexistent" {
		t.Errorf("Unexpected fallback info: %+v", info)
	}
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "zeta.yaml", "# Scene: Alpha\n"+minimalSceneYAML)
	writeSceneFile(t, dir, "beta.yml", minimalSceneYAML)
	writeSceneFile(t, dir, "notes.txt", "not a scene")
	if err := os.Mkdir(filepath.Join(dir, "nested.yaml"), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("ListSceneFiles() error: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d: %+v", len(scenes), scenes)
	}
	// Sorted by display name
	if scenes[0].DisplayName != "Alpha" || scenes[1].DisplayName != "Beta" {
		t.Errorf("Unexpected order: %q, %q", scenes[0].DisplayName, scenes[1].DisplayName)
	}
}

func TestListSceneFiles_MissingDirectory(t *testing.T) {
	scenes, err := ListSceneFiles(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Errorf("ListSceneFiles() error: %v", err)
	}
	if scenes == nil || len(scenes) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", scenes)
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "room.yaml", "# Group: Rooms\n"+minimalSceneYAML)
	writeSceneFile(t, dir, "ball.yaml", minimalSceneYAML)

	response, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}

	if len(response.Groups) != 3 {
		t.Fatalf("Expected 3 groups, got %d", len(response.Groups))
	}
	// Built-in first, then alphabetical
	wantGroups := []string{"Built-in Scenes", "Rooms", "Scene Files"}
	for i, want := range wantGroups {
		if response.Groups[i].Name != want {
			t.Errorf("Group %d = %q, want %q", i, response.Groups[i].Name, want)
		}
	}

	builtIn := response.Groups[0]
	expectedScenes := []string{"default", "mirror", "textured", "single-sphere"}
	if len(builtIn.Scenes) != len(expectedScenes) {
		t.Errorf("Built-in scenes count = %d, want %d", len(builtIn.Scenes), len(expectedScenes))
	}
	for i, id := range expectedScenes {
		if i < len(builtIn.Scenes) && builtIn.Scenes[i].ID != id {
			t.Errorf("Built-in scene %d = %q, want %q", i, builtIn.Scenes[i].ID, id)
		}
	}

	for _, group := range response.Groups {
		for _, s := range group.Scenes {
			if s.ID == "" || s.DisplayName == "" {
				t.Errorf("Scene missing ID or DisplayName: %+v", s)
			}
			if s.Type == "yaml" && !strings.HasPrefix(s.ID, "yaml:") {
				t.Errorf("File scene ID should start with 'yaml:': %s", s.ID)
			}
		}
	}
}

func TestBuiltinScenesValidate(t *testing.T) {
	for _, info := range BuiltinScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, ok := NewBuiltinScene(info.ID)
			if !ok {
				t.Fatalf("NewBuiltinScene(%q) not found", info.ID)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Built-in scene invalid: %v", err)
			}
			if info.Group != "Built-in Scenes" || info.Type != "builtin" {
				t.Errorf("Unexpected metadata: %+v", info)
			}
		})
	}

	if _, ok := NewBuiltinScene("missing"); ok {
		t.Error("Expected unknown ID to be rejected")
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	path := writeSceneFile(t, dir, "ball.yaml", minimalSceneYAML)

	testCases := []struct {
		name    string
		id      string
		wantErr bool
		width   int
	}{
		{"builtin", "single-sphere", false, 800},
		{"yaml id", "yaml:ball", false, 4},
		{"path", path, false, 4},
		{"missing yaml id", "yaml:missing", true, 0},
		{"unknown", "no-such-scene", true, 0},
		{"empty", "", true, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Resolve(tc.id, dir)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Resolve(%q) error = %v, wantErr %v", tc.id, err, tc.wantErr)
			}
			if err == nil && s.Width != tc.width {
				t.Errorf("Resolve(%q) width = %d, want %d", tc.id, s.Width, tc.width)
			}
		})
	}
}

func TestResolveUnknownSceneError(t *testing.T) {
	for _, id := range []string{"", "no-such-scene"} {
		if _, err := Resolve(id, t.TempDir()); !errors.Is(err, ErrUnknownScene) {
			t.Errorf("Resolve(%q): expected ErrUnknownScene, got %v", id, err)
		}
	}
	// A missing file is reported as such, not as an unknown ID
	_, err := Resolve("yaml:missing", t.TempDir())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}
