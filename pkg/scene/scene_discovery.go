package scene

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	builtinGroup = "Built-in Scenes"
	fileGroup    = "Scene Files"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "yaml"
	FilePath    string `json:"filePath"`    // Path to scene file (yaml type only)
	Variant     string `json:"variant"`     // Variant name (optional)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

// ErrUnknownScene is returned by Resolve for IDs that name no scene
var ErrUnknownScene = errors.New("unknown scene")

type builtinScene struct {
	info  SceneInfo
	build func() *Scene
}

var builtinScenes = []builtinScene{
	{
		info:  SceneInfo{ID: "default", Name: "Default Scene", Description: "Three spheres, a back wall and a floor under mixed lights"},
		build: NewDefaultScene,
	},
	{
		info:  SceneInfo{ID: "mirror", Name: "Mirror Sphere", Description: "Reflective sphere between colored spheres on a glossy floor"},
		build: NewMirrorScene,
	},
	{
		info:  SceneInfo{ID: "textured", Name: "Checkerboard", Description: "Procedurally textured plane and sphere"},
		build: NewTextureScene,
	},
	{
		info:  SceneInfo{ID: "single-sphere", Name: "Single Sphere", Description: "One diffuse sphere under a directional light"},
		build: NewSingleSphereScene,
	},
}

// BuiltinScenes returns metadata for every built-in scene, in registration order
func BuiltinScenes() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		info := b.info
		info.DisplayName = info.Name
		info.Group = builtinGroup
		info.Type = "builtin"
		infos = append(infos, info)
	}
	return infos
}

// NewBuiltinScene constructs the built-in scene with the given ID
func NewBuiltinScene(id string) (*Scene, bool) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b.build(), true
		}
	}
	return nil, false
}

// Resolve returns the scene for a built-in ID, a "yaml:<name>" ID found in
// scenesDir, or a path to a scene file
func Resolve(id, scenesDir string) (*Scene, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty scene name", ErrUnknownScene)
	}
	if s, ok := NewBuiltinScene(id); ok {
		return s, nil
	}
	if name, ok := strings.CutPrefix(id, "yaml:"); ok {
		return Load(filepath.Join(scenesDir, name+".yaml"))
	}
	if IsSceneFile(id) {
		return Load(id)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownScene, id)
}

// IsSceneFile reports whether path names a YAML scene description
func IsSceneFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// ListSceneFiles scans dir and returns discovered YAML scenes
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		// No scenes directory found, return empty list
		return []SceneInfo{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	var scenes []SceneInfo
	for _, entry := range entries {
		if entry.IsDir() || !IsSceneFile(entry.Name()) {
			continue
		}
		filePath := filepath.Join(dir, entry.Name())
		sceneInfo, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Keep the fallback metadata, the file may still load
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
		}
		scenes = append(scenes, sceneInfo)
	}

	// Sort scenes by display name
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseSceneMetadata extracts metadata from the header comments of a scene file
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	// Fallback values
	sceneInfo := SceneInfo{
		ID:          fmt.Sprintf("yaml:%s", nameWithoutExt),
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       fileGroup,
		Type:        "yaml",
		FilePath:    filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		return sceneInfo, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Stop parsing at first non-comment line
		if !strings.HasPrefix(line, "#") {
			break
		}

		content := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		switch {
		case strings.HasPrefix(content, "Scene:"):
			sceneInfo.Name = strings.TrimSpace(strings.TrimPrefix(content, "Scene:"))
		case strings.HasPrefix(content, "Variant:"):
			sceneInfo.Variant = strings.TrimSpace(strings.TrimPrefix(content, "Variant:"))
		case strings.HasPrefix(content, "Description:"):
			sceneInfo.Description = strings.TrimSpace(strings.TrimPrefix(content, "Description:"))
		case strings.HasPrefix(content, "Group:"):
			sceneInfo.Group = strings.TrimSpace(strings.TrimPrefix(content, "Group:"))
		}
	}

	if sceneInfo.Variant != "" {
		sceneInfo.DisplayName = fmt.Sprintf("%s - %s", sceneInfo.Name, sceneInfo.Variant)
	} else {
		sceneInfo.DisplayName = sceneInfo.Name
	}

	return sceneInfo, scanner.Err()
}

// ListAllScenes returns both built-in and file scenes, grouped by category
func ListAllScenes(scenesDir string) (ScenesResponse, error) {
	var response ScenesResponse

	fileScenes, err := ListSceneFiles(scenesDir)
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}

	allScenes := append(BuiltinScenes(), fileScenes...)

	groupMap := make(map[string][]SceneInfo)
	for _, s := range allScenes {
		groupMap[s.Group] = append(groupMap[s.Group], s)
	}

	// Built-in first, then alphabetical
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtinGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	response.Groups = append(response.Groups, SceneGroup{
		Name:   builtinGroup,
		Scenes: groupMap[builtinGroup],
	})
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response, nil
}

// titleCase converts a filename-style string to title case
// e.g., "mirror-room" -> "Mirror Room"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
