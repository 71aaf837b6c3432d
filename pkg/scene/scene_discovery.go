package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	builtinGroup  = "Built-in Scenes"
	documentGroup = "Scene Files"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Value accepted by New
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to the document (json type only)
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

// ListBuiltinScenes returns metadata for the built-in scenes, sorted by ID
func ListBuiltinScenes() []SceneInfo {
	var scenes []SceneInfo
	for _, name := range BuiltinNames() {
		info := builtins[name].info
		info.Group = builtinGroup
		info.Type = "builtin"
		scenes = append(scenes, info)
	}
	return scenes
}

// ListDocumentScenes scans dir for *.json scene documents.
// A missing directory yields an empty list.
func ListDocumentScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		info, err := ParseDocumentMetadata(filePath)
		if err != nil {
			// Log warning but continue processing other files
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

// ParseDocumentMetadata reads the name and description of a scene document
func ParseDocumentMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:       filePath,
		Name:     titleCase(nameWithoutExt),
		Group:    documentGroup,
		Type:     "json",
		FilePath: filePath,
	}

	doc, err := LoadDocument(filePath)
	if err != nil {
		return info, err
	}
	if doc.Name != "" && doc.Name != nameWithoutExt {
		info.Name = doc.Name
	}
	info.Description = doc.Description
	return info, nil
}

// ListAllScenes returns built-in scenes followed by documents found in dir
func ListAllScenes(dir string) (ScenesResponse, error) {
	var response ScenesResponse
	response.Groups = append(response.Groups, SceneGroup{
		Name:   builtinGroup,
		Scenes: ListBuiltinScenes(),
	})

	documents, err := ListDocumentScenes(dir)
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}
	if len(documents) > 0 {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   documentGroup,
			Scenes: documents,
		})
	}

	return response, nil
}

// titleCase converts a filename-style string to title case
// e.g., "hexagon-room" -> "Hexagon Room"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
