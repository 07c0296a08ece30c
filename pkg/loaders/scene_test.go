package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validScene = `{
	"camera": {
		"position": [0, 0, 0],
		"target": [0, 0, -1],
		"fov": 40.0
	},
	"ambient": {
		"intensity": 0.4,
		"color": [255, 255, 255]
	},
	"lights": [
		{
			"type": "point",
			"position": [-10, 10, -10],
			"intensity": 0.5,
			"color": [255, 255, 255]
		}
	],
	"objects": [
		{
			"type": "sphere",
			"position": [0, 0, -30],
			"radius": 5.0,
			"color": [136, 8, 8],
			"material": {
				"type": "custom",
				"ambient": 0.1,
				"diffuse": 0.9,
				"specular": 0.9,
				"shininess": 200.0
			}
		},
		{
			"type": "sphere",
			"position": [2, 1, -20],
			"radius": 1.0,
			"color": [0, 255, 0],
			"material": {"type": "default"}
		}
	]
}`

func TestParseScene(t *testing.T) {
	scene, err := ParseScene(strings.NewReader(validScene))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if scene.Camera.FOV != 40.0 {
		t.Errorf("Expected fov 40, got %v", scene.Camera.FOV)
	}
	if scene.Camera.Target != [3]float64{0, 0, -1} {
		t.Errorf("Unexpected camera target: %v", scene.Camera.Target)
	}
	if scene.Ambient.Intensity != 0.4 {
		t.Errorf("Expected ambient intensity 0.4, got %v", scene.Ambient.Intensity)
	}

	if len(scene.Lights) != 1 {
		t.Fatalf("Expected 1 light, got %d", len(scene.Lights))
	}
	light := scene.Lights[0]
	if light.Type != "point" || light.Position != [3]float64{-10, 10, -10} || light.Intensity != 0.5 {
		t.Errorf("Unexpected light: %+v", light)
	}

	if len(scene.Objects) != 2 {
		t.Fatalf("Expected 2 objects, got %d", len(scene.Objects))
	}
	custom := scene.Objects[0]
	if custom.Radius != 5.0 || custom.Color != [3]int{136, 8, 8} {
		t.Errorf("Unexpected object: %+v", custom)
	}
	if custom.Material.IsDefault() {
		t.Error("Expected a custom material")
	}
	if custom.Material.Shininess != 200.0 {
		t.Errorf("Expected shininess 200, got %v", custom.Material.Shininess)
	}
	if !scene.Objects[1].Material.IsDefault() {
		t.Error("Expected a default material")
	}
}

func TestParseScene_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "not json",
			input: `camera = [0, 0, 0]`,
		},
		{
			name: "unknown field",
			input: strings.Replace(validScene,
				`"position": [0, 0, 0]`, `"UNKNOWN": [0, 0, 0]`, 1),
		},
		{
			name: "unknown light type",
			input: strings.Replace(validScene,
				`"type": "point"`, `"type": "area"`, 1),
		},
		{
			name: "unknown object type",
			input: strings.Replace(validScene,
				`"type": "sphere"`, `"type": "cube"`, 1),
		},
		{
			name: "unknown material type",
			input: strings.Replace(validScene,
				`"type": "custom"`, `"type": "UNKNOWN"`, 1),
		},
		{
			name: "fov out of range",
			input: strings.Replace(validScene,
				`"fov": 40.0`, `"fov": 220.0`, 1),
		},
		{
			name: "negative radius",
			input: strings.Replace(validScene,
				`"radius": 5.0`, `"radius": -5.0`, 1),
		},
		{
			name: "color channel out of range",
			input: strings.Replace(validScene,
				`"color": [136, 8, 8]`, `"color": [300, 8, 8]`, 1),
		},
		{
			name: "no lights",
			input: strings.Replace(validScene,
				`"lights": [
		{
			"type": "point",
			"position": [-10, 10, -10],
			"intensity": 0.5,
			"color": [255, 255, 255]
		}
	]`, `"lights": []`, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene(strings.NewReader(tt.input))
			if !errors.Is(err, ErrSceneInvalid) {
				t.Errorf("Expected ErrSceneInvalid, got %v", err)
			}
		})
	}
}

func TestLoadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(validScene), 0644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}

	scene, err := LoadScene(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(scene.Objects) != 2 {
		t.Errorf("Expected 2 objects, got %d", len(scene.Objects))
	}
}

func TestLoadScene_MissingFile(t *testing.T) {
	_, err := LoadScene(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrSceneIO) {
		t.Errorf("Expected ErrSceneIO, got %v", err)
	}
	if errors.Is(err, ErrSceneInvalid) {
		t.Error("I/O failures must not be classified as validation failures")
	}
}
