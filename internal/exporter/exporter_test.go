package exporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"offsets-finder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []model.Result {
	return []model.Result{
		model.FoundResult("StaticClass", "0x5C", "Core"),
		model.FoundResult("LocalPlayer", "0x7C", "Core"),
		model.MissingResult("Player_Name", "Player"),
		model.FoundResult("Avatar-Data", "0x10", "Player"),
		model.FoundResult("Aim Rotation", "0x2F0", "Camera"),
		model.MissingResult("isBot", "Bot Detection"),
	}
}

func TestRenderJSON(t *testing.T) {
	out, err := Render(sampleResults(), model.FreeFireMax, model.FormatJSON)
	require.NoError(t, err)

	var doc struct {
		Game       string                       `json:"game"`
		Offsets    map[string]map[string]string `json:"offsets"`
		Statistics map[string]int               `json:"statistics"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "Free Fire MAX", doc.Game)
	assert.Equal(t, map[string]map[string]string{
		"Core":   {"StaticClass": "0x5C", "LocalPlayer": "0x7C"},
		"Player": {"Avatar-Data": "0x10"},
		"Camera": {"Aim Rotation": "0x2F0"},
	}, doc.Offsets)
	assert.Equal(t, map[string]int{"total": 6, "found": 4, "missing": 2}, doc.Statistics)
	assert.Equal(t, doc.Statistics["total"], doc.Statistics["found"]+doc.Statistics["missing"])

	assert.NotContains(t, out, "isBot")
	assert.NotContains(t, out, "Bot Detection")
	assert.NotContains(t, out, "null")
}

func TestRenderJSONIsAlphabetical(t *testing.T) {
	out, err := Render(sampleResults(), model.FreeFire, model.FormatJSON)
	require.NoError(t, err)

	idx := func(s string) int { return strings.Index(out, s) }
	assert.Less(t, idx(`"Camera"`), idx(`"Core"`))
	assert.Less(t, idx(`"Core"`), idx(`"Player"`))
	assert.Less(t, idx(`"LocalPlayer"`), idx(`"StaticClass"`))
	assert.Less(t, idx(`"game"`), idx(`"offsets"`))
	assert.Less(t, idx(`"offsets"`), idx(`"statistics"`))

	again, err := Render(sampleResults(), model.FreeFire, model.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestRenderJSONEmpty(t *testing.T) {
	out, err := Render(nil, model.FreeFire, model.FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, out, `"offsets": {}`)
	assert.Contains(t, out, `"total": 0`)
}

func TestRenderCppHeader(t *testing.T) {
	out, err := Render(sampleResults(), model.FreeFire, model.FormatCppHeader)
	require.NoError(t, err)

	assert.Contains(t, out, "// Tool: "+ToolName+"\n")
	assert.Contains(t, out, "// Game: Free Fire\n")
	assert.Contains(t, out, "#pragma once\n")
	assert.Contains(t, out, "namespace FreeFire {\n")
	assert.Contains(t, out, "    // Core\n    constexpr uintptr_t STATICCLASS = 0x5C;\n    constexpr uintptr_t LOCALPLAYER = 0x7C;\n")
	assert.Contains(t, out, "    constexpr uintptr_t AVATAR-DATA = 0x10;\n")
	assert.Contains(t, out, "    constexpr uintptr_t AIM_ROTATION = 0x2F0;\n")
	assert.NotContains(t, out, "PLAYER_NAME")
	assert.NotContains(t, out, "ISBOT")
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Equal(t, 4, strings.Count(out, "constexpr"))
}

func TestRenderRustModule(t *testing.T) {
	results := append(sampleResults(), model.FoundResult("Raw", "1F", "Bot Detection"))

	out, err := Render(results, model.FreeFireTela, model.FormatRustModule)
	require.NoError(t, err)

	assert.Contains(t, out, "// Game: Free Fire TELA\n")
	assert.Contains(t, out, "#![allow(dead_code)]\n")
	assert.Contains(t, out, "pub mod freefire_tela {\n")
	assert.Contains(t, out, "    pub const AVATAR_DATA: usize = 0x10;\n")
	assert.Contains(t, out, "    pub const AIM_ROTATION: usize = 0x2F0;\n")
	assert.Contains(t, out, "    pub const RAW: usize = 0x1F;\n")
	assert.NotContains(t, out, "ISBOT")
	assert.Equal(t, 5, strings.Count(out, "pub const"))
}

func TestRenderSourceCategoryHeadersFollowScanOrder(t *testing.T) {
	results := []model.Result{
		model.FoundResult("A", "0x1", "Core"),
		model.FoundResult("B", "0x2", "Player"),
		model.FoundResult("C", "0x3", "Core"),
	}

	out, err := Render(results, model.FreeFire, model.FormatCppHeader)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "// Core\n"))
	assert.Less(t, strings.Index(out, "// Player"), strings.LastIndex(out, "// Core"))
}

func TestRenderPlainText(t *testing.T) {
	out, err := Render(sampleResults(), model.FreeFire, model.FormatPlainText)
	require.NoError(t, err)

	want := `====== FREE FIRE OFFSETS ======

--- Core ---
StaticClass = 0x5C
LocalPlayer = 0x7C

--- Player ---
Player_Name = NOT FOUND
Avatar-Data = 0x10

--- Camera ---
Aim Rotation = 0x2F0

--- Bot Detection ---
isBot = NOT FOUND

====== STATISTICS ======
Found: 4/6
`
	assert.Equal(t, want, out)
}

func TestPlainTextRoundTrip(t *testing.T) {
	results := sampleResults()

	out, err := Render(results, model.FreeFire, model.FormatPlainText)
	require.NoError(t, err)

	parsed := ParseReport(out)
	require.Len(t, parsed, len(results))
	for i := range results {
		assert.Equal(t, results[i].Name, parsed[i].Name)
		assert.Equal(t, results[i].Found, parsed[i].Found)
		assert.Equal(t, results[i].Category, parsed[i].Category)
		if results[i].Found {
			assert.Equal(t, results[i].Offset, parsed[i].Offset)
		}
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(sampleResults(), model.FreeFire, model.Format(9))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "offsets.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("stale\n", 1000)), 0644))

	require.NoError(t, Export(sampleResults(), model.FreeFire, model.FormatPlainText, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := Render(sampleResults(), model.FreeFire, model.FormatPlainText)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))
}

func TestExportUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "offsets.json")
	err := Export(sampleResults(), model.FreeFire, model.FormatJSON, path)
	assert.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
