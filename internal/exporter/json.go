package exporter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"offsets-finder/internal/model"
)

type jsonDocument struct {
	Game string `json:"game"`
	// Offsets maps category -> name -> offset. encoding/json writes map keys
	// sorted, so both levels come out in alphabetical order.
	Offsets    map[string]map[string]string `json:"offsets"`
	Statistics jsonStatistics               `json:"statistics"`
}

type jsonStatistics struct {
	Total   int `json:"total"`
	Found   int `json:"found"`
	Missing int `json:"missing"`
}

func renderJSON(results []model.Result, variant model.Variant) (string, error) {
	offsets := make(map[string]map[string]string)
	for _, r := range results {
		if !r.Found {
			continue
		}
		byName, ok := offsets[r.Category]
		if !ok {
			byName = make(map[string]string)
			offsets[r.Category] = byName
		}
		byName[r.Name] = r.Offset
	}

	stats := model.Summarize(results)
	doc := jsonDocument{
		Game:    variant.Name(),
		Offsets: offsets,
		Statistics: jsonStatistics{
			Total:   stats.Total,
			Found:   stats.Found,
			Missing: stats.Missing,
		},
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(doc); err != nil {
		return "", fmt.Errorf("encode JSON: %w", err)
	}
	return buf.String(), nil
}
