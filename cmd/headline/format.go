package main

import (
	"encoding/json"
	"fmt"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// lineResult is the JSON object emitted per title in json format
type lineResult struct {
	Input string `json:"input"`
	Title string `json:"title"`
}

// formatLine renders one cased title according to the output format
func formatLine(input, title string, format OutputFormat) (string, error) {
	switch format {
	case FormatHuman:
		return title, nil
	case FormatJSON:
		data, err := json.Marshal(lineResult{Input: input, Title: title})
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}
