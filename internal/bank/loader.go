package bank

import (
	"encoding/json"
	"fmt"
	"os"

	"emojitrivia/internal/model"
)

// LoadFile reads trivia items from a JSON file: an array of
// {title, emojis, type} records.
func LoadFile(path string) ([]model.TriviaItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question file: %w", err)
	}

	var items []model.TriviaItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse question file %s: %w", path, err)
	}
	return items, nil
}
