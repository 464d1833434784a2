package postgres

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// toJSONMap decodes a jsonb column into a generic map, nil on empty input.
func toJSONMap(data datatypes.JSON) map[string]any {
	if len(data) == 0 {
		return nil
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil
	}

	return result
}

// fromJSONMap encodes a generic map into a jsonb column value.
func fromJSONMap(data map[string]any) datatypes.JSON {
	if data == nil {
		return nil
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return nil
	}

	return datatypes.JSON(encoded)
}
