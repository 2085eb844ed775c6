package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// TagsToJSON 태그 목록을 JSONB 값으로 변환합니다. nil은 빈 배열로 저장합니다.
func TagsToJSON(tags []string) datatypes.JSON {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}

// TagsFromJSON JSONB 값을 태그 목록으로 변환합니다. 잘못된 값은 빈 목록입니다.
func TagsFromJSON(raw datatypes.JSON) []string {
	tags := []string{}
	if len(raw) == 0 {
		return tags
	}
	if err := json.Unmarshal(raw, &tags); err != nil {
		return []string{}
	}
	return tags
}

// MapToJSON 메타데이터 맵을 JSONB 값으로 변환합니다
func MapToJSON(m map[string]interface{}) datatypes.JSON {
	if m == nil {
		return datatypes.JSON("{}")
	}
	b, err := json.Marshal(m)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(b)
}

// MapFromJSON JSONB 값을 메타데이터 맵으로 변환합니다
func MapFromJSON(raw datatypes.JSON) map[string]interface{} {
	m := map[string]interface{}{}
	if len(raw) == 0 {
		return m
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]interface{}{}
	}
	return m
}
