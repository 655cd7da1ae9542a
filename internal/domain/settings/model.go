package settings

import "time"

// Type indica cómo interpretar Value.
// @Enum text, boolean, json, number
type Type string

const (
	TypeText    Type = "text"
	TypeBoolean Type = "boolean"
	TypeJSON    Type = "json"
	TypeNumber  Type = "number"
)

func (t Type) Valid() bool {
	switch t {
	case TypeText, TypeBoolean, TypeJSON, TypeNumber:
		return true
	}
	return false
}

// Group agrupa settings en el panel.
// @Enum general, appearance, seo
type Group string

const (
	GroupGeneral    Group = "general"
	GroupAppearance Group = "appearance"
	GroupSEO        Group = "seo"
)

func (g Group) Valid() bool {
	switch g {
	case GroupGeneral, GroupAppearance, GroupSEO:
		return true
	}
	return false
}

// Setting es un par clave/valor editable desde el panel. Key es única.
type Setting struct {
	ID    int64
	Key   string
	Value string
	Type  Type
	Group Group

	CreatedAt time.Time
	UpdatedAt time.Time
}
