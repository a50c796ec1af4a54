package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultSize = "large"
)

// Attributes are the externally settable properties of an alert.
type Attributes struct {
	Title     string `yaml:"title" json:"title"`         // Optional heading.
	Level     Level  `yaml:"level" json:"level"`         // info, success, warning or error.
	Icon      string `yaml:"icon" json:"icon"`           // Explicit icon; overrides the default icon.
	Size      string `yaml:"size" json:"size"`           // CSS font-size, also passed to the icon renderer.
	ShowIcon  bool   `yaml:"show-icon" json:"showIcon"`  // Use the per-level default icon if Icon is empty.
	Permanent bool   `yaml:"permanent" json:"permanent"` // If true, the alert cannot be dismissed.
	Primary   bool   `yaml:"primary" json:"primary"`     // Solid variant of the theme.
	Center    bool   `yaml:"center" json:"center"`       // Center the icon and content row.
}

func DefaultAttributes() Attributes {
	return Attributes{
		Level: DefaultLevel,
		Size:  DefaultSize,
	}
}

// WithDefaults fills an empty Level and Size with their defaults.
func (a Attributes) WithDefaults() Attributes {
	if a.Level == "" {
		a.Level = DefaultLevel
	}
	if a.Size == "" {
		a.Size = DefaultSize
	}

	return a
}

// AttributesFromTag builds Attributes from the attributes of an <alert-view> tag.
//
// Names are matched case-insensitively. Boolean attributes follow HTML semantics: the
// attribute being present means true, unless its value is a false literal ("false", "0").
// The level is taken verbatim; an unrecognized level renders without a theme.
func AttributesFromTag(tagAttrs map[string]string) (Attributes, error) {
	attrs := DefaultAttributes()

	for name, value := range tagAttrs {
		switch strings.ToLower(name) {
		case "title":
			attrs.Title = value
		case "level":
			attrs.Level = Level(value)
		case "icon":
			attrs.Icon = value
		case "size":
			if value != "" {
				attrs.Size = value
			}
		case "showicon", "show-icon":
			b, err := parseBooleanAttribute(name, value)
			if err != nil {
				return attrs, err
			}
			attrs.ShowIcon = b
		case "permanent":
			b, err := parseBooleanAttribute(name, value)
			if err != nil {
				return attrs, err
			}
			attrs.Permanent = b
		case "primary":
			b, err := parseBooleanAttribute(name, value)
			if err != nil {
				return attrs, err
			}
			attrs.Primary = b
		case "center":
			b, err := parseBooleanAttribute(name, value)
			if err != nil {
				return attrs, err
			}
			attrs.Center = b
		}
	}

	return attrs, nil
}

func parseBooleanAttribute(name string, value string) (bool, error) {
	// <alert-view permanent> and <alert-view permanent="permanent">
	if value == "" || strings.EqualFold(value, name) {
		return true, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid value \"%s\" for boolean attribute \"%s\": %w", value, name, err)
	}

	return b, nil
}
