// Package preferences stores the display preferences of the dashboard user.
package preferences

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Key is the blob storage key holding the persisted preferences.
const Key = "userPreferences"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	ViewGrid = "grid"
	ViewList = "list"

	PaginationInfinite    = "infinite"
	PaginationTraditional = "traditional"
)

// Preferences controls how the dashboard presents documents.
type Preferences struct {
	Theme          string `json:"theme"`
	ViewMode       string `json:"viewMode"`
	PaginationMode string `json:"paginationMode"`
	ItemsPerPage   int    `json:"itemsPerPage"`
}

// Default returns the preferences of a first-time user.
func Default() Preferences {
	return Preferences{
		Theme:          ThemeLight,
		ViewMode:       ViewGrid,
		PaginationMode: PaginationInfinite,
		ItemsPerPage:   12,
	}
}

func (p Preferences) validate(maxItems int) error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Theme, validation.Required, validation.In(ThemeLight, ThemeDark)),
		validation.Field(&p.ViewMode, validation.Required, validation.In(ViewGrid, ViewList)),
		validation.Field(&p.PaginationMode, validation.Required, validation.In(PaginationInfinite, PaginationTraditional)),
		validation.Field(&p.ItemsPerPage, validation.Required, validation.Min(1), validation.Max(maxItems)),
	)
}

// withDefaults fills fields missing from a stored value.
func (p Preferences) withDefaults() Preferences {
	def := Default()
	if p.Theme == "" {
		p.Theme = def.Theme
	}
	if p.ViewMode == "" {
		p.ViewMode = def.ViewMode
	}
	if p.PaginationMode == "" {
		p.PaginationMode = def.PaginationMode
	}
	if p.ItemsPerPage == 0 {
		p.ItemsPerPage = def.ItemsPerPage
	}
	return p
}

// Update is a partial Preferences. Nil fields are left unchanged.
type Update struct {
	Theme          *string `json:"theme,omitempty"`
	ViewMode       *string `json:"viewMode,omitempty"`
	PaginationMode *string `json:"paginationMode,omitempty"`
	ItemsPerPage   *int    `json:"itemsPerPage,omitempty"`
}

func (p Preferences) merge(u Update) Preferences {
	if u.Theme != nil {
		p.Theme = *u.Theme
	}
	if u.ViewMode != nil {
		p.ViewMode = *u.ViewMode
	}
	if u.PaginationMode != nil {
		p.PaginationMode = *u.PaginationMode
	}
	if u.ItemsPerPage != nil {
		p.ItemsPerPage = *u.ItemsPerPage
	}
	return p
}

func toggle(theme string) string {
	if theme == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
