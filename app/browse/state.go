package browse

import (
	"slices"
	"strings"

	"github.com/TetianaVeremchuk/product-categories/models"
)

// FilterState holds the viewer's current criteria. The zero value is the
// initial state: every product is shown.
type FilterState struct {
	SelectedUser       *models.User
	Query              string
	SelectedCategories []uint
}

// InitialState is the state a new browsing session starts in.
func InitialState() FilterState {
	return FilterState{}
}

// NormalizeQuery trims and lower-cases raw search text.
func NormalizeQuery(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// HasCategory reports whether the category is part of the selection.
func (s FilterState) HasCategory(id uint) bool {
	return slices.Contains(s.SelectedCategories, id)
}

// Action is a discrete change of the filter state.
type Action interface {
	apply(FilterState) FilterState
}

type (
	SelectUser         struct{ User models.User }
	ResetUserSelection struct{}
	SetQuery           struct{ Raw string }
	ClearQuery         struct{}
	ToggleCategory     struct{ ID uint }
	ResetCategories    struct{}
	ResetAll           struct{}
)

// Reduce returns the state that results from applying action to state.
// state itself is left untouched.
func Reduce(state FilterState, action Action) FilterState {
	state.SelectedCategories = slices.Clone(state.SelectedCategories)
	if action == nil {
		return state
	}
	return action.apply(state)
}

func (a SelectUser) apply(s FilterState) FilterState {
	u := a.User
	s.SelectedUser = &u
	return s
}

func (ResetUserSelection) apply(s FilterState) FilterState {
	s.SelectedUser = nil
	return s
}

func (a SetQuery) apply(s FilterState) FilterState {
	s.Query = NormalizeQuery(a.Raw)
	return s
}

func (ClearQuery) apply(s FilterState) FilterState {
	s.Query = ""
	return s
}

func (a ToggleCategory) apply(s FilterState) FilterState {
	if i := slices.Index(s.SelectedCategories, a.ID); i >= 0 {
		s.SelectedCategories = slices.Delete(s.SelectedCategories, i, i+1)
	} else {
		s.SelectedCategories = append(s.SelectedCategories, a.ID)
	}
	return s
}

func (ResetCategories) apply(s FilterState) FilterState {
	s.SelectedCategories = nil
	return s
}

func (ResetAll) apply(FilterState) FilterState {
	return InitialState()
}
