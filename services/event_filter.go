package services

import (
	"net/url"

	"github.com/ssfi-digital/federation-portal/models"
)

// CategoryAll is the catch-all category of the events quick-filter bar.
const CategoryAll = "All"

// EventFilter is the state of one events-browsing session. It mirrors the
// shareable query parameters category, state and district.
type EventFilter struct {
	Category string `json:"category"`
	State    string `json:"state,omitempty"`
	District string `json:"district,omitempty"`
}

// DefaultFilter returns the unfiltered state.
func DefaultFilter() EventFilter {
	return EventFilter{Category: CategoryAll}
}

// FilterPatch carries the fields a single interaction wants to change. Nil
// means "leave as is".
type FilterPatch struct {
	Category *string `json:"category"`
	State    *string `json:"state"`
	District *string `json:"district"`
}

// ApplyFilter is the pure transition function of the filter state machine.
//
// Changing the state always clears the district: a district selection cannot
// outlive the state it belongs to, and the rule lives here rather than in
// callers. A district patched in the same step as a state is ignored for the
// same reason. Picking National from the quick-filter bar clears both
// drill-downs; picking State clears the district.
func ApplyFilter(current EventFilter, patch FilterPatch) EventFilter {
	next := current

	if patch.Category != nil {
		next.Category = *patch.Category
		switch next.Category {
		case string(models.CategoryNational):
			next.State = ""
			next.District = ""
		case string(models.CategoryState):
			next.District = ""
		}
	}

	if patch.State != nil {
		next.State = *patch.State
		next.District = ""
	} else if patch.District != nil {
		next.District = *patch.District
	}

	return next
}

// FilterEvents evaluates the filter as a conjunction over the event list.
// Events that carry no state (or district) of their own pass the state (or
// district) clause, so national events without a home state stay visible
// under a state drill-down. An empty result is a valid result; messaging is
// the caller's concern.
func FilterEvents(events []models.PublicEvent, f EventFilter) []models.PublicEvent {
	out := make([]models.PublicEvent, 0, len(events))
	for _, event := range events {
		if f.Category != "" && f.Category != CategoryAll && string(event.Category) != f.Category {
			continue
		}
		if f.State != "" && event.State != "" && event.State != f.State {
			continue
		}
		if f.District != "" && event.District != "" && event.District != f.District {
			continue
		}
		out = append(out, event)
	}
	return out
}

// ParseFilterQuery rebuilds a filter from shareable query parameters. States
// outside the fixed member-state list are ignored rather than applied.
func ParseFilterQuery(values url.Values) EventFilter {
	f := DefaultFilter()

	if cat := values.Get("category"); cat != "" {
		f.Category = cat
	}
	if st := values.Get("state"); st != "" && models.KnownState(st) {
		f.State = st
	}
	if dist := values.Get("district"); dist != "" {
		f.District = dist
	}
	return f
}

// FilterQueryValues is the inverse of ParseFilterQuery: the query parameters
// that reproduce the filter. The catch-all category is omitted.
func FilterQueryValues(f EventFilter) url.Values {
	values := url.Values{}
	if f.Category != "" && f.Category != CategoryAll {
		values.Set("category", f.Category)
	}
	if f.State != "" {
		values.Set("state", f.State)
	}
	if f.District != "" {
		values.Set("district", f.District)
	}
	return values
}
