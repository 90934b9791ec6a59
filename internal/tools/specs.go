package tools

// Spec describes a tool to a tool-calling orchestrator: its name, what it
// does and the JSON schema of its argument object.
type Spec struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

func objectSchema(props map[string]any, required ...string) map[string]any {
	s := map[string]any{"type": "object", "properties": props}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// Specs returns the declarations for every tool Execute understands, in a
// stable order suitable for handing to an orchestrator verbatim.
func Specs() []Spec {
	return []Spec{
		{
			Name:        ToolSearchRestaurants,
			Description: "Search restaurants by cuisine, location, capacity and seating type. Results are ordered by average rating, best first.",
			Parameters: objectSchema(map[string]any{
				"cuisines":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"locations":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"min_capacity":  map[string]any{"type": "integer"},
				"max_capacity":  map[string]any{"type": "integer"},
				"seating_types": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			}),
		},
		{
			Name:        ToolCheckAvailability,
			Description: "Check whether a restaurant can seat a party at a given time slot. Advisory only: availability may change before a reservation is made.",
			Parameters: objectSchema(map[string]any{
				"restaurant_id": map[string]any{"type": "integer"},
				"datetime_iso":  map[string]any{"type": "string", "description": "Canonical slot, YYYY-MM-DD HH:MM"},
				"party_size":    map[string]any{"type": "integer"},
			}, "restaurant_id", "datetime_iso", "party_size"),
		},
		{
			Name:        ToolMakeReservation,
			Description: "Reserve a table. Accepts a canonical slot or free-form text such as 'tomorrow at 7pm'; the slot is normalized before booking.",
			Parameters: objectSchema(map[string]any{
				"restaurant_id": map[string]any{"type": "integer"},
				"datetime_iso":  map[string]any{"type": "string"},
				"party_size":    map[string]any{"type": "integer"},
				"user_name":     map[string]any{"type": "string"},
				"contact":       map[string]any{"type": "string"},
				"seating_type":  map[string]any{"type": "string"},
			}, "restaurant_id", "datetime_iso", "party_size", "user_name", "contact"),
		},
		{
			Name:        ToolCancelReservation,
			Description: "Cancel a confirmed reservation by its code. Cancelling twice is an error.",
			Parameters: objectSchema(map[string]any{
				"reservation_code": map[string]any{"type": "string"},
			}, "reservation_code"),
		},
		{
			Name:        ToolListReservations,
			Description: "List all reservations made under a contact, most recent slot first.",
			Parameters: objectSchema(map[string]any{
				"contact": map[string]any{"type": "string"},
			}, "contact"),
		},
	}
}
