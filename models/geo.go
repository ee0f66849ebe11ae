package models

// States is the fixed list of member states the event filter recognises.
// Query parameters naming any other state are ignored on parse.
var States = []string{"Maharashtra", "Karnataka", "Delhi", "Haryana", "Tamil Nadu"}

// Districts maps each member state to its registered district units.
var Districts = map[string][]string{
	"Maharashtra": {"Pune", "Mumbai", "Nashik", "Nagpur", "Thane"},
	"Karnataka":   {"Bangalore", "Mysore", "Mangalore"},
	"Delhi":       {"New Delhi", "North Delhi", "South Delhi"},
	"Haryana":     {"Gurugram", "Faridabad"},
	"Tamil Nadu":  {"Chennai", "Coimbatore", "Madurai"},
}

// KnownState reports whether name is in the fixed state list.
func KnownState(name string) bool {
	for _, s := range States {
		if s == name {
			return true
		}
	}
	return false
}
