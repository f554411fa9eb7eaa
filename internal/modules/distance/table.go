// README: Static campus distance table and landmark registry.
package distance

// Location is a fixed campus point of interest. The set is part of the
// deployment configuration and never changes at runtime.
type Location struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

var campusLocations = []Location{
	{Key: "main-gate", Label: "Main Gate"},
	{Key: "library", Label: "University Library"},
	{Key: "hostels", Label: "Student Hostels"},
	{Key: "dining-hall", Label: "Dining Hall"},
	{Key: "admin-block", Label: "Administration Block"},
	{Key: "sports-complex", Label: "Sports Complex"},
	{Key: "mbarara-town", Label: "Mbarara Town Center"},
	{Key: "hospital", Label: "Mbarara Regional Hospital"},
}

// campusDistances is a directed lookup: table[origin][destination] in km.
// Coverage is deliberately sparse and not guaranteed symmetric — some pairs
// differ by direction of travel and some reverse legs were never surveyed.
// Absent pairs fall back to DefaultKm.
var campusDistances = map[string]map[string]float64{
	"main-gate": {
		"library":        1.5,
		"hostels":        2.1,
		"dining-hall":    1.8,
		"admin-block":    0.9,
		"sports-complex": 2.8,
		"mbarara-town":   5.2,
		"hospital":       4.1,
	},
	"library": {
		"main-gate":      1.5,
		"hostels":        1.2,
		"dining-hall":    0.8,
		"admin-block":    1.1,
		"sports-complex": 2.1,
		"mbarara-town":   4.8,
		"hospital":       3.8,
	},
	"hostels": {
		"main-gate":      2.1,
		"library":        1.2,
		"dining-hall":    0.8,
		"admin-block":    1.8,
		"sports-complex": 1.5,
		"mbarara-town":   4.2,
		"hospital":       3.2,
	},
}
