package dictionary

// Neighborhood maps a Chicago neighborhood name to its ZIP codes.
// The first ZIP is the one used when a query names the neighborhood.
type Neighborhood struct {
	Name string
	Zips []string
}

// Neighborhoods is ordered; the first matching entry wins, so lookups are
// deterministic when names overlap ("park" appears in several).
var Neighborhoods = []Neighborhood{
	{"albany park", []string{"60625"}},
	{"andersonville", []string{"60640"}},
	{"austin", []string{"60644", "60651"}},
	{"avondale", []string{"60618"}},
	{"back of the yards", []string{"60609"}},
	{"belmont cragin", []string{"60639"}},
	{"bridgeport", []string{"60608", "60616"}},
	{"brighton park", []string{"60632"}},
	{"chinatown", []string{"60616"}},
	{"edgewater", []string{"60660"}},
	{"englewood", []string{"60621"}},
	{"gage park", []string{"60632"}},
	{"humboldt park", []string{"60622", "60647"}},
	{"hyde park", []string{"60615"}},
	{"irving park", []string{"60618"}},
	{"lakeview", []string{"60657"}},
	{"lincoln park", []string{"60614"}},
	{"lincoln square", []string{"60625"}},
	{"little village", []string{"60623"}},
	{"logan square", []string{"60647"}},
	{"north lawndale", []string{"60623"}},
	{"pilsen", []string{"60608"}},
	{"portage park", []string{"60641"}},
	{"rogers park", []string{"60626"}},
	{"south shore", []string{"60649"}},
	{"uptown", []string{"60640"}},
	{"west ridge", []string{"60645"}},
	{"west town", []string{"60622"}},
	{"woodlawn", []string{"60637"}},
}
