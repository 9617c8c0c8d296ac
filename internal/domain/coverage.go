package domain

// Coverage summarizes how well the flight table resolves against the
// reference tables.
type Coverage struct {
	Flights   int `json:"flights"`
	Cancelled int `json:"cancelled"`
	Airlines  int `json:"airlines"`
	Airports  int `json:"airports"`
	Mappable  int `json:"mappable_airports"`

	// Distinct codes used by flights that the reference tables cannot resolve.
	UnresolvedAirlines int `json:"unresolved_airlines"`
	UnresolvedAirports int `json:"unresolved_airports"`
	UnmappableAirports int `json:"unmappable_airports"`

	FlightsWithoutRoute int `json:"flights_without_route"`
}

// Coverage walks the table once and counts unresolved references.
func (t *Table) Coverage() Coverage {
	c := Coverage{
		Flights:  len(t.Flights),
		Airlines: len(t.Ref.Airlines()),
		Airports: t.Ref.AirportCount(),
		Mappable: t.Ref.MappableCount(),
	}

	badAirlines := make(map[string]struct{})
	badAirports := make(map[string]struct{})
	unmappable := make(map[string]struct{})

	for i := range t.Flights {
		f := &t.Flights[i]
		if f.Cancelled {
			c.Cancelled++
		}
		if !f.AirlineName.Present() {
			badAirlines[f.Airline] = struct{}{}
		}
		for _, code := range [2]string{f.Origin, f.Destination} {
			if _, ok := t.Ref.City(code); !ok {
				badAirports[code] = struct{}{}
			}
			if _, ok := t.Ref.Coords(code); !ok {
				unmappable[code] = struct{}{}
			}
		}
		if !f.Route.Present() {
			c.FlightsWithoutRoute++
		}
	}

	c.UnresolvedAirlines = len(badAirlines)
	c.UnresolvedAirports = len(badAirports)
	c.UnmappableAirports = len(unmappable)
	return c
}
