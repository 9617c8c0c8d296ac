package domain

import "strings"

// Resolver answers reference lookups built once from airlines.csv and
// airports.csv. It is immutable after construction and safe for concurrent use.
type Resolver struct {
	airlines     []Airline
	airlineNames map[string]string
	cities       map[string]string
	coords       map[string]Coord
}

// NewResolver indexes the reference tables. Later duplicates of a code win,
// matching a dict built from the rows in file order.
func NewResolver(airlines []Airline, airports []Airport) *Resolver {
	r := &Resolver{
		airlines:     make([]Airline, 0, len(airlines)),
		airlineNames: make(map[string]string, len(airlines)),
		cities:       make(map[string]string, len(airports)),
		coords:       make(map[string]Coord, len(airports)),
	}

	position := make(map[string]int, len(airlines))
	for _, a := range airlines {
		if a.Code == "" {
			continue
		}
		if i, seen := position[a.Code]; seen {
			r.airlines[i] = a
		} else {
			position[a.Code] = len(r.airlines)
			r.airlines = append(r.airlines, a)
		}
		r.airlineNames[a.Code] = a.Name
	}

	for _, ap := range airports {
		if ap.Code == "" {
			continue
		}
		if city, ok := ap.City.Get(); ok && strings.TrimSpace(city) != "" {
			r.cities[ap.Code] = city
		} else {
			delete(r.cities, ap.Code)
		}
		lat, okLat := ap.Latitude.Get()
		lon, okLon := ap.Longitude.Get()
		if okLat && okLon {
			r.coords[ap.Code] = Coord{Lat: lat, Lon: lon}
		} else {
			delete(r.coords, ap.Code)
		}
	}

	return r
}

// AirlineName returns the display name for an airline code.
func (r *Resolver) AirlineName(code string) (string, bool) {
	name, ok := r.airlineNames[code]
	return name, ok
}

// City returns the city served by an airport code.
func (r *Resolver) City(code string) (string, bool) {
	city, ok := r.cities[code]
	return city, ok
}

// Coords returns the position of an airport. It is defined only when both
// latitude and longitude are known, so it doubles as a "mappable" test.
func (r *Resolver) Coords(code string) (Coord, bool) {
	c, ok := r.coords[code]
	return c, ok
}

// Airlines returns the airline reference rows in file order. The caller must
// not modify the returned slice.
func (r *Resolver) Airlines() []Airline {
	return r.airlines
}

// AirportCount returns the number of airports with a known city.
func (r *Resolver) AirportCount() int {
	return len(r.cities)
}

// MappableCount returns the number of airports with coordinates.
func (r *Resolver) MappableCount() int {
	return len(r.coords)
}
