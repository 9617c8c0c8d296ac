package charts

import (
	"fmt"

	"github.com/couchcryptid/flight-delay-dashboard/internal/analytics"
	"github.com/couchcryptid/flight-delay-dashboard/internal/domain"
)

// Definition describes one chart and how to build it.
type Definition struct {
	ID     string     `json:"id"`
	Page   Page       `json:"page"`
	Title  string     `json:"title"`
	Kind   Kind       `json:"kind"`
	Filter FilterKind `json:"filter"`
	Wide   bool       `json:"wide,omitempty"`

	render func(t *domain.Table, f Filter) Spec
}

// Build computes the chart for t. The filter is normalized first, so inputs
// the chart does not use never affect the result.
func (d *Definition) Build(t *domain.Table, f Filter) Spec {
	f = d.Normalize(f)
	s := d.render(t, f)
	s.ID = d.ID
	s.Page = d.Page
	s.Title = d.titleFor(f)
	s.Kind = d.Kind
	s.FilterKind = d.Filter
	s.Filter = f
	if s.ColorBy == "" {
		s.ColorBy = ColorFixed
	}
	return s
}

// Normalize clears the filter fields the chart ignores.
func (d *Definition) Normalize(f Filter) Filter {
	switch d.Filter {
	case FilterAirline:
		return Filter{Airline: f.Airline}
	case FilterHour:
		return Filter{Hour: f.Hour}
	default:
		return Filter{}
	}
}

func (d *Definition) titleFor(f Filter) string {
	if d.ID == "delay_distribution" {
		return fmt.Sprintf("Delays at %d:00", f.Hour)
	}
	return d.Title
}

// Catalog returns every chart definition in page order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

var catalog = []Definition{
	// Overview.
	{
		ID: "airline_market_share", Page: PageOverview, Title: "Airline Market Share",
		Kind: KindBar, Filter: FilterAirline,
		render: func(t *domain.Table, f Filter) Spec {
			s := Spec{
				Orientation: Horizontal,
				Labels:      Labels{X: "Flights", Y: "Airline"},
				Points:      analytics.MarketShare(t, f.Airline),
				ColorBy:     ColorFixed,
				Color:       colorSteelBlue,
			}
			if f.Airline != "" {
				s.ColorBy = ColorTag
				s.ColorMap = map[string]string{
					analytics.TagSelected: colorDarkRed,
					analytics.TagOther:    colorLightBlue,
				}
			}
			return s
		},
	},
	{
		ID: "top_routes", Page: PageOverview, Title: "Top 20 Routes",
		Kind: KindBar, Filter: FilterAirline,
		render: func(t *domain.Table, f Filter) Spec {
			return Spec{
				Orientation: Vertical,
				Labels:      Labels{X: "Route", Y: "Count"},
				TickAngle:   -45,
				Points:      analytics.TopRoutes(t, f.Airline),
				ColorBy:     ColorValue,
				ColorScale:  scaleBlugrn,
			}
		},
	},
	{
		ID: "flight_map", Page: PageOverview, Title: "Flight Arcs Over USA (Airports Labeled)",
		Kind: KindArcMap, Filter: FilterAirline, Wide: true,
		render: func(t *domain.Table, f Filter) Spec {
			geo := analytics.FlightMap(t, f.Airline)
			return Spec{Geo: &geo, Height: 550, ColorBy: ColorSeries, Palette: paletteSet3}
		},
	},
	{
		ID: "flights_by_day", Page: PageOverview, Title: "Flights by Day of Week",
		Kind: KindBar, Filter: FilterAirline,
		render: func(t *domain.Table, f Filter) Spec {
			return Spec{
				Orientation: Vertical,
				Labels:      Labels{X: "Day", Y: "Flights", Value: "Flights"},
				Points:      analytics.FlightsByDay(t, f.Airline),
				ColorBy:     ColorValue,
				ColorScale:  scaleViridisR,
			}
		},
	},
	{
		ID: "flights_by_month", Page: PageOverview, Title: "Flights by Month",
		Kind: KindLine, Filter: FilterAirline,
		render: func(t *domain.Table, f Filter) Spec {
			return Spec{
				Labels: Labels{X: "Month", Y: "Flights"},
				Points: analytics.FlightsByMonth(t, f.Airline),
				Color:  colorDodgerBlue,
			}
		},
	},
	{
		ID: "origin_cities", Page: PageOverview, Title: "Top Origin Cities (Treemap)",
		Kind: KindTreemap, Filter: FilterAirline,
		render: func(t *domain.Table, f Filter) Spec {
			return Spec{
				Labels:     Labels{X: "City", Value: "Count"},
				Points:     analytics.TopOriginCities(t, f.Airline),
				ColorBy:    ColorValue,
				ColorScale: scaleBluered,
			}
		},
	},
	{
		ID: "destination_cities", Page: PageOverview, Title: "Top Destination Cities (Treemap)",
		Kind: KindTreemap, Filter: FilterAirline,
		render: func(t *domain.Table, f Filter) Spec {
			return Spec{
				Labels:     Labels{X: "City", Value: "Count"},
				Points:     analytics.TopDestinationCities(t, f.Airline),
				ColorBy:    ColorValue,
				ColorScale: scaleBluered,
			}
		},
	},
	{
		ID: "busiest_airports", Page: PageOverview, Title: "Top 10 Busiest Airports",
		Kind: KindBar, Filter: FilterAirline, Wide: true,
		render: func(t *domain.Table, f Filter) Spec {
			return Spec{
				Orientation: Vertical,
				Labels:      Labels{X: "Airport", Y: "Flights"},
				Points:      analytics.BusiestAirports(t, f.Airline),
				ColorBy:     ColorLabel,
				Palette:     paletteBold,
			}
		},
	},

	// Delay analysis.
	{
		ID: "delay_distribution", Page: PageDelays, Title: "Delays by Airline",
		Kind: KindBox, Filter: FilterHour,
		render: func(t *domain.Table, f Filter) Spec {
			return Spec{
				Labels:  Labels{X: "Airline", Y: "Delay (min)"},
				Boxes:   analytics.DelayDistribution(t, f.Hour),
				ColorBy: ColorLabel,
				Palette: paletteBold,
			}
		},
	},
	{
		ID: "delay_by_hour", Page: PageDelays, Title: "Average Delay by Hour",
		Kind: KindLine, Filter: FilterNone,
		render: func(t *domain.Table, _ Filter) Spec {
			return Spec{
				Labels:  Labels{X: "Hour of Day", Y: "Avg Delay (min)"},
				Series:  analytics.DelayByHour(t),
				ColorBy: ColorSeries,
				Palette: paletteBold,
			}
		},
	},
	{
		ID: "delay_spread", Page: PageDelays, Title: "Delay Distribution by Airline (Delays -10 to 180 mins)",
		Kind: KindViolin, Filter: FilterHour,
		render: func(t *domain.Table, f Filter) Spec {
			return Spec{
				Labels:  Labels{X: "Airline", Y: "Departure Delay (min)"},
				Samples: analytics.DelaySpread(t, f.Hour),
				ColorBy: ColorLabel,
				Palette: palettePrism,
			}
		},
	},
	{
		ID: "delay_heatmap", Page: PageDelays, Title: "Average Delay Heatmap (Hour × Airline)",
		Kind: KindHeatmap, Filter: FilterNone,
		render: func(t *domain.Table, _ Filter) Spec {
			g := analytics.DelayHeatmap(t)
			return Spec{
				Labels:     Labels{X: "Hour of Day", Y: "Airline", Value: "Avg Delay (min)"},
				Grid:       &g,
				ColorBy:    ColorValue,
				ColorScale: scalePlasma,
			}
		},
	},
	{
		ID: "delay_by_distance", Page: PageDelays, Title: "Average Delay by Distance Range",
		Kind: KindBar, Filter: FilterHour,
		render: func(t *domain.Table, f Filter) Spec {
			return Spec{
				Orientation: Vertical,
				Labels:      Labels{X: "Distance (miles)", Y: "Avg Delay (min)"},
				Points:      analytics.DelayByDistance(t, f.Hour),
				Color:       colorSteelBlue,
			}
		},
	},
	{
		ID: "delay_by_airline", Page: PageDelays, Title: "Average Delay per Airline",
		Kind: KindBar, Filter: FilterNone,
		render: func(t *domain.Table, _ Filter) Spec {
			return Spec{
				Orientation: Vertical,
				Labels:      Labels{X: "Airline", Y: "Avg Delay (min)"},
				Points:      analytics.DelayByAirline(t),
				ColorBy:     ColorLabel,
				Palette:     paletteBold,
			}
		},
	},
	{
		ID: "delay_causes", Page: PageDelays, Title: "Average Delay by Cause per Airline",
		Kind: KindGroupedBar, Filter: FilterNone,
		render: func(t *domain.Table, _ Filter) Spec {
			return Spec{
				Labels:  Labels{X: "Airline", Y: "Minutes", Value: "Cause"},
				Series:  analytics.DelayCauses(t),
				ColorBy: ColorSeries,
				Palette: paletteSet1,
			}
		},
	},
	{
		ID: "on_time_ratio", Page: PageDelays, Title: "On-Time vs Delayed",
		Kind: KindPie, Filter: FilterHour,
		render: func(t *domain.Table, f Filter) Spec {
			return Spec{
				Labels:  Labels{X: "Status", Value: "Count"},
				Points:  analytics.OnTimeRatio(t, f.Hour),
				ColorBy: ColorLabel,
				Palette: paletteBold,
			}
		},
	},

	// Cancelled flights.
	{
		ID: "cancellations_by_airline", Page: PageCancelled, Title: "Cancelled Flights per Airline",
		Kind: KindBar, Filter: FilterNone,
		render: func(t *domain.Table, _ Filter) Spec {
			return Spec{
				Orientation: Horizontal,
				Labels:      Labels{X: "Cancelled", Y: "Airline"},
				Points:      analytics.CancellationsByAirline(t),
				ColorBy:     ColorLabel,
				Palette:     paletteSet3,
			}
		},
	},
	{
		ID: "cancelled_vs_completed", Page: PageCancelled, Title: "Cancelled vs Completed Flights",
		Kind: KindPie, Filter: FilterNone,
		render: func(t *domain.Table, _ Filter) Spec {
			return Spec{
				Labels:  Labels{X: "Status", Value: "Count"},
				Points:  analytics.CancelledVsCompleted(t),
				ColorBy: ColorLabel,
				Palette: paletteBold,
			}
		},
	},
	{
		ID: "cancellation_rate_by_day", Page: PageCancelled, Title: "Cancellation Rate by Day",
		Kind: KindBar, Filter: FilterNone,
		render: func(t *domain.Table, _ Filter) Spec {
			return Spec{
				Orientation: Vertical,
				Labels:      Labels{X: "Day", Y: "% Cancelled"},
				Points:      analytics.CancellationRateByDay(t),
				ColorBy:     ColorLabel,
				Palette:     paletteBold,
			}
		},
	},
	{
		ID: "cancellation_heatmap", Page: PageCancelled, Title: "Cancellation Rate Heatmap",
		Kind: KindHeatmap, Filter: FilterNone,
		render: func(t *domain.Table, _ Filter) Spec {
			g := analytics.CancellationHeatmap(t)
			return Spec{
				Labels:     Labels{X: "Day", Y: "Airline", Value: "% Cancelled"},
				Grid:       &g,
				ColorBy:    ColorValue,
				ColorScale: scalePlasma,
			}
		},
	},
	{
		ID: "cancellation_reasons", Page: PageCancelled, Title: "Reasons for Cancellation",
		Kind: KindPie, Filter: FilterNone,
		render: func(t *domain.Table, _ Filter) Spec {
			return Spec{
				Labels:  Labels{X: "Reason", Value: "Count"},
				Points:  analytics.CancellationReasons(t),
				ColorBy: ColorLabel,
				Palette: paletteBold,
			}
		},
	},
	{
		ID: "cancelled_airports", Page: PageCancelled, Title: "Top Cancelled Airports",
		Kind: KindBar, Filter: FilterNone,
		render: func(t *domain.Table, _ Filter) Spec {
			return Spec{
				Orientation: Vertical,
				Labels:      Labels{X: "City", Y: "Cancelled"},
				Points:      analytics.CancelledAirports(t),
				ColorBy:     ColorLabel,
				Palette:     paletteSet3,
			}
		},
	},
	{
		ID: "cancelled_map", Page: PageCancelled, Title: "Cancelled Flights Map (Airports & Colored Arcs)",
		Kind: KindArcMap, Filter: FilterNone,
		render: func(t *domain.Table, _ Filter) Spec {
			geo := analytics.CancelledMap(t)
			return Spec{Geo: &geo, Height: 550, ColorBy: ColorSeries, Palette: paletteSet2}
		},
	},
	{
		ID: "cancelled_routes", Page: PageCancelled, Title: "Top Cancelled Routes",
		Kind: KindBar, Filter: FilterNone,
		render: func(t *domain.Table, _ Filter) Spec {
			return Spec{
				Orientation: Vertical,
				Labels:      Labels{X: "Route", Y: "Cancelled"},
				TickAngle:   -45,
				Points:      analytics.CancelledRoutes(t),
				ColorBy:     ColorValue,
				ColorScale:  scaleReds,
			}
		},
	},
	{
		ID: "route_cancellation_rates", Page: PageCancelled, Title: "Routes with Highest Cancellation Rates (%)",
		Kind: KindBar, Filter: FilterNone,
		render: func(t *domain.Table, _ Filter) Spec {
			return Spec{
				Orientation: Horizontal,
				Labels:      Labels{X: "Rate", Y: "Route"},
				Points:      analytics.RouteCancellationRates(t),
				ColorBy:     ColorValue,
				ColorScale:  scaleOrRd,
			}
		},
	},
	{
		ID: "cancelled_tails", Page: PageCancelled, Title: "Most Cancelled Aircraft (Tail)",
		Kind: KindBar, Filter: FilterNone,
		render: func(t *domain.Table, _ Filter) Spec {
			return Spec{
				Orientation: Vertical,
				Labels:      Labels{X: "Tail Number", Y: "Cancellations"},
				Points:      analytics.CancelledTails(t),
				ColorBy:     ColorValue,
				ColorScale:  scaleSunset,
			}
		},
	},
	{
		ID: "hourly_cancellations", Page: PageCancelled, Title: "Hourly Cancelled Flights by Airline",
		Kind: KindAnimatedBar, Filter: FilterNone, Wide: true,
		render: func(t *domain.Table, _ Filter) Spec {
			frames := analytics.HourlyCancellations(t)
			return Spec{
				Labels:  Labels{X: "Airline", Y: "Count", Value: "Hour"},
				Frames:  &frames,
				ColorBy: ColorLabel,
				Palette: paletteSet3,
			}
		},
	},
}
