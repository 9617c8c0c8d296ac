// Package domain models the US DOT on-time performance dataset for domestic
// flights (calendar year 2015) and the enrichment applied to it.
//
// # Data Source
//
// Three CSV files published by the Bureau of Transportation Statistics and
// redistributed as the "2015 Flight Delays and Cancellations" dataset:
//
//	flights.csv   one row per scheduled domestic flight (~5.8M rows)
//	airlines.csv  IATA_CODE, AIRLINE
//	airports.csv  IATA_CODE, AIRPORT, CITY, STATE, COUNTRY, LATITUDE, LONGITUDE
//
// The files are read once at startup by package dataset and never change for
// the life of the process.
//
// # Data Conventions
//
// Scheduled departure:
//
//	HHMM in 24-hour local time stored as an integer, e.g. 1510 = 15:10.
//	Leading zeros are dropped by the source: 555 = 05:55, 5 = 00:05.
//	The value is left-padded to four digits before the hour is taken,
//	so 555 yields hour 5, not 0. See [ScheduledHour].
//
// Day of week and month:
//
//	DAY_OF_WEEK is 1 (Monday) through 7 (Sunday).
//	MONTH is 1 (January) through 12 (December).
//
// Delays:
//
//	DEPARTURE_DELAY is signed minutes; negative means the flight left early.
//	The five cause columns (AIR_SYSTEM_DELAY, SECURITY_DELAY, AIRLINE_DELAY,
//	LATE_AIRCRAFT_DELAY, WEATHER_DELAY) are only populated for flights that
//	arrived 15 or more minutes late; elsewhere they are empty.
//
// Cancellations:
//
//	CANCELLED is 0 or 1. CANCELLATION_REASON is set only for cancelled flights:
//	A = Airline/Carrier, B = Weather, C = National Air System, D = Security.
//
// Airport codes:
//
//	October rows use numeric DOT airport ids instead of IATA codes for origin and
//	destination. Those codes are absent from airports.csv, so the affected
//	flights carry no city, no route label and never appear on a map.
//
// # Absent Values
//
// Every lookup across a reference boundary returns an explicit [Optional]. A
// missing airline name, city, coordinate or measurement is carried as absent
// and excluded by the aggregations that need it; it is never an error.
package domain
