// Package ingest acquires raw flight tables and parses them into the tabular model.
package ingest

// SampleData is the embedded raw flight dataset. It stands in for an external
// source (file, database, API) when no source is configured.
const SampleData = "Airline Code;DelayTimes;FlightCodes;To_From\n" +
	"Air Canada (!);[21, 40];20015.0;WAterLoo_NEwYork\n" +
	"<Air France> (12);[];;Montreal_TORONTO\n" +
	"(Porter Airways. );[60, 22, 87];20035.0;CALgary_Ottawa\n" +
	"12. Air France;[78, 66];;Ottawa_VANcouvER\n" +
	"Lufthansa;[12, 33];20055.0;london_MONtreal\n"
