// Package pkguid generates unique identifiers behind small interfaces so
// callers never depend on a concrete scheme. String IDs (UUIDs) tag requests
// for correlation; numeric IDs (Snowflake) stamp domain events.
package pkguid
