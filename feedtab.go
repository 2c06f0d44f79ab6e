// Package feedtab turns saved LinkedIn activity feed pages into tables.
// It classifies a page as a posts feed or a comments feed, extracts one
// normalized record per content block, and hands the records to a writer
// that persists them as a workbook or database rows.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, xlsx/).
package feedtab
