// Package parse turns raw mobile-money SMS notifications into structured
// transaction records.
//
// The provider's notification templates are inconsistent and overlapping, so
// extraction is built from independent first-match scanners plus an ordered
// rule table for classification. Every failure degrades to an absent field;
// a message always yields exactly one record with exactly one type.
package parse
