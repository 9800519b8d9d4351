// Package calendar implements business-day arithmetic for the order scheduling service.
//
// The package includes:
//   - Weekdays: An immutable set of working weekdays
//   - Calendar: A value object pairing a working-day set with an advisory IANA timezone
//   - AddBusinessDays / CountWorkingDays: The stepping algorithms every projection is built on
//
// Business days are counted by stepping one calendar day at a time and checking the weekday
// of each step against the working-day set. The weekday is read from the UTC calendar day of
// the instant; the timezone is carried for display and is not applied to the arithmetic.
// All functions are pure and safe for concurrent use.
package calendar
