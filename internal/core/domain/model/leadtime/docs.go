// Package leadtime models the lead-time configuration that drives order stage projections.
//
// The package includes:
//   - Range: A validated min/max business-day budget for one stage
//   - Profile: The production and shipping ranges plus the business calendar they are counted on
//   - Override: A field-level partial profile used for administrative updates and per-product overrides
//
// Key business rules:
//   - Day counts are non-negative and bounded by MaxDays
//   - minDays never exceeds maxDays
//   - Applying an override replaces only the fields it carries and re-validates the result,
//     so an invalid merge never yields a Profile
package leadtime
