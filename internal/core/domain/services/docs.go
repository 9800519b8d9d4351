// Package services provides the domain services of the order lifecycle scheduler.
// They hold no state and combine the calendar, lead-time and order models into
// projections that do not belong to a single aggregate.
//
// The package includes:
//   - StageScheduler: projects stage windows and the delivery window from a lead-time profile
//   - EtaCalculator: derives stage progress, remaining business days and lateness for an order
//
// Both are pure functions of their inputs and safe for concurrent use.
package services
