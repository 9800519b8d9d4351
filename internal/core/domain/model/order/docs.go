// Package order provides the Order aggregate and the lifecycle state machine of the
// order scheduling service.
//
// The package includes:
//   - Order: The aggregate root holding the scheduling-relevant fields of an order
//     (status, creation and payment timestamps, optional product)
//   - Status: The five pipeline statuses submitted, paid, in_production, shipping, delivered
//   - Stage and StageStatus: The two tracked stages and their derived pending/in_progress/done state
//
// Key business rules:
//   - Orders are created in the submitted status with a creation timestamp
//   - paidAt is set exactly once
//   - Administrative status writes may set any valid status, including moving backwards;
//     stage statuses and the current stage are always derived from whatever status holds
package order
