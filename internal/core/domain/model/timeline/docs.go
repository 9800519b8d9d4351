// Package timeline holds the immutable records written against an order: timeline
// entries shown to the customer and production updates posted by the workshop.
//
// Records are append-only. Once created they are never modified or deleted, and
// every new record is published to the order's realtime room after it is stored.
package timeline
