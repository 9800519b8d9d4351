// Package eventhub is an in-process publish/subscribe registry keyed by room.
//
// A Subscriber owns a bounded queue. Publish never blocks: when a subscriber's queue is
// full the event is dropped for that subscriber and counted. Events published to one
// room reach each member in publish order.
//
// Example:
//
//	hub := eventhub.NewHub()
//	sub := hub.Subscribe(64)
//	defer hub.Disconnect(sub)
//
//	if err := hub.Join(sub, eventhub.OrderRoom(orderID)); err != nil {
//	    return err
//	}
//	for event := range sub.Events() {
//	    send(event)
//	}
package eventhub
