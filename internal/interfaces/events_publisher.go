package interfaces

// EventPublisher is the sink for audit events emitted after completed
// balance-changing operations.
type EventPublisher interface {
	Publish(topic string, event any) error
}
