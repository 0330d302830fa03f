package model

// Variant is the classification of an event.
type Variant string

const (
	VariantStartCommand Variant = "START_COMMAND"
	VariantForwarded    Variant = "FORWARDED"
	VariantPlain        Variant = "PLAIN"
	VariantIgnored      Variant = "IGNORED"
)

// OutcomeStatus is the terminal state of handling one event.
type OutcomeStatus string

const (
	// OutcomeSkipped means the event produced no reply on purpose.
	OutcomeSkipped OutcomeStatus = "SKIPPED"
	// OutcomeDelivered means the reply was accepted by the transport.
	OutcomeDelivered OutcomeStatus = "DELIVERED"
	// OutcomeDeliveryFailed means the transport rejected or timed out.
	OutcomeDeliveryFailed OutcomeStatus = "DELIVERY_FAILED"
	// OutcomeHandlingFailed means an internal fault was contained.
	OutcomeHandlingFailed OutcomeStatus = "HANDLING_FAILED"
)

// Outcome is the result of dispatching one event. Faults never escape the
// dispatcher; they surface here as a status plus reason.
type Outcome struct {
	Status  OutcomeStatus
	Variant Variant
	Reason  string
}
