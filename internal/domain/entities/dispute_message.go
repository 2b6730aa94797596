package entities

import "time"

type SenderType string

const (
	SenderTypeClient   SenderType = "client"
	SenderTypeArtisan  SenderType = "artisan"
	SenderTypeMediator SenderType = "mediator"
	SenderTypeSystem   SenderType = "system"
)

// DisputeMessage is one entry of a dispute thread. Internal messages are only
// readable by the assigned mediator.
type DisputeMessage struct {
	ID          string
	DisputeID   string
	SenderID    string
	SenderType  SenderType
	Message     string
	Attachments []string
	IsInternal  bool
	CreatedAt   time.Time
}

type DisputeEventType string

const (
	DisputeEventOpened            DisputeEventType = "opened"
	DisputeEventArtisanResponded  DisputeEventType = "artisan_responded"
	DisputeEventResponseRequested DisputeEventType = "response_requested"
	DisputeEventProposalAccepted  DisputeEventType = "proposal_accepted"
	DisputeEventMediationStarted  DisputeEventType = "mediation_started"
	DisputeEventResolved          DisputeEventType = "resolved"
	DisputeEventEscalated         DisputeEventType = "escalated"
	DisputeEventWithdrawn         DisputeEventType = "withdrawn"
	DisputeEventClosed            DisputeEventType = "closed"
	DisputeEventMessageAdded      DisputeEventType = "message_added"
	DisputeEventRefundIssued      DisputeEventType = "refund_issued"
)

// DisputeTimelineEvent is an append-only audit entry for a dispute.
type DisputeTimelineEvent struct {
	ID          string
	DisputeID   string
	Type        DisputeEventType
	ActorID     string
	Description string
	Metadata    map[string]string
	CreatedAt   time.Time
}
