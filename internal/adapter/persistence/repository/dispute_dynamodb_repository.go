package repository

import (
	"context"
	"sort"

	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/domain/failure"
	"marketplace_trust/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDisputesTableName = "disputes"
	defaultDisputeLocksTable = "dispute_booking_locks"
	defaultDisputeLedger     = "dispute_ledger"

	mediatorIndex = "mediator_id-index"

	messageSortPrefix  = "message#"
	timelineSortPrefix = "timeline#"
)

type disputeItem struct {
	ID                string   `dynamodbav:"id"`
	BookingID         string   `dynamodbav:"booking_id"`
	EscrowID          string   `dynamodbav:"escrow_id,omitempty"`
	ClientID          string   `dynamodbav:"client_id"`
	ProviderID        string   `dynamodbav:"provider_id"`
	MediatorID        string   `dynamodbav:"mediator_id,omitempty"`
	Category          string   `dynamodbav:"category"`
	Priority          string   `dynamodbav:"priority"`
	Status            string   `dynamodbav:"status"`
	Subject           string   `dynamodbav:"subject"`
	Description       string   `dynamodbav:"description"`
	DesiredOutcome    string   `dynamodbav:"desired_outcome,omitempty"`
	Amount            string   `dynamodbav:"amount"`
	Evidence          []string `dynamodbav:"evidence,omitempty"`
	ArtisanResponse   string   `dynamodbav:"artisan_response,omitempty"`
	CounterProposal   string   `dynamodbav:"counter_proposal,omitempty"`
	MediatorNotes     string   `dynamodbav:"mediator_notes,omitempty"`
	ResolutionSummary string   `dynamodbav:"resolution_summary,omitempty"`
	RefundAmount      string   `dynamodbav:"refund_amount"`
	ResponseDeadline  string   `dynamodbav:"response_deadline,omitempty"`
	RespondedAt       string   `dynamodbav:"responded_at,omitempty"`
	MediationAt       string   `dynamodbav:"mediation_at,omitempty"`
	EscalatedAt       string   `dynamodbav:"escalated_at,omitempty"`
	ResolvedAt        string   `dynamodbav:"resolved_at,omitempty"`
	CreatedAt         string   `dynamodbav:"created_at"`
	UpdatedAt         string   `dynamodbav:"updated_at"`
}

type disputeLockItem struct {
	BookingID string `dynamodbav:"booking_id"`
	DisputeID string `dynamodbav:"dispute_id"`
}

type disputeLedgerItem struct {
	DisputeID   string            `dynamodbav:"dispute_id"`
	SK          string            `dynamodbav:"sk"`
	ID          string            `dynamodbav:"id"`
	Kind        string            `dynamodbav:"kind"`
	ActorID     string            `dynamodbav:"actor_id,omitempty"`
	Body        string            `dynamodbav:"body,omitempty"`
	Attachments []string          `dynamodbav:"attachments,omitempty"`
	IsInternal  bool              `dynamodbav:"is_internal,omitempty"`
	Metadata    map[string]string `dynamodbav:"metadata,omitempty"`
	CreatedAt   string            `dynamodbav:"created_at"`
}

// DisputeDynamoRepository persists disputes in DynamoDB.
//
// Tables:
//   - disputes: PK id, GSIs on client_id, provider_id and mediator_id sorted by created_at
//   - dispute_booking_locks: PK booking_id, held while a non-terminal dispute exists
//   - dispute_ledger: PK dispute_id, SK sk; messages and timeline in append order
type DisputeDynamoRepository struct {
	ddb           *dynamodb.Client
	disputesTable string
	locksTable    string
	ledgerTable   string
}

var _ interfaces.IDisputeRepository = (*DisputeDynamoRepository)(nil)

func NewDisputeDynamoRepository(ddb *dynamodb.Client) *DisputeDynamoRepository {
	return &DisputeDynamoRepository{
		ddb:           ddb,
		disputesTable: getenvDefault("DISPUTES_TABLE", defaultDisputesTableName),
		locksTable:    getenvDefault("DISPUTE_LOCKS_TABLE", defaultDisputeLocksTable),
		ledgerTable:   getenvDefault("DISPUTE_LEDGER_TABLE", defaultDisputeLedger),
	}
}

// Create takes the booking lock and writes the dispute atomically.
func (r *DisputeDynamoRepository) Create(ctx context.Context, d entities.Dispute) error {
	av, err := attributevalue.MarshalMap(toDisputeItem(d))
	if err != nil {
		return err
	}
	lock, err := attributevalue.MarshalMap(disputeLockItem{BookingID: d.BookingID, DisputeID: d.ID})
	if err != nil {
		return err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.locksTable),
				Item:                     lock,
				ConditionExpression:      aws.String("attribute_not_exists(#booking_id)"),
				ExpressionAttributeNames: map[string]string{"#booking_id": "booking_id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.disputesTable),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if _, _, ok := cancelledTransaction(err); ok {
		return failure.ErrAlreadyExists
	}
	return err
}

func (r *DisputeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Dispute, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.disputesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Dispute{}, err
	}
	if len(out.Item) == 0 {
		return entities.Dispute{}, nil
	}
	var it disputeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Dispute{}, err
	}
	return fromDisputeItem(it), nil
}

func (r *DisputeDynamoRepository) FindOpenByBooking(ctx context.Context, bookingID string) (entities.Dispute, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.locksTable),
		Key: map[string]types.AttributeValue{
			"booking_id": &types.AttributeValueMemberS{Value: bookingID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Dispute{}, err
	}
	if len(out.Item) == 0 {
		return entities.Dispute{}, nil
	}
	var lock disputeLockItem
	if err := attributevalue.UnmarshalMap(out.Item, &lock); err != nil {
		return entities.Dispute{}, err
	}
	return r.GetByID(ctx, lock.DisputeID)
}

func (r *DisputeDynamoRepository) ListByClient(ctx context.Context, clientID string) ([]entities.Dispute, error) {
	return r.listByIndex(ctx, clientIndex, "client_id", clientID)
}

func (r *DisputeDynamoRepository) ListByProvider(ctx context.Context, providerID string) ([]entities.Dispute, error) {
	return r.listByIndex(ctx, providerIndex, "provider_id", providerID)
}

// ListAll scans the table; it backs the moderation queue and statistics.
func (r *DisputeDynamoRepository) ListAll(ctx context.Context) ([]entities.Dispute, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.disputesTable)})
	if err != nil {
		return nil, err
	}
	out, err := unmarshalDisputes(items)
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *DisputeDynamoRepository) CountActiveByMediator(ctx context.Context, mediatorID string) (int, error) {
	disputes, err := r.listByIndex(ctx, mediatorIndex, "mediator_id", mediatorID)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, d := range disputes {
		if !d.Status.Terminal() {
			n++
		}
	}
	return n, nil
}

func (r *DisputeDynamoRepository) listByIndex(ctx context.Context, index, attr, value string) ([]entities.Dispute, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.disputesTable),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    aws.String("#k = :v"),
		ExpressionAttributeNames:  map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: value}},
		ScanIndexForward:          aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalDisputes(items)
}

// Update writes the dispute if its stored status still matches expected. A
// terminal status releases the booking lock in the same transaction.
func (r *DisputeDynamoRepository) Update(ctx context.Context, d entities.Dispute, expected entities.DisputeStatus) (entities.Dispute, error) {
	av, err := attributevalue.MarshalMap(toDisputeItem(d))
	if err != nil {
		return entities.Dispute{}, err
	}
	put := &types.Put{
		TableName:                           aws.String(r.disputesTable),
		Item:                                av,
		ConditionExpression:                 aws.String("attribute_exists(#id) AND #status = :expected"),
		ExpressionAttributeNames:            map[string]string{"#id": "id", "#status": "status"},
		ExpressionAttributeValues:           map[string]types.AttributeValue{":expected": &types.AttributeValueMemberS{Value: string(expected)}},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	}

	if !d.Status.Terminal() {
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:                           put.TableName,
			Item:                                put.Item,
			ConditionExpression:                 put.ConditionExpression,
			ExpressionAttributeNames:            put.ExpressionAttributeNames,
			ExpressionAttributeValues:           put.ExpressionAttributeValues,
			ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
		})
		if err != nil {
			mapped, _ := conditionalFailure(err)
			return entities.Dispute{}, mapped
		}
		return d, nil
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: put},
			{Delete: &types.Delete{
				TableName: aws.String(r.locksTable),
				Key: map[string]types.AttributeValue{
					"booking_id": &types.AttributeValueMemberS{Value: d.BookingID},
				},
				ConditionExpression:       aws.String("attribute_not_exists(#booking_id) OR #dispute_id = :id"),
				ExpressionAttributeNames:  map[string]string{"#booking_id": "booking_id", "#dispute_id": "dispute_id"},
				ExpressionAttributeValues: map[string]types.AttributeValue{":id": &types.AttributeValueMemberS{Value: d.ID}},
			}},
		},
	})
	if idx, reason, ok := cancelledTransaction(err); ok {
		if idx == 0 && len(reason.Item) == 0 {
			return entities.Dispute{}, failure.ErrNotFound
		}
		return entities.Dispute{}, failure.ErrConditionFailed
	}
	if err != nil {
		return entities.Dispute{}, err
	}
	return d, nil
}

func (r *DisputeDynamoRepository) AppendMessage(ctx context.Context, m entities.DisputeMessage) error {
	return r.appendLedger(ctx, disputeLedgerItem{
		DisputeID:   m.DisputeID,
		SK:          ledgerKey(messageSortPrefix, formatTime(m.CreatedAt), m.ID),
		ID:          m.ID,
		Kind:        string(m.SenderType),
		ActorID:     m.SenderID,
		Body:        m.Message,
		Attachments: m.Attachments,
		IsInternal:  m.IsInternal,
		CreatedAt:   formatTime(m.CreatedAt),
	})
}

func (r *DisputeDynamoRepository) ListMessages(ctx context.Context, disputeID string) ([]entities.DisputeMessage, error) {
	rows, err := r.listLedger(ctx, disputeID, messageSortPrefix)
	if err != nil {
		return nil, err
	}
	out := make([]entities.DisputeMessage, 0, len(rows))
	for _, it := range rows {
		out = append(out, entities.DisputeMessage{
			ID:          it.ID,
			DisputeID:   it.DisputeID,
			SenderID:    it.ActorID,
			SenderType:  entities.SenderType(it.Kind),
			Message:     it.Body,
			Attachments: it.Attachments,
			IsInternal:  it.IsInternal,
			CreatedAt:   parseTime(it.CreatedAt),
		})
	}
	return out, nil
}

func (r *DisputeDynamoRepository) AppendTimeline(ctx context.Context, ev entities.DisputeTimelineEvent) error {
	return r.appendLedger(ctx, disputeLedgerItem{
		DisputeID: ev.DisputeID,
		SK:        ledgerKey(timelineSortPrefix, formatTime(ev.CreatedAt), ev.ID),
		ID:        ev.ID,
		Kind:      string(ev.Type),
		ActorID:   ev.ActorID,
		Body:      ev.Description,
		Metadata:  ev.Metadata,
		CreatedAt: formatTime(ev.CreatedAt),
	})
}

func (r *DisputeDynamoRepository) ListTimeline(ctx context.Context, disputeID string) ([]entities.DisputeTimelineEvent, error) {
	rows, err := r.listLedger(ctx, disputeID, timelineSortPrefix)
	if err != nil {
		return nil, err
	}
	out := make([]entities.DisputeTimelineEvent, 0, len(rows))
	for _, it := range rows {
		out = append(out, entities.DisputeTimelineEvent{
			ID:          it.ID,
			DisputeID:   it.DisputeID,
			Type:        entities.DisputeEventType(it.Kind),
			ActorID:     it.ActorID,
			Description: it.Body,
			Metadata:    it.Metadata,
			CreatedAt:   parseTime(it.CreatedAt),
		})
	}
	return out, nil
}

func (r *DisputeDynamoRepository) appendLedger(ctx context.Context, it disputeLedgerItem) error {
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.ledgerTable),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{"#sk": "sk"},
	})
	if _, ok := conditionalFailure(err); ok {
		return failure.ErrAlreadyExists
	}
	return err
}

func (r *DisputeDynamoRepository) listLedger(ctx context.Context, disputeID, prefix string) ([]disputeLedgerItem, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.ledgerTable),
		KeyConditionExpression: aws.String("#dispute_id = :dispute_id AND begins_with(#sk, :prefix)"),
		ExpressionAttributeNames: map[string]string{
			"#dispute_id": "dispute_id",
			"#sk":         "sk",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":dispute_id": &types.AttributeValueMemberS{Value: disputeID},
			":prefix":     &types.AttributeValueMemberS{Value: prefix},
		},
		ConsistentRead:   aws.Bool(true),
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	var rows []disputeLedgerItem
	if err := attributevalue.UnmarshalListOfMaps(items, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DisputeDynamoRepository) Tables() []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		{
			TableName: aws.String(r.disputesTable),
			AttributeDefinitions: []types.AttributeDefinition{
				stringAttr("id"), stringAttr("client_id"), stringAttr("provider_id"), stringAttr("mediator_id"), stringAttr("created_at"),
			},
			KeySchema: hashKey("id"),
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				sortedIndex(clientIndex, "client_id", "created_at"),
				sortedIndex(providerIndex, "provider_id", "created_at"),
				sortedIndex(mediatorIndex, "mediator_id", "created_at"),
			},
			BillingMode: types.BillingModePayPerRequest,
		},
		{
			TableName:            aws.String(r.locksTable),
			AttributeDefinitions: []types.AttributeDefinition{stringAttr("booking_id")},
			KeySchema:            hashKey("booking_id"),
			BillingMode:          types.BillingModePayPerRequest,
		},
		{
			TableName:            aws.String(r.ledgerTable),
			AttributeDefinitions: []types.AttributeDefinition{stringAttr("dispute_id"), stringAttr("sk")},
			KeySchema:            compositeKey("dispute_id", "sk"),
			BillingMode:          types.BillingModePayPerRequest,
		},
	}
}

func unmarshalDisputes(items []map[string]types.AttributeValue) ([]entities.Dispute, error) {
	var rows []disputeItem
	if err := attributevalue.UnmarshalListOfMaps(items, &rows); err != nil {
		return nil, err
	}
	out := make([]entities.Dispute, 0, len(rows))
	for _, it := range rows {
		out = append(out, fromDisputeItem(it))
	}
	return out, nil
}

func toDisputeItem(d entities.Dispute) disputeItem {
	return disputeItem{
		ID:                d.ID,
		BookingID:         d.BookingID,
		EscrowID:          d.EscrowID,
		ClientID:          d.ClientID,
		ProviderID:        d.ProviderID,
		MediatorID:        d.MediatorID,
		Category:          string(d.Category),
		Priority:          string(d.Priority),
		Status:            string(d.Status),
		Subject:           d.Subject,
		Description:       d.Description,
		DesiredOutcome:    d.DesiredOutcome,
		Amount:            formatDecimal(d.Amount),
		Evidence:          d.Evidence,
		ArtisanResponse:   d.ArtisanResponse,
		CounterProposal:   d.CounterProposal,
		MediatorNotes:     d.MediatorNotes,
		ResolutionSummary: d.ResolutionSummary,
		RefundAmount:      formatDecimal(d.RefundAmount),
		ResponseDeadline:  formatTimePtr(d.ResponseDeadline),
		RespondedAt:       formatTimePtr(d.RespondedAt),
		MediationAt:       formatTimePtr(d.MediationAt),
		EscalatedAt:       formatTimePtr(d.EscalatedAt),
		ResolvedAt:        formatTimePtr(d.ResolvedAt),
		CreatedAt:         formatTime(d.CreatedAt),
		UpdatedAt:         formatTime(d.UpdatedAt),
	}
}

func fromDisputeItem(it disputeItem) entities.Dispute {
	return entities.Dispute{
		ID:                it.ID,
		BookingID:         it.BookingID,
		EscrowID:          it.EscrowID,
		ClientID:          it.ClientID,
		ProviderID:        it.ProviderID,
		MediatorID:        it.MediatorID,
		Category:          entities.DisputeCategory(it.Category),
		Priority:          entities.DisputePriority(it.Priority),
		Status:            entities.DisputeStatus(it.Status),
		Subject:           it.Subject,
		Description:       it.Description,
		DesiredOutcome:    it.DesiredOutcome,
		Amount:            parseDecimal(it.Amount),
		Evidence:          it.Evidence,
		ArtisanResponse:   it.ArtisanResponse,
		CounterProposal:   it.CounterProposal,
		MediatorNotes:     it.MediatorNotes,
		ResolutionSummary: it.ResolutionSummary,
		RefundAmount:      parseDecimal(it.RefundAmount),
		ResponseDeadline:  parseTimePtr(it.ResponseDeadline),
		RespondedAt:       parseTimePtr(it.RespondedAt),
		MediationAt:       parseTimePtr(it.MediationAt),
		EscalatedAt:       parseTimePtr(it.EscalatedAt),
		ResolvedAt:        parseTimePtr(it.ResolvedAt),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
