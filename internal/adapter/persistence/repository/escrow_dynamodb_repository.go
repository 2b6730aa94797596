package repository

import (
	"context"
	"fmt"
	"strconv"

	"marketplace_trust/internal/domain/entities"
	"marketplace_trust/internal/domain/failure"
	"marketplace_trust/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEscrowsTableName    = "escrows"
	defaultMilestonesTableName = "escrow_milestones"
	defaultEscrowLedgerTable   = "escrow_ledger"
	defaultEscrowLocksTable    = "escrow_booking_locks"

	bookingIndex  = "booking_id-index"
	clientIndex   = "client_id-index"
	providerIndex = "provider_id-index"
	escrowIndex   = "escrow_id-index"

	releaseSortPrefix = "release#"
	eventSortPrefix   = "event#"
)

type escrowItem struct {
	ID                 string `dynamodbav:"id"`
	BookingID          string `dynamodbav:"booking_id"`
	ClientID           string `dynamodbav:"client_id"`
	ProviderID         string `dynamodbav:"provider_id"`
	Amount             string `dynamodbav:"amount"`
	PlatformFee        string `dynamodbav:"platform_fee"`
	FeeRate            string `dynamodbav:"fee_rate"`
	Currency           string `dynamodbav:"currency"`
	Description        string `dynamodbav:"description,omitempty"`
	Status             string `dynamodbav:"status"`
	PaymentCustomerID  string `dynamodbav:"payment_customer_id,omitempty"`
	PaymentIntentID    string `dynamodbav:"payment_intent_id,omitempty"`
	TransferID         string `dynamodbav:"transfer_id,omitempty"`
	RefundID           string `dynamodbav:"refund_id,omitempty"`
	PayoutAmount       string `dynamodbav:"payout_amount"`
	RefundedAmount     string `dynamodbav:"refunded_amount"`
	FundingAttempt     int    `dynamodbav:"funding_attempt"`
	SettlingTo         string `dynamodbav:"settling_to,omitempty"`
	MilestoneInFlight  string `dynamodbav:"milestone_in_flight,omitempty"`
	Version            int    `dynamodbav:"version"`
	CompletionNotes    string `dynamodbav:"completion_notes,omitempty"`
	DisputeReason      string `dynamodbav:"dispute_reason,omitempty"`
	FundedAt           string `dynamodbav:"funded_at,omitempty"`
	WorkStartedAt      string `dynamodbav:"work_started_at,omitempty"`
	WorkCompletedAt    string `dynamodbav:"work_completed_at,omitempty"`
	InspectionDeadline string `dynamodbav:"inspection_deadline,omitempty"`
	DisputedAt         string `dynamodbav:"disputed_at,omitempty"`
	ReleasedAt         string `dynamodbav:"released_at,omitempty"`
	RefundedAt         string `dynamodbav:"refunded_at,omitempty"`
	CancelledAt        string `dynamodbav:"cancelled_at,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

type escrowLockItem struct {
	BookingID string `dynamodbav:"booking_id"`
	EscrowID  string `dynamodbav:"escrow_id"`
}

type milestoneItem struct {
	ID          string `dynamodbav:"id"`
	EscrowID    string `dynamodbav:"escrow_id"`
	Sequence    int    `dynamodbav:"sequence"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`
	Amount      string `dynamodbav:"amount"`
	Status      string `dynamodbav:"status"`
	DueDate     string `dynamodbav:"due_date,omitempty"`
	TransferID  string `dynamodbav:"transfer_id,omitempty"`
	RefundID    string `dynamodbav:"refund_id,omitempty"`
	CompletedAt string `dynamodbav:"completed_at,omitempty"`
	ReleasedAt  string `dynamodbav:"released_at,omitempty"`
	RefundedAt  string `dynamodbav:"refunded_at,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ledgerItem holds both releases and audit events, told apart by sort key prefix.
type ledgerItem struct {
	EscrowID         string            `dynamodbav:"escrow_id"`
	SK               string            `dynamodbav:"sk"`
	ID               string            `dynamodbav:"id"`
	MilestoneID      string            `dynamodbav:"milestone_id,omitempty"`
	Kind             string            `dynamodbav:"kind"`
	Amount           string            `dynamodbav:"amount,omitempty"`
	Reason           string            `dynamodbav:"reason,omitempty"`
	ActorID          string            `dynamodbav:"actor_id,omitempty"`
	GatewayReference string            `dynamodbav:"gateway_reference,omitempty"`
	Metadata         map[string]string `dynamodbav:"metadata,omitempty"`
	CreatedAt        string            `dynamodbav:"created_at"`
}

// EscrowDynamoRepository persists escrows in DynamoDB.
//
// Tables:
//   - escrows: PK id, GSIs on booking_id, client_id and provider_id sorted by created_at
//   - escrow_milestones: PK id, GSI on escrow_id sorted by sequence
//   - escrow_ledger: PK escrow_id, SK sk; releases and events in append order
//   - escrow_booking_locks: PK booking_id, held until the escrow is cancelled or refunded
//
// Updates are conditional on the stored status and version, so two writers
// racing on the same escrow cannot both succeed.
type EscrowDynamoRepository struct {
	ddb             *dynamodb.Client
	escrowsTable    string
	milestonesTable string
	ledgerTable     string
	locksTable      string
}

var _ interfaces.IEscrowRepository = (*EscrowDynamoRepository)(nil)

func NewEscrowDynamoRepository(ddb *dynamodb.Client) *EscrowDynamoRepository {
	return &EscrowDynamoRepository{
		ddb:             ddb,
		escrowsTable:    getenvDefault("ESCROWS_TABLE", defaultEscrowsTableName),
		milestonesTable: getenvDefault("ESCROW_MILESTONES_TABLE", defaultMilestonesTableName),
		ledgerTable:     getenvDefault("ESCROW_LEDGER_TABLE", defaultEscrowLedgerTable),
		locksTable:      getenvDefault("ESCROW_LOCKS_TABLE", defaultEscrowLocksTable),
	}
}

// Create takes the booking lock and writes the escrow and its milestones in
// one transaction.
func (r *EscrowDynamoRepository) Create(ctx context.Context, e entities.EscrowTransaction, milestones []entities.EscrowMilestone) error {
	e.Version = 0
	av, err := attributevalue.MarshalMap(toEscrowItem(e))
	if err != nil {
		return err
	}
	lock, err := attributevalue.MarshalMap(escrowLockItem{BookingID: e.BookingID, EscrowID: e.ID})
	if err != nil {
		return err
	}
	writes := []types.TransactWriteItem{
		{Put: &types.Put{
			TableName:                aws.String(r.locksTable),
			Item:                     lock,
			ConditionExpression:      aws.String("attribute_not_exists(#booking_id)"),
			ExpressionAttributeNames: map[string]string{"#booking_id": "booking_id"},
		}},
		{Put: &types.Put{
			TableName:                aws.String(r.escrowsTable),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
	}
	for _, m := range milestones {
		mav, err := attributevalue.MarshalMap(toMilestoneItem(m))
		if err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(r.milestonesTable),
				Item:                     mav,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	if _, _, ok := cancelledTransaction(err); ok {
		return failure.ErrAlreadyExists
	}
	return err
}

func (r *EscrowDynamoRepository) GetByID(ctx context.Context, id string) (entities.EscrowTransaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.escrowsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.EscrowTransaction{}, nil
	}
	var it escrowItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EscrowTransaction{}, err
	}
	return fromEscrowItem(it), nil
}

// GetByBookingID returns the most recent escrow for the booking. The index is
// eventually consistent, so the hit is re-read from the base table.
func (r *EscrowDynamoRepository) GetByBookingID(ctx context.Context, bookingID string) (entities.EscrowTransaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.escrowsTable),
		IndexName:                 aws.String(bookingIndex),
		KeyConditionExpression:    aws.String("#booking_id = :booking_id"),
		ExpressionAttributeNames:  map[string]string{"#booking_id": "booking_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":booking_id": &types.AttributeValueMemberS{Value: bookingID}},
		ScanIndexForward:          aws.Bool(false),
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	if len(out.Items) == 0 {
		return entities.EscrowTransaction{}, nil
	}
	var it escrowItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.EscrowTransaction{}, err
	}
	return r.GetByID(ctx, it.ID)
}

func (r *EscrowDynamoRepository) ListByClient(ctx context.Context, clientID string) ([]entities.EscrowTransaction, error) {
	return r.listByIndex(ctx, clientIndex, "client_id", clientID)
}

func (r *EscrowDynamoRepository) ListByProvider(ctx context.Context, providerID string) ([]entities.EscrowTransaction, error) {
	return r.listByIndex(ctx, providerIndex, "provider_id", providerID)
}

func (r *EscrowDynamoRepository) listByIndex(ctx context.Context, index, attr, value string) ([]entities.EscrowTransaction, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.escrowsTable),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    aws.String("#k = :v"),
		ExpressionAttributeNames:  map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: value}},
		ScanIndexForward:          aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	var rows []escrowItem
	if err := attributevalue.UnmarshalListOfMaps(items, &rows); err != nil {
		return nil, err
	}
	out := make([]entities.EscrowTransaction, 0, len(rows))
	for _, it := range rows {
		out = append(out, fromEscrowItem(it))
	}
	return out, nil
}

// UpdateStatus writes e if the stored record still has the expected status and
// e's version. Moving to cancelled or refunded frees the booking lock in the
// same transaction.
func (r *EscrowDynamoRepository) UpdateStatus(ctx context.Context, e entities.EscrowTransaction, expected entities.EscrowStatus) (entities.EscrowTransaction, error) {
	next := e
	next.Version = e.Version + 1
	av, err := attributevalue.MarshalMap(toEscrowItem(next))
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	cond := aws.String("attribute_exists(#id) AND #status = :expected AND #version = :version")
	names := map[string]string{"#id": "id", "#status": "status", "#version": "version"}
	values := map[string]types.AttributeValue{
		":expected": &types.AttributeValueMemberS{Value: string(expected)},
		":version":  &types.AttributeValueMemberN{Value: strconv.Itoa(e.Version)},
	}

	if !freesBooking(next.Status) || expected == next.Status {
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:                           aws.String(r.escrowsTable),
			Item:                                av,
			ConditionExpression:                 cond,
			ExpressionAttributeNames:            names,
			ExpressionAttributeValues:           values,
			ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
		})
		if err != nil {
			mapped, _ := conditionalFailure(err)
			return entities.EscrowTransaction{}, mapped
		}
		return next, nil
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                           aws.String(r.escrowsTable),
				Item:                                av,
				ConditionExpression:                 cond,
				ExpressionAttributeNames:            names,
				ExpressionAttributeValues:           values,
				ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
			}},
			{Delete: &types.Delete{
				TableName: aws.String(r.locksTable),
				Key: map[string]types.AttributeValue{
					"booking_id": &types.AttributeValueMemberS{Value: next.BookingID},
				},
				ConditionExpression:       aws.String("attribute_not_exists(#booking_id) OR #escrow_id = :id"),
				ExpressionAttributeNames:  map[string]string{"#booking_id": "booking_id", "#escrow_id": "escrow_id"},
				ExpressionAttributeValues: map[string]types.AttributeValue{":id": &types.AttributeValueMemberS{Value: next.ID}},
			}},
		},
	})
	if idx, reason, ok := cancelledTransaction(err); ok {
		if idx == 0 && len(reason.Item) == 0 {
			return entities.EscrowTransaction{}, failure.ErrNotFound
		}
		return entities.EscrowTransaction{}, failure.ErrConditionFailed
	}
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	return next, nil
}

func freesBooking(s entities.EscrowStatus) bool {
	return s == entities.EscrowStatusCancelled || s == entities.EscrowStatusRefunded
}

func (r *EscrowDynamoRepository) GetMilestone(ctx context.Context, id string) (entities.EscrowMilestone, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.milestonesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EscrowMilestone{}, err
	}
	if len(out.Item) == 0 {
		return entities.EscrowMilestone{}, nil
	}
	var it milestoneItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EscrowMilestone{}, err
	}
	return fromMilestoneItem(it), nil
}

func (r *EscrowDynamoRepository) ListMilestones(ctx context.Context, escrowID string) ([]entities.EscrowMilestone, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.milestonesTable),
		IndexName:                 aws.String(escrowIndex),
		KeyConditionExpression:    aws.String("#escrow_id = :escrow_id"),
		ExpressionAttributeNames:  map[string]string{"#escrow_id": "escrow_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":escrow_id": &types.AttributeValueMemberS{Value: escrowID}},
		ScanIndexForward:          aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	var rows []milestoneItem
	if err := attributevalue.UnmarshalListOfMaps(items, &rows); err != nil {
		return nil, err
	}
	out := make([]entities.EscrowMilestone, 0, len(rows))
	for _, it := range rows {
		out = append(out, fromMilestoneItem(it))
	}
	return out, nil
}

func (r *EscrowDynamoRepository) UpdateMilestoneStatus(ctx context.Context, m entities.EscrowMilestone, expected entities.MilestoneStatus) (entities.EscrowMilestone, error) {
	av, err := attributevalue.MarshalMap(toMilestoneItem(m))
	if err != nil {
		return entities.EscrowMilestone{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                           aws.String(r.milestonesTable),
		Item:                                av,
		ConditionExpression:                 aws.String("attribute_exists(#id) AND #status = :expected"),
		ExpressionAttributeNames:            map[string]string{"#id": "id", "#status": "status"},
		ExpressionAttributeValues:           map[string]types.AttributeValue{":expected": &types.AttributeValueMemberS{Value: string(expected)}},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		mapped, _ := conditionalFailure(err)
		return entities.EscrowMilestone{}, mapped
	}
	return m, nil
}

func (r *EscrowDynamoRepository) AppendRelease(ctx context.Context, rel entities.EscrowRelease) error {
	return r.appendLedger(ctx, ledgerItem{
		EscrowID:         rel.EscrowID,
		SK:               ledgerKey(releaseSortPrefix, formatTime(rel.CreatedAt), rel.ID),
		ID:               rel.ID,
		MilestoneID:      rel.MilestoneID,
		Kind:             string(rel.Kind),
		Amount:           formatDecimal(rel.Amount),
		Reason:           rel.Reason,
		ActorID:          rel.ActorID,
		GatewayReference: rel.GatewayReference,
		CreatedAt:        formatTime(rel.CreatedAt),
	})
}

func (r *EscrowDynamoRepository) ListReleases(ctx context.Context, escrowID string) ([]entities.EscrowRelease, error) {
	rows, err := r.listLedger(ctx, escrowID, releaseSortPrefix)
	if err != nil {
		return nil, err
	}
	out := make([]entities.EscrowRelease, 0, len(rows))
	for _, it := range rows {
		out = append(out, entities.EscrowRelease{
			ID:               it.ID,
			EscrowID:         it.EscrowID,
			MilestoneID:      it.MilestoneID,
			Kind:             entities.ReleaseKind(it.Kind),
			Amount:           parseDecimal(it.Amount),
			Reason:           it.Reason,
			ActorID:          it.ActorID,
			GatewayReference: it.GatewayReference,
			CreatedAt:        parseTime(it.CreatedAt),
		})
	}
	return out, nil
}

func (r *EscrowDynamoRepository) AppendEvent(ctx context.Context, ev entities.EscrowEvent) error {
	return r.appendLedger(ctx, ledgerItem{
		EscrowID:  ev.EscrowID,
		SK:        ledgerKey(eventSortPrefix, formatTime(ev.CreatedAt), ev.ID),
		ID:        ev.ID,
		Kind:      string(ev.Type),
		ActorID:   ev.ActorID,
		Metadata:  ev.Metadata,
		CreatedAt: formatTime(ev.CreatedAt),
	})
}

func (r *EscrowDynamoRepository) ListEvents(ctx context.Context, escrowID string) ([]entities.EscrowEvent, error) {
	rows, err := r.listLedger(ctx, escrowID, eventSortPrefix)
	if err != nil {
		return nil, err
	}
	out := make([]entities.EscrowEvent, 0, len(rows))
	for _, it := range rows {
		out = append(out, entities.EscrowEvent{
			ID:        it.ID,
			EscrowID:  it.EscrowID,
			Type:      entities.EscrowEventType(it.Kind),
			ActorID:   it.ActorID,
			Metadata:  it.Metadata,
			CreatedAt: parseTime(it.CreatedAt),
		})
	}
	return out, nil
}

func (r *EscrowDynamoRepository) appendLedger(ctx context.Context, it ledgerItem) error {
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

func (r *EscrowDynamoRepository) listLedger(ctx context.Context, escrowID, prefix string) ([]ledgerItem, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.ledgerTable),
		KeyConditionExpression: aws.String("#escrow_id = :escrow_id AND begins_with(#sk, :prefix)"),
		ExpressionAttributeNames: map[string]string{
			"#escrow_id": "escrow_id",
			"#sk":        "sk",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":escrow_id": &types.AttributeValueMemberS{Value: escrowID},
			":prefix":    &types.AttributeValueMemberS{Value: prefix},
		},
		ConsistentRead:   aws.Bool(true),
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	var rows []ledgerItem
	if err := attributevalue.UnmarshalListOfMaps(items, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Tables describes the tables this repository expects.
func (r *EscrowDynamoRepository) Tables() []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		{
			TableName: aws.String(r.escrowsTable),
			AttributeDefinitions: []types.AttributeDefinition{
				stringAttr("id"), stringAttr("booking_id"), stringAttr("client_id"), stringAttr("provider_id"), stringAttr("created_at"),
			},
			KeySchema: hashKey("id"),
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				sortedIndex(bookingIndex, "booking_id", "created_at"),
				sortedIndex(clientIndex, "client_id", "created_at"),
				sortedIndex(providerIndex, "provider_id", "created_at"),
			},
			BillingMode: types.BillingModePayPerRequest,
		},
		{
			TableName: aws.String(r.milestonesTable),
			AttributeDefinitions: []types.AttributeDefinition{
				stringAttr("id"), stringAttr("escrow_id"),
				{AttributeName: aws.String("sequence"), AttributeType: types.ScalarAttributeTypeN},
			},
			KeySchema: hashKey("id"),
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				sortedIndex(escrowIndex, "escrow_id", "sequence"),
			},
			BillingMode: types.BillingModePayPerRequest,
		},
		{
			TableName:            aws.String(r.ledgerTable),
			AttributeDefinitions: []types.AttributeDefinition{stringAttr("escrow_id"), stringAttr("sk")},
			KeySchema:            compositeKey("escrow_id", "sk"),
			BillingMode:          types.BillingModePayPerRequest,
		},
		{
			TableName:            aws.String(r.locksTable),
			AttributeDefinitions: []types.AttributeDefinition{stringAttr("booking_id")},
			KeySchema:            hashKey("booking_id"),
			BillingMode:          types.BillingModePayPerRequest,
		},
	}
}

func toEscrowItem(e entities.EscrowTransaction) escrowItem {
	return escrowItem{
		ID:                 e.ID,
		BookingID:          e.BookingID,
		ClientID:           e.ClientID,
		ProviderID:         e.ProviderID,
		Amount:             formatDecimal(e.Amount),
		PlatformFee:        formatDecimal(e.PlatformFee),
		FeeRate:            formatDecimal(e.FeeRate),
		Currency:           e.Currency,
		Description:        e.Description,
		Status:             string(e.Status),
		PaymentCustomerID:  e.PaymentCustomerID,
		PaymentIntentID:    e.PaymentIntentID,
		TransferID:         e.TransferID,
		RefundID:           e.RefundID,
		PayoutAmount:       formatDecimal(e.PayoutAmount),
		RefundedAmount:     formatDecimal(e.RefundedAmount),
		FundingAttempt:     e.FundingAttempt,
		SettlingTo:         string(e.SettlingTo),
		MilestoneInFlight:  e.MilestoneInFlight,
		Version:            e.Version,
		CompletionNotes:    e.CompletionNotes,
		DisputeReason:      e.DisputeReason,
		FundedAt:           formatTimePtr(e.FundedAt),
		WorkStartedAt:      formatTimePtr(e.WorkStartedAt),
		WorkCompletedAt:    formatTimePtr(e.WorkCompletedAt),
		InspectionDeadline: formatTimePtr(e.InspectionDeadline),
		DisputedAt:         formatTimePtr(e.DisputedAt),
		ReleasedAt:         formatTimePtr(e.ReleasedAt),
		RefundedAt:         formatTimePtr(e.RefundedAt),
		CancelledAt:        formatTimePtr(e.CancelledAt),
		CreatedAt:          formatTime(e.CreatedAt),
		UpdatedAt:          formatTime(e.UpdatedAt),
	}
}

func fromEscrowItem(it escrowItem) entities.EscrowTransaction {
	return entities.EscrowTransaction{
		ID:                 it.ID,
		BookingID:          it.BookingID,
		ClientID:           it.ClientID,
		ProviderID:         it.ProviderID,
		Amount:             parseDecimal(it.Amount),
		PlatformFee:        parseDecimal(it.PlatformFee),
		FeeRate:            parseDecimal(it.FeeRate),
		Currency:           it.Currency,
		Description:        it.Description,
		Status:             entities.EscrowStatus(it.Status),
		PaymentCustomerID:  it.PaymentCustomerID,
		PaymentIntentID:    it.PaymentIntentID,
		TransferID:         it.TransferID,
		RefundID:           it.RefundID,
		PayoutAmount:       parseDecimal(it.PayoutAmount),
		RefundedAmount:     parseDecimal(it.RefundedAmount),
		FundingAttempt:     it.FundingAttempt,
		SettlingTo:         entities.EscrowStatus(it.SettlingTo),
		MilestoneInFlight:  it.MilestoneInFlight,
		Version:            it.Version,
		CompletionNotes:    it.CompletionNotes,
		DisputeReason:      it.DisputeReason,
		FundedAt:           parseTimePtr(it.FundedAt),
		WorkStartedAt:      parseTimePtr(it.WorkStartedAt),
		WorkCompletedAt:    parseTimePtr(it.WorkCompletedAt),
		InspectionDeadline: parseTimePtr(it.InspectionDeadline),
		DisputedAt:         parseTimePtr(it.DisputedAt),
		ReleasedAt:         parseTimePtr(it.ReleasedAt),
		RefundedAt:         parseTimePtr(it.RefundedAt),
		CancelledAt:        parseTimePtr(it.CancelledAt),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}

func toMilestoneItem(m entities.EscrowMilestone) milestoneItem {
	return milestoneItem{
		ID:          m.ID,
		EscrowID:    m.EscrowID,
		Sequence:    m.Sequence,
		Title:       m.Title,
		Description: m.Description,
		Amount:      formatDecimal(m.Amount),
		Status:      string(m.Status),
		DueDate:     formatTimePtr(m.DueDate),
		TransferID:  m.TransferID,
		RefundID:    m.RefundID,
		CompletedAt: formatTimePtr(m.CompletedAt),
		ReleasedAt:  formatTimePtr(m.ReleasedAt),
		RefundedAt:  formatTimePtr(m.RefundedAt),
		CreatedAt:   formatTime(m.CreatedAt),
		UpdatedAt:   formatTime(m.UpdatedAt),
	}
}

func fromMilestoneItem(it milestoneItem) entities.EscrowMilestone {
	return entities.EscrowMilestone{
		ID:          it.ID,
		EscrowID:    it.EscrowID,
		Sequence:    it.Sequence,
		Title:       it.Title,
		Description: it.Description,
		Amount:      parseDecimal(it.Amount),
		Status:      entities.MilestoneStatus(it.Status),
		DueDate:     parseTimePtr(it.DueDate),
		TransferID:  it.TransferID,
		RefundID:    it.RefundID,
		CompletedAt: parseTimePtr(it.CompletedAt),
		ReleasedAt:  parseTimePtr(it.ReleasedAt),
		RefundedAt:  parseTimePtr(it.RefundedAt),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

func ledgerKey(prefix, createdAt, id string) string {
	return fmt.Sprintf("%s%s#%s", prefix, createdAt, id)
}
