package repository

import (
	"context"
	"strconv"

	"agencia_xpto/internal/domain/entities"
	"agencia_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEntryPaymentsTableName = "entry_payments"
	entryPaymentsProposalIDIndex  = "proposal_id-index"
)

type entryPaymentItem struct {
	ID           string         `dynamodbav:"id"`
	ProposalID   string         `dynamodbav:"proposal_id"`
	Amount       string         `dynamodbav:"amount"`
	Date         string         `dynamodbav:"date"`
	Status       string         `dynamodbav:"status"`
	MPPayload    map[string]any `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string         `dynamodbav:"mp_payload_raw,omitempty"`
}

// EntryPaymentDynamoRepository persists EntryPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: proposal_id-index (PK: proposal_id)

type EntryPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEntryPaymentRepository = (*EntryPaymentDynamoRepository)(nil)

func NewEntryPaymentDynamoRepository(ddb *dynamodb.Client) *EntryPaymentDynamoRepository {
	return &EntryPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ENTRY_PAYMENTS_TABLE", defaultEntryPaymentsTableName),
	}
}

func (r *EntryPaymentDynamoRepository) Create(ctx context.Context, p entities.EntryPayment) (entities.EntryPayment, error) {
	it := toEntryPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.EntryPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.EntryPayment{}, err
	}
	return p, nil
}

func (r *EntryPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.EntryPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EntryPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.EntryPayment{}, nil
	}

	var it entryPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EntryPayment{}, err
	}
	return fromEntryPaymentItem(it), nil
}

func (r *EntryPaymentDynamoRepository) ListByProposalID(ctx context.Context, proposalID string) ([]entities.EntryPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(entryPaymentsProposalIDIndex),
		KeyConditionExpression: aws.String("proposal_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: proposalID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.EntryPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it entryPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromEntryPaymentItem(it))
	}
	return items, nil
}

func toEntryPaymentItem(p entities.EntryPayment) entryPaymentItem {
	return entryPaymentItem{
		ID:           p.ID,
		ProposalID:   p.ProposalID,
		Amount:       strconv.FormatFloat(p.Amount, 'f', -1, 64),
		Date:         formatTimestamp(p.Date),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromEntryPaymentItem(it entryPaymentItem) entities.EntryPayment {
	dt := parseTimestamp(it.Date)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.EntryPayment{
		ID:           it.ID,
		ProposalID:   it.ProposalID,
		Amount:       amount,
		Date:         dt,
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
