package repository

import (
	"context"
	"errors"
	"time"

	"agencia_xpto/internal/domain/entities"
	"agencia_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProposalsTableName = "proposals"

type proposalItem struct {
	ID         string                               `dynamodbav:"id"`
	Client     entities.Client                      `dynamodbav:"client"`
	Services   []entities.ServiceLineItem           `dynamodbav:"services,omitempty"`
	Term       int                                  `dynamodbav:"term,omitempty"`
	Conditions map[string]entities.PaymentCondition `dynamodbav:"conditions,omitempty"`
	Details    string                               `dynamodbav:"details,omitempty"`
	Status     string                               `dynamodbav:"status"`
	CreatedAt  string                               `dynamodbav:"created_at"`
	UpdatedAt  string                               `dynamodbav:"updated_at"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Services and conditions are stored as nested documents so each wizard step
// can replace its own slice of the item with a single UpdateItem.

type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
	}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	it := toProposalItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Proposal{}, err
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
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) UpdateServices(ctx context.Context, id string, services []entities.ServiceLineItem) (entities.Proposal, error) {
	av, err := attributevalue.Marshal(services)
	if err != nil {
		return entities.Proposal{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #services = :services, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":services":   av,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#services":   "services",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ProposalDynamoRepository) UpdateConditions(ctx context.Context, id string, conditions map[string]entities.PaymentCondition) (entities.Proposal, error) {
	av, err := attributevalue.Marshal(conditions)
	if err != nil {
		return entities.Proposal{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #conditions = :conditions, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":conditions": av,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#conditions": "conditions",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ProposalDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ProposalDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Proposal, error) {
	now := formatTimestamp(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Proposal{}, nil
	}
	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func toProposalItem(p entities.Proposal) proposalItem {
	return proposalItem{
		ID:         p.ID,
		Client:     p.Client,
		Services:   p.Services,
		Term:       p.Term,
		Conditions: p.Conditions,
		Details:    p.Details,
		Status:     string(p.Status),
		CreatedAt:  formatTimestamp(p.CreatedAt),
		UpdatedAt:  formatTimestamp(p.UpdatedAt),
	}
}

func fromProposalItem(it proposalItem) entities.Proposal {
	createdAt := parseTimestamp(it.CreatedAt)
	updatedAt := parseTimestamp(it.UpdatedAt)
	return entities.Proposal{
		ID:         it.ID,
		Client:     it.Client,
		Services:   it.Services,
		Term:       it.Term,
		Conditions: it.Conditions,
		Details:    it.Details,
		Status:     entities.ProposalStatus(it.Status),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
