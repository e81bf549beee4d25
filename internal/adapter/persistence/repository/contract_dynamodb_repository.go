package repository

import (
	"context"

	"agencia_xpto/internal/domain/entities"
	"agencia_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultContractsTableName = "contracts"

type contractItem struct {
	ID          string         `dynamodbav:"id"`
	Kind        string         `dynamodbav:"kind"`
	Contratante entities.Party `dynamodbav:"contratante"`
	Prestador   entities.Party `dynamodbav:"prestador"`

	DataInicio     string `dynamodbav:"data_inicio,omitempty"`
	DataFim        string `dynamodbav:"data_fim,omitempty"`
	ValorTotal     any    `dynamodbav:"valor_total,omitempty"`
	FormaPagamento string `dynamodbav:"forma_pagamento,omitempty"`
	DiaVencimento  string `dynamodbav:"dia_vencimento,omitempty"`
	Banco          string `dynamodbav:"banco,omitempty"`
	Agencia        string `dynamodbav:"agencia,omitempty"`
	Conta          string `dynamodbav:"conta,omitempty"`
	Pix            string `dynamodbav:"pix,omitempty"`
	ForoCidade     string `dynamodbav:"foro_cidade,omitempty"`
	ForoUF         string `dynamodbav:"foro_uf,omitempty"`

	ServicoChave           string `dynamodbav:"servico_chave,omitempty"`
	ServicoCustomTitulo    string `dynamodbav:"servico_custom_titulo,omitempty"`
	ServicoCustomEscopo    string `dynamodbav:"servico_custom_escopo,omitempty"`
	ServicoCustomClausulas string `dynamodbav:"servico_custom_clausulas,omitempty"`

	DataDistrato   string `dynamodbav:"data_distrato,omitempty"`
	ValorAcerto    any    `dynamodbav:"valor_acerto,omitempty"`
	PrazoDevolucao string `dynamodbav:"prazo_devolucao,omitempty"`
	DataAcerto     string `dynamodbav:"data_acerto,omitempty"`

	Params map[string]any `dynamodbav:"params,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ContractDynamoRepository persists Contract form data in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Contracts are immutable once created; re-rendering always starts from the
// stored form data.

type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
	}
}

func (r *ContractDynamoRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	it := toContractItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Contract{}, err
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
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func toContractItem(c entities.Contract) contractItem {
	return contractItem{
		ID:          c.ID,
		Kind:        string(c.Kind),
		Contratante: c.Contratante,
		Prestador:   c.Prestador,

		DataInicio:     c.DataInicio,
		DataFim:        c.DataFim,
		ValorTotal:     c.ValorTotal,
		FormaPagamento: c.FormaPagamento,
		DiaVencimento:  c.DiaVencimento,
		Banco:          c.Banco,
		Agencia:        c.Agencia,
		Conta:          c.Conta,
		Pix:            c.Pix,
		ForoCidade:     c.ForoCidade,
		ForoUF:         c.ForoUF,

		ServicoChave:           c.ServicoChave,
		ServicoCustomTitulo:    c.ServicoCustomTitulo,
		ServicoCustomEscopo:    c.ServicoCustomEscopo,
		ServicoCustomClausulas: c.ServicoCustomClausulas,

		DataDistrato:   c.DataDistrato,
		ValorAcerto:    c.ValorAcerto,
		PrazoDevolucao: c.PrazoDevolucao,
		DataAcerto:     c.DataAcerto,

		Params: c.Params,

		CreatedAt: formatTimestamp(c.CreatedAt),
		UpdatedAt: formatTimestamp(c.UpdatedAt),
	}
}

func fromContractItem(it contractItem) entities.Contract {
	createdAt := parseTimestamp(it.CreatedAt)
	updatedAt := parseTimestamp(it.UpdatedAt)
	return entities.Contract{
		ID:          it.ID,
		Kind:        entities.ContractKind(it.Kind),
		Contratante: it.Contratante,
		Prestador:   it.Prestador,

		DataInicio:     it.DataInicio,
		DataFim:        it.DataFim,
		ValorTotal:     it.ValorTotal,
		FormaPagamento: it.FormaPagamento,
		DiaVencimento:  it.DiaVencimento,
		Banco:          it.Banco,
		Agencia:        it.Agencia,
		Conta:          it.Conta,
		Pix:            it.Pix,
		ForoCidade:     it.ForoCidade,
		ForoUF:         it.ForoUF,

		ServicoChave:           it.ServicoChave,
		ServicoCustomTitulo:    it.ServicoCustomTitulo,
		ServicoCustomEscopo:    it.ServicoCustomEscopo,
		ServicoCustomClausulas: it.ServicoCustomClausulas,

		DataDistrato:   it.DataDistrato,
		ValorAcerto:    it.ValorAcerto,
		PrazoDevolucao: it.PrazoDevolucao,
		DataAcerto:     it.DataAcerto,

		Params: it.Params,

		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
