package repository

import (
	"context"
	"errors"

	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultContasReceberTableName = "contas_receber"
	defaultContasGeraisTableName  = "contas_gerais"
)

type contaReceberItem struct {
	ID              string `dynamodbav:"id"`
	Numero          string `dynamodbav:"numero"`
	ClienteID       string `dynamodbav:"cliente_id"`
	OrcamentoID     string `dynamodbav:"orcamento_id,omitempty"`
	Valor           string `dynamodbav:"valor"`
	Vencimento      string `dynamodbav:"vencimento"`
	DataRecebimento string `dynamodbav:"data_recebimento,omitempty"`
	FormaPagamento  string `dynamodbav:"forma_pagamento,omitempty"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

type contaGeralItem struct {
	ID            string `dynamodbav:"id"`
	Numero        string `dynamodbav:"numero"`
	Descricao     string `dynamodbav:"descricao"`
	Tipo          string `dynamodbav:"tipo"`
	Valor         string `dynamodbav:"valor"`
	Vencimento    string `dynamodbav:"vencimento"`
	DataPagamento string `dynamodbav:"data_pagamento,omitempty"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// ContaReceberDynamoRepository persists receivable ledger entries.

type ContaReceberDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContaReceberRepository = (*ContaReceberDynamoRepository)(nil)

func NewContaReceberDynamoRepository(ddb *dynamodb.Client) *ContaReceberDynamoRepository {
	return &ContaReceberDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTAS_RECEBER_TABLE", defaultContasReceberTableName),
	}
}

func (r *ContaReceberDynamoRepository) Create(ctx context.Context, c entities.ContaReceber) (entities.ContaReceber, error) {
	av, err := attributevalue.MarshalMap(toContaReceberItem(c))
	if err != nil {
		return entities.ContaReceber{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.ContaReceber{}, err
	}
	return c, nil
}

func (r *ContaReceberDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContaReceber, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ContaReceber{}, err
	}
	if len(out.Item) == 0 {
		return entities.ContaReceber{}, nil
	}

	var it contaReceberItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ContaReceber{}, err
	}
	return fromContaReceberItem(it), nil
}

func (r *ContaReceberDynamoRepository) List(ctx context.Context) ([]entities.ContaReceber, error) {
	var items []contaReceberItem
	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		var page []contaReceberItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	sortByCreatedAtDesc(items, func(it contaReceberItem) string { return it.CreatedAt })
	contas := make([]entities.ContaReceber, 0, len(items))
	for _, it := range items {
		contas = append(contas, fromContaReceberItem(it))
	}
	return contas, nil
}

func (r *ContaReceberDynamoRepository) Update(ctx context.Context, c entities.ContaReceber) (entities.ContaReceber, error) {
	av, err := attributevalue.MarshalMap(toContaReceberItem(c))
	if err != nil {
		return entities.ContaReceber{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ContaReceber{}, nil
		}
		return entities.ContaReceber{}, err
	}
	return c, nil
}

func (r *ContaReceberDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// ContaGeralDynamoRepository persists general expense entries.

type ContaGeralDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContaGeralRepository = (*ContaGeralDynamoRepository)(nil)

func NewContaGeralDynamoRepository(ddb *dynamodb.Client) *ContaGeralDynamoRepository {
	return &ContaGeralDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTAS_GERAIS_TABLE", defaultContasGeraisTableName),
	}
}

func (r *ContaGeralDynamoRepository) Create(ctx context.Context, c entities.ContaGeral) (entities.ContaGeral, error) {
	av, err := attributevalue.MarshalMap(toContaGeralItem(c))
	if err != nil {
		return entities.ContaGeral{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.ContaGeral{}, err
	}
	return c, nil
}

func (r *ContaGeralDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContaGeral, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ContaGeral{}, err
	}
	if len(out.Item) == 0 {
		return entities.ContaGeral{}, nil
	}

	var it contaGeralItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ContaGeral{}, err
	}
	return fromContaGeralItem(it), nil
}

func (r *ContaGeralDynamoRepository) List(ctx context.Context) ([]entities.ContaGeral, error) {
	var items []contaGeralItem
	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		var page []contaGeralItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	sortByCreatedAtDesc(items, func(it contaGeralItem) string { return it.CreatedAt })
	contas := make([]entities.ContaGeral, 0, len(items))
	for _, it := range items {
		contas = append(contas, fromContaGeralItem(it))
	}
	return contas, nil
}

func (r *ContaGeralDynamoRepository) Update(ctx context.Context, c entities.ContaGeral) (entities.ContaGeral, error) {
	av, err := attributevalue.MarshalMap(toContaGeralItem(c))
	if err != nil {
		return entities.ContaGeral{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ContaGeral{}, nil
		}
		return entities.ContaGeral{}, err
	}
	return c, nil
}

func (r *ContaGeralDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toContaReceberItem(c entities.ContaReceber) contaReceberItem {
	return contaReceberItem{
		ID:              c.ID,
		Numero:          c.Numero,
		ClienteID:       c.ClienteID,
		OrcamentoID:     c.OrcamentoID,
		Valor:           c.Valor.String(),
		Vencimento:      c.Vencimento,
		DataRecebimento: c.DataRecebimento,
		FormaPagamento:  string(c.FormaPagamento),
		Status:          string(c.Status),
		CreatedAt:       formatTime(c.CreatedAt),
		UpdatedAt:       formatTime(c.UpdatedAt),
	}
}

func fromContaReceberItem(it contaReceberItem) entities.ContaReceber {
	return entities.ContaReceber{
		ID:              it.ID,
		Numero:          it.Numero,
		ClienteID:       it.ClienteID,
		OrcamentoID:     it.OrcamentoID,
		Valor:           parseDecimal(it.Valor),
		Vencimento:      it.Vencimento,
		DataRecebimento: it.DataRecebimento,
		FormaPagamento:  entities.FormaPagamento(it.FormaPagamento),
		Status:          entities.StatusConta(it.Status),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}

func toContaGeralItem(c entities.ContaGeral) contaGeralItem {
	return contaGeralItem{
		ID:            c.ID,
		Numero:        c.Numero,
		Descricao:     c.Descricao,
		Tipo:          string(c.Tipo),
		Valor:         c.Valor.String(),
		Vencimento:    c.Vencimento,
		DataPagamento: c.DataPagamento,
		Status:        string(c.Status),
		CreatedAt:     formatTime(c.CreatedAt),
		UpdatedAt:     formatTime(c.UpdatedAt),
	}
}

func fromContaGeralItem(it contaGeralItem) entities.ContaGeral {
	return entities.ContaGeral{
		ID:            it.ID,
		Numero:        it.Numero,
		Descricao:     it.Descricao,
		Tipo:          entities.TipoContaGeral(it.Tipo),
		Valor:         parseDecimal(it.Valor),
		Vencimento:    it.Vencimento,
		DataPagamento: it.DataPagamento,
		Status:        entities.StatusConta(it.Status),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
