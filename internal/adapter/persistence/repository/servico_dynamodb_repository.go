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

const defaultServicosTableName = "servicos"

type servicoItem struct {
	ID        string `dynamodbav:"id"`
	Nome      string `dynamodbav:"nome"`
	ValorHora string `dynamodbav:"valor_hora"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type ServicoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServicoRepository = (*ServicoDynamoRepository)(nil)

func NewServicoDynamoRepository(ddb *dynamodb.Client) *ServicoDynamoRepository {
	return &ServicoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICOS_TABLE", defaultServicosTableName),
	}
}

func (r *ServicoDynamoRepository) Create(ctx context.Context, s entities.Servico) (entities.Servico, error) {
	av, err := attributevalue.MarshalMap(toServicoItem(s))
	if err != nil {
		return entities.Servico{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Servico{}, err
	}
	return s, nil
}

func (r *ServicoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Servico, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Servico{}, err
	}
	if len(out.Item) == 0 {
		return entities.Servico{}, nil
	}

	var it servicoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Servico{}, err
	}
	return fromServicoItem(it), nil
}

func (r *ServicoDynamoRepository) List(ctx context.Context) ([]entities.Servico, error) {
	var items []servicoItem
	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		var page []servicoItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	sortByCreatedAtDesc(items, func(it servicoItem) string { return it.CreatedAt })
	servicos := make([]entities.Servico, 0, len(items))
	for _, it := range items {
		servicos = append(servicos, fromServicoItem(it))
	}
	return servicos, nil
}

func (r *ServicoDynamoRepository) Update(ctx context.Context, s entities.Servico) (entities.Servico, error) {
	av, err := attributevalue.MarshalMap(toServicoItem(s))
	if err != nil {
		return entities.Servico{}, err
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
			return entities.Servico{}, nil
		}
		return entities.Servico{}, err
	}
	return s, nil
}

func (r *ServicoDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toServicoItem(s entities.Servico) servicoItem {
	return servicoItem{
		ID:        s.ID,
		Nome:      s.Nome,
		ValorHora: s.ValorHora.String(),
		CreatedAt: formatTime(s.CreatedAt),
		UpdatedAt: formatTime(s.UpdatedAt),
	}
}

func fromServicoItem(it servicoItem) entities.Servico {
	return entities.Servico{
		ID:        it.ID,
		Nome:      it.Nome,
		ValorHora: parseDecimal(it.ValorHora),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
