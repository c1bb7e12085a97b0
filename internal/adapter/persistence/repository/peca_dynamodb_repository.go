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

const defaultPecasTableName = "pecas"

type pecaItem struct {
	ID            string `dynamodbav:"id"`
	Nome          string `dynamodbav:"nome"`
	ValorUnitario string `dynamodbav:"valor_unitario"`
	Estoque       int    `dynamodbav:"estoque"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// PecaDynamoRepository persists the parts catalog. Catalog prices are stored
// as decimal strings; quote lines keep their own snapshot.

type PecaDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPecaRepository = (*PecaDynamoRepository)(nil)

func NewPecaDynamoRepository(ddb *dynamodb.Client) *PecaDynamoRepository {
	return &PecaDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PECAS_TABLE", defaultPecasTableName),
	}
}

func (r *PecaDynamoRepository) Create(ctx context.Context, p entities.Peca) (entities.Peca, error) {
	av, err := attributevalue.MarshalMap(toPecaItem(p))
	if err != nil {
		return entities.Peca{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Peca{}, err
	}
	return p, nil
}

func (r *PecaDynamoRepository) GetByID(ctx context.Context, id string) (entities.Peca, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Peca{}, err
	}
	if len(out.Item) == 0 {
		return entities.Peca{}, nil
	}

	var it pecaItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Peca{}, err
	}
	return fromPecaItem(it), nil
}

func (r *PecaDynamoRepository) List(ctx context.Context) ([]entities.Peca, error) {
	var items []pecaItem
	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		var page []pecaItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	sortByCreatedAtDesc(items, func(it pecaItem) string { return it.CreatedAt })
	pecas := make([]entities.Peca, 0, len(items))
	for _, it := range items {
		pecas = append(pecas, fromPecaItem(it))
	}
	return pecas, nil
}

func (r *PecaDynamoRepository) Update(ctx context.Context, p entities.Peca) (entities.Peca, error) {
	av, err := attributevalue.MarshalMap(toPecaItem(p))
	if err != nil {
		return entities.Peca{}, err
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
			return entities.Peca{}, nil
		}
		return entities.Peca{}, err
	}
	return p, nil
}

func (r *PecaDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPecaItem(p entities.Peca) pecaItem {
	return pecaItem{
		ID:            p.ID,
		Nome:          p.Nome,
		ValorUnitario: p.ValorUnitario.String(),
		Estoque:       p.Estoque,
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
}

func fromPecaItem(it pecaItem) entities.Peca {
	return entities.Peca{
		ID:            it.ID,
		Nome:          it.Nome,
		ValorUnitario: parseDecimal(it.ValorUnitario),
		Estoque:       it.Estoque,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
