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

const defaultFornecedoresTableName = "fornecedores"

type fornecedorItem struct {
	ID        string `dynamodbav:"id"`
	Nome      string `dynamodbav:"nome"`
	CNPJ      string `dynamodbav:"cnpj"`
	Telefone  string `dynamodbav:"telefone,omitempty"`
	Email     string `dynamodbav:"email,omitempty"`
	Endereco  string `dynamodbav:"endereco,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type FornecedorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFornecedorRepository = (*FornecedorDynamoRepository)(nil)

func NewFornecedorDynamoRepository(ddb *dynamodb.Client) *FornecedorDynamoRepository {
	return &FornecedorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FORNECEDORES_TABLE", defaultFornecedoresTableName),
	}
}

func (r *FornecedorDynamoRepository) Create(ctx context.Context, f entities.Fornecedor) (entities.Fornecedor, error) {
	av, err := attributevalue.MarshalMap(toFornecedorItem(f))
	if err != nil {
		return entities.Fornecedor{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Fornecedor{}, err
	}
	return f, nil
}

func (r *FornecedorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Fornecedor, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Fornecedor{}, err
	}
	if len(out.Item) == 0 {
		return entities.Fornecedor{}, nil
	}

	var it fornecedorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Fornecedor{}, err
	}
	return fromFornecedorItem(it), nil
}

func (r *FornecedorDynamoRepository) List(ctx context.Context) ([]entities.Fornecedor, error) {
	var items []fornecedorItem
	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		var page []fornecedorItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	sortByCreatedAtDesc(items, func(it fornecedorItem) string { return it.CreatedAt })
	fornecedores := make([]entities.Fornecedor, 0, len(items))
	for _, it := range items {
		fornecedores = append(fornecedores, fromFornecedorItem(it))
	}
	return fornecedores, nil
}

func (r *FornecedorDynamoRepository) Update(ctx context.Context, f entities.Fornecedor) (entities.Fornecedor, error) {
	av, err := attributevalue.MarshalMap(toFornecedorItem(f))
	if err != nil {
		return entities.Fornecedor{}, err
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
			return entities.Fornecedor{}, nil
		}
		return entities.Fornecedor{}, err
	}
	return f, nil
}

func (r *FornecedorDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toFornecedorItem(f entities.Fornecedor) fornecedorItem {
	return fornecedorItem{
		ID:        f.ID,
		Nome:      f.Nome,
		CNPJ:      f.CNPJ,
		Telefone:  f.Telefone,
		Email:     f.Email,
		Endereco:  f.Endereco,
		CreatedAt: formatTime(f.CreatedAt),
		UpdatedAt: formatTime(f.UpdatedAt),
	}
}

func fromFornecedorItem(it fornecedorItem) entities.Fornecedor {
	return entities.Fornecedor{
		ID:        it.ID,
		Nome:      it.Nome,
		CNPJ:      it.CNPJ,
		Telefone:  it.Telefone,
		Email:     it.Email,
		Endereco:  it.Endereco,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
