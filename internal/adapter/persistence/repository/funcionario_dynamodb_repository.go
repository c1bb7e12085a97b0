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

const defaultFuncionariosTableName = "funcionarios"

type funcionarioItem struct {
	ID        string `dynamodbav:"id"`
	Nome      string `dynamodbav:"nome"`
	Documento string `dynamodbav:"documento"`
	Categoria string `dynamodbav:"categoria"`
	Telefone  string `dynamodbav:"telefone,omitempty"`
	Endereco  string `dynamodbav:"endereco,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type FuncionarioDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFuncionarioRepository = (*FuncionarioDynamoRepository)(nil)

func NewFuncionarioDynamoRepository(ddb *dynamodb.Client) *FuncionarioDynamoRepository {
	return &FuncionarioDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FUNCIONARIOS_TABLE", defaultFuncionariosTableName),
	}
}

func (r *FuncionarioDynamoRepository) Create(ctx context.Context, f entities.Funcionario) (entities.Funcionario, error) {
	av, err := attributevalue.MarshalMap(toFuncionarioItem(f))
	if err != nil {
		return entities.Funcionario{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Funcionario{}, err
	}
	return f, nil
}

func (r *FuncionarioDynamoRepository) GetByID(ctx context.Context, id string) (entities.Funcionario, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Funcionario{}, err
	}
	if len(out.Item) == 0 {
		return entities.Funcionario{}, nil
	}

	var it funcionarioItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Funcionario{}, err
	}
	return fromFuncionarioItem(it), nil
}

func (r *FuncionarioDynamoRepository) List(ctx context.Context) ([]entities.Funcionario, error) {
	var items []funcionarioItem
	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		var page []funcionarioItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	sortByCreatedAtDesc(items, func(it funcionarioItem) string { return it.CreatedAt })
	funcionarios := make([]entities.Funcionario, 0, len(items))
	for _, it := range items {
		funcionarios = append(funcionarios, fromFuncionarioItem(it))
	}
	return funcionarios, nil
}

func (r *FuncionarioDynamoRepository) Update(ctx context.Context, f entities.Funcionario) (entities.Funcionario, error) {
	av, err := attributevalue.MarshalMap(toFuncionarioItem(f))
	if err != nil {
		return entities.Funcionario{}, err
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
			return entities.Funcionario{}, nil
		}
		return entities.Funcionario{}, err
	}
	return f, nil
}

func (r *FuncionarioDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toFuncionarioItem(f entities.Funcionario) funcionarioItem {
	return funcionarioItem{
		ID:        f.ID,
		Nome:      f.Nome,
		Documento: f.Documento,
		Categoria: string(f.Categoria),
		Telefone:  f.Telefone,
		Endereco:  f.Endereco,
		CreatedAt: formatTime(f.CreatedAt),
		UpdatedAt: formatTime(f.UpdatedAt),
	}
}

func fromFuncionarioItem(it funcionarioItem) entities.Funcionario {
	return entities.Funcionario{
		ID:        it.ID,
		Nome:      it.Nome,
		Documento: it.Documento,
		Categoria: entities.CategoriaFuncionario(it.Categoria),
		Telefone:  it.Telefone,
		Endereco:  it.Endereco,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
