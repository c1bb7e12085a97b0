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

const defaultClientesTableName = "clientes"

type clienteItem struct {
	ID            string `dynamodbav:"id"`
	Nome          string `dynamodbav:"nome"`
	Documento     string `dynamodbav:"documento"`
	Tipo          string `dynamodbav:"tipo"`
	Telefone      string `dynamodbav:"telefone,omitempty"`
	Endereco      string `dynamodbav:"endereco,omitempty"`
	Aniversario   string `dynamodbav:"aniversario,omitempty"`
	Marca         string `dynamodbav:"marca,omitempty"`
	Modelo        string `dynamodbav:"modelo,omitempty"`
	Ano           string `dynamodbav:"ano,omitempty"`
	Placa         string `dynamodbav:"placa,omitempty"`
	Quilometragem string `dynamodbav:"quilometragem,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// ClienteDynamoRepository persists Cliente entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ClienteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClienteRepository = (*ClienteDynamoRepository)(nil)

func NewClienteDynamoRepository(ddb *dynamodb.Client) *ClienteDynamoRepository {
	return &ClienteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTES_TABLE", defaultClientesTableName),
	}
}

func (r *ClienteDynamoRepository) Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error) {
	av, err := attributevalue.MarshalMap(toClienteItem(c))
	if err != nil {
		return entities.Cliente{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Cliente{}, err
	}
	return c, nil
}

func (r *ClienteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Cliente, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cliente{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cliente{}, nil
	}

	var it clienteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cliente{}, err
	}
	return fromClienteItem(it), nil
}

func (r *ClienteDynamoRepository) List(ctx context.Context) ([]entities.Cliente, error) {
	var items []clienteItem
	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		var page []clienteItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	sortByCreatedAtDesc(items, func(it clienteItem) string { return it.CreatedAt })
	clientes := make([]entities.Cliente, 0, len(items))
	for _, it := range items {
		clientes = append(clientes, fromClienteItem(it))
	}
	return clientes, nil
}

func (r *ClienteDynamoRepository) Update(ctx context.Context, c entities.Cliente) (entities.Cliente, error) {
	av, err := attributevalue.MarshalMap(toClienteItem(c))
	if err != nil {
		return entities.Cliente{}, err
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
			return entities.Cliente{}, nil
		}
		return entities.Cliente{}, err
	}
	return c, nil
}

func (r *ClienteDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toClienteItem(c entities.Cliente) clienteItem {
	return clienteItem{
		ID:            c.ID,
		Nome:          c.Nome,
		Documento:     c.Documento,
		Tipo:          string(c.Tipo),
		Telefone:      c.Telefone,
		Endereco:      c.Endereco,
		Aniversario:   c.Aniversario,
		Marca:         c.Marca,
		Modelo:        c.Modelo,
		Ano:           c.Ano,
		Placa:         c.Placa,
		Quilometragem: c.Quilometragem,
		CreatedAt:     formatTime(c.CreatedAt),
		UpdatedAt:     formatTime(c.UpdatedAt),
	}
}

func fromClienteItem(it clienteItem) entities.Cliente {
	return entities.Cliente{
		ID:            it.ID,
		Nome:          it.Nome,
		Documento:     it.Documento,
		Tipo:          entities.TipoCliente(it.Tipo),
		Telefone:      it.Telefone,
		Endereco:      it.Endereco,
		Aniversario:   it.Aniversario,
		Marca:         it.Marca,
		Modelo:        it.Modelo,
		Ano:           it.Ano,
		Placa:         it.Placa,
		Quilometragem: it.Quilometragem,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
