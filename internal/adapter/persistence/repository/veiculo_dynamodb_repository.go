package repository

import (
	"context"

	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultVeiculosTableName = "veiculos"

type veiculoItem struct {
	ID        string `dynamodbav:"id"`
	ClienteID string `dynamodbav:"cliente_id"`
	Marca     string `dynamodbav:"marca,omitempty"`
	Modelo    string `dynamodbav:"modelo,omitempty"`
	Ano       string `dynamodbav:"ano,omitempty"`
	Placa     string `dynamodbav:"placa,omitempty"`
	KM        string `dynamodbav:"km,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// VeiculoDynamoRepository reads the vehicle records maintained alongside the
// customer registry. There is no direct write path.

type VeiculoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVeiculoRepository = (*VeiculoDynamoRepository)(nil)

func NewVeiculoDynamoRepository(ddb *dynamodb.Client) *VeiculoDynamoRepository {
	return &VeiculoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEICULOS_TABLE", defaultVeiculosTableName),
	}
}

func (r *VeiculoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Veiculo, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Veiculo{}, err
	}
	if len(out.Item) == 0 {
		return entities.Veiculo{}, nil
	}

	var it veiculoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Veiculo{}, err
	}
	return fromVeiculoItem(it), nil
}

func (r *VeiculoDynamoRepository) List(ctx context.Context) ([]entities.Veiculo, error) {
	return r.scan(ctx, nil, nil)
}

func (r *VeiculoDynamoRepository) ListByClienteID(ctx context.Context, clienteID string) ([]entities.Veiculo, error) {
	filter := aws.String("#cliente_id = :cliente_id")
	values := map[string]types.AttributeValue{
		":cliente_id": &types.AttributeValueMemberS{Value: clienteID},
	}
	return r.scan(ctx, filter, values)
}

func (r *VeiculoDynamoRepository) scan(ctx context.Context, filter *string, values map[string]types.AttributeValue) ([]entities.Veiculo, error) {
	var items []veiculoItem
	var lastKey map[string]types.AttributeValue
	for {
		in := &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		}
		if filter != nil {
			in.FilterExpression = filter
			in.ExpressionAttributeValues = values
			in.ExpressionAttributeNames = map[string]string{"#cliente_id": "cliente_id"}
		}
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		var page []veiculoItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	sortByCreatedAtDesc(items, func(it veiculoItem) string { return it.CreatedAt })
	veiculos := make([]entities.Veiculo, 0, len(items))
	for _, it := range items {
		veiculos = append(veiculos, fromVeiculoItem(it))
	}
	return veiculos, nil
}

func fromVeiculoItem(it veiculoItem) entities.Veiculo {
	return entities.Veiculo{
		ID:        it.ID,
		ClienteID: it.ClienteID,
		Marca:     it.Marca,
		Modelo:    it.Modelo,
		Ano:       it.Ano,
		Placa:     it.Placa,
		KM:        it.KM,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
