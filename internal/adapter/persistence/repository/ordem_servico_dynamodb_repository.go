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

const defaultOrdensServicoTableName = "ordens_servico"

type ordemServicoItem struct {
	ID              string `dynamodbav:"id"`
	Numero          string `dynamodbav:"numero"`
	ClienteID       string `dynamodbav:"cliente_id"`
	VeiculoID       string `dynamodbav:"veiculo_id,omitempty"`
	OrcamentoID     string `dynamodbav:"orcamento_id,omitempty"`
	DataInicio      string `dynamodbav:"data_inicio"`
	PrazoConclusao  string `dynamodbav:"prazo_conclusao"`
	KMAtual         string `dynamodbav:"km_atual,omitempty"`
	StatusServico   string `dynamodbav:"status_servico"`
	StatusPagamento string `dynamodbav:"status_pagamento"`
	ValorTotal      string `dynamodbav:"valor_total"`
	ValorPago       string `dynamodbav:"valor_pago"`
	FormaPagamento  string `dynamodbav:"forma_pagamento,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// OrdemServicoDynamoRepository persists work orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type OrdemServicoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrdemServicoRepository = (*OrdemServicoDynamoRepository)(nil)

func NewOrdemServicoDynamoRepository(ddb *dynamodb.Client) *OrdemServicoDynamoRepository {
	return &OrdemServicoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDENS_SERVICO_TABLE", defaultOrdensServicoTableName),
	}
}

func (r *OrdemServicoDynamoRepository) Create(ctx context.Context, os entities.OrdemServico) (entities.OrdemServico, error) {
	av, err := attributevalue.MarshalMap(toOrdemServicoItem(os))
	if err != nil {
		return entities.OrdemServico{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.OrdemServico{}, err
	}
	return os, nil
}

func (r *OrdemServicoDynamoRepository) GetByID(ctx context.Context, id string) (entities.OrdemServico, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrdemServico{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrdemServico{}, nil
	}

	var it ordemServicoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OrdemServico{}, err
	}
	return fromOrdemServicoItem(it), nil
}

func (r *OrdemServicoDynamoRepository) List(ctx context.Context) ([]entities.OrdemServico, error) {
	var items []ordemServicoItem
	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		var page []ordemServicoItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	sortByCreatedAtDesc(items, func(it ordemServicoItem) string { return it.CreatedAt })
	ordens := make([]entities.OrdemServico, 0, len(items))
	for _, it := range items {
		ordens = append(ordens, fromOrdemServicoItem(it))
	}
	return ordens, nil
}

func (r *OrdemServicoDynamoRepository) Update(ctx context.Context, os entities.OrdemServico) (entities.OrdemServico, error) {
	av, err := attributevalue.MarshalMap(toOrdemServicoItem(os))
	if err != nil {
		return entities.OrdemServico{}, err
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
			return entities.OrdemServico{}, nil
		}
		return entities.OrdemServico{}, err
	}
	return os, nil
}

func (r *OrdemServicoDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toOrdemServicoItem(os entities.OrdemServico) ordemServicoItem {
	return ordemServicoItem{
		ID:              os.ID,
		Numero:          os.Numero,
		ClienteID:       os.ClienteID,
		VeiculoID:       os.VeiculoID,
		OrcamentoID:     os.OrcamentoID,
		DataInicio:      os.DataInicio,
		PrazoConclusao:  os.PrazoConclusao,
		KMAtual:         os.KMAtual,
		StatusServico:   string(os.StatusServico),
		StatusPagamento: string(os.StatusPagamento),
		ValorTotal:      os.ValorTotal.String(),
		ValorPago:       os.ValorPago.String(),
		FormaPagamento:  os.FormaPagamento,
		CreatedAt:       formatTime(os.CreatedAt),
		UpdatedAt:       formatTime(os.UpdatedAt),
	}
}

func fromOrdemServicoItem(it ordemServicoItem) entities.OrdemServico {
	return entities.OrdemServico{
		ID:              it.ID,
		Numero:          it.Numero,
		ClienteID:       it.ClienteID,
		VeiculoID:       it.VeiculoID,
		OrcamentoID:     it.OrcamentoID,
		DataInicio:      it.DataInicio,
		PrazoConclusao:  it.PrazoConclusao,
		KMAtual:         it.KMAtual,
		StatusServico:   entities.StatusServico(it.StatusServico),
		StatusPagamento: entities.StatusPagamento(it.StatusPagamento),
		ValorTotal:      parseDecimal(it.ValorTotal),
		ValorPago:       parseDecimal(it.ValorPago),
		FormaPagamento:  it.FormaPagamento,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
