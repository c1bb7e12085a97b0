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

const defaultOrcamentosTableName = "orcamentos"

type orcamentoPecaItem struct {
	ID            string `dynamodbav:"id"`
	PecaID        string `dynamodbav:"peca_id"`
	PecaNome      string `dynamodbav:"peca_nome"`
	Quantidade    int    `dynamodbav:"quantidade"`
	ValorUnitario string `dynamodbav:"valor_unitario"`
	CreatedAt     string `dynamodbav:"created_at"`
}

type orcamentoServicoItem struct {
	ID          string `dynamodbav:"id"`
	ServicoID   string `dynamodbav:"servico_id"`
	ServicoNome string `dynamodbav:"servico_nome"`
	Horas       string `dynamodbav:"horas"`
	ValorHora   string `dynamodbav:"valor_hora"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type orcamentoItem struct {
	ID            string                 `dynamodbav:"id"`
	Numero        string                 `dynamodbav:"numero"`
	ClienteID     string                 `dynamodbav:"cliente_id"`
	VeiculoID     string                 `dynamodbav:"veiculo_id,omitempty"`
	DataOrcamento string                 `dynamodbav:"data_orcamento"`
	Validade      string                 `dynamodbav:"validade"`
	KMAtual       string                 `dynamodbav:"km_atual,omitempty"`
	Status        string                 `dynamodbav:"status"`
	ValorTotal    string                 `dynamodbav:"valor_total"`
	Pecas         []orcamentoPecaItem    `dynamodbav:"pecas"`
	Servicos      []orcamentoServicoItem `dynamodbav:"servicos"`
	CreatedAt     string                 `dynamodbav:"created_at"`
	UpdatedAt     string                 `dynamodbav:"updated_at"`
}

// OrcamentoDynamoRepository persists the quote aggregate in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Line items live inside the quote item, so a quote and its lines always
// read and delete as one unit.

type OrcamentoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrcamentoRepository = (*OrcamentoDynamoRepository)(nil)

func NewOrcamentoDynamoRepository(ddb *dynamodb.Client) *OrcamentoDynamoRepository {
	return &OrcamentoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORCAMENTOS_TABLE", defaultOrcamentosTableName),
	}
}

func (r *OrcamentoDynamoRepository) Create(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error) {
	av, err := attributevalue.MarshalMap(toOrcamentoItem(o))
	if err != nil {
		return entities.Orcamento{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Orcamento{}, err
	}
	return o, nil
}

func (r *OrcamentoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Orcamento, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Orcamento{}, err
	}
	if len(out.Item) == 0 {
		return entities.Orcamento{}, nil
	}

	var it orcamentoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Orcamento{}, err
	}
	return fromOrcamentoItem(it), nil
}

func (r *OrcamentoDynamoRepository) List(ctx context.Context) ([]entities.Orcamento, error) {
	var items []orcamentoItem
	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		var page []orcamentoItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	sortByCreatedAtDesc(items, func(it orcamentoItem) string { return it.CreatedAt })
	orcamentos := make([]entities.Orcamento, 0, len(items))
	for _, it := range items {
		orcamentos = append(orcamentos, fromOrcamentoItem(it))
	}
	return orcamentos, nil
}

func (r *OrcamentoDynamoRepository) Update(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error) {
	av, err := attributevalue.MarshalMap(toOrcamentoItem(o))
	if err != nil {
		return entities.Orcamento{}, err
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
			return entities.Orcamento{}, nil
		}
		return entities.Orcamento{}, err
	}
	return o, nil
}

func (r *OrcamentoDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toOrcamentoItem(o entities.Orcamento) orcamentoItem {
	pecas := make([]orcamentoPecaItem, 0, len(o.Pecas))
	for _, p := range o.Pecas {
		pecas = append(pecas, orcamentoPecaItem{
			ID:            p.ID,
			PecaID:        p.PecaID,
			PecaNome:      p.PecaNome,
			Quantidade:    p.Quantidade,
			ValorUnitario: p.ValorUnitario.String(),
			CreatedAt:     formatTime(p.CreatedAt),
		})
	}
	servicos := make([]orcamentoServicoItem, 0, len(o.Servicos))
	for _, s := range o.Servicos {
		servicos = append(servicos, orcamentoServicoItem{
			ID:          s.ID,
			ServicoID:   s.ServicoID,
			ServicoNome: s.ServicoNome,
			Horas:       s.Horas.String(),
			ValorHora:   s.ValorHora.String(),
			CreatedAt:   formatTime(s.CreatedAt),
		})
	}
	return orcamentoItem{
		ID:            o.ID,
		Numero:        o.Numero,
		ClienteID:     o.ClienteID,
		VeiculoID:     o.VeiculoID,
		DataOrcamento: o.DataOrcamento,
		Validade:      o.Validade,
		KMAtual:       o.KMAtual,
		Status:        string(o.Status),
		ValorTotal:    o.ValorTotal.String(),
		Pecas:         pecas,
		Servicos:      servicos,
		CreatedAt:     formatTime(o.CreatedAt),
		UpdatedAt:     formatTime(o.UpdatedAt),
	}
}

func fromOrcamentoItem(it orcamentoItem) entities.Orcamento {
	pecas := make([]entities.OrcamentoPeca, 0, len(it.Pecas))
	for _, p := range it.Pecas {
		pecas = append(pecas, entities.OrcamentoPeca{
			ID:            p.ID,
			PecaID:        p.PecaID,
			PecaNome:      p.PecaNome,
			Quantidade:    p.Quantidade,
			ValorUnitario: parseDecimal(p.ValorUnitario),
			CreatedAt:     parseTime(p.CreatedAt),
		})
	}
	servicos := make([]entities.OrcamentoServico, 0, len(it.Servicos))
	for _, s := range it.Servicos {
		servicos = append(servicos, entities.OrcamentoServico{
			ID:          s.ID,
			ServicoID:   s.ServicoID,
			ServicoNome: s.ServicoNome,
			Horas:       parseDecimal(s.Horas),
			ValorHora:   parseDecimal(s.ValorHora),
			CreatedAt:   parseTime(s.CreatedAt),
		})
	}
	return entities.Orcamento{
		ID:            it.ID,
		Numero:        it.Numero,
		ClienteID:     it.ClienteID,
		VeiculoID:     it.VeiculoID,
		DataOrcamento: it.DataOrcamento,
		Validade:      it.Validade,
		KMAtual:       it.KMAtual,
		Status:        entities.StatusOrcamento(it.Status),
		ValorTotal:    parseDecimal(it.ValorTotal),
		Pecas:         pecas,
		Servicos:      servicos,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
