package repository

import (
	"context"
	"errors"
	"strconv"

	"oficina_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSequenciasTableName = "sequencias"

var errMissingCounter = errors.New("sequencia counter attribute missing")

// SequenciaDynamoRepository allocates monotonic display numbers through an
// atomic DynamoDB counter, one item per sequence name.
//
// Table requirements:
//   - PK: nome (string)
//
// ADD creates the item on first use, so sequences need no seeding.

type SequenciaDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISequenciaRepository = (*SequenciaDynamoRepository)(nil)

func NewSequenciaDynamoRepository(ddb *dynamodb.Client) *SequenciaDynamoRepository {
	return &SequenciaDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SEQUENCIAS_TABLE", defaultSequenciasTableName),
	}
}

func (r *SequenciaDynamoRepository) Proxima(ctx context.Context, nome string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"nome": &types.AttributeValueMemberS{Value: nome},
		},
		UpdateExpression: aws.String("ADD #valor :um"),
		ExpressionAttributeNames: map[string]string{
			"#valor": "valor",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":um": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["valor"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errMissingCounter
	}
	return strconv.ParseInt(attr.Value, 10, 64)
}
