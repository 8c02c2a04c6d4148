package repository

import (
	"context"
	"errors"
	"time"

	"cotizador_service/internal/domain/entities"
	"cotizador_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultQuotationsTableName = "cotizaciones"

type lineItemRecord struct {
	Description string `dynamodbav:"descripcion"`
	Quantity    string `dynamodbav:"cantidad"`
	Unit        string `dynamodbav:"unidad"`
	UnitPrice   string `dynamodbav:"precio_unitario"`
	Subtotal    string `dynamodbav:"subtotal"`
}

type quotationItem struct {
	ID          string           `dynamodbav:"cotizacion_id"`
	RequestID   string           `dynamodbav:"solicitud_id"`
	ClientID    string           `dynamodbav:"client_id"`
	Service     string           `dynamodbav:"servicio_solicitado"`
	Details     string           `dynamodbav:"detalles"`
	LineItems   []lineItemRecord `dynamodbav:"lineas_cotizacion"`
	TotalPrice  string           `dynamodbav:"total_price"`
	Status      string           `dynamodbav:"estado"`
	GeneratedAt string           `dynamodbav:"fecha_generacion"`
	ArtifactURL string           `dynamodbav:"enlace_pdf_s3,omitempty"`
	Adjustment  map[string]any   `dynamodbav:"ajuste,omitempty"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: cotizacion_id (string)
//
// Attribute names match the table the original service wrote to, so records
// written by either version stay readable.

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client, tableName string) *QuotationDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("COTIZACIONES_TABLE_NAME", defaultQuotationsTableName)
	}
	return &QuotationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	it := toQuotationItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quotation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "cotizacion_id",
		},
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"cotizacion_id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) UpdateArtifactURL(ctx context.Context, id string, url string) (entities.Quotation, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #enlace = :enlace"
		vals := map[string]types.AttributeValue{
			":enlace": &types.AttributeValueMemberS{Value: url},
		}
		names := map[string]string{
			"#enlace": "enlace_pdf_s3",
		}
		return expr, vals, names
	})
}

func (r *QuotationDynamoRepository) UpdateAdjustment(ctx context.Context, id string, adjustment map[string]any, status entities.QuotationStatus) (entities.Quotation, error) {
	av, err := attributevalue.Marshal(adjustment)
	if err != nil {
		return entities.Quotation{}, err
	}

	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #ajuste = :ajuste, #estado = :estado"
		vals := map[string]types.AttributeValue{
			":ajuste": av,
			":estado": &types.AttributeValueMemberS{Value: string(status)},
		}
		names := map[string]string{
			"#ajuste": "ajuste",
			"#estado": "estado",
		}
		return expr, vals, names
	})
}

func (r *QuotationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #estado = :estado"
		vals := map[string]types.AttributeValue{
			":estado": &types.AttributeValueMemberS{Value: string(status)},
		}
		names := map[string]string{
			"#estado": "estado",
		}
		return expr, vals, names
	})
}

// update applies a conditional UpdateItem. The attribute_exists condition is
// what keeps a mutation against a missing id from creating a partial record;
// a conditional failure comes back as a zero-value Quotation.
func (r *QuotationDynamoRepository) update(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Quotation, error) {
	updateExpr, values, names := build()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"cotizacion_id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "cotizacion_id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quotation{}, nil
	}
	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func toQuotationItem(q entities.Quotation) quotationItem {
	lines := make([]lineItemRecord, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		lines = append(lines, lineItemRecord{
			Description: li.Description,
			Quantity:    li.Quantity.String(),
			Unit:        li.Unit,
			UnitPrice:   li.UnitPrice.String(),
			Subtotal:    li.Subtotal.String(),
		})
	}
	return quotationItem{
		ID:          q.ID,
		RequestID:   q.RequestID,
		ClientID:    q.ClientID,
		Service:     q.Service,
		Details:     q.Details,
		LineItems:   lines,
		TotalPrice:  q.TotalPrice.String(),
		Status:      string(q.Status),
		GeneratedAt: q.GeneratedAt.UTC().Format(time.RFC3339Nano),
		ArtifactURL: q.ArtifactURL,
		Adjustment:  q.Adjustment,
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	lines := make([]entities.LineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		lines = append(lines, entities.LineItem{
			Description: li.Description,
			Quantity:    decimalOrZero(li.Quantity),
			Unit:        li.Unit,
			UnitPrice:   decimalOrZero(li.UnitPrice),
			Subtotal:    decimalOrZero(li.Subtotal),
		})
	}
	generatedAt, _ := time.Parse(time.RFC3339Nano, it.GeneratedAt)
	return entities.Quotation{
		ID:          it.ID,
		RequestID:   it.RequestID,
		ClientID:    it.ClientID,
		Service:     it.Service,
		Details:     it.Details,
		LineItems:   lines,
		TotalPrice:  decimalOrZero(it.TotalPrice),
		Status:      entities.QuotationStatus(it.Status),
		GeneratedAt: generatedAt,
		ArtifactURL: it.ArtifactURL,
		Adjustment:  it.Adjustment,
	}
}

func decimalOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
