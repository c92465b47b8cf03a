package repository

import (
	"context"
	"errors"

	"po_tracker/internal/domain/entities"
	"po_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultPerformanceHistoryTableName = "vendor_performance_history"

type performanceSnapshotItem struct {
	VendorCode          string  `dynamodbav:"vendor_code"`
	SortKey             string  `dynamodbav:"sk"`
	ID                  string  `dynamodbav:"id"`
	Date                string  `dynamodbav:"date"`
	OnTimeDeliveryRate  float64 `dynamodbav:"on_time_delivery_rate"`
	QualityRatingAvg    float64 `dynamodbav:"quality_rating_avg"`
	AverageResponseTime float64 `dynamodbav:"average_response_time"`
	FulfillmentRate     float64 `dynamodbav:"fulfillment_rate"`
}

// PerformanceHistoryDynamoRepository is the append-only snapshot ledger.
//
// Table requirements:
//   - PK: vendor_code (string)
//   - SK: sk (string, "<fixed-width UTC date>#<id>")
//
// The sort key keeps a vendor's snapshots in chronological order, so listing
// is a single forward Query.

type PerformanceHistoryDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPerformanceHistoryRepository = (*PerformanceHistoryDynamoRepository)(nil)

func NewPerformanceHistoryDynamoRepository(ddb DynamoDBAPI, tableName string) *PerformanceHistoryDynamoRepository {
	if tableName == "" {
		tableName = DefaultPerformanceHistoryTableName
	}
	return &PerformanceHistoryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PerformanceHistoryDynamoRepository) Append(ctx context.Context, s entities.PerformanceSnapshot) error {
	av, err := attributevalue.MarshalMap(toPerformanceSnapshotItem(s))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{
			"#sk": "sk",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *PerformanceHistoryDynamoRepository) ListByVendorCode(ctx context.Context, vendorCode string) ([]entities.PerformanceSnapshot, error) {
	snapshots := []entities.PerformanceSnapshot{}
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#vendor_code = :vendor_code"),
		ExpressionAttributeNames: map[string]string{
			"#vendor_code": "vendor_code",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vendor_code": &types.AttributeValueMemberS{Value: vendorCode},
		},
		ScanIndexForward: aws.Bool(true),
		ConsistentRead:   aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it performanceSnapshotItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			snapshots = append(snapshots, fromPerformanceSnapshotItem(it))
		}
	}
	return snapshots, nil
}

// sortKeyTimeLayout is fixed width so the sort key orders lexicographically.
const sortKeyTimeLayout = "2006-01-02T15:04:05.000000000Z"

func snapshotSortKey(s entities.PerformanceSnapshot) string {
	return s.Date.UTC().Format(sortKeyTimeLayout) + "#" + s.ID
}

func toPerformanceSnapshotItem(s entities.PerformanceSnapshot) performanceSnapshotItem {
	return performanceSnapshotItem{
		VendorCode:          s.VendorCode,
		SortKey:             snapshotSortKey(s),
		ID:                  s.ID,
		Date:                formatTime(s.Date),
		OnTimeDeliveryRate:  s.OnTimeDeliveryRate,
		QualityRatingAvg:    s.QualityRatingAvg,
		AverageResponseTime: s.AverageResponseTime,
		FulfillmentRate:     s.FulfillmentRate,
	}
}

func fromPerformanceSnapshotItem(it performanceSnapshotItem) entities.PerformanceSnapshot {
	return entities.PerformanceSnapshot{
		ID:         it.ID,
		VendorCode: it.VendorCode,
		Date:       parseTime(it.Date),
		PerformanceMetrics: entities.PerformanceMetrics{
			OnTimeDeliveryRate:  it.OnTimeDeliveryRate,
			QualityRatingAvg:    it.QualityRatingAvg,
			AverageResponseTime: it.AverageResponseTime,
			FulfillmentRate:     it.FulfillmentRate,
		},
	}
}
