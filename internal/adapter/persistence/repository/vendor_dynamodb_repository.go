package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"po_tracker/internal/domain/entities"
	"po_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultVendorsTableName = "vendors"

type vendorItem struct {
	VendorCode          string  `dynamodbav:"vendor_code"`
	Name                string  `dynamodbav:"name"`
	ContactDetails      string  `dynamodbav:"contact_details"`
	Address             string  `dynamodbav:"address"`
	OnTimeDeliveryRate  float64 `dynamodbav:"on_time_delivery_rate"`
	QualityRatingAvg    float64 `dynamodbav:"quality_rating_avg"`
	AverageResponseTime float64 `dynamodbav:"average_response_time"`
	FulfillmentRate     float64 `dynamodbav:"fulfillment_rate"`
	CreatedAt           string  `dynamodbav:"created_at"`
	UpdatedAt           string  `dynamodbav:"updated_at"`
}

// VendorDynamoRepository persists Vendor entities in DynamoDB.
//
// Table requirements:
//   - PK: vendor_code (string)

type VendorDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IVendorRepository = (*VendorDynamoRepository)(nil)

func NewVendorDynamoRepository(ddb DynamoDBAPI, tableName string) *VendorDynamoRepository {
	if tableName == "" {
		tableName = DefaultVendorsTableName
	}
	return &VendorDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *VendorDynamoRepository) Create(ctx context.Context, v entities.Vendor) (entities.Vendor, error) {
	av, err := attributevalue.MarshalMap(toVendorItem(v))
	if err != nil {
		return entities.Vendor{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#vendor_code)"),
		ExpressionAttributeNames: map[string]string{
			"#vendor_code": "vendor_code",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Vendor{}, interfaces.ErrDuplicateKey
		}
		return entities.Vendor{}, err
	}
	return v, nil
}

func (r *VendorDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Vendor, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            vendorKey(code),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Vendor{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vendor{}, nil
	}

	var it vendorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vendor{}, err
	}
	return fromVendorItem(it), nil
}

func (r *VendorDynamoRepository) List(ctx context.Context) ([]entities.Vendor, error) {
	vendors := []entities.Vendor{}
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it vendorItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			vendors = append(vendors, fromVendorItem(it))
		}
	}
	sort.Slice(vendors, func(i, j int) bool { return vendors[i].VendorCode < vendors[j].VendorCode })
	return vendors, nil
}

func (r *VendorDynamoRepository) UpdateProfile(ctx context.Context, code string, update entities.VendorProfileUpdate) (entities.Vendor, error) {
	return r.update(ctx, code, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{"#updated_at": "updated_at"}

		if update.Name != nil {
			expr += ", #name = :name"
			vals[":name"] = &types.AttributeValueMemberS{Value: *update.Name}
			names["#name"] = "name"
		}
		if update.ContactDetails != nil {
			expr += ", #contact_details = :contact_details"
			vals[":contact_details"] = &types.AttributeValueMemberS{Value: *update.ContactDetails}
			names["#contact_details"] = "contact_details"
		}
		if update.Address != nil {
			expr += ", #address = :address"
			vals[":address"] = &types.AttributeValueMemberS{Value: *update.Address}
			names["#address"] = "address"
		}
		return expr, vals, names
	})
}

func (r *VendorDynamoRepository) UpdateMetrics(ctx context.Context, code string, m entities.PerformanceMetrics) (entities.Vendor, error) {
	return r.update(ctx, code, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #otd = :otd, #qra = :qra, #art = :art, #fr = :fr, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":otd":        &types.AttributeValueMemberN{Value: floatToString(m.OnTimeDeliveryRate)},
			":qra":        &types.AttributeValueMemberN{Value: floatToString(m.QualityRatingAvg)},
			":art":        &types.AttributeValueMemberN{Value: floatToString(m.AverageResponseTime)},
			":fr":         &types.AttributeValueMemberN{Value: floatToString(m.FulfillmentRate)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#otd":        "on_time_delivery_rate",
			"#qra":        "quality_rating_avg",
			"#art":        "average_response_time",
			"#fr":         "fulfillment_rate",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *VendorDynamoRepository) Delete(ctx context.Context, code string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          vendorKey(code),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *VendorDynamoRepository) update(
	ctx context.Context,
	code string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Vendor, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       vendorKey(code),
		ConditionExpression:       aws.String("attribute_exists(#vendor_code)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#vendor_code": "vendor_code"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Vendor{}, nil
		}
		return entities.Vendor{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Vendor{}, nil
	}
	var it vendorItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Vendor{}, err
	}
	return fromVendorItem(it), nil
}

func vendorKey(code string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"vendor_code": &types.AttributeValueMemberS{Value: code},
	}
}

func toVendorItem(v entities.Vendor) vendorItem {
	return vendorItem{
		VendorCode:          v.VendorCode,
		Name:                v.Name,
		ContactDetails:      v.ContactDetails,
		Address:             v.Address,
		OnTimeDeliveryRate:  v.OnTimeDeliveryRate,
		QualityRatingAvg:    v.QualityRatingAvg,
		AverageResponseTime: v.AverageResponseTime,
		FulfillmentRate:     v.FulfillmentRate,
		CreatedAt:           formatTime(v.CreatedAt),
		UpdatedAt:           formatTime(v.UpdatedAt),
	}
}

func fromVendorItem(it vendorItem) entities.Vendor {
	return entities.Vendor{
		VendorCode:     it.VendorCode,
		Name:           it.Name,
		ContactDetails: it.ContactDetails,
		Address:        it.Address,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
		PerformanceMetrics: entities.PerformanceMetrics{
			OnTimeDeliveryRate:  it.OnTimeDeliveryRate,
			QualityRatingAvg:    it.QualityRatingAvg,
			AverageResponseTime: it.AverageResponseTime,
			FulfillmentRate:     it.FulfillmentRate,
		},
	}
}
