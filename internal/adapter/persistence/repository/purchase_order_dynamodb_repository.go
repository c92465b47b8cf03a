package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"po_tracker/internal/domain/entities"
	"po_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultPurchaseOrdersTableName = "purchase_orders"
	purchaseOrdersVendorCodeIndex  = "vendor_code-index"
)

type purchaseOrderItem struct {
	PONumber           string   `dynamodbav:"po_number"`
	VendorCode         string   `dynamodbav:"vendor_code"`
	OrderDate          string   `dynamodbav:"order_date"`
	DeliveryDate       string   `dynamodbav:"delivery_date"`
	Items              string   `dynamodbav:"items"`
	Quantity           int      `dynamodbav:"quantity"`
	Status             string   `dynamodbav:"status"`
	QualityRating      *float64 `dynamodbav:"quality_rating,omitempty"`
	IssueDate          string   `dynamodbav:"issue_date"`
	AcknowledgmentDate *string  `dynamodbav:"acknowledgment_date,omitempty"`
}

// PurchaseOrderDynamoRepository persists PurchaseOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: po_number (string)
//   - GSI vendor_code-index: vendor_code (string)
//
// Counts use Select=COUNT so the metrics engine never pulls full items to
// compute a denominator. Unset rating and acknowledgment are stored as absent
// attributes, which lets attribute_exists() drive the Rated/Acknowledged filters.

type PurchaseOrderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPurchaseOrderRepository = (*PurchaseOrderDynamoRepository)(nil)

func NewPurchaseOrderDynamoRepository(ddb DynamoDBAPI, tableName string) *PurchaseOrderDynamoRepository {
	if tableName == "" {
		tableName = DefaultPurchaseOrdersTableName
	}
	return &PurchaseOrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PurchaseOrderDynamoRepository) Create(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
	av, err := attributevalue.MarshalMap(toPurchaseOrderItem(po))
	if err != nil {
		return entities.PurchaseOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#po_number)"),
		ExpressionAttributeNames: map[string]string{
			"#po_number": "po_number",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PurchaseOrder{}, interfaces.ErrDuplicateKey
		}
		return entities.PurchaseOrder{}, err
	}
	return po, nil
}

func (r *PurchaseOrderDynamoRepository) GetByID(ctx context.Context, poNumber string) (entities.PurchaseOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            purchaseOrderKey(poNumber),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.PurchaseOrder{}, nil
	}

	var it purchaseOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PurchaseOrder{}, err
	}
	return fromPurchaseOrderItem(it), nil
}

func (r *PurchaseOrderDynamoRepository) List(ctx context.Context, filter entities.PurchaseOrderFilter) ([]entities.PurchaseOrder, error) {
	raws, err := r.collect(ctx, filter, "")
	if err != nil {
		return nil, err
	}

	items := make([]entities.PurchaseOrder, 0, len(raws))
	for _, raw := range raws {
		var it purchaseOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPurchaseOrderItem(it))
	}
	sortPurchaseOrders(items)
	return items, nil
}

// Update overwrites the mutable lifecycle fields of an existing order.
// A missing order yields a zero-valued PurchaseOrder.
func (r *PurchaseOrderDynamoRepository) Update(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
	set := []string{"#delivery_date = :delivery_date", "#status = :status"}
	var remove []string
	values := map[string]types.AttributeValue{
		":delivery_date": &types.AttributeValueMemberS{Value: formatTime(po.DeliveryDate)},
		":status":        &types.AttributeValueMemberS{Value: string(po.Status)},
	}
	names := map[string]string{
		"#delivery_date":       "delivery_date",
		"#status":              "status",
		"#quality_rating":      "quality_rating",
		"#acknowledgment_date": "acknowledgment_date",
	}

	if po.QualityRating != nil {
		set = append(set, "#quality_rating = :quality_rating")
		values[":quality_rating"] = &types.AttributeValueMemberN{Value: floatToString(*po.QualityRating)}
	} else {
		remove = append(remove, "#quality_rating")
	}
	if po.AcknowledgmentDate != nil {
		set = append(set, "#acknowledgment_date = :acknowledgment_date")
		values[":acknowledgment_date"] = &types.AttributeValueMemberS{Value: formatTime(*po.AcknowledgmentDate)}
	} else {
		remove = append(remove, "#acknowledgment_date")
	}

	expr := "SET " + strings.Join(set, ", ")
	if len(remove) > 0 {
		expr += " REMOVE " + strings.Join(remove, ", ")
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       purchaseOrderKey(po.PONumber),
		ConditionExpression:       aws.String("attribute_exists(#po_number)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#po_number": "po_number"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PurchaseOrder{}, nil
		}
		return entities.PurchaseOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PurchaseOrder{}, nil
	}
	var it purchaseOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PurchaseOrder{}, err
	}
	return fromPurchaseOrderItem(it), nil
}

func (r *PurchaseOrderDynamoRepository) Delete(ctx context.Context, poNumber string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          purchaseOrderKey(poNumber),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

// Count reads the base table with a strongly consistent scan. The vendor GSI
// may not yet reflect an order written by the same request.
func (r *PurchaseOrderDynamoRepository) Count(ctx context.Context, filter entities.PurchaseOrderFilter) (int64, error) {
	var total int64
	p := dynamodb.NewScanPaginator(r.ddb, r.scan(filter, types.SelectCount))
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int64(page.Count)
	}
	return total, nil
}

func (r *PurchaseOrderDynamoRepository) DeleteByVendorCode(ctx context.Context, vendorCode string) (int, error) {
	orders, err := r.List(ctx, entities.PurchaseOrderFilter{VendorCode: vendorCode})
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, po := range orders {
		ok, err := r.Delete(ctx, po.PONumber)
		if err != nil {
			return removed, err
		}
		if ok {
			removed++
		}
	}
	return removed, nil
}

func (r *PurchaseOrderDynamoRepository) collect(ctx context.Context, filter entities.PurchaseOrderFilter, sel types.Select) ([]map[string]types.AttributeValue, error) {
	var raws []map[string]types.AttributeValue
	if filter.VendorCode != "" {
		p := dynamodb.NewQueryPaginator(r.ddb, r.vendorQuery(filter, sel))
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			raws = append(raws, page.Items...)
		}
		return raws, nil
	}

	p := dynamodb.NewScanPaginator(r.ddb, r.scan(filter, sel))
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		raws = append(raws, page.Items...)
	}
	return raws, nil
}

func (r *PurchaseOrderDynamoRepository) vendorQuery(filter entities.PurchaseOrderFilter, sel types.Select) *dynamodb.QueryInput {
	expr, values, names := purchaseOrderFilterExpression(filter)
	values = mergeValues(values, map[string]types.AttributeValue{
		":vendor_code": &types.AttributeValueMemberS{Value: filter.VendorCode},
	})
	names = mergeNames(names, map[string]string{"#vendor_code": "vendor_code"})

	in := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(purchaseOrdersVendorCodeIndex),
		KeyConditionExpression:    aws.String("#vendor_code = :vendor_code"),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		Select:                    sel,
	}
	if expr != "" {
		in.FilterExpression = aws.String(expr)
	}
	return in
}

func (r *PurchaseOrderDynamoRepository) scan(filter entities.PurchaseOrderFilter, sel types.Select) *dynamodb.ScanInput {
	expr, values, names := purchaseOrderFilterExpression(filter)
	if filter.VendorCode != "" {
		vendorExpr := "#vendor_code = :vendor_code"
		if expr != "" {
			vendorExpr += " AND " + expr
		}
		expr = vendorExpr
		values = mergeValues(values, map[string]types.AttributeValue{
			":vendor_code": &types.AttributeValueMemberS{Value: filter.VendorCode},
		})
		names = mergeNames(names, map[string]string{"#vendor_code": "vendor_code"})
	}

	in := &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		Select:         sel,
		ConsistentRead: aws.Bool(true),
	}
	if expr != "" {
		in.FilterExpression = aws.String(expr)
		in.ExpressionAttributeNames = names
		if len(values) > 0 {
			in.ExpressionAttributeValues = values
		}
	}
	return in
}

// purchaseOrderFilterExpression renders every criterion except VendorCode,
// which callers add as a GSI key condition or a scan filter.
func purchaseOrderFilterExpression(f entities.PurchaseOrderFilter) (string, map[string]types.AttributeValue, map[string]string) {
	var parts []string
	values := map[string]types.AttributeValue{}
	names := map[string]string{}

	if f.Status != "" {
		parts = append(parts, "#status = :status")
		values[":status"] = &types.AttributeValueMemberS{Value: string(f.Status)}
		names["#status"] = "status"
	}
	if f.Acknowledged {
		parts = append(parts, "attribute_exists(#acknowledgment_date)")
		names["#acknowledgment_date"] = "acknowledgment_date"
	}
	if f.Rated {
		parts = append(parts, "attribute_exists(#quality_rating)")
		names["#quality_rating"] = "quality_rating"
	}
	return strings.Join(parts, " AND "), values, names
}

func purchaseOrderKey(poNumber string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"po_number": &types.AttributeValueMemberS{Value: poNumber},
	}
}

func toPurchaseOrderItem(po entities.PurchaseOrder) purchaseOrderItem {
	return purchaseOrderItem{
		PONumber:           po.PONumber,
		VendorCode:         po.VendorCode,
		OrderDate:          formatTime(po.OrderDate),
		DeliveryDate:       formatTime(po.DeliveryDate),
		Items:              string(po.Items),
		Quantity:           po.Quantity,
		Status:             string(po.Status),
		QualityRating:      po.QualityRating,
		IssueDate:          formatTime(po.IssueDate),
		AcknowledgmentDate: formatOptionalTime(po.AcknowledgmentDate),
	}
}

func fromPurchaseOrderItem(it purchaseOrderItem) entities.PurchaseOrder {
	var items json.RawMessage
	if it.Items != "" {
		items = json.RawMessage(it.Items)
	}
	return entities.PurchaseOrder{
		PONumber:           it.PONumber,
		VendorCode:         it.VendorCode,
		OrderDate:          parseTime(it.OrderDate),
		DeliveryDate:       parseTime(it.DeliveryDate),
		Items:              items,
		Quantity:           it.Quantity,
		Status:             entities.PurchaseOrderStatus(it.Status),
		QualityRating:      it.QualityRating,
		IssueDate:          parseTime(it.IssueDate),
		AcknowledgmentDate: parseOptionalTime(it.AcknowledgmentDate),
	}
}

func sortPurchaseOrders(items []entities.PurchaseOrder) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].OrderDate.Equal(items[j].OrderDate) {
			return items[i].PONumber < items[j].PONumber
		}
		return items[i].OrderDate.Before(items[j].OrderDate)
	})
}

func mergeValues(a, b map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
