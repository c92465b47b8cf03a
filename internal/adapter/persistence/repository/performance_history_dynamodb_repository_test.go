package repository

import (
	"context"
	"testing"
	"time"

	"po_tracker/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestSnapshotSortKey_OrdersChronologically(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	earlier := snapshotSortKey(entities.PerformanceSnapshot{ID: "b", Date: base})
	later := snapshotSortKey(entities.PerformanceSnapshot{ID: "a", Date: base.Add(500 * time.Millisecond)})
	if !(earlier < later) {
		t.Fatalf("expected %q < %q", earlier, later)
	}
}

func TestPerformanceHistoryDynamoRepository_ListByVendorCode(t *testing.T) {
	s := entities.PerformanceSnapshot{
		ID:                 "snap-1",
		VendorCode:         "V1",
		Date:               time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		PerformanceMetrics: entities.PerformanceMetrics{AverageResponseTime: 2},
	}
	av, err := attributevalue.MarshalMap(toPerformanceSnapshotItem(s))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	fake := &fakeDynamoDB{
		query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{av}}, nil
		},
	}
	repo := NewPerformanceHistoryDynamoRepository(fake, "")

	got, err := repo.ListByVendorCode(context.Background(), "V1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != "snap-1" || got[0].AverageResponseTime != 2 {
		t.Fatalf("unexpected snapshots: %+v", got)
	}
	q := fake.queries[0]
	if aws.ToString(q.TableName) != DefaultPerformanceHistoryTableName {
		t.Fatalf("unexpected table %q", aws.ToString(q.TableName))
	}
	if !aws.ToBool(q.ScanIndexForward) {
		t.Fatalf("expected forward scan")
	}
}
