package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"po_tracker/internal/domain/entities"
	"po_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func sampleVendor() entities.Vendor {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return entities.Vendor{
		VendorCode:     "V1",
		Name:           "Acme",
		ContactDetails: "ops@acme.test",
		Address:        "1 Main St",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestVendorDynamoRepository_Create(t *testing.T) {
	fake := &fakeDynamoDB{
		putItem: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
		},
	}
	repo := NewVendorDynamoRepository(fake, "")

	_, err := repo.Create(context.Background(), sampleVendor())
	if !errors.Is(err, interfaces.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestVendorDynamoRepository_UpdateProfile(t *testing.T) {
	t.Run("only supplied fields are set", func(t *testing.T) {
		v := sampleVendor()
		fake := &fakeDynamoDB{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				av, _ := attributevalue.MarshalMap(toVendorItem(v))
				return &dynamodb.UpdateItemOutput{Attributes: av}, nil
			},
		}
		repo := NewVendorDynamoRepository(fake, "")
		name := "Acme Corp"

		if _, err := repo.UpdateProfile(context.Background(), "V1", entities.VendorProfileUpdate{Name: &name}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		in := fake.updates[0]
		expr := aws.ToString(in.UpdateExpression)
		if !strings.Contains(expr, "#name = :name") || strings.Contains(expr, "#address") {
			t.Fatalf("unexpected update expression %q", expr)
		}
		for _, metric := range []string{"on_time_delivery_rate", "quality_rating_avg", "average_response_time", "fulfillment_rate"} {
			for _, n := range in.ExpressionAttributeNames {
				if n == metric {
					t.Fatalf("profile update must not touch %s", metric)
				}
			}
		}
	})

	t.Run("missing vendor returns zero value", func(t *testing.T) {
		fake := &fakeDynamoDB{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
			},
		}
		repo := NewVendorDynamoRepository(fake, "")
		name := "x"

		got, err := repo.UpdateProfile(context.Background(), "V9", entities.VendorProfileUpdate{Name: &name})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.VendorCode != "" {
			t.Fatalf("expected zero value, got %+v", got)
		}
	})
}

func TestVendorDynamoRepository_UpdateMetrics(t *testing.T) {
	want := entities.PerformanceMetrics{
		OnTimeDeliveryRate:  1,
		QualityRatingAvg:    4.5,
		AverageResponseTime: 2,
		FulfillmentRate:     0.25,
	}
	fake := &fakeDynamoDB{
		updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			v := sampleVendor()
			v.PerformanceMetrics = want
			av, _ := attributevalue.MarshalMap(toVendorItem(v))
			return &dynamodb.UpdateItemOutput{Attributes: av}, nil
		},
	}
	repo := NewVendorDynamoRepository(fake, "")

	got, err := repo.UpdateMetrics(context.Background(), "V1", want)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !got.PerformanceMetrics.Equal(want) {
		t.Fatalf("unexpected metrics: %+v", got.PerformanceMetrics)
	}
	qra, ok := fake.updates[0].ExpressionAttributeValues[":qra"].(*types.AttributeValueMemberN)
	if !ok || qra.Value != "4.5" {
		t.Fatalf("unexpected :qra value %#v", fake.updates[0].ExpressionAttributeValues[":qra"])
	}
}

func TestVendorDynamoRepository_Delete(t *testing.T) {
	t.Run("nothing deleted", func(t *testing.T) {
		repo := NewVendorDynamoRepository(&fakeDynamoDB{}, "")

		ok, err := repo.Delete(context.Background(), "V1")
		if err != nil || ok {
			t.Fatalf("expected (false, nil), got (%v, %v)", ok, err)
		}
	})
}
