package repository

import (
	"context"
	"testing"
	"time"

	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteItem_PriceRoundTripsExactly(t *testing.T) {
	for _, price := range []float64{5000, 1234.56, 0.1, 99999999.99} {
		q := entities.Quote{ID: "q1", Price: price, Status: entities.QuoteStatusDraft}

		av, err := attributevalue.MarshalMap(toQuoteItem(q))
		require.NoError(t, err)

		var it quoteItem
		require.NoError(t, attributevalue.UnmarshalMap(av, &it))
		assert.Equal(t, price, fromQuoteItem(it).Price)
	}

	assert.Equal(t, "5000", toQuoteItem(entities.Quote{Price: 5000}).Price)
}

func TestQuoteRepository_CreateThenGet(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewQuoteDynamoRepository(ddb, "")
	valid := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)

	_, err := repo.Create(context.Background(), entities.Quote{
		ID:          "q1",
		QuoteNumber: "Q-20261001-ABC123",
		ClientName:  "Ada",
		Price:       5000,
		Currency:    "USD",
		Status:      entities.QuoteStatusSent,
		ValidUntil:  &valid,
		CreatedAt:   created,
		UpdatedAt:   created,
	})
	require.NoError(t, err)
	assert.Equal(t, "quotes", *ddb.lastPut.TableName)
	assert.Equal(t, "attribute_not_exists(#id)", *ddb.lastPut.ConditionExpression)

	got, err := repo.GetByID(context.Background(), "q1")
	require.NoError(t, err)
	assert.Equal(t, 5000.0, got.Price)
	assert.Equal(t, entities.QuoteStatusSent, got.Status)
	require.NotNil(t, got.ValidUntil)
	assert.True(t, got.ValidUntil.Equal(valid))
	assert.Nil(t, got.PaidDate)
	assert.True(t, got.CreatedAt.Equal(created))

	missing, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, "", missing.ID)
}

func TestQuoteRepository_MarkViewedIgnoresConditionFailure(t *testing.T) {
	repo := NewQuoteDynamoRepository(newFakeDynamo(), "quotes")
	ok, err := repo.MarkViewed(context.Background(), "q1", time.Now())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestServiceRequestRepository_PaymentStatusDefaultsToPending(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewServiceRequestDynamoRepository(ddb, "")

	created, err := repo.Create(context.Background(), entities.ServiceRequest{ID: "sr1", Kind: entities.ServiceKindAppReview})
	require.NoError(t, err)
	assert.Equal(t, entities.RequestPaymentPending, created.PaymentStatus)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "pending"}, ddb.lastPut.Item["payment_status"])

	// A row written without payment_status still reads as pending.
	delete(ddb.items["sr1"], "payment_status")
	got, err := repo.GetByID(context.Background(), "sr1")
	require.NoError(t, err)
	assert.Equal(t, entities.RequestPaymentPending, got.PaymentStatus)
}

func TestQuoteRepository_UpdateGuardsStatus(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewQuoteDynamoRepository(ddb, "")

	t.Run("stale accept after the quote was paid", func(t *testing.T) {
		ddb.putErr = &types.ConditionalCheckFailedException{
			Item: map[string]types.AttributeValue{
				"id":     &types.AttributeValueMemberS{Value: "q1"},
				"status": &types.AttributeValueMemberS{Value: "paid"},
			},
		}
		_, err := repo.Update(context.Background(), entities.Quote{ID: "q1", Status: entities.QuoteStatusAccepted}, entities.QuoteStatusAccepted)
		assert.ErrorIs(t, err, entities.ErrStatusConflict)
		assert.Equal(t, "attribute_exists(#id) AND #status = :expected", *ddb.lastPut.ConditionExpression)
		assert.Equal(t, "status", ddb.lastPut.ExpressionAttributeNames["#status"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: "accepted"}, ddb.lastPut.ExpressionAttributeValues[":expected"])
	})

	t.Run("missing quote", func(t *testing.T) {
		ddb.putErr = &types.ConditionalCheckFailedException{}
		got, err := repo.Update(context.Background(), entities.Quote{ID: "q2"}, entities.QuoteStatusDraft)
		require.NoError(t, err)
		assert.Equal(t, "", got.ID)
	})

	t.Run("matching status is written", func(t *testing.T) {
		ddb.putErr = nil
		got, err := repo.Update(context.Background(), entities.Quote{ID: "q1", Status: entities.QuoteStatusPaid}, entities.QuoteStatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, entities.QuoteStatusPaid, got.Status)
		assert.Equal(t, &types.AttributeValueMemberS{Value: "paid"}, ddb.items["q1"]["status"])
	})
}

func TestServiceRequestRepository_UpdateGuardsPaymentStatus(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewServiceRequestDynamoRepository(ddb, "")

	t.Run("pending also accepts legacy rows", func(t *testing.T) {
		ddb.putErr = nil
		_, err := repo.Update(context.Background(), entities.ServiceRequest{ID: "sr1", PaymentStatus: entities.RequestPaymentFailed}, "")
		require.NoError(t, err)
		assert.Equal(t, "attribute_exists(#id) AND (attribute_not_exists(#status) OR #status = :expected)", *ddb.lastPut.ConditionExpression)
		assert.Equal(t, "payment_status", ddb.lastPut.ExpressionAttributeNames["#status"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: "pending"}, ddb.lastPut.ExpressionAttributeValues[":expected"])
	})

	t.Run("failing a request that was completed meanwhile", func(t *testing.T) {
		ddb.putErr = &types.ConditionalCheckFailedException{
			Item: map[string]types.AttributeValue{
				"id":             &types.AttributeValueMemberS{Value: "sr1"},
				"payment_status": &types.AttributeValueMemberS{Value: "completed"},
			},
		}
		_, err := repo.Update(context.Background(), entities.ServiceRequest{ID: "sr1", PaymentStatus: entities.RequestPaymentFailed}, entities.RequestPaymentPending)
		assert.ErrorIs(t, err, entities.ErrStatusConflict)
	})

	t.Run("completed rows are matched exactly", func(t *testing.T) {
		ddb.putErr = nil
		_, err := repo.Update(context.Background(), entities.ServiceRequest{ID: "sr1", PaymentStatus: entities.RequestPaymentCompleted}, entities.RequestPaymentCompleted)
		require.NoError(t, err)
		assert.Equal(t, "attribute_exists(#id) AND #status = :expected", *ddb.lastPut.ConditionExpression)
	})
}

func TestLeadRepository_UpdateVersionConflict(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewLeadDynamoRepository(ddb, "")

	t.Run("stale version on an existing lead", func(t *testing.T) {
		ddb.putErr = &types.ConditionalCheckFailedException{
			Item: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "l1"}},
		}
		_, err := repo.Update(context.Background(), entities.Lead{ID: "l1"}, 3)
		assert.ErrorIs(t, err, entities.ErrVersionConflict)
		assert.Equal(t, "attribute_exists(#id) AND #version = :expected", *ddb.lastPut.ConditionExpression)
	})

	t.Run("missing lead", func(t *testing.T) {
		ddb.putErr = &types.ConditionalCheckFailedException{}
		got, err := repo.Update(context.Background(), entities.Lead{ID: "l2"}, 1)
		require.NoError(t, err)
		assert.Equal(t, "", got.ID)
	})

	t.Run("success bumps version", func(t *testing.T) {
		ddb.putErr = nil
		got, err := repo.Update(context.Background(), entities.Lead{ID: "l1", Version: 3}, 3)
		require.NoError(t, err)
		assert.Equal(t, 4, got.Version)
	})
}

func TestDeleteByID_ReportsMissing(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewProjectDynamoRepository(ddb, "")
	_, err := repo.Create(context.Background(), entities.Project{ID: "p1", Title: "Site"})
	require.NoError(t, err)

	ok, err := repo.Delete(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(context.Background(), "p1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestApplyListOptions(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	leads := []entities.Lead{
		{ID: "a", Name: "Alpha", CreatedAt: base},
		{ID: "b", Name: "Beta", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "c", Name: "Gamma", Company: "Alphabet", CreatedAt: base.Add(time.Hour)},
	}
	created := func(l entities.Lead) time.Time { return l.CreatedAt }
	text := func(l entities.Lead) string { return l.Name + " " + l.Company }
	ids := func(ls []entities.Lead) []string {
		out := make([]string, 0, len(ls))
		for _, l := range ls {
			out = append(out, l.ID)
		}
		return out
	}

	desc := applyListOptions(append([]entities.Lead(nil), leads...), interfaces.ListOptions{}, created, nil, text)
	assert.Equal(t, []string{"b", "c", "a"}, ids(desc))

	asc := applyListOptions(append([]entities.Lead(nil), leads...), interfaces.ListOptions{Sort: "created_date"}, created, nil, text)
	assert.Equal(t, []string{"a", "c", "b"}, ids(asc))

	search := applyListOptions(append([]entities.Lead(nil), leads...), interfaces.ListOptions{Search: "alpha", Limit: 1}, created, nil, text)
	assert.Equal(t, []string{"c"}, ids(search))
}
