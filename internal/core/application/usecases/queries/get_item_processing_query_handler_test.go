package queries_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/item"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestNewGetItemProcessingQuery(t *testing.T) {
	_, err := queries.NewGetItemProcessingQuery(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)

	query, err := queries.NewGetItemProcessingQuery(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

type GetItemProcessingQueryHandlerTestSuite struct {
	suite.Suite
	fixture *fixture
	handler queries.GetItemProcessingQueryHandler
}

func (suite *GetItemProcessingQueryHandlerTestSuite) SetupTest() {
	suite.fixture = newFixture(suite.T())
	suite.handler = queries.NewGetItemProcessingQueryHandler(suite.fixture.db)
}

func (suite *GetItemProcessingQueryHandlerTestSuite) TestHandle_CompletedItemReportsProcessingHours() {
	ctx := context.Background()
	orderID, orderItemID := kernel.NewUUID(), kernel.NewUUID()
	staff := kernel.NewUUID()
	start := time.Date(2026, 6, 10, 7, 0, 0, 0, time.UTC)

	p, err := item.NewProcessing(kernel.NewUUID(), orderID, orderItemID)
	suite.Require().NoError(err)

	stains := true
	charges := decimal.RequireFromString("30.00")
	reason := "wine stain"
	score := 8
	updates := []item.Update{
		{Status: item.Inspecting, HasStains: &stains, StainPhotos: []string{"items/wine.jpg"}},
		{Status: item.StainTreating, AdditionalCharges: &charges, AdditionalChargesReason: &reason},
		{Status: item.Washing},
		{Status: item.Drying},
		{Status: item.Ironing},
		{Status: item.QualityCheck, QualityScore: &score},
		{Status: item.Packaged},
		{Status: item.Completed},
	}
	for i, u := range updates {
		u.ProcessedBy = staff
		suite.Require().NoError(p.Apply(u, start.Add(time.Duration(i)*30*time.Minute)))
	}
	suite.Require().NoError(suite.fixture.items.Add(ctx, p))

	resp, err := suite.handler.Handle(ctx, suite.query(orderID, orderItemID))
	suite.Require().NoError(err)

	suite.True(p.ID().IsEqual(resp.ID))
	suite.Equal("completed", resp.Status)
	suite.True(resp.HasStains)
	suite.Equal([]string{"items/wine.jpg"}, resp.StainPhotos)
	suite.Empty(resp.DamagePhotos)
	suite.True(charges.Equal(resp.AdditionalCharges))
	suite.Equal("wine stain", resp.AdditionalChargesReason)
	suite.Require().NotNil(resp.QualityScore)
	suite.Equal(8, *resp.QualityScore)
	suite.Require().NotNil(resp.ProcessedBy)
	suite.True(staff.IsEqual(*resp.ProcessedBy))
	suite.Require().NotNil(resp.InspectionAt)
	suite.True(start.Equal(*resp.InspectionAt))

	suite.Require().NotNil(resp.ProcessingHours)
	suite.InDelta(3.5, *resp.ProcessingHours, 0.0001)
}

func (suite *GetItemProcessingQueryHandlerTestSuite) TestHandle_InProgressItemHasNoHours() {
	ctx := context.Background()
	orderID, orderItemID := kernel.NewUUID(), kernel.NewUUID()

	p, err := item.NewProcessing(kernel.NewUUID(), orderID, orderItemID)
	suite.Require().NoError(err)
	suite.Require().NoError(p.Apply(item.Update{Status: item.Inspecting, ProcessedBy: kernel.NewUUID()}, time.Now().UTC()))
	suite.Require().NoError(suite.fixture.items.Add(ctx, p))

	resp, err := suite.handler.Handle(ctx, suite.query(orderID, orderItemID))
	suite.Require().NoError(err)
	suite.Equal("inspecting", resp.Status)
	suite.Nil(resp.ProcessingHours)
	suite.Nil(resp.CompletedAt)
}

func (suite *GetItemProcessingQueryHandlerTestSuite) TestHandle_NotFound() {
	ctx := context.Background()
	orderID, orderItemID := kernel.NewUUID(), kernel.NewUUID()

	p, err := item.NewProcessing(kernel.NewUUID(), orderID, orderItemID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.fixture.items.Add(ctx, p))

	suite.Run("unknown item", func() {
		_, err := suite.handler.Handle(ctx, suite.query(orderID, kernel.NewUUID()))
		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})

	suite.Run("item of another order", func() {
		_, err := suite.handler.Handle(ctx, suite.query(kernel.NewUUID(), orderItemID))
		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *GetItemProcessingQueryHandlerTestSuite) query(orderID, orderItemID kernel.UUID) queries.GetItemProcessingQuery {
	q, err := queries.NewGetItemProcessingQuery(orderID, orderItemID)
	suite.Require().NoError(err)
	return q
}

func TestGetItemProcessingQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetItemProcessingQueryHandlerTestSuite))
}
