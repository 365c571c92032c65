package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/kafka"
	"laundry/internal/adapters/out/metrics"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/s3"
	"laundry/internal/core/application/events"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/ports"
	"laundry/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	emitter    *events.Emitter
	metrics    *metrics.Metrics
	publisher  *kafka.Publisher
	resolver   ports.PhotoURLResolver
}

func NewCompositionRoot(ctx context.Context, config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	m, err := metrics.New()
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	resolver, err := newPhotoURLResolver(ctx, config)
	if err != nil {
		return nil, err
	}

	var publisher *kafka.Publisher
	if brokers := config.KafkaBrokers(); len(brokers) > 0 {
		publisher = kafka.NewPublisher(brokers, config.KafkaOrderChangedTopic)
	}

	return &CompositionRoot{
		config:     config,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		emitter:    events.NewEmitter(logger, events.NewAuditLogSubscriber(logger), m),
		metrics:    m,
		publisher:  publisher,
		resolver:   resolver,
	}, nil
}

func newPhotoURLResolver(ctx context.Context, config Config) (ports.PhotoURLResolver, error) {
	if config.S3Bucket == "" {
		return s3.StaticResolver{BaseURL: config.PhotoBaseURL}, nil
	}

	resolver, err := s3.NewPresignResolver(ctx, s3.Config{
		Bucket:          config.S3Bucket,
		Region:          config.AWSRegion,
		AccessKeyID:     config.AWSAccessKeyID,
		SecretAccessKey: config.AWSSecretAccessKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create photo url resolver: %w", err)
	}
	return resolver, nil
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

// Close releases the broker connection.
func (c *CompositionRoot) Close() error {
	if c.publisher == nil {
		return nil
	}
	return c.publisher.Close()
}

func (c *CompositionRoot) workflowUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) partnerUoWFactory() commands.PartnerUoWFactory {
	return FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) stageUoWFactory() commands.StageUoWFactory {
	return FuncStageUoWFactory(func() commands.StageUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

// Command handlers

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.workflowUoWFactory(), c.emitter)
}

func (c *CompositionRoot) CreateAssignPartnerCommandHandler() commands.AssignPartnerCommandHandler {
	return commands.NewAssignPartnerCommandHandler(c.workflowUoWFactory())
}

func (c *CompositionRoot) CreateAutoAssignPartnerCommandHandler() commands.AutoAssignPartnerCommandHandler {
	return commands.NewAutoAssignPartnerCommandHandler(c.workflowUoWFactory())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.workflowUoWFactory(), c.emitter)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.workflowUoWFactory(), c.emitter)
}

func (c *CompositionRoot) CreateRecordStageCommandHandler() commands.RecordStageCommandHandler {
	return commands.NewRecordStageCommandHandler(c.workflowUoWFactory(), c.emitter)
}

func (c *CompositionRoot) CreateCompleteStageCommandHandler() commands.CompleteStageCommandHandler {
	return commands.NewCompleteStageCommandHandler(c.stageUoWFactory())
}

func (c *CompositionRoot) CreateUpdateItemStatusCommandHandler() commands.UpdateItemStatusCommandHandler {
	return commands.NewUpdateItemStatusCommandHandler(c.workflowUoWFactory())
}

func (c *CompositionRoot) CreateRegisterPartnerCommandHandler() commands.RegisterPartnerCommandHandler {
	return commands.NewRegisterPartnerCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateChangePartnerStatusCommandHandler() commands.ChangePartnerStatusCommandHandler {
	return commands.NewChangePartnerStatusCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateAddPartnerServiceAreaCommandHandler() commands.AddPartnerServiceAreaCommandHandler {
	return commands.NewAddPartnerServiceAreaCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	return commands.NewRelayOutboxCommandHandler(c.outboxUoWFactory(), c.publisher)
}

// Query handlers

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStagesQueryHandler() queries.GetOrderStagesQueryHandler {
	return queries.NewGetOrderStagesQueryHandler(c.gormDB, c.resolver)
}

func (c *CompositionRoot) CreateGetItemProcessingQueryHandler() queries.GetItemProcessingQueryHandler {
	return queries.NewGetItemProcessingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailablePartnersQueryHandler() queries.GetAvailablePartnersQueryHandler {
	return queries.NewGetAvailablePartnersQueryHandler(c.gormDB)
}

// Adapters

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus:   c.CreateChangeOrderStatusCommandHandler(),
		AssignPartner:       c.CreateAssignPartnerCommandHandler(),
		AcceptOrder:         c.CreateAcceptOrderCommandHandler(),
		RejectOrder:         c.CreateRejectOrderCommandHandler(),
		RecordStage:         c.CreateRecordStageCommandHandler(),
		CompleteStage:       c.CreateCompleteStageCommandHandler(),
		UpdateItemStatus:    c.CreateUpdateItemStatusCommandHandler(),
		RegisterPartner:     c.CreateRegisterPartnerCommandHandler(),
		ChangePartnerStatus: c.CreateChangePartnerStatusCommandHandler(),
		AddServiceArea:      c.CreateAddPartnerServiceAreaCommandHandler(),

		GetOrder:             c.CreateGetOrderQueryHandler(),
		GetOpenOrders:        c.CreateGetOpenOrdersQueryHandler(),
		GetOrderStages:       c.CreateGetOrderStagesQueryHandler(),
		GetItemProcessing:    c.CreateGetItemProcessingQueryHandler(),
		GetAvailablePartners: c.CreateGetAvailablePartnersQueryHandler(),
	}, c.logger)
}

// CreateJobManager wires the enabled background jobs. The relay only runs
// when a broker is configured; until then messages stay in the outbox.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var scheduled []jobs.Job
	if c.config.AutoAssignEnabled {
		scheduled = append(scheduled, jobs.NewAutoAssignJob(c.CreateAutoAssignPartnerCommandHandler(), c.metrics, c.logger))
	}
	if c.publisher != nil {
		scheduled = append(scheduled, jobs.NewOutboxRelayJob(c.CreateRelayOutboxCommandHandler(), c.metrics, c.logger))
	} else {
		c.logger.Warn("KAFKA_HOST is not set, outbox relay disabled")
	}
	return jobs.NewJobManager(scheduled...)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncStageUoWFactory func() commands.StageUoW

func (f FuncStageUoWFactory) Create() commands.StageUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
