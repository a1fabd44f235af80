package pos

import (
	"context"
	"fmt"
	"time"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"posapp/pos/business/menu"
	"posapp/pos/business/ticket"
	"posapp/pos/domain"
	"posapp/pos/middleware/idempotency"
	"posapp/pos/payment"
	"posapp/pos/pipeline"
	"posapp/pos/store"
	"posapp/pos/store/records"
	"posapp/pos/store/tokens"
	"posapp/pos/workflow"
)

var posDB = sqldb.NewDatabase("pos", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

//encore:service
type Service struct {
	tickets  ticket.Business
	menu     menu.Business
	tokens   tokens.Querier
	pipeline *pipeline.Pipeline

	temporal    client.Client
	worker      worker.Worker
	taskQueue   string
	idleTimeout time.Duration
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(posDB)

	rlog.Info("Initializing Store")
	repo := store.NewStore(pgxdb)

	stateMachine := domain.NewTicketStateMachine(repo.Tickets)
	ticketBusiness := ticket.NewTicketBusiness(repo.Tickets, repo.MenuItems, stateMachine, payment.NewMockGateway())
	menuBusiness := menu.NewMenuBusiness(repo.MenuItems)

	idempotency.SetHeader(cfg.IdempotencyHeader)

	var recordStore pipeline.RecordStore = records.NewRecordStore(repo.Records)
	if cfg.ReplayCacheEnabled {
		recordStore = idempotency.NewCachedRecordStore(recordStore, idempotency.ReplayCache)
	}

	initialBackoff, maxBackoff := cfg.txBackoff()
	commands := pipeline.New(
		pipeline.NewIdempotencyStage(recordStore, pipeline.WithReleaseOnFailure(cfg.ReleasePendingOnFailure)),
		pipeline.NewTransactionStage(pgxdb,
			pipeline.WithMaxAttempts(cfg.txMaxAttempts()),
			pipeline.WithBackoff(initialBackoff, maxBackoff),
		),
		cfg.order(),
	)
	rlog.Info("Initialized command pipeline", "order", commands.Order.String(), "replay_cache", cfg.ReplayCacheEnabled)

	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHostPort,
		Namespace: cfg.TemporalNamespace,
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	workflow.SetActivityDependencies(ticketBusiness)

	w := worker.New(temporalClient, cfg.TaskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.TicketLifecycle)
	w.RegisterActivity(workflow.CancelStaleTicketActivity)
	if err := w.Start(); err != nil {
		temporalClient.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	return &Service{
		tickets:     ticketBusiness,
		menu:        menuBusiness,
		tokens:      repo.Tokens,
		pipeline:    commands,
		temporal:    temporalClient,
		worker:      w,
		taskQueue:   cfg.TaskQueue,
		idleTimeout: cfg.ticketIdleTimeout(),
	}, nil
}

// Shutdown stops the worker before closing the client it polls with.
func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
}
