package customer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/crm/backend/internal/domain/customer"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/logger"
	"github.com/crm/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Operation names used for spans, metrics and logs
const (
	OpListAll           = "list_all"
	OpGetByID           = "get_by_id"
	OpCreate            = "create"
	OpFullUpdate        = "full_update"
	OpPatch             = "patch"
	OpDelete            = "delete"
	OpUpdateAddress     = "update_address"
	OpUpdatePhoneNumber = "update_phone_number"
	OpUpdateStatus      = "update_status"
)

// ErrEmailTaken is returned when another customer already uses the email address
var ErrEmailTaken = shared.NewDomainError("ALREADY_EXISTS", "Customer with this email already exists")

// Service handles customer-related business operations
type Service struct {
	uow       customer.UnitOfWork
	repo      customer.Repository
	validator *Validator
	logger    *zap.Logger
	metrics   *telemetry.CustomerMetrics
}

// NewService creates a new Service.
// Reads go through repo; every mutation runs inside a single uow.Do call.
// metrics may be nil.
func NewService(uow customer.UnitOfWork, repo customer.Repository, log *zap.Logger, metrics *telemetry.CustomerMetrics) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		uow:       uow,
		repo:      repo,
		validator: NewValidator(),
		logger:    log,
		metrics:   metrics,
	}
}

// ListAll returns every customer in store order
func (s *Service) ListAll(ctx context.Context) (result []Response, err error) {
	ctx, span, done := s.begin(ctx, OpListAll, uuid.Nil)
	defer func() { done(err) }()

	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, OpListAll, uuid.Nil, err)
	}

	telemetry.SetAttributes(span, telemetry.SpanAttrResultCount, len(customers))
	s.log(ctx).Info("Successfully retrieved customers", zap.Int("count", len(customers)))
	return ToResponses(customers), nil
}

// GetByID retrieves a customer by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (result *Response, err error) {
	ctx, _, done := s.begin(ctx, OpGetByID, id)
	defer func() { done(err) }()

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, OpGetByID, id, err)
	}

	s.log(ctx).Info("Successfully retrieved customer")
	response := ToResponse(c)
	return &response, nil
}

// Create validates the input, checks email uniqueness and stores a new customer
func (s *Service) Create(ctx context.Context, in CreateInput) (result *Response, err error) {
	ctx, span, done := s.begin(ctx, OpCreate, uuid.Nil)
	defer func() { done(err) }()

	if in.Status == "" {
		in.Status = string(customer.StatusActive)
	}
	if err := s.validate(ctx, OpCreate, uuid.Nil, in); err != nil {
		return nil, err
	}

	var created *customer.Customer
	err = s.uow.Do(ctx, func(repo customer.Repository) error {
		if err := s.ensureEmailAvailable(ctx, repo, in.EmailAddress, uuid.Nil); err != nil {
			return err
		}
		c, err := customer.New(in.ToProfile())
		if err != nil {
			return err
		}
		if err := repo.Add(ctx, c); err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, OpCreate, uuid.Nil, err)
	}

	telemetry.SetAttributes(span, telemetry.SpanAttrCustomerID, created.ID)
	s.log(ctx).Info("Successfully created customer", zap.String("customer_id", created.ID.String()))
	response := ToResponse(created)
	return &response, nil
}

// FullUpdate overwrites every mutable field of the customer
func (s *Service) FullUpdate(ctx context.Context, id uuid.UUID, in UpdateInput) (err error) {
	ctx, _, done := s.begin(ctx, OpFullUpdate, id)
	defer func() { done(err) }()

	if err := s.validate(ctx, OpFullUpdate, id, in); err != nil {
		return err
	}

	err = s.uow.Do(ctx, func(repo customer.Repository) error {
		c, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.ensureEmailAvailable(ctx, repo, in.EmailAddress, id); err != nil {
			return err
		}
		if err := c.Replace(in.ToProfile()); err != nil {
			return err
		}
		return repo.Update(ctx, c)
	})
	if err != nil {
		return s.fail(ctx, OpFullUpdate, id, err)
	}

	s.log(ctx).Info("Successfully updated customer")
	return nil
}

// Patch overwrites only the fields present in the input
func (s *Service) Patch(ctx context.Context, id uuid.UUID, in PatchInput) (err error) {
	ctx, _, done := s.begin(ctx, OpPatch, id)
	defer func() { done(err) }()

	if err := s.validate(ctx, OpPatch, id, in); err != nil {
		return err
	}
	if in.IsEmpty() {
		s.log(ctx).Debug("Patch carries no fields, only the update timestamp changes")
	}

	err = s.uow.Do(ctx, func(repo customer.Repository) error {
		c, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if in.EmailAddress != nil {
			if err := s.ensureEmailAvailable(ctx, repo, *in.EmailAddress, id); err != nil {
				return err
			}
		}
		if err := c.Apply(in.ToChanges()); err != nil {
			return err
		}
		return repo.Update(ctx, c)
	})
	if err != nil {
		return s.fail(ctx, OpPatch, id, err)
	}

	s.log(ctx).Info("Successfully patched customer")
	return nil
}

// Delete removes the customer
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (err error) {
	ctx, _, done := s.begin(ctx, OpDelete, id)
	defer func() { done(err) }()

	err = s.uow.Do(ctx, func(repo customer.Repository) error {
		c, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		return repo.Remove(ctx, c)
	})
	if err != nil {
		return s.fail(ctx, OpDelete, id, err)
	}

	s.log(ctx).Info("Successfully deleted customer")
	return nil
}

// UpdateAddress replaces the customer's address
func (s *Service) UpdateAddress(ctx context.Context, id uuid.UUID, in UpdateAddressInput) (err error) {
	ctx, _, done := s.begin(ctx, OpUpdateAddress, id)
	defer func() { done(err) }()

	if err := s.validate(ctx, OpUpdateAddress, id, in); err != nil {
		return err
	}

	err = s.uow.Do(ctx, func(repo customer.Repository) error {
		c, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := c.ChangeAddress(in.Address.ToDomain()); err != nil {
			return err
		}
		return repo.Update(ctx, c)
	})
	if err != nil {
		return s.fail(ctx, OpUpdateAddress, id, err)
	}

	s.log(ctx).Info("Successfully updated address for customer")
	return nil
}

// UpdatePhoneNumber replaces the customer's phone number
func (s *Service) UpdatePhoneNumber(ctx context.Context, id uuid.UUID, in UpdatePhoneNumberInput) (err error) {
	ctx, _, done := s.begin(ctx, OpUpdatePhoneNumber, id)
	defer func() { done(err) }()

	if err := s.validate(ctx, OpUpdatePhoneNumber, id, in); err != nil {
		return err
	}

	err = s.uow.Do(ctx, func(repo customer.Repository) error {
		c, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := c.ChangePhoneNumber(in.PhoneNumber.ToDomain()); err != nil {
			return err
		}
		return repo.Update(ctx, c)
	})
	if err != nil {
		return s.fail(ctx, OpUpdatePhoneNumber, id, err)
	}

	s.log(ctx).Info("Successfully updated phone number for customer")
	return nil
}

// UpdateStatus sets the customer's status
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, in UpdateStatusInput) (err error) {
	ctx, span, done := s.begin(ctx, OpUpdateStatus, id)
	defer func() { done(err) }()

	if err := s.validate(ctx, OpUpdateStatus, id, in); err != nil {
		return err
	}
	status, err := customer.ParseStatus(in.Status)
	if err != nil {
		return err
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrCustomerStatus, status.String())

	err = s.uow.Do(ctx, func(repo customer.Repository) error {
		c, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := c.ChangeStatus(status); err != nil {
			return err
		}
		return repo.Update(ctx, c)
	})
	if err != nil {
		return s.fail(ctx, OpUpdateStatus, id, err)
	}

	s.log(ctx).Info("Successfully updated status for customer", zap.String("status", status.String()))
	return nil
}

// =============================================================================
// Helpers
// =============================================================================

// begin opens the operation span and returns a completion func that records
// the span status and the operation metrics.
func (s *Service) begin(ctx context.Context, op string, id uuid.UUID) (context.Context, trace.Span, func(error)) {
	var attrs []attribute.KeyValue
	if id != uuid.Nil {
		attrs = append(attrs, telemetry.Attr(telemetry.SpanAttrCustomerID, id))
		ctx = logger.WithCustomerID(ctx, id.String())
	}
	ctx, span := telemetry.StartServiceSpan(ctx, "customer", op, attrs...)
	start := time.Now()

	return ctx, span, func(err error) {
		outcome := outcomeOf(err)
		if outcome == telemetry.OutcomeError {
			telemetry.RecordError(span, err)
		}
		span.SetAttributes(telemetry.AttrOutcome.String(outcome))
		span.End()
		s.metrics.RecordOperation(ctx, op, outcome, time.Since(start))
	}
}

func (s *Service) log(ctx context.Context) *logger.ContextLogger {
	return logger.WithLogger(ctx, s.logger)
}

func (s *Service) validate(ctx context.Context, op string, id uuid.UUID, input any) error {
	err := s.validator.Validate(input)
	if err == nil {
		return nil
	}

	var verr *shared.ValidationError
	if errors.As(err, &verr) {
		s.log(ctx).Warn("Invalid input for customer operation",
			zap.String("operation", op),
			zap.Error(verr),
		)
		return verr
	}
	return s.fail(ctx, op, id, err)
}

// ensureEmailAvailable fails with ErrEmailTaken when email belongs to a
// customer other than exclude.
func (s *Service) ensureEmailAvailable(ctx context.Context, repo customer.Repository, email string, exclude uuid.UUID) error {
	email = strings.TrimSpace(email)

	var (
		taken bool
		err   error
	)
	if exclude == uuid.Nil {
		taken, err = repo.ExistsByEmail(ctx, email)
	} else {
		taken, err = repo.ExistsByEmailExcluding(ctx, email, exclude)
	}
	if err != nil {
		return err
	}
	if taken {
		s.log(ctx).Warn("Customer with email already exists", zap.String("email", email))
		return ErrEmailTaken
	}
	return nil
}

// fail passes expected failures through and hides everything else behind
// shared.ErrInternal after logging the cause.
func (s *Service) fail(ctx context.Context, op string, id uuid.UUID, err error) error {
	var (
		verr *shared.ValidationError
		derr *shared.DomainError
	)
	switch {
	case errors.As(err, &verr):
		return verr
	case errors.Is(err, shared.ErrNotFound):
		s.log(ctx).Warn("Customer not found",
			zap.String("operation", op),
		)
		return shared.ErrNotFound
	case errors.As(err, &derr) && derr.Code != shared.ErrInternal.Code:
		return derr
	default:
		s.log(ctx).Error("Customer operation failed",
			zap.String("operation", op),
			zap.Error(err),
		)
		return shared.ErrInternal
	}
}

func outcomeOf(err error) string {
	var (
		verr *shared.ValidationError
		derr *shared.DomainError
	)
	switch {
	case err == nil:
		return telemetry.OutcomeSuccess
	case errors.As(err, &verr):
		return telemetry.OutcomeValidation
	case errors.As(err, &derr):
		switch derr.Code {
		case shared.ErrNotFound.Code:
			return telemetry.OutcomeNotFound
		case shared.ErrAlreadyExists.Code:
			return telemetry.OutcomeConflict
		case shared.ErrInvalidInput.Code:
			return telemetry.OutcomeValidation
		}
	}
	return telemetry.OutcomeError
}
