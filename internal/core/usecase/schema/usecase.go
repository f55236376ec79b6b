package schema

import (
	"context"
	"time"

	"constraintsvc/internal/core/domain/schema"
	"constraintsvc/internal/core/domain/validation"
	"constraintsvc/internal/core/ports"
	"constraintsvc/internal/platform/logger"
)

type Usecase struct {
	repo     ports.SchemaRepository
	checker  SchemaChecker
	decoder  ports.DocumentDecoder
	engine   *validation.Engine
	recorder ports.ValidationRecorder
	now      func() time.Time
}

func NewUsecase(
	repo ports.SchemaRepository,
	checker SchemaChecker,
	decoder ports.DocumentDecoder,
	engine *validation.Engine,
	recorder ports.ValidationRecorder,
) *Usecase {
	return &Usecase{
		repo:     repo,
		checker:  checker,
		decoder:  decoder,
		engine:   engine,
		recorder: recorder,
		now:      time.Now,
	}
}

func (uc *Usecase) CreateSchema(ctx context.Context, id, description, document string) (*schema.Schema, error) {
	log := logger.FromContext(ctx)
	log.Debug("Creating schema", logger.String("schema_id", id))

	constraints, err := uc.decoder.Decode([]byte(document))
	if err != nil {
		log.Warn("Invalid schema document provided", logger.String("schema_id", id), logger.Error(err))
		return nil, err
	}

	s, err := schema.NewSchema(id, description, document, constraints, uc.now())
	if err != nil {
		log.Warn("Invalid schema data provided", logger.String("schema_id", id), logger.Error(err))
		return nil, err
	}

	if err := uc.checker.CheckSchemaForCreation(s); err != nil {
		log.Warn("Schema creation check failed", logger.String("schema_id", id), logger.Error(err))
		return nil, err
	}

	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}

	log.Info("Schema created",
		logger.String("schema_id", id),
		logger.Int("attributes", len(constraints)))
	return s, nil
}

func (uc *Usecase) GetSchema(ctx context.Context, id string) (*schema.Schema, error) {
	log := logger.FromContext(ctx)
	log.Debug("Getting schema", logger.String("schema_id", id))

	return uc.repo.GetByID(ctx, id)
}

func (uc *Usecase) ListSchemas(ctx context.Context) ([]*schema.Schema, error) {
	return uc.repo.List(ctx)
}

func (uc *Usecase) DeleteSchema(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)
	log.Debug("Deleting schema", logger.String("schema_id", id))

	return uc.repo.Delete(ctx, id)
}

// ValidateAgainst validates attrs with the constraints of a stored schema.
func (uc *Usecase) ValidateAgainst(ctx context.Context, id string, attrs validation.Attributes, opts ...validation.Option) (*schema.Outcome, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	constraints := s.Constraints
	if constraints == nil {
		// Stores that keep only the document text hand back undecoded schemas.
		if constraints, err = uc.decoder.Decode([]byte(s.Document)); err != nil {
			return nil, err
		}
	}

	return uc.validate(ctx, s.ID, constraints, attrs, opts)
}

// ValidateInline validates attrs with a document sent along with the request.
func (uc *Usecase) ValidateInline(ctx context.Context, document string, attrs validation.Attributes, opts ...validation.Option) (*schema.Outcome, error) {
	if document == "" {
		return nil, schema.ErrEmptyDocument
	}

	constraints, err := uc.decoder.Decode([]byte(document))
	if err != nil {
		return nil, err
	}
	if err := uc.checker.CheckConstraints(constraints); err != nil {
		return nil, err
	}

	return uc.validate(ctx, schema.InlineID, constraints, attrs, opts)
}

func (uc *Usecase) validate(ctx context.Context, id string, constraints validation.Constraints, attrs validation.Attributes, opts []validation.Option) (*schema.Outcome, error) {
	log := logger.FromContext(ctx)

	if attrs == nil {
		attrs = validation.Attributes{}
	}

	result, err := uc.engine.Validate(attrs, constraints, opts...)
	if err != nil {
		log.Error("Validation aborted", logger.String("schema_id", id), logger.Error(err))
		return nil, err
	}

	outcome := &schema.Outcome{SchemaID: id, Valid: result == nil, Errors: result}

	messages := 0
	if result != nil {
		messages = countMessages(result)
	}
	uc.recorder.RecordValidation(ctx, id, outcome.Valid, messages)

	log.Debug("Validation finished",
		logger.String("schema_id", id),
		logger.Int("messages", messages))
	return outcome, nil
}

func countMessages(result validation.Result) int {
	if g, ok := result.(*validation.Grouped); ok {
		return g.Count()
	}
	return result.Len()
}
