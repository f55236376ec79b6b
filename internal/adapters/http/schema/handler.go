package schema

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"constraintsvc/internal/adapters/http/response"
	"constraintsvc/internal/adapters/schemadoc"
	"constraintsvc/internal/config"
	"constraintsvc/internal/core/domain/schema"
	"constraintsvc/internal/core/domain/validation"
	httpErrors "constraintsvc/internal/platform/http"
	"constraintsvc/internal/platform/logger"
	"constraintsvc/internal/platform/validator"
)

type Handler struct {
	manager  Manager
	validate validator.Validator
	settings config.EngineConfig
}

func NewHandler(manager Manager, validate validator.Validator, cfg *config.ValidationConfig) *Handler {
	return &Handler{
		manager:  manager,
		validate: validate,
		settings: cfg.Engine,
	}
}

func (h *Handler) mapDomainError(err error) error {
	var decodeErr *schemadoc.DecodeError
	var alreadyExistsErr *schema.AlreadyExistsError

	switch {
	case errors.Is(err, schema.ErrSchemaNotFound):
		return httpErrors.NewNotFound("Schema not found", err)
	case errors.Is(err, schema.ErrInvalidSchemaID), errors.Is(err, schema.ErrEmptySchemaID):
		return httpErrors.NewBadRequest(err.Error(), err)
	case errors.Is(err, schema.ErrReservedID):
		return httpErrors.NewBadRequest("Schema ID is reserved", err)
	case errors.Is(err, schema.ErrEmptyDocument), errors.Is(err, schemadoc.ErrEmptyDocument):
		return httpErrors.NewBadRequest("Constraint document is empty", err)
	case errors.As(err, &decodeErr):
		return httpErrors.NewBadRequest(decodeErr.Error(), err)
	case errors.Is(err, validation.ErrUnknownValidator):
		return httpErrors.NewBadRequest(err.Error(), err)
	case errors.As(err, &alreadyExistsErr):
		return httpErrors.NewConflict("Schema already exists", err)
	default:
		return err
	}
}

type CreateSchemaRequest struct {
	ID          string `json:"id" validate:"required,max=64"`
	Description string `json:"description" validate:"max=512"`
	Document    string `json:"document" validate:"required"`
}

type ValidateRequest struct {
	Attributes   map[string]any `json:"attributes" validate:"required"`
	Flatten      bool           `json:"flatten"`
	FullMessages *bool          `json:"fullMessages"`
}

type ValidateInlineRequest struct {
	Document     string         `json:"document" validate:"required"`
	Attributes   map[string]any `json:"attributes" validate:"required"`
	Flatten      bool           `json:"flatten"`
	FullMessages *bool          `json:"fullMessages"`
}

func (h *Handler) options(flatten bool, fullMessages *bool) []validation.Option {
	full := h.settings.FullMessages
	if fullMessages != nil {
		full = *fullMessages
	}
	opts := []validation.Option{validation.FullMessages(full)}
	if flatten {
		opts = append(opts, validation.Flatten())
	}
	return opts
}

// decode reads a JSON body into req and validates it. It writes the error
// response itself and reports false when the request cannot proceed.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	contextLogger := logger.FromContext(r.Context())

	body := http.MaxBytesReader(w, r.Body, h.settings.MaxDocumentBytes)
	if err := json.NewDecoder(body).Decode(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			contextLogger.Warn("Request body too large", logger.Int("limit", int(tooLarge.Limit)))
			response.RespondError(w, http.StatusRequestEntityTooLarge, errors.New("request payload too large"))
			return false
		}
		contextLogger.Warn("Failed to decode request body", logger.Error(err))
		response.RespondError(w, http.StatusBadRequest, errors.New("invalid request payload"))
		return false
	}

	if err := h.validate.Validate(req); err != nil {
		var validationErr validator.ValidationError
		if errors.As(err, &validationErr) {
			contextLogger.Warn("Validation failed", logger.Error(err))
			response.RespondJSON(w, http.StatusBadRequest, validationErr)
		} else {
			contextLogger.Error("Unexpected validation error", logger.Error(err))
			response.RespondError(w, http.StatusBadRequest, errors.New("invalid request data"))
		}
		return false
	}
	return true
}

func respondOutcome(w http.ResponseWriter, outcome *schema.Outcome) {
	status := http.StatusOK
	if !outcome.Valid {
		status = http.StatusUnprocessableEntity
	}
	response.RespondJSON(w, status, outcome)
}

func (h *Handler) CreateSchema(w http.ResponseWriter, r *http.Request) error {
	var req CreateSchemaRequest
	if !h.decode(w, r, &req) {
		return nil
	}

	s, err := h.manager.CreateSchema(r.Context(), req.ID, req.Description, req.Document)
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusCreated, s)
	return nil
}

func (h *Handler) GetSchema(w http.ResponseWriter, r *http.Request) error {
	s, err := h.manager.GetSchema(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, s)
	return nil
}

func (h *Handler) ListSchemas(w http.ResponseWriter, r *http.Request) error {
	schemas, err := h.manager.ListSchemas(r.Context())
	if err != nil {
		return h.mapDomainError(err)
	}
	if schemas == nil {
		schemas = []*schema.Schema{}
	}

	response.RespondJSON(w, http.StatusOK, map[string]any{"schemas": schemas})
	return nil
}

func (h *Handler) DeleteSchema(w http.ResponseWriter, r *http.Request) error {
	if err := h.manager.DeleteSchema(r.Context(), chi.URLParam(r, "id")); err != nil {
		return h.mapDomainError(err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) error {
	var req ValidateRequest
	if !h.decode(w, r, &req) {
		return nil
	}

	outcome, err := h.manager.ValidateAgainst(r.Context(), chi.URLParam(r, "id"),
		req.Attributes, h.options(req.Flatten, req.FullMessages)...)
	if err != nil {
		return h.mapDomainError(err)
	}

	respondOutcome(w, outcome)
	return nil
}

func (h *Handler) ValidateInline(w http.ResponseWriter, r *http.Request) error {
	var req ValidateInlineRequest
	if !h.decode(w, r, &req) {
		return nil
	}

	outcome, err := h.manager.ValidateInline(r.Context(), req.Document,
		req.Attributes, h.options(req.Flatten, req.FullMessages)...)
	if err != nil {
		return h.mapDomainError(err)
	}

	respondOutcome(w, outcome)
	return nil
}
