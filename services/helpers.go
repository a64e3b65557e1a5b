package services

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

// RegisterPlayerInput is validated after the name has been sanitized and trimmed.
type RegisterPlayerInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

// ReportMatchInput only rejects self matches. Ids that match no registered
// player, zero and negative ones included, fail on the foreign key.
type ReportMatchInput struct {
	WinnerID int `json:"winner_id"`
	LoserID  int `json:"loser_id" validate:"nefield=WinnerID"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the validator and converts its report into a ValidationError.
func validateStruct(v *validator.Validate, input interface{}) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Field()] = describeFieldError(fe)
	}
	return &ValidationError{Fields: fields}
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must be provided"
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "nefield":
		return "must differ from winner_id"
	default:
		return fmt.Sprintf("failed the %q check", fe.Tag())
	}
}

// quoteUnescaper reverts the quote entities the policy emits; only &, < and >
// stay escaped in stored names.
var quoteUnescaper = strings.NewReplacer("&#39;", "'", "&#34;", `"`)

// sanitizeName strips markup from a player name.
func sanitizeName(policy *bluemonday.Policy, name string) string {
	return strings.TrimSpace(quoteUnescaper.Replace(policy.Sanitize(strings.TrimSpace(name))))
}

// withTx runs fn inside one transaction. Any error or panic rolls it back.
func withTx(ctx context.Context, db *sql.DB, logger *slog.Logger, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return translateError(fmt.Errorf("failed to begin transaction: %w", err))
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Error("transaction rollback failed", slog.Any("error", rbErr), slog.Any("cause", err))
				err = fmt.Errorf("%w (rollback also failed: %v)", err, rbErr)
			}
		} else if cErr := tx.Commit(); cErr != nil {
			err = translateError(fmt.Errorf("failed to commit transaction: %w", cErr))
		}
	}()
	return fn(tx)
}
