package console

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/league-roster/internal/usecase"
)

type enrollTeamRequest struct {
	Name string `label:"team name" validate:"required"`
}

type addPlayerRequest struct {
	TeamIndex   int    `label:"team" validate:"gte=0"`
	Name        string `label:"player name" validate:"required"`
	KitNumber   int    `label:"kit number" validate:"gte=1,lte=99"`
	DateOfBirth string `label:"date of birth"`
	Position    string `label:"position"`
}

type searchPlayerRequest struct {
	ByKitNumber bool
	KitNumber   int    `label:"kit number"`
	Name        string `label:"player name" validate:"required_unless=ByKitNumber true"`
}

type updatePlayerRequest struct {
	Field string `label:"field" validate:"oneof=name kit_number dob position"`
	Value string `label:"value"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if label := field.Tag.Get("label"); label != "" {
			return label
		}
		return field.Name
	})
	return v
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	err := h.validator.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}

	return fmt.Errorf("%w: %s", usecase.ErrInvalidInput, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_unless":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
