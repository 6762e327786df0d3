package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Besides the built-in tags it knows pickup_point, container_type and
// timing, each of which also accepts the empty string (field cleared).
func NewValidator() *echoValidator {
	v := validator.New()
	_ = v.RegisterValidation("pickup_point", func(fl validator.FieldLevel) bool {
		p := domain.PickupPoint(fl.Field().String())
		return p == domain.PickupNone || p.Valid()
	})
	_ = v.RegisterValidation("container_type", func(fl validator.FieldLevel) bool {
		c := domain.ContainerType(fl.Field().String())
		return c == domain.ContainerNone || c.Valid()
	})
	_ = v.RegisterValidation("timing", func(fl validator.FieldLevel) bool {
		t := domain.Timing(fl.Field().String())
		return t == domain.TimingNone || t.Valid()
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Failures come back as a
// 422 HTTPError so the central error handler renders them as is.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return echo.NewHTTPError(http.StatusUnprocessableEntity, strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "pickup_point":
		return field + " must be one of: " + optionValues(domain.PickupOptions())
	case "container_type":
		return field + " must be one of: " + optionValues(domain.ContainerOptions())
	case "timing":
		return field + " must be one of: " + optionValues(domain.TimingOptions())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

func optionValues(opts []domain.Option) string {
	vals := make([]string, 0, len(opts))
	for _, o := range opts {
		vals = append(vals, o.Value)
	}
	return strings.Join(vals, " ")
}
