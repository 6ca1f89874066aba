package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

const minPasswordLength = 6

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// AppValidator implements the usecase.Validator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecase.Validator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	registerTags(v)
	return &AppValidator{validate: v}
}

var _ usecasecontract.IValidator = (*AppValidator)(nil)

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	if err := av.validate.Var(email, "required,email"); err != nil {
		return entity.NewValidationError("email", "Please fill a valid email address")
	}
	return nil
}

// ValidatePassword checks the minimum password length.
func (av *AppValidator) ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return entity.NewValidationError("password", fmt.Sprintf("Password must be at least %d characters long", minPasswordLength))
	}
	return nil
}

// ValidateEntity runs the validate tags of v and reports every failing field.
func (av *AppValidator) ValidateEntity(v interface{}) error {
	err := av.validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate %T: %w", v, err)
	}
	verr := &entity.ValidationError{}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), message(fe))
	}
	return verr
}

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerTags(v)
	}
}

func registerTags(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonName)
	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("phone10", phone10)
	_ = v.RegisterValidation("enum", enumValue)
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return lowerFirst(f.Name)
	}
	return name
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// notBlank rejects empty and whitespace-only strings.
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func phone10(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

type enumerated interface {
	IsValid() bool
}

// enumValue accepts values whose type reports them as members of a closed set.
func enumValue(fl validator.FieldLevel) bool {
	field := fl.Field()
	if !field.CanInterface() {
		return false
	}
	e, ok := field.Interface().(enumerated)
	if !ok {
		return false
	}
	return e.IsValid()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("Path `%s` is required.", fe.Field())
	case "email":
		return "Please fill a valid email address"
	case "phone10":
		return "Phone number must be 10 digits"
	case "enum":
		return fmt.Sprintf("`%v` is not a valid enum value for path `%s`.", fe.Value(), fe.Field())
	case "gte":
		return fmt.Sprintf("Path `%s` must be at least %s.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("Path `%s` failed on the '%s' rule.", fe.Field(), fe.Tag())
	}
}
