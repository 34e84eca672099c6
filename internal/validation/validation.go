package validation

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	TagBookTitle  = "booktitle"
	TagAuthorName = "authorname"
)

var (
	bookTitlePattern  = regexp.MustCompile(`^[A-Z][a-zA-Z\s]{2,}$`)
	authorNamePattern = regexp.MustCompile(`^[A-Z][a-z]+\s[A-Z][a-z]+$`)

	ruleMessages = map[string]string{
		TagBookTitle:  "must start with a capital letter and be at least 3 letters long",
		TagAuthorName: "must be a capitalized first and last name, e.g. Herman Melville",
	}

	registerOnce sync.Once
	registerErr  error

	std     *validator.Validate
	stdOnce sync.Once
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Code    string       `json:"code,omitempty"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// RegisterRules adds the library field rules to v.
func RegisterRules(v *validator.Validate) error {
	if err := v.RegisterValidation(TagBookTitle, func(fl validator.FieldLevel) bool {
		return bookTitlePattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}

	return v.RegisterValidation(TagAuthorName, func(fl validator.FieldLevel) bool {
		return authorNamePattern.MatchString(fl.Field().String())
	})
}

// RegisterGinRules installs the library field rules on gin's binding
// validator so `binding:"booktitle"` works on request structs.
func RegisterGinRules() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin binding validator is not go-playground/validator")
			return
		}
		registerErr = RegisterRules(v)
	})
	return registerErr
}

// Validator returns a process-wide validator carrying the library rules.
func Validator() *validator.Validate {
	stdOnce.Do(func() {
		std = validator.New(validator.WithRequiredStructEnabled())
		if err := RegisterRules(std); err != nil {
			panic(err)
		}
	})
	return std
}

// Message renders a validation failure as "<field> <reason>" lines.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, buildMessage(toJSONFieldName(fe.Field()), fe))
	}
	return strings.Join(parts, "; ")
}

func BindAndValidateJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			resp := formatValidationErrors(verrs)
			c.AbortWithStatusJSON(http.StatusBadRequest, resp)
			return false
		}

		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_BODY",
			Message: "invalid request body",
			Errors: []FieldError{
				{
					Field:   "",
					Rule:    "syntax",
					Message: err.Error(),
				},
			},
		})
		return false
	}

	return true
}

func formatValidationErrors(verrs validator.ValidationErrors) ErrorResponse {
	fields := make([]FieldError, 0, len(verrs))

	for _, fe := range verrs {
		jsonField := toJSONFieldName(fe.Field())
		fields = append(fields, FieldError{
			Field:   jsonField,
			Rule:    fe.Tag(),
			Message: buildMessage(jsonField, fe),
		})
	}

	return ErrorResponse{
		Code:    "VALIDATION_FAILED",
		Message: "validation failed",
		Errors:  fields,
	}
}

// toJSONFieldName turns a Go field name such as MemberID into member_id.
func toJSONFieldName(field string) string {
	if field == "" {
		return field
	}

	var b strings.Builder
	runes := []rune(field)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func buildMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + fe.Param()
	}

	if msg, ok := ruleMessages[fe.Tag()]; ok {
		return field + " " + msg
	}

	return field + " is invalid (" + fe.Tag() + ")"
}
