package usecase

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"assistente-gestao/internal/task"
)

var (
	vOnce      sync.Once
	validate   *validator.Validate
	translator ut.Translator
)

func initValidator() {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		translator, _ = uni.GetTranslator("en")

		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = enTranslations.RegisterDefaultTranslations(validate, translator)
	})
}

// validateInput checks struct tags and wraps failures in task.ErrInvalidPayload.
func validateInput(v any) error {
	initValidator()

	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", task.ErrInvalidPayload, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(translator))
	}
	return fmt.Errorf("%w: %s", task.ErrInvalidPayload, strings.Join(msgs, "; "))
}
