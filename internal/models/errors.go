package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrValidation - отсутствует или вне диапазона обязательное поле
	ErrValidation = errors.New("validation error")
	// ErrNotFound - запись с указанным id не существует
	ErrNotFound = errors.New("not found")
	// ErrGatewayUnavailable - сервис распознавания недоступен или ответил ошибкой
	ErrGatewayUnavailable = errors.New("detection gateway unavailable")
	// ErrDetectionFailed - оркестратор прервал обработку на шаге распознавания
	ErrDetectionFailed = errors.New("detection failed")
	// ErrPersistenceFailed - хранилище отклонило запись
	ErrPersistenceFailed = errors.New("persistence failed")
)

// ValidationError описывает нарушенные поля конкретной сущности
type ValidationError struct {
	Entity string
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(e.Fields, "; "))
	}
	return fmt.Sprintf("invalid %s: %v", e.Entity, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is позволяет проверять ошибку через errors.Is(err, ErrValidation)
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError собирает ValidationError из ошибок валидатора
func NewValidationError(entity string, err error) *ValidationError {
	vErr := &ValidationError{Entity: entity, Err: err}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Param() != "" {
				vErr.Fields = append(vErr.Fields, fmt.Sprintf("%s failed on '%s=%s'", fe.Field(), fe.Tag(), fe.Param()))
			} else {
				vErr.Fields = append(vErr.Fields, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
			}
		}
	}
	return vErr
}
