package models

import "github.com/go-playground/validator/v10"

// один экземпляр на пакет: validator кеширует разобранные теги структур
var validate = validator.New()

func validateStruct(entity string, v any) error {
	if err := validate.Struct(v); err != nil {
		return NewValidationError(entity, err)
	}
	return nil
}
