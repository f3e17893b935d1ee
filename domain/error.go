// Package domain defines the core entity model and error types of the
// textile inventory system.
package domain

import (
	"errors"
	"fmt"
)

// InvalidArgumentError is returned when a mutator receives malformed input,
// such as a negative quantity or price.
type InvalidArgumentError struct {
	Field  string
	Reason string
	Value  interface{}
}

// Error implements the error interface for InvalidArgumentError
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("argumento invalido: campo=%s, motivo=%s, valor=%v", e.Field, e.Reason, e.Value)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidArgumentError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentError)
	return ok
}

// ValidationError is a business-rule rejection from the active validation
// strategy, naming the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validacion fallida: campo=%s, motivo=%s", e.Field, e.Reason)
}

// Is allows proper error type checking with errors.Is()
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// DuplicateCodeError is returned when an active product with the same code
// (case-insensitive) already exists.
type DuplicateCodeError struct {
	Codigo string
}

// Error implements the error interface for DuplicateCodeError
func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("codigo duplicado: ya existe un producto activo con codigo=%s", e.Codigo)
}

// Is allows proper error type checking with errors.Is()
func (e *DuplicateCodeError) Is(target error) bool {
	_, ok := target.(*DuplicateCodeError)
	return ok
}

// NotFoundError is returned when no active product matches the given
// identifier or code.
type NotFoundError struct {
	ID     int64
	Codigo string
}

// Error implements the error interface for NotFoundError
func (e *NotFoundError) Error() string {
	if e.Codigo != "" {
		return fmt.Sprintf("producto no encontrado: codigo=%s", e.Codigo)
	}
	return fmt.Sprintf("producto no encontrado: id=%d", e.ID)
}

// Is allows proper error type checking with errors.Is()
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// InsufficientStockError is returned when a decrement exceeds the available
// stock. The operation is all-or-nothing: stock is left unchanged.
type InsufficientStockError struct {
	Disponible int
	Solicitado int
}

// Error implements the error interface for InsufficientStockError
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible=%d, solicitado=%d", e.Disponible, e.Solicitado)
}

// Is allows proper error type checking with errors.Is()
func (e *InsufficientStockError) Is(target error) bool {
	_, ok := target.(*InsufficientStockError)
	return ok
}

// Helper functions for creating errors with context

// NewInvalidArgumentError creates a new InvalidArgumentError
func NewInvalidArgumentError(field, reason string, value interface{}) error {
	return &InvalidArgumentError{Field: field, Reason: reason, Value: value}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NewDuplicateCodeError creates a new DuplicateCodeError
func NewDuplicateCodeError(codigo string) error {
	return &DuplicateCodeError{Codigo: codigo}
}

// NewNotFoundByIDError creates a NotFoundError for a numeric identifier
func NewNotFoundByIDError(id int64) error {
	return &NotFoundError{ID: id}
}

// NewNotFoundByCodigoError creates a NotFoundError for a product code
func NewNotFoundByCodigoError(codigo string) error {
	return &NotFoundError{Codigo: codigo}
}

// NewInsufficientStockError creates a new InsufficientStockError
func NewInsufficientStockError(disponible, solicitado int) error {
	return &InsufficientStockError{Disponible: disponible, Solicitado: solicitado}
}

// Type assertion helpers for use with errors.As()

// IsInvalidArgumentError checks if an error is an InvalidArgumentError
func IsInvalidArgumentError(err error) bool {
	var iae *InvalidArgumentError
	return errors.As(err, &iae)
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsDuplicateCodeError checks if an error is a DuplicateCodeError
func IsDuplicateCodeError(err error) bool {
	var dce *DuplicateCodeError
	return errors.As(err, &dce)
}

// IsNotFoundError checks if an error is a NotFoundError
func IsNotFoundError(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// IsInsufficientStockError checks if an error is an InsufficientStockError
func IsInsufficientStockError(err error) bool {
	var ise *InsufficientStockError
	return errors.As(err, &ise)
}
