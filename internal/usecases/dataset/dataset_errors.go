package dataset

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto do dataset
var (
	ErrNotReady        = errors.New("dataset not loaded")
	ErrLoadInProgress  = errors.New("dataset load already in progress")
	ErrAlreadyLoaded   = errors.New("dataset already loaded")
	ErrFetchFailed     = errors.New("error fetching dataset csv")
	ErrDecodeFailed    = errors.New("error decoding dataset csv")
	ErrInvalidFilters  = errors.New("invalid filter criteria")
	ErrGenerateLoadID  = errors.New("error generating load id")
	ErrNilFilterUpdate = errors.New("filter update function is required")
)

// DatasetError é um erro com contexto adicional para a API
type DatasetError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DatasetError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DatasetError) Unwrap() error {
	return e.Err
}

// NewDatasetError cria um novo DatasetError
func NewDatasetError(err error, code string, details string) *DatasetError {
	return &DatasetError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
