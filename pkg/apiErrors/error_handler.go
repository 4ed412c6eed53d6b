package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidFilter       = "VAL_004" // Filtro inválido

	// Erros do dataset
	ErrDatasetNotReady   = "DATA_001" // Dataset ainda não carregado
	ErrDatasetLoading    = "DATA_002" // Carga já em andamento
	ErrDatasetFetch      = "DATA_003" // Falha ao obter o csv
	ErrDatasetDecode     = "DATA_004" // Falha estrutural ao decodificar o csv
	ErrDatasetLoaded     = "DATA_005" // Dataset já carregado
	ErrFollowersNotReady = "DATA_006" // Dados de seguidores ainda não carregados

	// Erros do servidor
	ErrInternalServer   = "SRV_001" // Erro interno do servidor
	ErrExternalService  = "SRV_003" // Erro em serviço externo
	ErrRouteNotFound    = "SRV_004" // Rota inexistente
	ErrMethodNotAllowed = "SRV_005" // Método não suportado pela rota
	ErrTooManyRequests  = "SRV_006" // Limite de requisições excedido
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidFilter:       http.StatusBadRequest,
	ErrDatasetNotReady:     http.StatusServiceUnavailable,
	ErrDatasetLoading:      http.StatusConflict,
	ErrDatasetFetch:        http.StatusBadGateway,
	ErrDatasetDecode:       http.StatusUnprocessableEntity,
	ErrDatasetLoaded:       http.StatusConflict,
	ErrFollowersNotReady:   http.StatusServiceUnavailable,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrTooManyRequests:     http.StatusTooManyRequests,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP do código, ou 500 para códigos desconhecidos
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}
