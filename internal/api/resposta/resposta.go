// Package resposta padroniza as respostas JSON da API, inclusive as de erro.
package resposta

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gestaocontratos/internal/domain"
	apperror "gestaocontratos/internal/errors"
	"gestaocontratos/internal/pkg/logger"
)

// Escrever envia data com successStatus quando err é nil; caso contrário traduz o erro
// para o status HTTP e o corpo domain.ErrorResponse.
func Escrever(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	if err == nil {
		// Sucesso
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if data != nil {
			if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
				log.Error("Falha ao codificar JSON de resposta", jsonErr)
			}
		}
		return
	}

	// TRATAMENTO DE ERROS
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{Code: status, Category: category, Message: message})
}
