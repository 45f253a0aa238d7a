package contratorepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"gestaocontratos/internal/domain"
	"gestaocontratos/internal/errors"
	"gestaocontratos/internal/pkg/cache"
	"gestaocontratos/internal/pkg/database"
	"gestaocontratos/internal/pkg/logger"
)

// listaCacheKey guarda o snapshot completo da coleção (cache-aside).
// geracaoCacheKey é incrementada a cada escrita; um snapshot só vale para a geração
// em que foi lido do banco.
const (
	listaCacheKey   = "contratos:lista"
	geracaoCacheKey = "contratos:geracao"
)

// listaEmCacheDoc é o snapshot guardado no cache, marcado com a geração da leitura.
type listaEmCacheDoc struct {
	Geracao   int               `json:"geracao"`
	Contratos []domain.Contrato `json:"contratos"`
}

// ContratoRepository persiste os contratos como documentos JSON na tabela "contratos".
// Cada linha é um documento: o ID é a chave e os demais campos ficam na coluna "dados".
type ContratoRepository struct {
	DB        *sql.DB
	Driver    string
	Cache     cache.Client // opcional
	CacheTTL  time.Duration
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewContratoRepository cria e retorna uma nova instância do Repositório de Contratos.
func NewContratoRepository(db *sql.DB, driver string, cacheClient cache.Client, cacheTTL, dbTimeout time.Duration, log logger.Logger) *ContratoRepository {
	return &ContratoRepository{
		DB:        db,
		Driver:    driver,
		Cache:     cacheClient,
		CacheTTL:  cacheTTL,
		DBTimeout: dbTimeout,
		logger:    log,
	}
}

func (r *ContratoRepository) query(q string) string {
	return database.Rebind(r.Driver, q)
}

// documento serializa o contrato sem o ID, que vive apenas na chave.
func documento(c domain.Contrato) ([]byte, error) {
	c.ID = ""
	return json.Marshal(c)
}

func decodificar(id string, dados []byte) (domain.Contrato, error) {
	var c domain.Contrato
	if err := json.Unmarshal(dados, &c); err != nil {
		return domain.Contrato{}, err
	}
	c.ID = id
	return c, nil
}

// Save insere um novo documento. O ID já deve ter sido atribuído pelo serviço.
func (r *ContratoRepository) Save(ctx context.Context, contrato domain.Contrato) (domain.Contrato, error) {
	r.logger.Debug("Iniciando Save no repositório.", map[string]interface{}{"id": contrato.ID, "cliente": contrato.Cliente})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	dados, err := documento(contrato)
	if err != nil {
		return domain.Contrato{}, errors.NewInternalError("Falha ao serializar contrato", err)
	}

	now := time.Now().UTC()
	query := r.query(`
        INSERT INTO contratos (id, dados, criado_em, atualizado_em)
        VALUES (?, ?, ?, ?)`)

	if _, err := r.DB.ExecContext(ctxTimeout, query, contrato.ID, string(dados), now, now); err != nil {
		r.logger.Error("Falha ao inserir contrato no DB.", err)
		return domain.Contrato{}, errors.NewDBError("Falha ao criar contrato", err)
	}

	r.invalidarLista(ctx)
	r.logger.Info("Contrato criado com sucesso.", map[string]interface{}{"id": contrato.ID})
	return contrato, nil
}

// FindByID busca um contrato pelo ID.
func (r *ContratoRepository) FindByID(ctx context.Context, id string) (domain.Contrato, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := r.query(`SELECT dados FROM contratos WHERE id = ?`)

	var dados []byte
	err := r.DB.QueryRowContext(ctxTimeout, query, id).Scan(&dados)
	if err == sql.ErrNoRows {
		return domain.Contrato{}, errors.NewNotFoundError(fmt.Sprintf("Contrato com ID %s não existe.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar contrato no DB.", err)
		return domain.Contrato{}, errors.NewDBError("Falha ao buscar contrato", err)
	}

	contrato, err := decodificar(id, dados)
	if err != nil {
		return domain.Contrato{}, errors.NewInternalError(fmt.Sprintf("Documento %s corrompido", id), err)
	}
	return contrato, nil
}

// FindAll devolve a coleção completa, na ordem de criação.
// Usa a estratégia Cache-Aside: o snapshot fica no cache até a próxima escrita.
func (r *ContratoRepository) FindAll(ctx context.Context) ([]domain.Contrato, error) {
	// A geração é lida antes da consulta: se uma escrita terminar no meio, o snapshot
	// gravado fica com a geração antiga e é descartado na próxima leitura.
	geracao, cacheOK := r.geracaoAtual(ctx)
	if cacheOK {
		if contratos, ok := r.listaEmCache(ctx, geracao); ok {
			return contratos, nil
		}
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT id, dados FROM contratos ORDER BY criado_em, id`

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao executar FindAll query.", err)
		return nil, errors.NewDBError("Falha ao listar contratos", err)
	}
	defer rows.Close()

	contratos := make([]domain.Contrato, 0)
	for rows.Next() {
		var id string
		var dados []byte
		if err := rows.Scan(&id, &dados); err != nil {
			r.logger.Error("Falha ao mapear contrato na iteração de FindAll.", err)
			return nil, errors.NewDBError("Falha ao mapear contratos do DB", err)
		}
		contrato, err := decodificar(id, dados)
		if err != nil {
			// Um documento ilegível não derruba a listagem inteira.
			r.logger.Warn("Documento de contrato ignorado.", map[string]interface{}{"id": id, "error": err.Error()})
			continue
		}
		contratos = append(contratos, contrato)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de contratos.", err)
		return nil, errors.NewDBError("Erro após iteração de contratos", err)
	}

	if cacheOK {
		r.guardarLista(ctx, geracao, contratos)
	}
	r.logger.Debug("FindAll concluído.", map[string]interface{}{"total_contratos": len(contratos)})
	return contratos, nil
}

// Update sobrescreve todos os campos do documento (last-write-wins).
func (r *ContratoRepository) Update(ctx context.Context, contrato domain.Contrato) (domain.Contrato, error) {
	r.logger.Debug("Iniciando Update no repositório.", map[string]interface{}{"id": contrato.ID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	dados, err := documento(contrato)
	if err != nil {
		return domain.Contrato{}, errors.NewInternalError("Falha ao serializar contrato", err)
	}

	query := r.query(`
        UPDATE contratos
        SET dados = ?, atualizado_em = ?
        WHERE id = ?`)

	result, err := r.DB.ExecContext(ctxTimeout, query, string(dados), time.Now().UTC(), contrato.ID)
	if err != nil {
		r.logger.Error("Falha ao atualizar contrato no DB.", err)
		return domain.Contrato{}, errors.NewDBError("Falha ao atualizar contrato", err)
	}
	if err := r.exigirLinha(result, contrato.ID, "atualização"); err != nil {
		return domain.Contrato{}, err
	}

	r.invalidarLista(ctx)
	r.logger.Info("Contrato atualizado com sucesso.", map[string]interface{}{"id": contrato.ID})
	return contrato, nil
}

// Delete remove o documento. ID inexistente é reportado como NotFoundError.
func (r *ContratoRepository) Delete(ctx context.Context, id string) error {
	r.logger.Debug("Iniciando Delete no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, r.query(`DELETE FROM contratos WHERE id = ?`), id)
	if err != nil {
		r.logger.Error("Falha ao excluir contrato do DB.", err)
		return errors.NewDBError("Falha ao excluir contrato", err)
	}
	if err := r.exigirLinha(result, id, "exclusão"); err != nil {
		return err
	}

	r.invalidarLista(ctx)
	r.logger.Info("Contrato excluído com sucesso.", map[string]interface{}{"id": id})
	return nil
}

func (r *ContratoRepository) exigirLinha(result sql.Result, id, operacao string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if rowsAffected == 0 {
		r.logger.Info("Contrato não encontrado.", map[string]interface{}{"id": id, "operacao": operacao})
		return errors.NewNotFoundError(fmt.Sprintf("Contrato com ID %s não encontrado para %s.", id, operacao))
	}
	return nil
}

// --- Cache-Aside ---
// Falhas de cache nunca interrompem a operação; apenas são registradas.

// geracaoAtual lê o contador de escritas. Chave ausente vale zero; com o cache fora,
// a listagem vai direto ao banco.
func (r *ContratoRepository) geracaoAtual(ctx context.Context) (int, bool) {
	if r.Cache == nil {
		return 0, false
	}
	geracao, err := r.Cache.GetInt(ctx, geracaoCacheKey)
	if err == cache.ErrCacheMiss {
		return 0, true
	}
	if err != nil {
		r.logger.Warn("Falha ao ler geração da lista no cache.", map[string]interface{}{"error": err.Error()})
		return 0, false
	}
	return geracao, true
}

func (r *ContratoRepository) listaEmCache(ctx context.Context, geracao int) ([]domain.Contrato, bool) {
	cached, err := r.Cache.Get(ctx, listaCacheKey)
	if err != nil {
		if err != cache.ErrCacheMiss {
			r.logger.Warn("Falha ao ler lista do cache.", map[string]interface{}{"error": err.Error()})
		}
		return nil, false
	}
	var doc listaEmCacheDoc
	if err := json.Unmarshal([]byte(cached), &doc); err != nil || doc.Contratos == nil {
		return nil, false
	}
	if doc.Geracao != geracao {
		r.logger.Debug("Lista em cache de geração antiga descartada.", map[string]interface{}{"cache": doc.Geracao, "atual": geracao})
		return nil, false
	}
	return doc.Contratos, true
}

func (r *ContratoRepository) guardarLista(ctx context.Context, geracao int, contratos []domain.Contrato) {
	payload, err := json.Marshal(listaEmCacheDoc{Geracao: geracao, Contratos: contratos})
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, listaCacheKey, payload, r.CacheTTL); err != nil {
		r.logger.Warn("Falha ao gravar lista no cache.", map[string]interface{}{"error": err.Error()})
	}
}

// invalidarLista avança a geração antes de apagar o snapshot, para que uma leitura
// concorrente iniciada antes da escrita não reponha a lista antiga.
func (r *ContratoRepository) invalidarLista(ctx context.Context) {
	if r.Cache == nil {
		return
	}
	if _, err := r.Cache.Incr(ctx, geracaoCacheKey); err != nil {
		r.logger.Warn("Falha ao avançar geração da lista no cache.", map[string]interface{}{"error": err.Error()})
	}
	if err := r.Cache.Delete(ctx, listaCacheKey); err != nil {
		r.logger.Warn("Falha ao invalidar lista no cache.", map[string]interface{}{"error": err.Error()})
	}
}
