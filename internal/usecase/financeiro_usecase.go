package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrContaNotFound = errors.New("conta not found")
	ErrContaInvalida = errors.New("conta requires valor and vencimento")

	seqContasReceber = "contas_receber"
	seqContasGerais  = "contas_gerais"
)

// IFinanceiroUseCase is the ledger surface: receivables tied to customers
// (and optionally to the quote that originated them) plus the shop's general
// fixed/variable accounts.

type IFinanceiroUseCase interface {
	CreateContaReceber(ctx context.Context, c entities.ContaReceber) (entities.ContaReceber, error)
	ListContasReceber(ctx context.Context, status entities.StatusConta) ([]entities.ContaReceber, error)
	UpdateContaReceber(ctx context.Context, c entities.ContaReceber) (entities.ContaReceber, error)
	DeleteContaReceber(ctx context.Context, id string) error

	CreateContaGeral(ctx context.Context, c entities.ContaGeral) (entities.ContaGeral, error)
	ListContasGerais(ctx context.Context, status entities.StatusConta, tipo entities.TipoContaGeral) ([]entities.ContaGeral, error)
	UpdateContaGeral(ctx context.Context, c entities.ContaGeral) (entities.ContaGeral, error)
	DeleteContaGeral(ctx context.Context, id string) error
}

type FinanceiroUseCase struct {
	receberRepo interfaces.IContaReceberRepository
	geralRepo   interfaces.IContaGeralRepository
	seq         interfaces.ISequenciaRepository
	cache       interfaces.ICollectionCache
}

var _ IFinanceiroUseCase = (*FinanceiroUseCase)(nil)

func NewFinanceiroUseCase(
	receberRepo interfaces.IContaReceberRepository,
	geralRepo interfaces.IContaGeralRepository,
	seq interfaces.ISequenciaRepository,
	cache interfaces.ICollectionCache,
) *FinanceiroUseCase {
	return &FinanceiroUseCase{receberRepo: receberRepo, geralRepo: geralRepo, seq: seq, cache: cache}
}

func (u *FinanceiroUseCase) CreateContaReceber(ctx context.Context, c entities.ContaReceber) (entities.ContaReceber, error) {
	c.ClienteID = strings.TrimSpace(c.ClienteID)
	c.Vencimento = strings.TrimSpace(c.Vencimento)
	if c.ClienteID == "" || c.Vencimento == "" || c.Valor.IsNegative() {
		return entities.ContaReceber{}, ErrContaInvalida
	}

	n, err := u.seq.Proxima(ctx, seqContasReceber)
	if err != nil {
		return entities.ContaReceber{}, err
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.Numero = fmt.Sprintf("CR-%04d", n)
	if c.Status == "" {
		c.Status = entities.StatusContaPendente
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	created, err := u.receberRepo.Create(ctx, c)
	if err != nil {
		return entities.ContaReceber{}, err
	}
	invalidate(ctx, u.cache, colContasReceber)
	return created, nil
}

func (u *FinanceiroUseCase) ListContasReceber(ctx context.Context, status entities.StatusConta) ([]entities.ContaReceber, error) {
	if u.cache != nil {
		var cached []entities.ContaReceber
		if ok, err := u.cache.GetList(ctx, colContasReceber, &cached); err == nil && ok {
			return entities.FilterContasReceber(cached, status), nil
		}
	}

	contas, err := u.receberRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		_ = u.cache.SetList(ctx, colContasReceber, contas)
	}
	return entities.FilterContasReceber(contas, status), nil
}

func (u *FinanceiroUseCase) UpdateContaReceber(ctx context.Context, c entities.ContaReceber) (entities.ContaReceber, error) {
	c.ID = strings.TrimSpace(c.ID)
	if c.ID == "" {
		return entities.ContaReceber{}, ErrInvalidID
	}
	if strings.TrimSpace(c.Vencimento) == "" || c.Valor.IsNegative() {
		return entities.ContaReceber{}, ErrContaInvalida
	}

	existing, err := u.receberRepo.GetByID(ctx, c.ID)
	if err != nil {
		return entities.ContaReceber{}, err
	}
	if existing.ID == "" {
		return entities.ContaReceber{}, ErrContaNotFound
	}

	c.Numero = existing.Numero
	c.ClienteID = existing.ClienteID
	c.OrcamentoID = existing.OrcamentoID
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()

	updated, err := u.receberRepo.Update(ctx, c)
	if err != nil {
		return entities.ContaReceber{}, err
	}
	if updated.ID == "" {
		return entities.ContaReceber{}, ErrContaNotFound
	}
	invalidate(ctx, u.cache, colContasReceber)
	return updated, nil
}

func (u *FinanceiroUseCase) DeleteContaReceber(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}

	existing, err := u.receberRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrContaNotFound
	}

	if err := u.receberRepo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, u.cache, colContasReceber)
	return nil
}

func (u *FinanceiroUseCase) CreateContaGeral(ctx context.Context, c entities.ContaGeral) (entities.ContaGeral, error) {
	c.Descricao = strings.TrimSpace(c.Descricao)
	c.Vencimento = strings.TrimSpace(c.Vencimento)
	if c.Descricao == "" || c.Vencimento == "" || c.Valor.IsNegative() {
		return entities.ContaGeral{}, ErrContaInvalida
	}
	if c.Tipo == "" {
		c.Tipo = entities.TipoContaFixa
	}

	n, err := u.seq.Proxima(ctx, seqContasGerais)
	if err != nil {
		return entities.ContaGeral{}, err
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.Numero = fmt.Sprintf("CG-%04d", n)
	if c.Status == "" {
		c.Status = entities.StatusContaPendente
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	created, err := u.geralRepo.Create(ctx, c)
	if err != nil {
		return entities.ContaGeral{}, err
	}
	invalidate(ctx, u.cache, colContasGerais)
	return created, nil
}

func (u *FinanceiroUseCase) ListContasGerais(ctx context.Context, status entities.StatusConta, tipo entities.TipoContaGeral) ([]entities.ContaGeral, error) {
	if u.cache != nil {
		var cached []entities.ContaGeral
		if ok, err := u.cache.GetList(ctx, colContasGerais, &cached); err == nil && ok {
			return entities.FilterContasGerais(cached, status, tipo), nil
		}
	}

	contas, err := u.geralRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		_ = u.cache.SetList(ctx, colContasGerais, contas)
	}
	return entities.FilterContasGerais(contas, status, tipo), nil
}

func (u *FinanceiroUseCase) UpdateContaGeral(ctx context.Context, c entities.ContaGeral) (entities.ContaGeral, error) {
	c.ID = strings.TrimSpace(c.ID)
	if c.ID == "" {
		return entities.ContaGeral{}, ErrInvalidID
	}
	c.Descricao = strings.TrimSpace(c.Descricao)
	if c.Descricao == "" || strings.TrimSpace(c.Vencimento) == "" || c.Valor.IsNegative() {
		return entities.ContaGeral{}, ErrContaInvalida
	}

	existing, err := u.geralRepo.GetByID(ctx, c.ID)
	if err != nil {
		return entities.ContaGeral{}, err
	}
	if existing.ID == "" {
		return entities.ContaGeral{}, ErrContaNotFound
	}

	c.Numero = existing.Numero
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()

	updated, err := u.geralRepo.Update(ctx, c)
	if err != nil {
		return entities.ContaGeral{}, err
	}
	if updated.ID == "" {
		return entities.ContaGeral{}, ErrContaNotFound
	}
	invalidate(ctx, u.cache, colContasGerais)
	return updated, nil
}

func (u *FinanceiroUseCase) DeleteContaGeral(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}

	existing, err := u.geralRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrContaNotFound
	}

	if err := u.geralRepo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, u.cache, colContasGerais)
	return nil
}
