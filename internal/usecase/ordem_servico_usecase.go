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
	"github.com/shopspring/decimal"
)

var (
	ErrOrdemServicoNotFound = errors.New("ordem de servico not found")
	ErrOrdemServicoInvalida = errors.New("ordem de servico requires cliente_id and prazo_conclusao")
	ErrStatusServicoInvalid = errors.New("invalid status_servico")
	ErrValorPagoInvalido    = errors.New("valor_pago must be non-negative")
	ErrValorTotalInvalido   = errors.New("valor_total must be non-negative")
)

// IOrdemServicoUseCase owns the work order lifecycle. The aggregate's view
// of parts and labor is always the source quote's lines, resolved on read;
// payment status is derived, never written by callers.

type IOrdemServicoUseCase interface {
	Create(ctx context.Context, os entities.OrdemServico) (entities.OrdemServico, error)
	GetByID(ctx context.Context, id string) (entities.OrdemServico, error)
	List(ctx context.Context, busca string, status entities.StatusServico) ([]entities.OrdemServico, error)
	Update(ctx context.Context, os entities.OrdemServico) (entities.OrdemServico, error)
	UpdateStatus(ctx context.Context, id string, status entities.StatusServico) (entities.OrdemServico, error)
	RegistrarPagamento(ctx context.Context, id string, valorPago decimal.Decimal, formaPagamento string) (entities.OrdemServico, error)
	Delete(ctx context.Context, id string) error
}

type OrdemServicoUseCase struct {
	repo          interfaces.IOrdemServicoRepository
	orcamentoRepo interfaces.IOrcamentoRepository
	clienteRepo   interfaces.IClienteRepository
	veiculoRepo   interfaces.IVeiculoRepository
	seq           interfaces.ISequenciaRepository
	cache         interfaces.ICollectionCache
}

var _ IOrdemServicoUseCase = (*OrdemServicoUseCase)(nil)

func NewOrdemServicoUseCase(
	repo interfaces.IOrdemServicoRepository,
	orcamentoRepo interfaces.IOrcamentoRepository,
	clienteRepo interfaces.IClienteRepository,
	veiculoRepo interfaces.IVeiculoRepository,
	seq interfaces.ISequenciaRepository,
	cache interfaces.ICollectionCache,
) *OrdemServicoUseCase {
	return &OrdemServicoUseCase{
		repo:          repo,
		orcamentoRepo: orcamentoRepo,
		clienteRepo:   clienteRepo,
		veiculoRepo:   veiculoRepo,
		seq:           seq,
		cache:         cache,
	}
}

func statusServicoValido(s entities.StatusServico) bool {
	switch s {
	case entities.StatusServicoAndamento,
		entities.StatusServicoAguardandoPecas,
		entities.StatusServicoFinalizado,
		entities.StatusServicoEntregue:
		return true
	}
	return false
}

// Create is the manual path: an order with no originating quote. The usual
// path is quote approval, handled by the orcamento use case.
func (u *OrdemServicoUseCase) Create(ctx context.Context, os entities.OrdemServico) (entities.OrdemServico, error) {
	os.ClienteID = strings.TrimSpace(os.ClienteID)
	os.PrazoConclusao = strings.TrimSpace(os.PrazoConclusao)
	if os.ClienteID == "" || os.PrazoConclusao == "" {
		return entities.OrdemServico{}, ErrOrdemServicoInvalida
	}
	if os.ValorTotal.IsNegative() {
		return entities.OrdemServico{}, ErrValorTotalInvalido
	}

	cliente, err := u.clienteRepo.GetByID(ctx, os.ClienteID)
	if err != nil {
		return entities.OrdemServico{}, err
	}
	if cliente.ID == "" {
		return entities.OrdemServico{}, ErrClienteNotFound
	}

	n, err := u.seq.Proxima(ctx, seqOrdensServico)
	if err != nil {
		return entities.OrdemServico{}, err
	}

	now := time.Now().UTC()
	os.ID = uuid.NewString()
	os.Numero = fmt.Sprintf("OS-%04d", n)
	if os.DataInicio == "" {
		os.DataInicio = now.Format("2006-01-02")
	}
	if os.StatusServico == "" {
		os.StatusServico = entities.StatusServicoAndamento
	} else if !statusServicoValido(os.StatusServico) {
		return entities.OrdemServico{}, ErrStatusServicoInvalid
	}
	os.ValorPago = decimal.Zero
	os.StatusPagamento = os.DeriveStatusPagamento()
	os.Cliente = nil
	os.Veiculo = nil
	os.Orcamento = nil
	os.CreatedAt = now
	os.UpdatedAt = now

	created, err := u.repo.Create(ctx, os)
	if err != nil {
		return entities.OrdemServico{}, err
	}
	invalidate(ctx, u.cache, colOrdensServico)
	return created, nil
}

func (u *OrdemServicoUseCase) GetByID(ctx context.Context, id string) (entities.OrdemServico, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OrdemServico{}, ErrInvalidID
	}

	os, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.OrdemServico{}, err
	}
	if os.ID == "" {
		return entities.OrdemServico{}, ErrOrdemServicoNotFound
	}
	u.resolve(ctx, &os)
	return os, nil
}

// resolve attaches the joined cliente, veiculo and source quote (with its
// lines). The order's parts and labor always come from the quote; they are
// never copied onto the order.
func (u *OrdemServicoUseCase) resolve(ctx context.Context, os *entities.OrdemServico) {
	if os.ClienteID != "" {
		if c, err := u.clienteRepo.GetByID(ctx, os.ClienteID); err == nil && c.ID != "" {
			os.Cliente = &c
		}
	}
	if os.VeiculoID != "" && u.veiculoRepo != nil {
		if v, err := u.veiculoRepo.GetByID(ctx, os.VeiculoID); err == nil && v.ID != "" {
			os.Veiculo = &v
		}
	}
	if os.OrcamentoID != "" {
		if o, err := u.orcamentoRepo.GetByID(ctx, os.OrcamentoID); err == nil && o.ID != "" {
			os.Orcamento = &o
		}
	}
}

func (u *OrdemServicoUseCase) List(ctx context.Context, busca string, status entities.StatusServico) ([]entities.OrdemServico, error) {
	ordens, err := u.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return entities.FilterOrdensServico(ordens, busca, status), nil
}

func (u *OrdemServicoUseCase) listAll(ctx context.Context) ([]entities.OrdemServico, error) {
	if u.cache != nil {
		var cached []entities.OrdemServico
		if ok, err := u.cache.GetList(ctx, colOrdensServico, &cached); err == nil && ok {
			return cached, nil
		}
	}

	ordens, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	clientes, err := u.clienteRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	clientePorID := make(map[string]entities.Cliente, len(clientes))
	for _, c := range clientes {
		clientePorID[c.ID] = c
	}

	orcamentos, err := u.orcamentoRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	orcamentoPorID := make(map[string]entities.Orcamento, len(orcamentos))
	for _, o := range orcamentos {
		orcamentoPorID[o.ID] = o
	}

	for i := range ordens {
		if c, ok := clientePorID[ordens[i].ClienteID]; ok {
			cliente := c
			ordens[i].Cliente = &cliente
		}
		if o, ok := orcamentoPorID[ordens[i].OrcamentoID]; ok {
			orcamento := o
			ordens[i].Orcamento = &orcamento
		}
	}

	if u.cache != nil {
		_ = u.cache.SetList(ctx, colOrdensServico, ordens)
	}
	return ordens, nil
}

// Update rewrites header fields. Payment fields and status go through their
// own operations; line items are never touched here.
func (u *OrdemServicoUseCase) Update(ctx context.Context, os entities.OrdemServico) (entities.OrdemServico, error) {
	os.ID = strings.TrimSpace(os.ID)
	if os.ID == "" {
		return entities.OrdemServico{}, ErrInvalidID
	}
	os.PrazoConclusao = strings.TrimSpace(os.PrazoConclusao)
	if os.PrazoConclusao == "" {
		return entities.OrdemServico{}, ErrOrdemServicoInvalida
	}

	existing, err := u.repo.GetByID(ctx, os.ID)
	if err != nil {
		return entities.OrdemServico{}, err
	}
	if existing.ID == "" {
		return entities.OrdemServico{}, ErrOrdemServicoNotFound
	}

	existing.PrazoConclusao = os.PrazoConclusao
	if os.DataInicio != "" {
		existing.DataInicio = os.DataInicio
	}
	existing.KMAtual = os.KMAtual
	existing.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.OrdemServico{}, err
	}
	if updated.ID == "" {
		return entities.OrdemServico{}, ErrOrdemServicoNotFound
	}
	invalidate(ctx, u.cache, colOrdensServico)
	return updated, nil
}

func (u *OrdemServicoUseCase) UpdateStatus(ctx context.Context, id string, status entities.StatusServico) (entities.OrdemServico, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OrdemServico{}, ErrInvalidID
	}
	if !statusServicoValido(status) {
		return entities.OrdemServico{}, ErrStatusServicoInvalid
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.OrdemServico{}, err
	}
	if existing.ID == "" {
		return entities.OrdemServico{}, ErrOrdemServicoNotFound
	}

	existing.StatusServico = status
	existing.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.OrdemServico{}, err
	}
	if updated.ID == "" {
		return entities.OrdemServico{}, ErrOrdemServicoNotFound
	}
	invalidate(ctx, u.cache, colOrdensServico)
	return updated, nil
}

// RegistrarPagamento records the amount paid so far and re-derives the
// payment status. Paying above the total is allowed: the balance goes
// negative and the status reads Pago.
func (u *OrdemServicoUseCase) RegistrarPagamento(ctx context.Context, id string, valorPago decimal.Decimal, formaPagamento string) (entities.OrdemServico, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OrdemServico{}, ErrInvalidID
	}
	if valorPago.IsNegative() {
		return entities.OrdemServico{}, ErrValorPagoInvalido
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.OrdemServico{}, err
	}
	if existing.ID == "" {
		return entities.OrdemServico{}, ErrOrdemServicoNotFound
	}

	existing.ValorPago = valorPago
	if formaPagamento != "" {
		existing.FormaPagamento = formaPagamento
	}
	existing.StatusPagamento = existing.DeriveStatusPagamento()
	existing.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.OrdemServico{}, err
	}
	if updated.ID == "" {
		return entities.OrdemServico{}, ErrOrdemServicoNotFound
	}
	invalidate(ctx, u.cache, colOrdensServico)
	return updated, nil
}

func (u *OrdemServicoUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrOrdemServicoNotFound
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, u.cache, colOrdensServico)
	return nil
}
