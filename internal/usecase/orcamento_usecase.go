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
	ErrOrcamentoNotFound      = errors.New("orcamento not found")
	ErrOrcamentoInvalido      = errors.New("orcamento requires cliente_id, data_orcamento and validade")
	ErrStatusOrcamentoInvalid = errors.New("invalid orcamento status")
	ErrLinhaPecaInvalida      = errors.New("orcamento peca line requires peca_id and quantidade > 0")
	ErrLinhaServicoInvalida   = errors.New("orcamento servico line requires servico_id and horas > 0")
	ErrLinhaNotFound          = errors.New("orcamento line not found")

	seqOrcamentos    = "orcamentos"
	seqOrdensServico = "ordens_servico"
)

// IOrcamentoUseCase owns the quote lifecycle.
//
// The approval side effect lives here, not in the storage layer: setting the
// status to Aprovado (when it was anything else) creates exactly one work
// order from the quote. UpdateStatus returns the created order, if any, so
// the HTTP layer can tell the user an OS now exists.

type IOrcamentoUseCase interface {
	Create(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error)
	GetByID(ctx context.Context, id string) (entities.Orcamento, error)
	List(ctx context.Context, busca string, status entities.StatusOrcamento) ([]entities.Orcamento, error)
	Update(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error)
	UpdateStatus(ctx context.Context, id string, status entities.StatusOrcamento) (entities.Orcamento, *entities.OrdemServico, error)
	AddPeca(ctx context.Context, orcamentoID string, linha entities.OrcamentoPeca) (entities.Orcamento, error)
	RemovePeca(ctx context.Context, orcamentoID, linhaID string) (entities.Orcamento, error)
	AddServico(ctx context.Context, orcamentoID string, linha entities.OrcamentoServico) (entities.Orcamento, error)
	RemoveServico(ctx context.Context, orcamentoID, linhaID string) (entities.Orcamento, error)
	Delete(ctx context.Context, id string) error
}

type OrcamentoUseCase struct {
	repo        interfaces.IOrcamentoRepository
	clienteRepo interfaces.IClienteRepository
	veiculoRepo interfaces.IVeiculoRepository
	pecaRepo    interfaces.IPecaRepository
	servicoRepo interfaces.IServicoRepository
	osRepo      interfaces.IOrdemServicoRepository
	seq         interfaces.ISequenciaRepository
	cache       interfaces.ICollectionCache
}

var _ IOrcamentoUseCase = (*OrcamentoUseCase)(nil)

func NewOrcamentoUseCase(
	repo interfaces.IOrcamentoRepository,
	clienteRepo interfaces.IClienteRepository,
	veiculoRepo interfaces.IVeiculoRepository,
	pecaRepo interfaces.IPecaRepository,
	servicoRepo interfaces.IServicoRepository,
	osRepo interfaces.IOrdemServicoRepository,
	seq interfaces.ISequenciaRepository,
	cache interfaces.ICollectionCache,
) *OrcamentoUseCase {
	return &OrcamentoUseCase{
		repo:        repo,
		clienteRepo: clienteRepo,
		veiculoRepo: veiculoRepo,
		pecaRepo:    pecaRepo,
		servicoRepo: servicoRepo,
		osRepo:      osRepo,
		seq:         seq,
		cache:       cache,
	}
}

func statusOrcamentoValido(s entities.StatusOrcamento) bool {
	switch s {
	case entities.StatusOrcamentoPendente,
		entities.StatusOrcamentoAprovado,
		entities.StatusOrcamentoReprovado,
		entities.StatusOrcamentoCancelado:
		return true
	}
	return false
}

func (u *OrcamentoUseCase) Create(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error) {
	o.ClienteID = strings.TrimSpace(o.ClienteID)
	o.DataOrcamento = strings.TrimSpace(o.DataOrcamento)
	o.Validade = strings.TrimSpace(o.Validade)
	if o.ClienteID == "" || o.DataOrcamento == "" || o.Validade == "" {
		return entities.Orcamento{}, ErrOrcamentoInvalido
	}

	cliente, err := u.clienteRepo.GetByID(ctx, o.ClienteID)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if cliente.ID == "" {
		return entities.Orcamento{}, ErrClienteNotFound
	}

	// Lines are validated before the display number is allocated so a
	// rejected create never consumes a numero.
	for _, l := range o.Pecas {
		if l.PecaID == "" || l.Quantidade <= 0 || l.ValorUnitario.IsNegative() {
			return entities.Orcamento{}, ErrLinhaPecaInvalida
		}
	}
	for _, l := range o.Servicos {
		if l.ServicoID == "" || !l.Horas.IsPositive() || l.ValorHora.IsNegative() {
			return entities.Orcamento{}, ErrLinhaServicoInvalida
		}
	}

	n, err := u.seq.Proxima(ctx, seqOrcamentos)
	if err != nil {
		return entities.Orcamento{}, err
	}

	now := time.Now().UTC()
	o.ID = uuid.NewString()
	o.Numero = fmt.Sprintf("ORC-%04d", n)
	o.Status = entities.StatusOrcamentoPendente
	o.Cliente = nil
	o.Veiculo = nil
	if o.Pecas == nil {
		o.Pecas = []entities.OrcamentoPeca{}
	}
	if o.Servicos == nil {
		o.Servicos = []entities.OrcamentoServico{}
	}
	for i := range o.Pecas {
		o.Pecas[i].ID = uuid.NewString()
		o.Pecas[i].CreatedAt = now
	}
	for i := range o.Servicos {
		o.Servicos[i].ID = uuid.NewString()
		o.Servicos[i].CreatedAt = now
	}
	o.ValorTotal = o.ValorCalculado()
	o.CreatedAt = now
	o.UpdatedAt = now

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Orcamento{}, err
	}
	invalidate(ctx, u.cache, colOrcamentos)
	return created, nil
}

func (u *OrcamentoUseCase) GetByID(ctx context.Context, id string) (entities.Orcamento, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Orcamento{}, ErrInvalidID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if o.ID == "" {
		return entities.Orcamento{}, ErrOrcamentoNotFound
	}
	u.resolve(ctx, &o)
	return o, nil
}

// resolve attaches the joined cliente and veiculo for display. A failed
// lookup leaves the reference nil; the quote itself is still usable.
func (u *OrcamentoUseCase) resolve(ctx context.Context, o *entities.Orcamento) {
	if o.ClienteID != "" {
		if c, err := u.clienteRepo.GetByID(ctx, o.ClienteID); err == nil && c.ID != "" {
			o.Cliente = &c
		}
	}
	if o.VeiculoID != "" && u.veiculoRepo != nil {
		if v, err := u.veiculoRepo.GetByID(ctx, o.VeiculoID); err == nil && v.ID != "" {
			o.Veiculo = &v
		}
	}
}

func (u *OrcamentoUseCase) List(ctx context.Context, busca string, status entities.StatusOrcamento) ([]entities.Orcamento, error) {
	orcamentos, err := u.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return entities.FilterOrcamentos(orcamentos, busca, status), nil
}

func (u *OrcamentoUseCase) listAll(ctx context.Context) ([]entities.Orcamento, error) {
	if u.cache != nil {
		var cached []entities.Orcamento
		if ok, err := u.cache.GetList(ctx, colOrcamentos, &cached); err == nil && ok {
			return cached, nil
		}
	}

	orcamentos, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	// One-pass join: the console always renders the customer name next to
	// the quote number.
	clientes, err := u.clienteRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	porID := make(map[string]entities.Cliente, len(clientes))
	for _, c := range clientes {
		porID[c.ID] = c
	}
	for i := range orcamentos {
		if c, ok := porID[orcamentos[i].ClienteID]; ok {
			cliente := c
			orcamentos[i].Cliente = &cliente
		}
	}

	if u.cache != nil {
		_ = u.cache.SetList(ctx, colOrcamentos, orcamentos)
	}
	return orcamentos, nil
}

// Update rewrites header fields only. Numero, status and the line
// collections are managed by their own operations and are preserved here.
func (u *OrcamentoUseCase) Update(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error) {
	o.ID = strings.TrimSpace(o.ID)
	if o.ID == "" {
		return entities.Orcamento{}, ErrInvalidID
	}
	o.ClienteID = strings.TrimSpace(o.ClienteID)
	o.DataOrcamento = strings.TrimSpace(o.DataOrcamento)
	o.Validade = strings.TrimSpace(o.Validade)
	if o.ClienteID == "" || o.DataOrcamento == "" || o.Validade == "" {
		return entities.Orcamento{}, ErrOrcamentoInvalido
	}

	existing, err := u.repo.GetByID(ctx, o.ID)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if existing.ID == "" {
		return entities.Orcamento{}, ErrOrcamentoNotFound
	}

	existing.ClienteID = o.ClienteID
	existing.VeiculoID = o.VeiculoID
	existing.DataOrcamento = o.DataOrcamento
	existing.Validade = o.Validade
	existing.KMAtual = o.KMAtual
	existing.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if updated.ID == "" {
		return entities.Orcamento{}, ErrOrcamentoNotFound
	}
	invalidate(ctx, u.cache, colOrcamentos)
	return updated, nil
}

// UpdateStatus overwrites the quote status. Any of the four statuses is
// reachable from any other; there is deliberately no transition guard beyond
// the approval idempotency below.
func (u *OrcamentoUseCase) UpdateStatus(ctx context.Context, id string, status entities.StatusOrcamento) (entities.Orcamento, *entities.OrdemServico, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Orcamento{}, nil, ErrInvalidID
	}
	if !statusOrcamentoValido(status) {
		return entities.Orcamento{}, nil, ErrStatusOrcamentoInvalid
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Orcamento{}, nil, err
	}
	if existing.ID == "" {
		return entities.Orcamento{}, nil, ErrOrcamentoNotFound
	}

	statusAnterior := existing.Status
	existing.Status = status
	existing.UpdatedAt = time.Now().UTC()

	// Approval creates the work order exactly once: re-approving an already
	// approved quote is a no-op. The order is created before the status is
	// persisted so a failed creation leaves the quote non-approved and the
	// same PATCH can simply be retried.
	var ordem *entities.OrdemServico
	if status == entities.StatusOrcamentoAprovado && statusAnterior != entities.StatusOrcamentoAprovado {
		criada, err := u.criarOrdemDoOrcamento(ctx, existing)
		if err != nil {
			return entities.Orcamento{}, nil, err
		}
		ordem = &criada
	}

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		if ordem != nil {
			_ = u.osRepo.Delete(ctx, ordem.ID)
		}
		return entities.Orcamento{}, nil, err
	}
	if updated.ID == "" {
		if ordem != nil {
			_ = u.osRepo.Delete(ctx, ordem.ID)
		}
		return entities.Orcamento{}, nil, ErrOrcamentoNotFound
	}
	invalidate(ctx, u.cache, colOrcamentos)
	if ordem != nil {
		invalidate(ctx, u.cache, colOrdensServico)
	}
	return updated, ordem, nil
}

func (u *OrcamentoUseCase) criarOrdemDoOrcamento(ctx context.Context, o entities.Orcamento) (entities.OrdemServico, error) {
	n, err := u.seq.Proxima(ctx, seqOrdensServico)
	if err != nil {
		return entities.OrdemServico{}, err
	}

	now := time.Now().UTC()
	ordem := entities.OrdemServico{
		ID:              uuid.NewString(),
		Numero:          fmt.Sprintf("OS-%04d", n),
		ClienteID:       o.ClienteID,
		VeiculoID:       o.VeiculoID,
		OrcamentoID:     o.ID,
		DataInicio:      now.Format("2006-01-02"),
		PrazoConclusao:  o.Validade,
		KMAtual:         o.KMAtual,
		StatusServico:   entities.StatusServicoAndamento,
		StatusPagamento: entities.StatusPagamentoPendente,
		ValorTotal:      o.ValorTotal,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.osRepo.Create(ctx, ordem)
}

func (u *OrcamentoUseCase) AddPeca(ctx context.Context, orcamentoID string, linha entities.OrcamentoPeca) (entities.Orcamento, error) {
	orcamentoID = strings.TrimSpace(orcamentoID)
	linha.PecaID = strings.TrimSpace(linha.PecaID)
	if orcamentoID == "" {
		return entities.Orcamento{}, ErrInvalidID
	}
	if linha.PecaID == "" || linha.Quantidade <= 0 || linha.ValorUnitario.IsNegative() {
		return entities.Orcamento{}, ErrLinhaPecaInvalida
	}

	o, err := u.repo.GetByID(ctx, orcamentoID)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if o.ID == "" {
		return entities.Orcamento{}, ErrOrcamentoNotFound
	}

	peca, err := u.pecaRepo.GetByID(ctx, linha.PecaID)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if peca.ID == "" {
		return entities.Orcamento{}, ErrPecaNotFound
	}

	// Snapshot: the line keeps the price it was added with. A zero value
	// means "use the current catalog price".
	if linha.ValorUnitario.IsZero() {
		linha.ValorUnitario = peca.ValorUnitario
	}
	linha.ID = uuid.NewString()
	linha.PecaNome = peca.Nome
	linha.CreatedAt = time.Now().UTC()

	o.Pecas = append(o.Pecas, linha)
	return u.persistLinhas(ctx, o)
}

func (u *OrcamentoUseCase) RemovePeca(ctx context.Context, orcamentoID, linhaID string) (entities.Orcamento, error) {
	orcamentoID = strings.TrimSpace(orcamentoID)
	linhaID = strings.TrimSpace(linhaID)
	if orcamentoID == "" || linhaID == "" {
		return entities.Orcamento{}, ErrInvalidID
	}

	o, err := u.repo.GetByID(ctx, orcamentoID)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if o.ID == "" {
		return entities.Orcamento{}, ErrOrcamentoNotFound
	}

	idx := -1
	for i, l := range o.Pecas {
		if l.ID == linhaID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.Orcamento{}, ErrLinhaNotFound
	}
	o.Pecas = append(o.Pecas[:idx], o.Pecas[idx+1:]...)
	return u.persistLinhas(ctx, o)
}

func (u *OrcamentoUseCase) AddServico(ctx context.Context, orcamentoID string, linha entities.OrcamentoServico) (entities.Orcamento, error) {
	orcamentoID = strings.TrimSpace(orcamentoID)
	linha.ServicoID = strings.TrimSpace(linha.ServicoID)
	if orcamentoID == "" {
		return entities.Orcamento{}, ErrInvalidID
	}
	if linha.ServicoID == "" || !linha.Horas.IsPositive() || linha.ValorHora.IsNegative() {
		return entities.Orcamento{}, ErrLinhaServicoInvalida
	}

	o, err := u.repo.GetByID(ctx, orcamentoID)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if o.ID == "" {
		return entities.Orcamento{}, ErrOrcamentoNotFound
	}

	servico, err := u.servicoRepo.GetByID(ctx, linha.ServicoID)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if servico.ID == "" {
		return entities.Orcamento{}, ErrServicoNotFound
	}

	if linha.ValorHora.IsZero() {
		linha.ValorHora = servico.ValorHora
	}
	linha.ID = uuid.NewString()
	linha.ServicoNome = servico.Nome
	linha.CreatedAt = time.Now().UTC()

	o.Servicos = append(o.Servicos, linha)
	return u.persistLinhas(ctx, o)
}

func (u *OrcamentoUseCase) RemoveServico(ctx context.Context, orcamentoID, linhaID string) (entities.Orcamento, error) {
	orcamentoID = strings.TrimSpace(orcamentoID)
	linhaID = strings.TrimSpace(linhaID)
	if orcamentoID == "" || linhaID == "" {
		return entities.Orcamento{}, ErrInvalidID
	}

	o, err := u.repo.GetByID(ctx, orcamentoID)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if o.ID == "" {
		return entities.Orcamento{}, ErrOrcamentoNotFound
	}

	idx := -1
	for i, l := range o.Servicos {
		if l.ID == linhaID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.Orcamento{}, ErrLinhaNotFound
	}
	o.Servicos = append(o.Servicos[:idx], o.Servicos[idx+1:]...)
	return u.persistLinhas(ctx, o)
}

// persistLinhas re-derives the persisted total after any line mutation and
// writes the whole aggregate back.
func (u *OrcamentoUseCase) persistLinhas(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error) {
	o.ValorTotal = o.ValorCalculado()
	o.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if updated.ID == "" {
		return entities.Orcamento{}, ErrOrcamentoNotFound
	}
	invalidate(ctx, u.cache, colOrcamentos)
	return updated, nil
}

// Delete removes the quote and, with it, its owned lines. An already created
// work order keeps existing: the OS references the quote, not the reverse.
func (u *OrcamentoUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrOrcamentoNotFound
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, u.cache, colOrcamentos)
	return nil
}
