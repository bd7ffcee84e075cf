package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sistock-api/internal/application/dto"
	"github.com/jhoicas/sistock-api/internal/domain"
	"github.com/jhoicas/sistock-api/internal/domain/entity"
	"github.com/jhoicas/sistock-api/internal/domain/inventory"
	"github.com/jhoicas/sistock-api/internal/domain/repository"
	"github.com/jhoicas/sistock-api/pkg/logger"
)

const dateLayout = "2006-01-02"

// Limits acota las consultas del ledger.
type Limits struct {
	DefaultPageSize     int
	MaxPageSize         int
	RecentActivityLimit int
	AlertsLimit         int
}

// MovementUseCase registra y consulta movimientos de stock.
// Cada movimiento aceptado actualiza el saldo y se agrega al ledger en una sola transacción.
type MovementUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	userRepo     repository.UserRepository
	limits       Limits
	log          *logger.Logger
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	userRepo repository.UserRepository,
	limits Limits,
	log *logger.Logger,
) *MovementUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &MovementUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		movementRepo: movementRepo,
		userRepo:     userRepo,
		limits:       limits,
		log:          log.Component("inventory"),
	}
}

// ProposeInput movimiento propuesto por un usuario autenticado.
type ProposeInput struct {
	ActorID   string
	ProductID string
	Type      string
	Quantity  *decimal.Decimal
	Reason    string
}

// ProposeInputFromRequest adapta el request HTTP al caso de uso.
func ProposeInputFromRequest(actorID string, in dto.RegisterMovementRequest) ProposeInput {
	return ProposeInput{
		ActorID:   actorID,
		ProductID: in.ProductID,
		Type:      in.MovementType,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
	}
}

// Outcome es el resultado de una propuesta: o el movimiento registrado o el rechazo.
type Outcome struct {
	Movement  *dto.MovementResponse
	Rejection *domain.Rejection
}

// Accepted indica si la propuesta se registró.
func (o *Outcome) Accepted() bool {
	return o != nil && o.Movement != nil
}

// ProposeMovement valida la propuesta y, si es admisible, aplica el delta al saldo y
// agrega la entrada al ledger de forma atómica.
// Un rechazo no es un error: se devuelve en Outcome.Rejection sin tocar el estado.
// El error se reserva para fallos de identidad o de almacenamiento.
func (uc *MovementUseCase) ProposeMovement(ctx context.Context, in ProposeInput) (*Outcome, error) {
	actor, err := uc.resolveActor(ctx, in.ActorID)
	if err != nil {
		return nil, err
	}

	snapshot, err := uc.productSnapshot(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}

	accepted, rej := inventory.Evaluate(inventory.Proposal{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
	}, snapshot, actor)
	if rej != nil {
		uc.log.Info().
			Str("user_id", actor.UserID).
			Str("product_id", in.ProductID).
			Str("type", in.Type).
			Str("field", rej.Field).
			Str("code", rej.Code).
			Msg("movimiento rechazado")
		return &Outcome{Rejection: rej}, nil
	}

	var mov entity.StockMovement
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		before, after, err := productRepo.ApplyDelta(ctx, accepted.ProductID, accepted.Delta)
		if err != nil {
			return err
		}
		mov = entity.StockMovement{
			ProductID:   accepted.ProductID,
			Type:        accepted.Type,
			Quantity:    accepted.Quantity,
			Reason:      accepted.Reason,
			UserID:      accepted.UserID,
			StockBefore: before,
			StockAfter:  after,
		}
		return movRepo.Append(ctx, &mov)
	})
	if err != nil {
		uc.log.Error().Err(err).
			Str("product_id", accepted.ProductID).
			Str("type", accepted.Type).
			Int("quantity", accepted.Quantity).
			Msg("movimiento no aplicado")
		return nil, fmt.Errorf("registrar movimiento: %w", err)
	}

	if mov.AppliedDelta() != accepted.Delta {
		// el saldo cambió entre la lectura y el UPDATE, o un ajuste tocó el piso de cero
		uc.log.Warn().
			Int64("movement_id", mov.ID).
			Int("delta", accepted.Delta).
			Int("applied", mov.AppliedDelta()).
			Msg("delta recortado en cero")
	}
	uc.log.Info().
		Int64("movement_id", mov.ID).
		Str("product_id", mov.ProductID).
		Str("type", mov.Type).
		Int("quantity", mov.Quantity).
		Int("stock_after", mov.StockAfter).
		Msg("movimiento registrado")

	out := toMovementResponse(&entity.MovementView{StockMovement: mov, ProductSKU: snapshot.SKU})
	return &Outcome{Movement: &out}, nil
}

// ListMovements consulta el ledger con filtros, más reciente primero.
func (uc *MovementUseCase) ListMovements(ctx context.Context, in dto.MovementListRequest) (*dto.MovementListResponse, error) {
	page := in.Page(uc.limits.DefaultPageSize, uc.limits.MaxPageSize)
	filter := repository.MovementFilter{
		ProductID: strings.TrimSpace(in.ProductID),
		Type:      strings.ToUpper(strings.TrimSpace(in.MovementType)),
		UserID:    strings.TrimSpace(in.UserID),
		Username:  strings.TrimSpace(in.Username),
		Search:    strings.TrimSpace(in.Q),
		Limit:     page.Limit,
		Offset:    page.Offset,
	}
	if in.From != "" {
		from, err := time.Parse(dateLayout, in.From)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.From = &from
	}
	if in.To != "" {
		to, err := time.Parse(dateLayout, in.To)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		// el día "to" se incluye completo
		end := to.AddDate(0, 0, 1)
		filter.To = &end
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, domain.ErrInvalidInput
	}

	list, total, err := uc.movementRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// GetMovement obtiene una entrada del ledger; nil si no existe.
func (uc *MovementUseCase) GetMovement(ctx context.Context, id int64) (*dto.MovementResponse, error) {
	m, err := uc.movementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	out := toMovementResponse(m)
	return &out, nil
}

// CurrentBalance devuelve el saldo almacenado del producto.
func (uc *MovementUseCase) CurrentBalance(ctx context.Context, productID string) (*dto.BalanceResponse, error) {
	if _, err := uuid.Parse(productID); err != nil {
		return nil, domain.ErrNotFound
	}
	qty, err := uc.productRepo.Balance(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceResponse{ProductID: productID, StockQuantity: qty}, nil
}

func (uc *MovementUseCase) resolveActor(ctx context.Context, userID string) (inventory.Actor, error) {
	if userID == "" {
		return inventory.Actor{}, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return inventory.Actor{}, fmt.Errorf("cargar usuario: %w", err)
	}
	if user == nil {
		return inventory.Actor{}, domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive {
		return inventory.Actor{}, domain.ErrForbidden
	}
	return inventory.Actor{UserID: user.ID, Role: user.Role, IsSuperuser: user.IsSuperuser}, nil
}

// productSnapshot lee el producto referenciado; nil si no se envió o no existe.
func (uc *MovementUseCase) productSnapshot(ctx context.Context, productID string) (*inventory.ProductSnapshot, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, nil
	}
	if _, err := uuid.Parse(productID); err != nil {
		return nil, nil
	}
	p, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("cargar producto: %w", err)
	}
	if p == nil {
		return nil, nil
	}
	return &inventory.ProductSnapshot{
		ID:            p.ID,
		SKU:           p.SKU,
		StockQuantity: p.StockQuantity,
		MinimumStock:  p.MinimumStock,
	}, nil
}

func toMovementResponse(m *entity.MovementView) dto.MovementResponse {
	return dto.MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		ProductSKU:   m.ProductSKU,
		ProductName:  m.ProductName,
		MovementType: m.Type,
		Quantity:     m.Quantity,
		Reason:       m.Reason,
		UserID:       m.UserID,
		Username:     m.Username,
		StockBefore:  m.StockBefore,
		StockAfter:   m.StockAfter,
		CreatedAt:    m.CreatedAt,
	}
}
