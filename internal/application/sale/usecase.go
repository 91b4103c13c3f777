package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/punto-venta/internal/domain"
	"github.com/jhoicas/punto-venta/internal/domain/entity"
	"github.com/jhoicas/punto-venta/internal/domain/repository"
)

// InvoicePrefix prefijo de los números de factura de venta.
const InvoicePrefix = "POS-"

// FormatInvoiceNumber renderiza el consecutivo de la secuencia de la DB.
func FormatInvoiceNumber(n int64) string {
	return fmt.Sprintf("%s%06d", InvoicePrefix, n)
}

// LineItem línea de venta en la entrada del caso de uso.
type LineItem struct {
	ProductID string
	Quantity  int64
}

// UseCase crea ventas. Fase de pre-chequeo y fase de aplicación corren dentro
// de la misma transacción: cada producto se carga (NotFound si falta), se
// verifica suficiencia de stock y se decrementa con el update condicional. El
// total usa el precio del producto capturado en ese momento. Cualquier fallo
// revierte todos los decrementos: no hay venta parcial.
type UseCase struct {
	tx       TxRunner
	saleRepo repository.SaleRepository
	receipts ReceiptGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(tx TxRunner, saleRepo repository.SaleRepository, receipts ReceiptGenerator) *UseCase {
	return &UseCase{tx: tx, saleRepo: saleRepo, receipts: receipts}
}

// Create ejecuta la venta.
func (uc *UseCase) Create(ctx context.Context, items []LineItem) (*entity.Sale, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	var result *entity.Sale
	err := uc.tx.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		prodLogRepo repository.ProductLogRepository,
		saleRepo repository.SaleRepository,
	) error {
		seq, err := saleRepo.NextInvoiceNumber(ctx)
		if err != nil {
			return err
		}
		invoiceNumber := FormatInvoiceNumber(seq)

		total := decimal.Zero
		saleItems := make([]*entity.SaleItem, 0, len(items))
		for _, item := range items {
			product, err := productRepo.GetByID(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.Stock < item.Quantity {
				return domain.ErrInsufficientStock
			}
			if _, err := productRepo.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
				return err
			}
			log := &entity.ProductLog{
				Description: fmt.Sprintf("Product %s stock decrease by %d from sale %s", product.Name, item.Quantity, invoiceNumber),
				Type:        entity.ProductLogDECREASE,
				CreatedAt:   now,
			}
			if err := prodLogRepo.Append(ctx, log); err != nil {
				return err
			}
			// Precio capturado al momento de la venta, no después.
			total = total.Add(product.Price.Mul(decimal.NewFromInt(item.Quantity)))
			saleItems = append(saleItems, &entity.SaleItem{
				ProductID:   item.ProductID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
			})
		}

		s := &entity.Sale{
			InvoiceNumber: invoiceNumber,
			Total:         total,
			CreatedAt:     now,
			Items:         saleItems,
		}
		if err := saleRepo.Create(ctx, s); err != nil {
			return err
		}
		result = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// List devuelve las ventas con sus líneas, más reciente primero.
func (uc *UseCase) List(ctx context.Context) ([]*entity.Sale, error) {
	return uc.saleRepo.List(ctx)
}

// SaleForReceipt datos que el generador de recibos necesita.
type SaleForReceipt struct {
	InvoiceNumber string
	CreatedAt     time.Time
	Total         decimal.Decimal
	Lines         []ReceiptLine
}

// ReceiptLine línea del recibo.
type ReceiptLine struct {
	ProductName string
	Quantity    int64
}

// Receipt genera el recibo PDF de una venta existente.
func (uc *UseCase) Receipt(ctx context.Context, saleID string) ([]byte, error) {
	s, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	r := SaleForReceipt{
		InvoiceNumber: s.InvoiceNumber,
		CreatedAt:     s.CreatedAt,
		Total:         s.Total,
	}
	for _, item := range s.Items {
		r.Lines = append(r.Lines, ReceiptLine{ProductName: item.ProductName, Quantity: item.Quantity})
	}
	return uc.receipts.GenerateReceipt(ctx, r)
}
