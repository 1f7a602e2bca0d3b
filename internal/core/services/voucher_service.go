package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/munna98/stock-star/internal/apperrors"
	"github.com/munna98/stock-star/internal/core/domain"
	portsrepo "github.com/munna98/stock-star/internal/core/ports/repositories"
	portssvc "github.com/munna98/stock-star/internal/core/ports/services"
	"github.com/munna98/stock-star/internal/dto"
	"github.com/munna98/stock-star/internal/middleware"
	"github.com/munna98/stock-star/internal/utils/pagination"
)

// voucherService orchestrates voucher posting: transaction numbering, remark
// auto-generation, movement derivation and atomic persistence.
type voucherService struct {
	voucherRepo portsrepo.VoucherRepository
	typeRepo    portsrepo.TransactionTypeRepository
	siteRepo    portsrepo.SiteRepository
}

// NewVoucherService creates a new VoucherService.
func NewVoucherService(voucherRepo portsrepo.VoucherRepository, typeRepo portsrepo.TransactionTypeRepository, siteRepo portsrepo.SiteRepository) portssvc.VoucherSvcFacade {
	return &voucherService{
		voucherRepo: voucherRepo,
		typeRepo:    typeRepo,
		siteRepo:    siteRepo,
	}
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// resolveTypeName maps the voucher's type reference to its name. An
// unresolvable reference is an input error, not a storage error.
func (s *voucherService) resolveTypeName(ctx context.Context, typeID int64) (string, error) {
	typ, err := s.typeRepo.FindTypeByID(ctx, typeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: unknown voucher type id %d", apperrors.ErrValidation, typeID)
		}
		return "", fmt.Errorf("failed to resolve voucher type %d: %w", typeID, err)
	}
	return typ.Name, nil
}

// buildRemarks applies the auto-generation policy: blank remarks default to
// the type name, and transfer vouchers whose endpoint names both resolve get
// a "Transfer: {source} -> {destination}" remark instead.
func (s *voucherService) buildRemarks(ctx context.Context, typeName, remarks string, sourceSiteID, destinationSiteID *int64) string {
	if strings.TrimSpace(remarks) != "" {
		return remarks
	}
	if domain.IsTransferType(typeName) && sourceSiteID != nil && destinationSiteID != nil {
		source, srcErr := s.siteRepo.FindSiteByID(ctx, *sourceSiteID)
		destination, dstErr := s.siteRepo.FindSiteByID(ctx, *destinationSiteID)
		if srcErr == nil && dstErr == nil {
			return fmt.Sprintf("Transfer: %s -> %s", source.Name, destination.Name)
		}
		middleware.GetLoggerFromCtx(ctx).Warn("Could not resolve both site names for transfer remark",
			slog.Int64("source_site_id", *sourceSiteID),
			slog.Int64("destination_site_id", *destinationSiteID),
		)
	}
	return typeName
}

// assembleLines derives the movement set for each requested line. Quantities
// must be positive; everything else is decided by the derivation policy.
func assembleLines(typeName string, sourceSiteID, destinationSiteID *int64, reqLines []dto.VoucherLineRequest) ([]domain.PostedLine, error) {
	lines := make([]domain.PostedLine, 0, len(reqLines))
	for _, lr := range reqLines {
		drafts, err := domain.DeriveMovements(typeName, sourceSiteID, destinationSiteID, lr.ItemID, lr.Quantity)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		lines = append(lines, domain.PostedLine{
			Line:      domain.VoucherLine{ItemID: lr.ItemID, Quantity: lr.Quantity},
			Movements: drafts,
		})
	}
	return lines, nil
}

func parseVoucherDate(value string) (time.Time, error) {
	date, err := time.Parse(dto.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid voucher date %q, expected %s", apperrors.ErrValidation, value, dto.DateFormat)
	}
	return date, nil
}

// PostVoucher creates a voucher with its lines and derived movements as one
// atomic unit and returns it with the assigned id and transaction number.
func (s *voucherService) PostVoucher(ctx context.Context, req dto.CreateVoucherRequest) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	date, err := parseVoucherDate(req.VoucherDate)
	if err != nil {
		return nil, err
	}

	typeName, err := s.resolveTypeName(ctx, req.VoucherTypeID)
	if err != nil {
		return nil, err
	}

	lines, err := assembleLines(typeName, req.SourceSiteID, req.DestinationSiteID, req.Lines)
	if err != nil {
		return nil, err
	}

	voucher := domain.Voucher{
		VoucherDate:       date,
		SourceSiteID:      req.SourceSiteID,
		DestinationSiteID: req.DestinationSiteID,
		VoucherTypeID:     req.VoucherTypeID,
		Remarks:           s.buildRemarks(ctx, typeName, req.Remarks, req.SourceSiteID, req.DestinationSiteID),
		CreatedBy:         req.CreatedBy,
		CreatedAt:         time.Now().UTC(),
	}

	voucherID, transactionNumber, err := s.voucherRepo.CreateVoucher(ctx, voucher, lines)
	if err != nil {
		logger.Error("Failed to save voucher", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save voucher: %w", err)
	}

	voucher.ID = voucherID
	voucher.TransactionNumber = transactionNumber
	for _, pl := range lines {
		line := pl.Line
		line.VoucherID = voucherID
		voucher.Lines = append(voucher.Lines, line)
	}

	logger.Info("Voucher posted",
		slog.Int64("voucher_id", voucherID),
		slog.String("transaction_number", transactionNumber),
		slog.String("voucher_type", typeName),
		slog.Int("line_count", len(lines)),
	)
	return &voucher, nil
}

// UpdateVoucher replaces an existing voucher's content in place. Movements
// and lines are regenerated from scratch; the transaction number, creator and
// creation time are preserved.
func (s *voucherService) UpdateVoucher(ctx context.Context, voucherID int64, req dto.UpdateVoucherRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return fmt.Errorf("failed to find voucher %d: %w", voucherID, err)
	}

	date, err := parseVoucherDate(req.VoucherDate)
	if err != nil {
		return err
	}

	typeName, err := s.resolveTypeName(ctx, req.VoucherTypeID)
	if err != nil {
		return err
	}

	lines, err := assembleLines(typeName, req.SourceSiteID, req.DestinationSiteID, req.Lines)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	voucher := domain.Voucher{
		ID:                existing.ID,
		TransactionNumber: existing.TransactionNumber,
		VoucherDate:       date,
		SourceSiteID:      req.SourceSiteID,
		DestinationSiteID: req.DestinationSiteID,
		VoucherTypeID:     req.VoucherTypeID,
		Remarks:           s.buildRemarks(ctx, typeName, req.Remarks, req.SourceSiteID, req.DestinationSiteID),
		CreatedBy:         existing.CreatedBy,
		CreatedAt:         existing.CreatedAt,
		UpdatedAt:         &now,
	}

	if err := s.voucherRepo.UpdateVoucher(ctx, voucher, lines); err != nil {
		logger.Error("Failed to update voucher", slog.Int64("voucher_id", voucherID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to update voucher %d: %w", voucherID, err)
	}

	logger.Info("Voucher updated", slog.Int64("voucher_id", voucherID), slog.String("transaction_number", existing.TransactionNumber))
	return nil
}

// DeleteVoucher removes the voucher with its lines and movements.
func (s *voucherService) DeleteVoucher(ctx context.Context, voucherID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.voucherRepo.DeleteVoucher(ctx, voucherID); err != nil {
		return fmt.Errorf("failed to delete voucher %d: %w", voucherID, err)
	}

	logger.Info("Voucher deleted", slog.Int64("voucher_id", voucherID))
	return nil
}

// GetVoucher retrieves a voucher with its lines.
func (s *voucherService) GetVoucher(ctx context.Context, voucherID int64) (*domain.Voucher, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, fmt.Errorf("failed to find voucher %d: %w", voucherID, err)
	}
	return voucher, nil
}

// ListVouchers returns one page of the voucher listing, newest first, plus
// the total voucher count.
func (s *voucherService) ListVouchers(ctx context.Context, params pagination.Params) ([]domain.VoucherDisplay, int64, error) {
	vouchers, total, err := s.voucherRepo.ListVouchers(ctx, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list vouchers: %w", err)
	}
	return vouchers, total, nil
}

// ListTransactionTypes returns the seeded type vocabulary.
func (s *voucherService) ListTransactionTypes(ctx context.Context) ([]domain.TransactionType, error) {
	types, err := s.typeRepo.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction types: %w", err)
	}
	return types, nil
}
