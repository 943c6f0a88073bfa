package importapp

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/shoply/backend/internal/domain/catalog"
	"github.com/shoply/backend/internal/domain/shared"
	"github.com/shoply/backend/internal/infrastructure/tabular"
	"go.uber.org/zap"
)

// Column aliases accepted in import files. Headers are matched after
// normalization, so case and surrounding whitespace do not matter.
// Russian aliases match the spreadsheets the merchants actually send.
var (
	colStore       = []string{"store_name", "store", "магазин"}
	colName        = []string{"name", "product", "название", "товар"}
	colDescription = []string{"description", "описание"}
	colSKU         = []string{"sku", "article", "артикул"}
	colPrice       = []string{"price", "цена"}
	colStock       = []string{"stock_quantity", "stock", "quantity", "количество", "остаток"}
	colAvailable   = []string{"is_available", "available", "доступен", "в наличии"}
)

// truthy and falsy tokens accepted in the available column
var (
	truthyTokens = map[string]bool{"true": true, "1": true, "yes": true, "да": true, "y": true}
	falsyTokens  = map[string]bool{"false": true, "0": true, "no": true, "нет": true, "n": true}
)

// importRow is a validated, normalized row ready to persist
type importRow struct {
	line        int
	storeName   string
	name        string
	description string
	sku         string
	price       decimal.Decimal
	stock       int
	available   bool
}

// ProductImportService loads products from CSV or Excel files.
// Each row is resolved and persisted independently: a bad row is
// reported and skipped while the rest of the file goes through.
type ProductImportService struct {
	storeRepo   catalog.StoreRepository
	productRepo catalog.ProductRepository
	maxErrors   int
	logger      *zap.Logger
}

// NewProductImportService creates a new ProductImportService
func NewProductImportService(
	storeRepo catalog.StoreRepository,
	productRepo catalog.ProductRepository,
	maxErrors int,
	logger *zap.Logger,
) *ProductImportService {
	return &ProductImportService{
		storeRepo:   storeRepo,
		productRepo: productRepo,
		maxErrors:   maxErrors,
		logger:      logger,
	}
}

// ImportFile parses the file and imports every row. File-level problems
// (unsupported extension, undecodable bytes, missing sheet) fail the run
// before any row is touched; row-level problems only mark that row.
func (s *ProductImportService) ImportFile(ctx context.Context, src io.Reader, filename string, opts Options) (*Stats, error) {
	rows, err := tabular.Parse(src, filename, tabular.Options{Sheet: opts.Sheet})
	if err != nil {
		return nil, err
	}
	return s.ImportRows(ctx, rows, opts)
}

// ImportRows imports parsed data rows
func (s *ProductImportService) ImportRows(ctx context.Context, rows []tabular.Row, opts Options) (*Stats, error) {
	stats := &Stats{}
	errs := tabular.NewErrorCollection(s.maxErrors)

	// Stores created in this run, so a dry run can tell "would create"
	// from "exists" and a live run saves the lookup.
	seenStores := make(map[string]*catalog.Store)

	for i := range rows {
		row := &rows[i]

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		stats.Processed++

		parsed, ok := s.parseRow(row, errs)
		if !ok {
			stats.Skipped++
			continue
		}

		if err := s.importRow(ctx, parsed, opts, stats, seenStores, errs); err != nil {
			return nil, err
		}
	}

	stats.Errors = errs.Errors()
	stats.TotalErrors = errs.TotalCount()
	stats.IsTruncated = errs.IsTruncated()
	return stats, nil
}

// parseRow validates and normalizes one row. Every problem in the row is
// reported, not just the first one.
func (s *ProductImportService) parseRow(row *tabular.Row, errs *tabular.ErrorCollection) (*importRow, bool) {
	parsed := &importRow{
		line:        row.Number,
		storeName:   columnValue(row, colStore),
		name:        columnValue(row, colName),
		description: columnValue(row, colDescription),
		sku:         columnValue(row, colSKU),
		available:   true,
	}

	ok := true
	if parsed.storeName == "" {
		errs.AddRequiredError(row.Number, "store_name")
		ok = false
	}
	if parsed.name == "" {
		errs.AddRequiredError(row.Number, "name")
		ok = false
	}

	priceRaw := columnValue(row, colPrice)
	if priceRaw == "" {
		errs.AddRequiredError(row.Number, "price")
		ok = false
	} else {
		price, err := parsePrice(priceRaw)
		if err != nil {
			errs.AddTypeError(row.Number, "price", "positive number", priceRaw)
			ok = false
		} else {
			parsed.price = price
		}
	}

	if stockRaw := columnValue(row, colStock); stockRaw != "" {
		stock, err := strconv.Atoi(stockRaw)
		if err != nil || stock < 0 {
			errs.AddTypeError(row.Number, "stock", "non-negative integer", stockRaw)
			ok = false
		} else {
			parsed.stock = stock
		}
	}

	if availRaw := columnValue(row, colAvailable); availRaw != "" {
		available, err := parseBool(availRaw)
		if err != nil {
			errs.AddTypeError(row.Number, "available", "yes/no value", availRaw)
			ok = false
		} else {
			parsed.available = available
		}
	}

	return parsed, ok
}

// importRow resolves the store and upserts the product for one clean row.
// Persistence failures are recorded as row errors; only context
// cancellation aborts the run.
func (s *ProductImportService) importRow(
	ctx context.Context,
	row *importRow,
	opts Options,
	stats *Stats,
	seenStores map[string]*catalog.Store,
	errs *tabular.ErrorCollection,
) error {
	store, err := s.resolveStore(ctx, row.storeName, opts.DryRun, stats, seenStores)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		errs.Add(tabular.NewRowError(row.line, "store_name", tabular.ErrCodePersistence, err.Error()))
		stats.Skipped++
		return nil
	}

	product, err := s.findExisting(ctx, store, row)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		errs.Add(tabular.NewRowError(row.line, "", tabular.ErrCodePersistence, err.Error()))
		stats.Skipped++
		return nil
	}

	created := product == nil
	if created {
		product, err = catalog.NewProduct(store.ID, row.name, row.price)
		if err == nil {
			product.Description = row.description
			product.SKU = row.sku
			err = product.SetStock(row.stock)
		}
		if err == nil {
			product.SetAvailability(row.available)
		}
	} else {
		err = product.ApplyImport(row.name, row.description, row.sku, row.price, row.stock, row.available)
	}
	if err != nil {
		errs.Add(tabular.NewRowError(row.line, "", tabular.ErrCodeValidation, err.Error()))
		stats.Skipped++
		return nil
	}

	if !opts.DryRun {
		if err := s.productRepo.Save(ctx, product); err != nil {
			errs.Add(tabular.NewRowError(row.line, "", tabular.ErrCodePersistence, err.Error()))
			stats.Skipped++
			return nil
		}
	}

	if created {
		stats.Created++
	} else {
		stats.Updated++
	}

	if opts.Verbose && s.logger != nil {
		action := "updated"
		if created {
			action = "created"
		}
		s.logger.Info("imported product",
			zap.Int("row", row.line),
			zap.String("store", store.Name),
			zap.String("product", row.name),
			zap.String("action", action))
	}
	return nil
}

// resolveStore finds the store by name, creating it on a live run.
// A dry run records that the store would be created instead.
func (s *ProductImportService) resolveStore(
	ctx context.Context,
	name string,
	dryRun bool,
	stats *Stats,
	seenStores map[string]*catalog.Store,
) (*catalog.Store, error) {
	if store, ok := seenStores[name]; ok {
		return store, nil
	}

	if dryRun {
		store, err := s.storeRepo.FindByName(ctx, name)
		if errors.Is(err, shared.ErrNotFound) {
			store, err = catalog.NewStore(name)
			if err != nil {
				return nil, err
			}
			stats.StoresCreated++
		} else if err != nil {
			return nil, err
		}
		seenStores[name] = store
		return store, nil
	}

	store, createdStore, err := s.storeRepo.GetOrCreateByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if createdStore {
		stats.StoresCreated++
	}
	seenStores[name] = store
	return store, nil
}

// findExisting matches a row to an existing product: by SKU first when
// the row carries one, by exact name within the store otherwise.
func (s *ProductImportService) findExisting(ctx context.Context, store *catalog.Store, row *importRow) (*catalog.Product, error) {
	if row.sku != "" {
		product, err := s.productRepo.FindBySKU(ctx, store.ID, row.sku)
		if err == nil {
			return product, nil
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
	}

	product, err := s.productRepo.FindByName(ctx, store.ID, row.name)
	if err == nil {
		return product, nil
	}
	if errors.Is(err, shared.ErrNotFound) {
		return nil, nil
	}
	return nil, err
}

// columnValue returns the first non-empty value among the column aliases
func columnValue(row *tabular.Row, aliases []string) string {
	for _, alias := range aliases {
		if v := row.Get(alias); v != "" {
			return v
		}
	}
	return ""
}

// parsePrice parses a decimal price, tolerating a comma decimal separator
// and currency whitespace. The price must be positive.
func parsePrice(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	price, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, err
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, errors.New("price must be positive")
	}
	return price, nil
}

// parseBool parses a truthy/falsy token in English or Russian
func parseBool(raw string) (bool, error) {
	token := strings.ToLower(strings.TrimSpace(raw))
	if truthyTokens[token] {
		return true, nil
	}
	if falsyTokens[token] {
		return false, nil
	}
	return false, errors.New("unrecognized boolean token")
}
