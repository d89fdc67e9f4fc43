// Package installer populates a fresh document database with the reference
// data a new storefront instance needs. It runs once, synchronously, at
// provisioning time: collections and indexes first, then entity groups in a
// fixed hand-ordered sequence so that every foundation record exists before
// anything references it. Any failure is fatal; there is no rollback.
package installer

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/grandnode/grandnode2-sub005/internal/assets"
	"github.com/grandnode/grandnode2-sub005/internal/config"
	"github.com/grandnode/grandnode2-sub005/internal/credentials"
	"github.com/grandnode/grandnode2-sub005/internal/models"
	"github.com/grandnode/grandnode2-sub005/internal/store"
)

// ErrAlreadyInstalled is returned when a version stamp is already present.
var ErrAlreadyInstalled = errors.New("store is already installed")

type CompanyInfo struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

type InstallOptions struct {
	AdminEmail        string
	AdminPassword     string
	Collation         string
	InstallSampleData bool
	Company           CompanyInfo

	// SampleImagesDir, when set, points at bundled sample images; a missing
	// file is then a fatal install error. When empty a placeholder image is
	// used instead.
	SampleImagesDir string
}

type Installer struct {
	db        store.Database
	cfg       *config.Config
	log       *zap.Logger
	pictures  assets.PictureStorage
	downloads assets.DownloadStorage
	passwords credentials.PasswordChanger
	rnd       *rand.Rand

	opts InstallOptions

	// ids resolved once and reused within the run
	defaultEmailAccountID string
	defaultLanguageID     string
	defaultCurrencyID     string
	adminCustomerID       string
}

func New(db store.Database, cfg *config.Config, logger *zap.Logger) *Installer {
	storeAssets := assets.NewStoreAssets(db)
	return &Installer{
		db:        db,
		cfg:       cfg,
		log:       logger,
		pictures:  storeAssets,
		downloads: storeAssets,
		passwords: credentials.NewStoreCredentials(db),
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type step struct {
	name string
	run  func(context.Context) error
}

// InstallData runs the full installation sequence. Later steps assume
// earlier ones committed; the order below is part of the contract and must
// not be reshuffled.
func (i *Installer) InstallData(ctx context.Context, opts InstallOptions) error {
	if opts.AdminEmail == "" || opts.AdminPassword == "" {
		return errors.New("admin email and password are required")
	}
	if opts.Collation == "" {
		opts.Collation = i.cfg.Install.DefaultCollation
	}
	i.opts = opts

	// Advisory double-install guard; the unique index on the version
	// collection backstops the race this check cannot close.
	installed, err := i.db.Count(ctx, models.VersionCollection, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to check for existing installation: %w", err)
	}
	if installed > 0 {
		return ErrAlreadyInstalled
	}

	steps := []step{
		{"create collections", i.createCollections},
		{"create indexes", i.createIndexes},
		{"stamp version", i.installVersion},
		{"admin menu", i.installAdminMenu},
		{"stores", i.installStores},
		{"measures", i.installMeasures},
		{"tax categories", i.installTaxCategories},
		{"languages", i.installLanguages},
		{"currencies", i.installCurrencies},
		{"countries and states", i.installCountries},
		{"shipping methods", i.installShippingMethods},
		{"delivery dates", i.installDeliveryDates},
		{"customer groups", i.installCustomerGroups},
		{"admin customer", i.installAdminCustomer},
		{"email accounts", i.installEmailAccounts},
		{"message templates", i.installMessageTemplates},
		{"customer actions", i.installCustomerActions},
		{"settings", i.installSettings},
		{"page layouts", i.installPageLayouts},
		{"pages", i.installPages},
		{"translation resources", i.installTranslationResources},
		{"activity log types", i.installActivityLogTypes},
		{"admin password", i.hashAdminPassword},
		{"catalog layouts", i.installCatalogLayouts},
		{"scheduled tasks", i.installScheduledTasks},
		{"merchandise return reasons", i.installReturnReasons},
		{"merchandise return actions", i.installReturnActions},
		{"order statuses", i.installOrderStatuses},
		{"permissions", i.installPermissions},
	}

	if opts.InstallSampleData {
		steps = append(steps,
			step{"checkout attributes", i.installCheckoutAttributes},
			step{"specification attributes", i.installSpecificationAttributes},
			step{"product attributes", i.installProductAttributes},
			step{"categories", i.installCategories},
			step{"brands", i.installBrands},
			step{"products", i.installProducts},
			step{"discounts", i.installDiscounts},
			step{"blog posts", i.installBlogPosts},
			step{"news items", i.installNewsItems},
			step{"warehouses", i.installWarehouses},
			step{"pickup points", i.installPickupPoints},
			step{"vendors", i.installVendors},
			step{"affiliates", i.installAffiliates},
			step{"order tags", i.installOrderTags},
		)
	}

	for _, s := range steps {
		i.log.Info("install step", zap.String("step", s.name))
		if err := s.run(ctx); err != nil {
			return fmt.Errorf("install step %q failed: %w", s.name, err)
		}
	}

	i.log.Info("installation complete",
		zap.Bool("sampleData", opts.InstallSampleData),
		zap.String("collation", opts.Collation))
	return nil
}
