package installer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/grandnode/grandnode2-sub005/internal/config"
	"github.com/grandnode/grandnode2-sub005/internal/models"
	"github.com/grandnode/grandnode2-sub005/internal/store/memory"
)

func newTestInstaller(t *testing.T) (*Installer, *memory.Database) {
	t.Helper()
	db := memory.New()
	return New(db, config.Default(), zap.NewNop()), db
}

func testOptions(sampleData bool) InstallOptions {
	return InstallOptions{
		AdminEmail:        "admin@yourstore.com",
		AdminPassword:     "correct horse battery staple",
		InstallSampleData: sampleData,
		Company: CompanyInfo{
			Name:  "Test Company",
			Email: "mail@testcompany.com",
		},
	}
}

func TestInstallData_RequiresCredentials(t *testing.T) {
	inst, _ := newTestInstaller(t)
	err := inst.InstallData(context.Background(), InstallOptions{})
	require.Error(t, err)
}

func TestInstallData_BaseInstall(t *testing.T) {
	inst, db := newTestInstaller(t)
	ctx := context.Background()

	require.NoError(t, inst.InstallData(ctx, testOptions(false)))

	// version stamp
	var versions []models.DataVersion
	require.NoError(t, db.Find(ctx, models.VersionCollection, bson.M{}, &versions))
	require.Len(t, versions, 1)
	assert.Equal(t, "2.2", versions[0].DataBaseVersion)
	assert.WithinDuration(t, time.Now().UTC(), versions[0].InstalledOnUtc, time.Minute)

	// collections carry the requested collation
	assert.Equal(t, "en", db.CollationLocale(models.ProductCollection))
	assert.Equal(t, "en", db.CollationLocale(models.CustomerCollection))

	// no sample catalog without the flag
	n, err := db.Count(ctx, models.ProductCollection, bson.M{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

// Foundation data must be committed before anything resolves it: the same
// lookup that fails with zero matches before a foundation step runs must
// succeed once that step has committed.
func TestFoundationStepOrdering(t *testing.T) {
	db := memory.New()
	inst := New(db, config.Default(), zap.NewNop())
	inst.opts = InstallOptions{Collation: "en"}
	ctx := context.Background()

	require.NoError(t, inst.createCollections(ctx))
	require.NoError(t, inst.createIndexes(ctx))

	_, err := inst.taxCategoryID(ctx, "Books")
	var rerr *ResolveError
	require.ErrorAs(t, err, &rerr)
	assert.EqualValues(t, 0, rerr.Matches)

	require.NoError(t, inst.installTaxCategories(ctx))

	id, err := inst.taxCategoryID(ctx, "Books")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

// Same property one level up: a dependent seeder cannot run before its
// foundation. installPages resolves its layout by name, so running it
// before installPageLayouts must fail with a zero-match resolution error.
func TestDependentSeederFailsBeforeFoundation(t *testing.T) {
	db := memory.New()
	inst := New(db, config.Default(), zap.NewNop())
	inst.opts = InstallOptions{Collation: "en"}
	ctx := context.Background()

	require.NoError(t, inst.createCollections(ctx))
	require.NoError(t, inst.createIndexes(ctx))

	err := inst.installPages(ctx)
	var rerr *ResolveError
	require.ErrorAs(t, err, &rerr)
	assert.EqualValues(t, 0, rerr.Matches)

	require.NoError(t, inst.installPageLayouts(ctx))
	require.NoError(t, inst.installPages(ctx))
}

func TestInstallData_ProvisionsRuntimeCollections(t *testing.T) {
	inst, db := newTestInstaller(t)
	ctx := context.Background()

	require.NoError(t, inst.InstallData(ctx, testOptions(false)))

	names, err := db.ListCollections(ctx)
	require.NoError(t, err)
	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[n] = true
	}
	for _, want := range []string{
		models.OrderCollection,
		models.ShipmentCollection,
		models.MerchandiseReturnCollection,
		models.UserApiCollection,
		models.ActivityLogCollection,
		models.CampaignHistoryCollection,
		models.SearchTermCollection,
	} {
		assert.True(t, present[want], "collection %s not provisioned", want)
	}

	// the unique guards must reject duplicates even though nothing is
	// seeded into these collections at install time
	duplicates := []struct {
		collection string
		doc        bson.M
	}{
		{models.ShipmentCollection, bson.M{"shipmentNumber": 1}},
		{models.MerchandiseReturnCollection, bson.M{"returnNumber": 1}},
		{models.UserApiCollection, bson.M{"email": "api@yourstore.com"}},
	}
	for _, d := range duplicates {
		_, err := db.InsertOne(ctx, d.collection, d.doc)
		require.NoError(t, err)
		_, err = db.InsertOne(ctx, d.collection, d.doc)
		require.Error(t, err, "duplicate accepted in %s", d.collection)
	}
}

func TestInstallData_AdminPasswordIsHashed(t *testing.T) {
	inst, db := newTestInstaller(t)
	ctx := context.Background()
	opts := testOptions(false)

	require.NoError(t, inst.InstallData(ctx, opts))

	var admin models.Customer
	require.NoError(t, db.FindOne(ctx, models.CustomerCollection, bson.M{"email": opts.AdminEmail}, &admin))

	assert.Equal(t, models.PasswordFormatHashed, admin.PasswordFormatId)
	assert.NotEqual(t, opts.AdminPassword, admin.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(opts.AdminPassword)))

	// the operator account belongs to both built-in groups
	require.Len(t, admin.Groups, 2)
	for _, groupID := range admin.Groups {
		n, err := db.Count(ctx, models.CustomerGroupCollection, bson.M{"_id": groupID})
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	}
}

func TestInstallData_MessageTemplatesCarryEmailAccount(t *testing.T) {
	inst, db := newTestInstaller(t)
	ctx := context.Background()

	require.NoError(t, inst.InstallData(ctx, testOptions(false)))

	var accounts []models.EmailAccount
	require.NoError(t, db.Find(ctx, models.EmailAccountCollection, bson.M{}, &accounts))
	require.Len(t, accounts, 1)

	var templates []models.MessageTemplate
	require.NoError(t, db.Find(ctx, models.MessageTemplateCollection, bson.M{}, &templates))
	require.NotEmpty(t, templates)
	for _, tmpl := range templates {
		assert.Equal(t, accounts[0].ID, tmpl.EmailAccountId, "template %s not bound to the default account", tmpl.Name)
	}
}

func TestInstallData_CountriesCarryEmbeddedStates(t *testing.T) {
	inst, db := newTestInstaller(t)
	ctx := context.Background()

	require.NoError(t, inst.InstallData(ctx, testOptions(false)))

	var us models.Country
	require.NoError(t, db.FindOne(ctx, models.CountryCollection, bson.M{"twoLetterIsoCode": "US"}, &us))
	assert.Len(t, us.StateProvinces, 51)

	var poland models.Country
	require.NoError(t, db.FindOne(ctx, models.CountryCollection, bson.M{"twoLetterIsoCode": "PL"}, &poland))
	assert.Len(t, poland.StateProvinces, 16)
	for _, sp := range poland.StateProvinces {
		assert.True(t, sp.Published)
		assert.NotEmpty(t, sp.Name)
	}
}

func TestInstallData_SecondRunFails(t *testing.T) {
	inst, _ := newTestInstaller(t)
	ctx := context.Background()

	require.NoError(t, inst.InstallData(ctx, testOptions(false)))

	err := inst.InstallData(ctx, testOptions(false))
	require.ErrorIs(t, err, ErrAlreadyInstalled)
}

func TestInstallData_VersionStampUniqueIndex(t *testing.T) {
	inst, db := newTestInstaller(t)
	ctx := context.Background()

	require.NoError(t, inst.InstallData(ctx, testOptions(false)))

	// even if the advisory count check were bypassed, the unique index on
	// the version collection rejects a second stamp
	_, err := db.InsertOne(ctx, models.VersionCollection, models.DataVersion{
		DataBaseVersion: "2.2",
		InstalledOnUtc:  time.Now().UTC(),
	})
	require.Error(t, err)
}

func TestInstallData_SampleCatalog(t *testing.T) {
	inst, db := newTestInstaller(t)
	ctx := context.Background()

	require.NoError(t, inst.InstallData(ctx, testOptions(true)))

	var products []models.Product
	require.NoError(t, db.Find(ctx, models.ProductCollection, bson.M{}, &products))
	require.NotEmpty(t, products)

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, p := range products {
		assert.NotEmpty(t, p.Sku, "product %s has no sku", p.Name)
		if p.VisibleIndividually {
			assert.NotEmpty(t, p.SeName, "product %s has no slug", p.Name)
		}

		// category references resolve
		for _, pc := range p.ProductCategories {
			n, err := db.Count(ctx, models.CategoryCollection, bson.M{"_id": pc.CategoryId})
			require.NoError(t, err)
			assert.EqualValues(t, 1, n, "product %s references unknown category", p.Name)
		}

		// picture references resolve
		for _, pp := range p.ProductPictures {
			n, err := db.Count(ctx, models.PictureCollection, bson.M{"_id": pp.PictureId})
			require.NoError(t, err)
			assert.EqualValues(t, 1, n, "product %s references unknown picture", p.Name)
		}
	}
}

func TestInstallData_RelatedProductsAreSymmetric(t *testing.T) {
	inst, db := newTestInstaller(t)
	ctx := context.Background()

	require.NoError(t, inst.InstallData(ctx, testOptions(true)))

	var products []models.Product
	require.NoError(t, db.Find(ctx, models.ProductCollection, bson.M{}, &products))

	related := make(map[string]map[string]bool)
	for _, p := range products {
		for _, r := range p.RelatedProducts {
			if related[p.ID] == nil {
				related[p.ID] = make(map[string]bool)
			}
			related[p.ID][r.ProductId2] = true
		}
	}
	require.NotEmpty(t, related)

	// every directional record has its mirror stored on the other product
	for from, targets := range related {
		for to := range targets {
			assert.True(t, related[to][from], "missing reverse link %s -> %s", to, from)
		}
	}
}

func TestInstallData_GroupedProduct(t *testing.T) {
	inst, db := newTestInstaller(t)
	ctx := context.Background()

	require.NoError(t, inst.InstallData(ctx, testOptions(true)))

	var parent models.Product
	require.NoError(t, db.FindOne(ctx, models.ProductCollection, bson.M{"productTypeId": models.ProductTypeGrouped}, &parent))

	var children []models.Product
	require.NoError(t, db.Find(ctx, models.ProductCollection, bson.M{"parentGroupedProductId": parent.ID}, &children))
	require.Len(t, children, 2)
	for _, child := range children {
		assert.False(t, child.VisibleIndividually)
		assert.Equal(t, models.ProductTypeSimple, child.ProductTypeId)
	}
}

func TestInstallData_BundledProduct(t *testing.T) {
	inst, db := newTestInstaller(t)
	ctx := context.Background()

	require.NoError(t, inst.InstallData(ctx, testOptions(true)))

	var bundle models.Product
	require.NoError(t, db.FindOne(ctx, models.ProductCollection, bson.M{"productTypeId": models.ProductTypeBundled}, &bundle))
	require.Len(t, bundle.BundleProducts, 3)

	for _, bp := range bundle.BundleProducts {
		assert.Positive(t, bp.Quantity)
		var child models.Product
		require.NoError(t, db.FindOne(ctx, models.ProductCollection, bson.M{"_id": bp.ProductId}, &child))
		assert.False(t, child.VisibleIndividually)
	}
}

func TestInstallData_DownloadableProduct(t *testing.T) {
	inst, db := newTestInstaller(t)
	ctx := context.Background()

	require.NoError(t, inst.InstallData(ctx, testOptions(true)))

	var product models.Product
	require.NoError(t, db.FindOne(ctx, models.ProductCollection, bson.M{"isDownload": true}, &product))
	require.NotEmpty(t, product.DownloadId)

	var download models.Download
	require.NoError(t, db.FindOne(ctx, models.DownloadCollection, bson.M{"_id": product.DownloadId}, &download))
	assert.NotEmpty(t, download.DownloadGuid)
	assert.NotEmpty(t, download.DownloadBinary)
}

func TestInstallData_ProductTagsCountUsage(t *testing.T) {
	inst, db := newTestInstaller(t)
	ctx := context.Background()

	require.NoError(t, inst.InstallData(ctx, testOptions(true)))

	var tags []models.ProductTag
	require.NoError(t, db.Find(ctx, models.ProductTagCollection, bson.M{}, &tags))
	require.NotEmpty(t, tags)

	var products []models.Product
	require.NoError(t, db.Find(ctx, models.ProductCollection, bson.M{}, &products))

	usage := make(map[string]int)
	for _, p := range products {
		for _, name := range p.ProductTags {
			usage[name]++
		}
	}

	for _, tag := range tags {
		assert.Equal(t, usage[tag.Name], tag.Count, "tag %s count drifted from usage", tag.Name)
	}
}

func TestInstallData_ReviewsStayWithinConfiguredBounds(t *testing.T) {
	inst, db := newTestInstaller(t)
	ctx := context.Background()
	cfg := config.Default()

	require.NoError(t, inst.InstallData(ctx, testOptions(true)))

	var reviews []models.ProductReview
	require.NoError(t, db.Find(ctx, models.ProductReviewCollection, bson.M{}, &reviews))

	for _, r := range reviews {
		assert.GreaterOrEqual(t, r.Rating, cfg.SampleData.ReviewMinRating)
		assert.LessOrEqual(t, r.Rating, cfg.SampleData.ReviewMaxRating)
		assert.True(t, r.IsApproved)

		// denormalized aggregates on the product match the stored review
		var p models.Product
		require.NoError(t, db.FindOne(ctx, models.ProductCollection, bson.M{"_id": r.ProductId}, &p))
		assert.Equal(t, r.Rating, p.ApprovedRatingSum)
		assert.Equal(t, 1, p.ApprovedTotalReviews)
	}
}

func TestInstallData_SlugsAreUnique(t *testing.T) {
	inst, db := newTestInstaller(t)
	ctx := context.Background()

	require.NoError(t, inst.InstallData(ctx, testOptions(true)))

	var urls []models.EntityUrl
	require.NoError(t, db.Find(ctx, models.EntityUrlCollection, bson.M{}, &urls))
	require.NotEmpty(t, urls)

	seen := make(map[string]string)
	for _, u := range urls {
		prev, dup := seen[u.Slug]
		assert.False(t, dup, "slug %q used by both %s and %s", u.Slug, prev, u.EntityId)
		seen[u.Slug] = u.EntityId
		assert.NotEmpty(t, u.EntityName)
		assert.True(t, u.IsActive)
	}
}
