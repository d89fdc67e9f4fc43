package installer

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/grandnode/grandnode2-sub005/internal/models"
	"github.com/grandnode/grandnode2-sub005/internal/store"
)

// ResolveError reports a natural-key lookup that did not match exactly one
// foundation record. Zero matches means a prerequisite step has not run or
// seed data is inconsistent; more than one means the natural key is not
// unique. Both abort the install.
type ResolveError struct {
	Collection string
	Filter     bson.M
	Matches    int64
}

func (e *ResolveError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("no %s record matches %v", e.Collection, e.Filter)
	}
	return fmt.Sprintf("ambiguous lookup: %d %s records match %v", e.Matches, e.Collection, e.Filter)
}

// one resolves a natural key to exactly one record. It only reads data
// committed by earlier steps; it never inserts.
func one[T any](ctx context.Context, db store.Database, collection string, filter bson.M) (*T, error) {
	n, err := db.Count(ctx, collection, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s by %v: %w", collection, filter, err)
	}
	if n != 1 {
		return nil, &ResolveError{Collection: collection, Filter: filter, Matches: n}
	}

	out := new(T)
	if err := db.FindOne(ctx, collection, filter, out); err != nil {
		return nil, fmt.Errorf("failed to resolve %s by %v: %w", collection, filter, err)
	}
	return out, nil
}

func (i *Installer) taxCategoryID(ctx context.Context, name string) (string, error) {
	tc, err := one[models.TaxCategory](ctx, i.db, models.TaxCategoryCollection, bson.M{"name": name})
	if err != nil {
		return "", err
	}
	return tc.ID, nil
}

func (i *Installer) layoutID(ctx context.Context, collection, name string) (string, error) {
	l, err := one[models.Layout](ctx, i.db, collection, bson.M{"name": name})
	if err != nil {
		return "", err
	}
	return l.ID, nil
}

func (i *Installer) categoryByName(ctx context.Context, name string) (*models.Category, error) {
	return one[models.Category](ctx, i.db, models.CategoryCollection, bson.M{"name": name})
}

func (i *Installer) brandID(ctx context.Context, name string) (string, error) {
	b, err := one[models.Brand](ctx, i.db, models.BrandCollection, bson.M{"name": name})
	if err != nil {
		return "", err
	}
	return b.ID, nil
}

func (i *Installer) productByName(ctx context.Context, name string) (*models.Product, error) {
	return one[models.Product](ctx, i.db, models.ProductCollection, bson.M{"name": name})
}

func (i *Installer) productAttributeID(ctx context.Context, name string) (string, error) {
	pa, err := one[models.ProductAttribute](ctx, i.db, models.ProductAttributeCollection, bson.M{"name": name})
	if err != nil {
		return "", err
	}
	return pa.ID, nil
}

func (i *Installer) countryID(ctx context.Context, isoCode string) (string, error) {
	c, err := one[models.Country](ctx, i.db, models.CountryCollection, bson.M{"twoLetterIsoCode": isoCode})
	if err != nil {
		return "", err
	}
	return c.ID, nil
}

func (i *Installer) deliveryDateID(ctx context.Context, name string) (string, error) {
	dd, err := one[models.DeliveryDate](ctx, i.db, models.DeliveryDateCollection, bson.M{"name": name})
	if err != nil {
		return "", err
	}
	return dd.ID, nil
}

// specificationOption resolves the composite key attribute-name + option-name
// to the attribute id and the embedded option id.
func (i *Installer) specificationOption(ctx context.Context, attribute, option string) (attrID, optionID string, err error) {
	sa, err := one[models.SpecificationAttribute](ctx, i.db, models.SpecificationAttributeCollection, bson.M{"name": attribute})
	if err != nil {
		return "", "", err
	}

	var found []string
	for _, opt := range sa.SpecificationAttributeOptions {
		if opt.Name == option {
			found = append(found, opt.ID)
		}
	}
	if len(found) != 1 {
		return "", "", &ResolveError{
			Collection: models.SpecificationAttributeCollection,
			Filter:     bson.M{"name": attribute, "option": option},
			Matches:    int64(len(found)),
		}
	}
	return sa.ID, found[0], nil
}
