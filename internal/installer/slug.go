package installer

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/grandnode/grandnode2-sub005/internal/models"
	"github.com/grandnode/grandnode2-sub005/internal/seo"
)

const slugAttempts = 1000

// saveSlug runs the second phase of every named-entity insert: once the
// entity id is known, compute a store-wide unique slug, persist the
// EntityUrl lookup record, and write the slug back onto the entity.
func (i *Installer) saveSlug(ctx context.Context, collection, entityID, entityName, name string) (string, error) {
	base := seo.GenerateSlug(name)
	if base == "" {
		base = strings.ToLower(entityName)
	}

	slug := base
	for n := 2; ; n++ {
		taken, err := i.db.Count(ctx, models.EntityUrlCollection, bson.M{"slug": slug})
		if err != nil {
			return "", fmt.Errorf("failed to check slug %q: %w", slug, err)
		}
		if taken == 0 {
			break
		}
		if n > slugAttempts {
			return "", fmt.Errorf("failed to find a free slug for %q after %d attempts", name, slugAttempts)
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}

	record := models.EntityUrl{
		EntityId:   entityID,
		EntityName: entityName,
		LanguageId: "",
		Slug:       slug,
		IsActive:   true,
	}
	if _, err := i.db.InsertOne(ctx, models.EntityUrlCollection, record); err != nil {
		return "", fmt.Errorf("failed to insert slug record %q: %w", slug, err)
	}

	if err := i.db.UpdateByID(ctx, collection, entityID, bson.M{"seName": slug}); err != nil {
		return "", fmt.Errorf("failed to write slug back to %s/%s: %w", collection, entityID, err)
	}

	return slug, nil
}
