package installer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/grandnode/grandnode2-sub005/internal/models"
)

func (i *Installer) installCustomerGroups(ctx context.Context) error {
	groups := []interface{}{
		models.CustomerGroup{Name: "Administrators", SystemName: models.CustomerGroupAdministrators, IsSystem: true, Active: true},
		models.CustomerGroup{Name: "Registered", SystemName: models.CustomerGroupRegistered, IsSystem: true, Active: true},
		models.CustomerGroup{Name: "Guests", SystemName: models.CustomerGroupGuests, IsSystem: true, Active: true},
		models.CustomerGroup{Name: "Vendors", SystemName: "Vendors", IsSystem: true, Active: true},
	}
	_, err := i.db.InsertMany(ctx, models.CustomerGroupCollection, groups)
	return err
}

// installAdminCustomer creates the default operator account. The password is
// stored clear here and hashed by a later dedicated step, mirroring the
// deferred credential-service call.
func (i *Installer) installAdminCustomer(ctx context.Context) error {
	var adminGroup, registeredGroup models.CustomerGroup
	if err := i.db.FindOne(ctx, models.CustomerGroupCollection, bson.M{"systemName": models.CustomerGroupAdministrators}, &adminGroup); err != nil {
		return fmt.Errorf("failed to find administrators group: %w", err)
	}
	if err := i.db.FindOne(ctx, models.CustomerGroupCollection, bson.M{"systemName": models.CustomerGroupRegistered}, &registeredGroup); err != nil {
		return fmt.Errorf("failed to find registered group: %w", err)
	}

	admin := models.Customer{
		CustomerGuid:     uuid.NewString(),
		Email:            i.opts.AdminEmail,
		Username:         i.opts.AdminEmail,
		Password:         i.opts.AdminPassword,
		PasswordFormatId: models.PasswordFormatClear,
		Active:           true,
		Groups:           []string{adminGroup.ID, registeredGroup.ID},
		CreatedOnUtc:     time.Now().UTC(),
	}

	id, err := i.db.InsertOne(ctx, models.CustomerCollection, admin)
	if err != nil {
		return fmt.Errorf("failed to insert admin customer: %w", err)
	}
	i.adminCustomerID = id

	// Background/system accounts used by scheduled tasks.
	systemAccounts := []interface{}{
		models.Customer{
			CustomerGuid: uuid.NewString(), Email: "builtin@search-engine-record.com",
			Active: false, IsSystemAccount: true, AdminComment: "Built-in system guest record used for requests from search engines.",
			CreatedOnUtc: time.Now().UTC(),
		},
		models.Customer{
			CustomerGuid: uuid.NewString(), Email: "builtin@background-task-record.com",
			Active: false, IsSystemAccount: true, AdminComment: "Built-in system record used for background tasks.",
			CreatedOnUtc: time.Now().UTC(),
		},
	}
	if _, err := i.db.InsertMany(ctx, models.CustomerCollection, systemAccounts); err != nil {
		return err
	}
	return nil
}

// hashAdminPassword is deliberately a separate, later step: account creation
// and credential hashing are decoupled in the install sequence.
func (i *Installer) hashAdminPassword(ctx context.Context) error {
	return i.passwords.ChangePassword(ctx, i.opts.AdminEmail, i.opts.AdminPassword)
}

func (i *Installer) installCustomerActions(ctx context.Context) error {
	actions := []interface{}{
		models.CustomerActionType{Name: "Add to cart", SystemKeyword: "AddToCart", Enabled: false},
		models.CustomerActionType{Name: "Add order", SystemKeyword: "AddOrder", Enabled: false},
		models.CustomerActionType{Name: "Viewed", SystemKeyword: "Viewed", Enabled: false},
		models.CustomerActionType{Name: "Url", SystemKeyword: "Url", Enabled: false},
		models.CustomerActionType{Name: "Customer Register", SystemKeyword: "Registration", Enabled: false},
	}
	_, err := i.db.InsertMany(ctx, models.CustomerActionTypeCollection, actions)
	return err
}
