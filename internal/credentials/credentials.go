// Package credentials manages customer password storage. Hashing lives
// behind an interface so account creation and credential handling stay
// separate concerns.
package credentials

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/grandnode/grandnode2-sub005/internal/models"
	"github.com/grandnode/grandnode2-sub005/internal/store"
)

type PasswordChanger interface {
	ChangePassword(ctx context.Context, email, password string) error
}

// StoreCredentials hashes with bcrypt and persists onto the customer record.
type StoreCredentials struct {
	db store.Database
}

func NewStoreCredentials(db store.Database) *StoreCredentials {
	return &StoreCredentials{db: db}
}

func (s *StoreCredentials) ChangePassword(ctx context.Context, email, password string) error {
	var customer models.Customer
	if err := s.db.FindOne(ctx, models.CustomerCollection, bson.M{"email": email}, &customer); err != nil {
		return fmt.Errorf("failed to find customer %s: %w", email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.db.UpdateByID(ctx, models.CustomerCollection, customer.ID, bson.M{
		"password":         string(hash),
		"passwordFormatId": models.PasswordFormatHashed,
	})
}
