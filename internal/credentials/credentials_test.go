package credentials

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/grandnode/grandnode2-sub005/internal/models"
	"github.com/grandnode/grandnode2-sub005/internal/store/memory"
)

func TestChangePassword(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	_, err := db.InsertOne(ctx, models.CustomerCollection, models.Customer{
		Email:            "admin@yourstore.com",
		Password:         "plaintext",
		PasswordFormatId: models.PasswordFormatClear,
	})
	require.NoError(t, err)

	svc := NewStoreCredentials(db)
	require.NoError(t, svc.ChangePassword(ctx, "admin@yourstore.com", "plaintext"))

	var customer models.Customer
	require.NoError(t, db.FindOne(ctx, models.CustomerCollection, bson.M{"email": "admin@yourstore.com"}, &customer))
	assert.Equal(t, models.PasswordFormatHashed, customer.PasswordFormatId)
	assert.NotEqual(t, "plaintext", customer.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte("plaintext")))
}

func TestChangePassword_UnknownCustomer(t *testing.T) {
	svc := NewStoreCredentials(memory.New())
	err := svc.ChangePassword(context.Background(), "nobody@yourstore.com", "pw")
	require.Error(t, err)
}
