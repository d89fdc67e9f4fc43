package installer

import (
	"context"
	"fmt"

	"github.com/grandnode/grandnode2-sub005/internal/models"
)

func (i *Installer) installEmailAccounts(ctx context.Context) error {
	account := models.EmailAccount{
		Email:       "test@mail.com",
		DisplayName: "Store name",
		Host:        "smtp.mail.com",
		Port:        25,
		Username:    "123",
		Password:    "123",
		UseSSL:      false,
	}
	id, err := i.db.InsertOne(ctx, models.EmailAccountCollection, account)
	if err != nil {
		return fmt.Errorf("failed to insert email account: %w", err)
	}
	i.defaultEmailAccountID = id
	return nil
}

// installMessageTemplates runs strictly after installEmailAccounts: every
// template carries the seeded account's id.
func (i *Installer) installMessageTemplates(ctx context.Context) error {
	if i.defaultEmailAccountID == "" {
		return fmt.Errorf("no email account seeded before message templates")
	}

	templates := []struct {
		name    string
		subject string
		body    string
	}{
		{"Customer.WelcomeMessage", "Welcome to {{Store.Name}}", "<p>We welcome you to <a href=\"{{Store.URL}}\">{{Store.Name}}</a>.</p><p>You can now take part in the various services we have to offer you.</p>"},
		{"Customer.PasswordRecovery", "{{Store.Name}}. Password recovery", "<p><a href=\"{{Customer.PasswordRecoveryURL}}\">Click here</a> to change your password.</p>"},
		{"Customer.EmailValidationMessage", "{{Store.Name}}. Email validation", "<p>Click the link below to confirm your email address.</p><p><a href=\"{{Customer.AccountActivationURL}}\">Confirm</a></p>"},
		{"OrderPlaced.CustomerNotification", "{{Store.Name}}. Order receipt", "<p>Thanks for buying from <a href=\"{{Store.URL}}\">{{Store.Name}}</a>. Order number: {{Order.OrderNumber}}</p>"},
		{"OrderPlaced.StoreOwnerNotification", "{{Store.Name}}. Purchase receipt for order {{Order.OrderNumber}}", "<p>{{Customer.FullName}} placed an order.</p><p>Order number: {{Order.OrderNumber}}</p>"},
		{"ShipmentSent.CustomerNotification", "Your order from {{Store.Name}} has been shipped", "<p>Your order has been shipped. Tracking number: {{Shipment.TrackingNumber}}</p>"},
		{"OrderCancelled.CustomerNotification", "{{Store.Name}}. Your order cancelled", "<p>Your order has been cancelled. Order number: {{Order.OrderNumber}}</p>"},
		{"NewsLetterSubscription.ActivationMessage", "{{Store.Name}}. Subscription activation message", "<p><a href=\"{{NewsLetterSubscription.ActivationUrl}}\">Click here to confirm your subscription.</a></p>"},
		{"MerchandiseReturnStatusChanged.CustomerNotification", "{{Store.Name}}. Merchandise return status was changed", "<p>Your merchandise return #{{MerchandiseReturn.ReturnNumber}} status has been changed.</p>"},
	}

	docs := make([]interface{}, 0, len(templates))
	for _, t := range templates {
		docs = append(docs, models.MessageTemplate{
			Name:           t.name,
			Subject:        t.subject,
			Body:           t.body,
			IsActive:       true,
			EmailAccountId: i.defaultEmailAccountID,
		})
	}
	if _, err := i.db.InsertMany(ctx, models.MessageTemplateCollection, docs); err != nil {
		return err
	}
	return nil
}
