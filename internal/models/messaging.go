package models

const (
	EmailAccountCollection    = "EmailAccount"
	MessageTemplateCollection = "MessageTemplate"
)

type EmailAccount struct {
	ID          string `bson:"_id,omitempty"`
	Email       string `bson:"email"`
	DisplayName string `bson:"displayName"`
	Host        string `bson:"host"`
	Port        int    `bson:"port"`
	Username    string `bson:"username"`
	Password    string `bson:"password"`
	UseSSL      bool   `bson:"useSSL"`
}

type MessageTemplate struct {
	ID             string `bson:"_id,omitempty"`
	Name           string `bson:"name"`
	Subject        string `bson:"subject"`
	Body           string `bson:"body"`
	IsActive       bool   `bson:"isActive"`
	EmailAccountId string `bson:"emailAccountId"`
}
