// Package managers handles the sending of owner notification emails using
// the Mailgun service and the Hermes package for email formatting.
package managers

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/matcornic/hermes/v2"
	log "github.com/sirupsen/logrus"
)

// MailMgr is an interface that outlines the contract for email management.
// It includes methods for notifying a card owner about new engagement.
type MailMgr interface {
	SendMessageNotification(email, ownerName, cardName, senderName string) error
	SendAppointmentNotification(email, ownerName, cardName, requesterName, proposedTime string) error
}

// MailManager is a concrete implementation of the MailMgr interface.
// It uses the Mailgun service for sending emails and the Hermes package for formatting emails.
type MailManager struct {
	Hermes  *hermes.Hermes
	Mailgun *mailgun.MailgunImpl
}

var from = "Cardlet <notifications@mail.cardlet.dev>"
var environment string

// SendMessageNotification notifies a card owner that a visitor left a message
// through one of their cards. Notifications are best effort; callers log
// failures and carry on.
func (mm *MailManager) SendMessageNotification(email, ownerName, cardName, senderName string) error {
	if environment != "production" {
		log.Info("Skipping message notification mail in development mode")
		return nil
	}

	if senderName == "" {
		senderName = "A visitor"
	}

	mailBody := hermes.Email{
		Body: hermes.Body{
			Name: ownerName,
			Intros: []string{
				fmt.Sprintf("%s left a message on your card \"%s\".", senderName, cardName),
				"Log in to your dashboard to read it.",
			},
		},
	}

	return mm.send(email, "New message on your card", mailBody)
}

// SendAppointmentNotification notifies a card owner about a new appointment
// request.
func (mm *MailManager) SendAppointmentNotification(email, ownerName, cardName, requesterName, proposedTime string) error {
	if environment != "production" {
		log.Info("Skipping appointment notification mail in development mode")
		return nil
	}

	mailBody := hermes.Email{
		Body: hermes.Body{
			Name: ownerName,
			Intros: []string{
				fmt.Sprintf("%s requested an appointment through your card \"%s\".", requesterName, cardName),
				fmt.Sprintf("Proposed time: %s", proposedTime),
			},
		},
	}

	return mm.send(email, "New appointment request", mailBody)
}

func (mm *MailManager) send(email, subject string, mailBody hermes.Email) error {
	emailBody, err := mm.Hermes.GenerateHTML(mailBody)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(2*time.Second))
	defer cancel()

	message := mm.Mailgun.NewMessage(from, subject, "", email)
	message.SetHtml(emailBody)
	_, _, err = mm.Mailgun.Send(ctx, message)
	if err != nil {
		log.Warning("Error sending notification mail: " + err.Error())
		return err
	}
	log.Debug("Notification mail sent to ", email)

	return nil
}

// NewMailManager initializes a new MailManager instance with configured Mailgun and Hermes settings.
// It also checks the runtime environment to determine if emails should be sent.
func NewMailManager() MailMgr {
	log.Info("Initializing mail manager")
	environment = os.Getenv("ENVIRONMENT")

	if environment != "production" {
		log.Println("Running in development mode, email will not be sent to users")
	}

	apiKey := os.Getenv("MAILGUN_API_KEY")
	mailgunInstance := mailgun.NewMailgun("mail.cardlet.dev", apiKey)
	mailgunInstance.SetAPIBase(mailgun.APIBaseEU)

	mm := &MailManager{
		Hermes: &hermes.Hermes{
			Theme:         new(hermes.Default),
			TextDirection: hermes.TDLeftToRight,
			Product: hermes.Product{
				Name:      "Cardlet",
				Link:      "https://cardlet.dev/",
				Copyright: "© Cardlet",
			},
		},
		Mailgun: mailgunInstance,
	}
	log.Info("Initialized mail manager")
	return mm
}
