// Package catalog holds the canned replies for each query category.
package catalog

import (
	"fmt"

	"github.com/Veraticus/power-desk/internal/model"
)

// Fallback is returned for any label outside the known categories.
const Fallback = "Sorry, I couldn't understand your request. Please try again."

const queued = " Your issue is queued and your waiting number is %d."

// Intent phrases carried by each template.
const (
	BillingIntent     = "Send an email to customercare@kplc.co.ke"
	ComplaintIntent   = "If you have a complaint, we're here to listen."
	RestorationIntent = "Our team is working to restore power in your area."
	TokenIntent       = "check the last 3 token transactions"
	TransformerIntent = "It is a faulty transformer issue affecting the area."
)

// Lookup renders the reply for a raw class index with the ticket number
// substituted in.
func Lookup(label int, ticket int) string {
	return Render(model.LabelFromIndex(label), ticket)
}

// Render renders the reply for label with the ticket number substituted in.
func Render(label model.Label, ticket int) string {
	tmpl, ok := template(label)
	if !ok {
		return Fallback
	}
	return tmpl + fmt.Sprintf(queued, ticket)
}

func template(label model.Label) (string, bool) {
	switch label {
	case model.LabelBillingStatement:
		return BillingIntent + " indicating your account details, exact location, and phone number, and request your bill statement.", true
	case model.LabelComplaint:
		return ComplaintIntent + " Please provide more details so we can assist you better.", true
	case model.LabelPowerRestoration:
		return "Hello, apologies. " + RestorationIntent, true
	case model.LabelTokenTransaction:
		return "Hello, apologies for the delay. You can also " + TokenIntent + " you have made using *977#.", true
	case model.LabelFaultyTransformer:
		return "Hi. Apologies for the inconvenience. " + TransformerIntent + " We are working to resolve the issue.", true
	case model.LabelUnknown:
		return "", false
	}
	return "", false
}
