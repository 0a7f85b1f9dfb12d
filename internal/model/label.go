// Package model contains the domain types shared by the classifier, the
// response pipeline and the dashboard.
package model

import "fmt"

// Label is the class index produced by a query classifier.
type Label int

// The five query categories the classifier was trained on. The order
// matches the output units of the model artifact.
const (
	LabelUnknown Label = iota - 1
	LabelBillingStatement
	LabelComplaint
	LabelPowerRestoration
	LabelTokenTransaction
	LabelFaultyTransformer
)

// LabelCount is the number of known classes.
const LabelCount = 5

// Labels returns the known labels in index order.
func Labels() []Label {
	return []Label{
		LabelBillingStatement,
		LabelComplaint,
		LabelPowerRestoration,
		LabelTokenTransaction,
		LabelFaultyTransformer,
	}
}

// LabelFromIndex maps a raw class index onto a Label. Indexes outside the
// known range map to LabelUnknown.
func LabelFromIndex(i int) Label {
	if i < 0 || i >= LabelCount {
		return LabelUnknown
	}
	return Label(i)
}

// Known reports whether l is one of the five trained classes.
func (l Label) Known() bool {
	return l >= LabelBillingStatement && l <= LabelFaultyTransformer
}

// Index returns the raw class index, or -1 for LabelUnknown.
func (l Label) Index() int {
	if !l.Known() {
		return -1
	}
	return int(l)
}

func (l Label) String() string {
	switch l {
	case LabelBillingStatement:
		return "billing_statement"
	case LabelComplaint:
		return "complaint"
	case LabelPowerRestoration:
		return "power_restoration"
	case LabelTokenTransaction:
		return "token_transaction"
	case LabelFaultyTransformer:
		return "faulty_transformer"
	case LabelUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("label(%d)", int(l))
	}
}

// Description is a short human readable summary of what the class covers.
// It is used when asking a language model to pick a class.
func (l Label) Description() string {
	switch l {
	case LabelBillingStatement:
		return "billing questions and requests for a bill statement"
	case LabelComplaint:
		return "general complaints about the service"
	case LabelPowerRestoration:
		return "power outage, no electricity, waiting for restoration"
	case LabelTokenTransaction:
		return "prepaid token purchases that did not arrive or were delayed"
	case LabelFaultyTransformer:
		return "faulty, blown or noisy transformer affecting an area"
	default:
		return "unrecognised request"
	}
}
