// Package contacts lists the regional office numbers shown beside the desk.
package contacts

import (
	"fmt"
	"strings"

	"github.com/Veraticus/power-desk/internal/common"
)

// County is a regional office and how to reach it.
type County struct {
	Name    string
	Contact string
}

var counties = []County{
	{Name: "Nairobi", Contact: "Contact Nairobi office: +254 123 456789"},
	{Name: "Mombasa", Contact: "Contact Mombasa office: +254 987 654321"},
	{Name: "Kisumu", Contact: "Contact Kisumu office: +254 567 890123"},
	{Name: "Nakuru", Contact: "Contact Nakuru office: +254 345 678901"},
	{Name: "Eldoret", Contact: "Contact Eldoret office: +254 234 567890"},
	{Name: "Thika", Contact: "Contact Thika office: +254 678 901234"},
	{Name: "Nyeri", Contact: "Contact Nyeri office: +254 456 789012"},
	{Name: "Machakos", Contact: "Contact Machakos office: +254 789 012345"},
	{Name: "Meru", Contact: "Contact Meru office: +254 890 123456"},
	{Name: "Embu", Contact: "Contact Embu office: +254 012 345678"},
}

// Head office channels shown on the contact tab.
const (
	Email     = "customercare@kplc.co.ke"
	Phone     = "+254 20 3201000"
	Website   = "https://www.kplc.co.ke"
	Twitter   = "https://twitter.com/KenyaPower_Care"
	Facebook  = "https://www.facebook.com/KenyaPowerLtd/"
	Copyright = "© 2024 KPLC"
)

// Counties returns the counties in selector order.
func Counties() []County {
	out := make([]County, len(counties))
	copy(out, counties)
	return out
}

// Names returns the county names in selector order.
func Names() []string {
	names := make([]string, len(counties))
	for i, c := range counties {
		names[i] = c.Name
	}
	return names
}

// Lookup returns the contact line for a county, matched case-insensitively.
func Lookup(name string) (string, error) {
	for _, c := range counties {
		if strings.EqualFold(c.Name, strings.TrimSpace(name)) {
			return c.Contact, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownCounty, name)
}
