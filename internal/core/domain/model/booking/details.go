package booking

import (
	"errors"
	"slices"
	"strings"

	"shipping/internal/pkg/errs"
)

// Details holds the fields a client fills in and may edit while the booking is pending.
type Details struct {
	deliveryCity    string
	deliveryAddress string
	recipientName   string
	recipientPhone  string
	specialItems    []SpecialItem
	contentTypes    []string
}

func NewDetails(
	deliveryCity, deliveryAddress, recipientName, recipientPhone string,
	specialItems []SpecialItem,
	contentTypes []string,
) (Details, error) {
	d := Details{
		deliveryCity:    strings.TrimSpace(deliveryCity),
		deliveryAddress: strings.TrimSpace(deliveryAddress),
		recipientName:   strings.TrimSpace(recipientName),
		recipientPhone:  strings.TrimSpace(recipientPhone),
		specialItems:    slices.Clone(specialItems),
		contentTypes:    normalizeContentTypes(contentTypes),
	}

	var problems []error
	if d.deliveryCity == "" {
		problems = append(problems, errs.NewValueIsRequiredError("delivery city"))
	}
	if d.recipientName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("recipient name"))
	}
	if d.recipientPhone == "" {
		problems = append(problems, errs.NewValueIsRequiredError("recipient phone"))
	}
	for _, item := range d.specialItems {
		if item.name == "" || item.quantity < 1 {
			problems = append(problems, errs.NewValueIsInvalidError("special item"))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return Details{}, err
	}
	return d, nil
}

func (d Details) DeliveryCity() string {
	return d.deliveryCity
}

func (d Details) DeliveryAddress() string {
	return d.deliveryAddress
}

func (d Details) RecipientName() string {
	return d.recipientName
}

func (d Details) RecipientPhone() string {
	return d.recipientPhone
}

func (d Details) SpecialItems() []SpecialItem {
	return slices.Clone(d.specialItems)
}

func (d Details) ContentTypes() []string {
	return slices.Clone(d.contentTypes)
}
