package order

import (
	"encoding/json"

	"bakehouse/internal/pkg/errs"
)

var ErrUnknownFormData = errs.New("unknown form data variant")

// FormData carries the order-type-specific intake payload. The lifecycle never
// branches on its contents; it is decoded into a typed variant at the edge and
// passed through opaquely everywhere else.
type FormData interface {
	FormType() Type
}

type CookiesForm struct {
	Dozens      int      `json:"dozens"`
	Flavors     []string `json:"flavors"`
	Packaging   string   `json:"packaging,omitempty"`
	Inscription string   `json:"inscription,omitempty"`
}

func (CookiesForm) FormType() Type { return TypeCookies }

type CookiesLargeForm struct {
	Dozens    int      `json:"dozens"`
	Flavors   []string `json:"flavors"`
	EventKind string   `json:"event_kind,omitempty"`
}

func (CookiesLargeForm) FormType() Type { return TypeCookiesLarge }

type CakeForm struct {
	Size        string   `json:"size"`
	Tiers       int      `json:"tiers"`
	Flavors     []string `json:"flavors"`
	Filling     string   `json:"filling,omitempty"`
	Inscription string   `json:"inscription,omitempty"`
	DesignNotes string   `json:"design_notes,omitempty"`
}

func (CakeForm) FormType() Type { return TypeCake }

type WeddingForm struct {
	Venue        string   `json:"venue"`
	GuestCount   int      `json:"guest_count"`
	Servings     int      `json:"servings,omitempty"`
	Tiers        int      `json:"tiers,omitempty"`
	Flavors      []string `json:"flavors,omitempty"`
	DesignNotes  string   `json:"design_notes,omitempty"`
	DeliveryTime string   `json:"delivery_time,omitempty"`
}

func (WeddingForm) FormType() Type { return TypeWedding }

type TastingForm struct {
	PartySize int      `json:"party_size"`
	Flavors   []string `json:"flavors,omitempty"`
}

func (TastingForm) FormType() Type { return TypeTasting }

type CookieCupsForm struct {
	Quantity int      `json:"quantity"`
	Flavors  []string `json:"flavors"`
}

func (CookieCupsForm) FormType() Type { return TypeCookieCups }

type EasterCollectionForm struct {
	Boxes    int    `json:"boxes"`
	BoxStyle string `json:"box_style,omitempty"`
}

func (EasterCollectionForm) FormType() Type { return TypeEasterCollection }

// DecodeFormData resolves the variant for the given order type. Unknown fields
// are preserved nowhere; the payload is the contract.
func DecodeFormData(t Type, raw []byte) (FormData, error) {
	if len(raw) == 0 {
		raw = []byte("{}")
	}

	var (
		fd  FormData
		err error
	)
	switch t {
	case TypeCookies:
		var v CookiesForm
		err = json.Unmarshal(raw, &v)
		fd = v
	case TypeCookiesLarge:
		var v CookiesLargeForm
		err = json.Unmarshal(raw, &v)
		fd = v
	case TypeCake:
		var v CakeForm
		err = json.Unmarshal(raw, &v)
		fd = v
	case TypeWedding:
		var v WeddingForm
		err = json.Unmarshal(raw, &v)
		fd = v
	case TypeTasting:
		var v TastingForm
		err = json.Unmarshal(raw, &v)
		fd = v
	case TypeCookieCups:
		var v CookieCupsForm
		err = json.Unmarshal(raw, &v)
		fd = v
	case TypeEasterCollection:
		var v EasterCollectionForm
		err = json.Unmarshal(raw, &v)
		fd = v
	default:
		return nil, ErrUnknownFormData
	}
	if err != nil {
		return nil, errs.Wrap(err, "decode form data")
	}
	return fd, nil
}

func EncodeFormData(fd FormData) ([]byte, error) {
	if fd == nil {
		return []byte("{}"), nil
	}
	raw, err := json.Marshal(fd)
	if err != nil {
		return nil, errs.Wrap(err, "encode form data")
	}
	return raw, nil
}
