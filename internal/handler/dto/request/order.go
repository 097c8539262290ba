package request

import (
	"encoding/json"

	"bakehouse/internal/domain/order"
	"bakehouse/internal/usecase"
)

type SubmitOrderRequest struct {
	OrderType        string          `json:"order_type" binding:"required"`
	CustomerName     string          `json:"customer_name" binding:"required"`
	CustomerEmail    string          `json:"customer_email" binding:"required,email"`
	CustomerPhone    string          `json:"customer_phone"`
	EventDate        *string         `json:"event_date"`
	PickupDate       *string         `json:"pickup_date"`
	PickupTime       *string         `json:"pickup_time"`
	BackupPickupDate *string         `json:"backup_pickup_date"`
	BackupPickupTime *string         `json:"backup_pickup_time"`
	FormData         json.RawMessage `json:"form_data" binding:"required"`
	Notes            string          `json:"notes"`
}

func (r SubmitOrderRequest) ToInput() (usecase.SubmitOrderInput, error) {
	orderType := order.Type(r.OrderType)

	formData, err := order.DecodeFormData(orderType, r.FormData)
	if err != nil {
		return usecase.SubmitOrderInput{}, err
	}

	eventDate, err := ParseDatePtr(r.EventDate)
	if err != nil {
		return usecase.SubmitOrderInput{}, err
	}
	pickupDate, err := ParseDatePtr(r.PickupDate)
	if err != nil {
		return usecase.SubmitOrderInput{}, err
	}
	pickupTime, err := ParseTimeOfDayPtr(r.PickupTime)
	if err != nil {
		return usecase.SubmitOrderInput{}, err
	}
	backupDate, err := ParseDatePtr(r.BackupPickupDate)
	if err != nil {
		return usecase.SubmitOrderInput{}, err
	}
	backupTime, err := ParseTimeOfDayPtr(r.BackupPickupTime)
	if err != nil {
		return usecase.SubmitOrderInput{}, err
	}

	return usecase.SubmitOrderInput{
		OrderType: orderType,
		Customer: order.Customer{
			Name:  r.CustomerName,
			Email: r.CustomerEmail,
			Phone: r.CustomerPhone,
		},
		EventDate:        eventDate,
		PickupDate:       pickupDate,
		PickupTime:       pickupTime,
		BackupPickupDate: backupDate,
		BackupPickupTime: backupTime,
		FormData:         formData,
		Notes:            r.Notes,
	}, nil
}
